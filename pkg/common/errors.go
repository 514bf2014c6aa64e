package common

import (
	"errors"
	"fmt"
)

var (
	ErrIllegalMove        = errors.New("illegal move")
	ErrNoPreviousPosition = errors.New("no previous position")
)

// Sections of the notations that ParseError can point at.
const (
	SectionFen       = "fen"
	SectionBoard     = "board"
	SectionSide      = "side to move"
	SectionCastling  = "castling rights"
	SectionEnPassant = "en passant square"
	SectionHalfMove  = "halfmove clock"
	SectionFullMove  = "fullmove number"
	SectionSquare    = "square"
	SectionMove      = "move"
	SectionPromotion = "promotion"
)

// ParseError reports malformed notation together with the section it was found in.
type ParseError struct {
	Section string
	Text    string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse %s %q: %v", e.Section, e.Text, e.Err)
	}
	return fmt.Sprintf("parse %s %q failed", e.Section, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
