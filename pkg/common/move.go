package common

import (
	"fmt"
	"strings"
)

// Move is a packed tagged value. The kind selects which payload fields carry
// meaning: normal moves use from, to and the moving piece; en passant uses from
// and to; promotions use from, to and the promoted-to piece; castles carry
// nothing. A move only has meaning relative to the position that produced it.
type Move int32

type MoveKind int

const (
	MoveNone MoveKind = iota
	MoveNormal
	MoveEnPassant
	MovePromotion
	MoveKingSideCastle
	MoveQueenSideCastle
)

const MoveEmpty = Move(0)

var (
	KingSideCastle  = Move(int32(MoveKingSideCastle) << 15)
	QueenSideCastle = Move(int32(MoveQueenSideCastle) << 15)
)

func makeMove(kind MoveKind, from, to, piece int) Move {
	return Move(from ^ (to << 6) ^ (piece << 12) ^ (int(kind) << 15))
}

func NewNormalMove(from, to, piece int) Move {
	return makeMove(MoveNormal, from, to, piece)
}

func NewEnPassant(from, to int) Move {
	return makeMove(MoveEnPassant, from, to, Pawn)
}

func NewPromotion(from, to, promotion int) Move {
	return makeMove(MovePromotion, from, to, promotion)
}

func (m Move) Kind() MoveKind {
	return MoveKind((m >> 15) & 7)
}

func (m Move) From() int {
	return int(m & 63)
}

func (m Move) To() int {
	return int((m >> 6) & 63)
}

// Piece is the moving piece for normal moves and the promoted-to piece for promotions.
func (m Move) Piece() int {
	return int((m >> 12) & 7)
}

func (m Move) String() string {
	switch m.Kind() {
	case MoveNone:
		return "0000"
	case MoveNormal, MoveEnPassant:
		return SquareName(m.From()) + SquareName(m.To())
	case MovePromotion:
		return SquareName(m.From()) + SquareName(m.To()) + string("nbrq"[m.Piece()-Knight])
	case MoveKingSideCastle:
		return "O-O"
	case MoveQueenSideCastle:
		return "O-O-O"
	}
	panic(UnknownMoveKind(m))
}

// MoveToUCI renders m in coordinate notation; castles become king moves.
func (p *Position) MoveToUCI(m Move) string {
	switch m.Kind() {
	case MoveKingSideCastle:
		return let(p.WhiteMove, "e1g1", "e8g8")
	case MoveQueenSideCastle:
		return let(p.WhiteMove, "e1c1", "e8c8")
	}
	return m.String()
}

// ParseMove maps four or five character coordinate notation onto the move kind
// the position implies. Legality is not checked.
func (p *Position) ParseMove(s string) (Move, error) {
	if len(s) != 4 && len(s) != 5 {
		return MoveEmpty, &ParseError{Section: SectionMove, Text: s}
	}
	var from, err = ParseSquare(s[0:2])
	if err != nil || from == SquareNone {
		return MoveEmpty, &ParseError{Section: SectionMove, Text: s, Err: err}
	}
	to, err := ParseSquare(s[2:4])
	if err != nil || to == SquareNone {
		return MoveEmpty, &ParseError{Section: SectionMove, Text: s, Err: err}
	}

	if len(s) == 5 {
		var promotion = strings.IndexByte("nbrq", lower(s[4]))
		if promotion < 0 {
			return MoveEmpty, &ParseError{Section: SectionPromotion, Text: s}
		}
		return NewPromotion(from, to, Knight+promotion), nil
	}

	var piece, side = p.PieceOn(from)
	if piece == Empty || side != p.WhiteMove {
		return MoveEmpty, &ParseError{Section: SectionMove, Text: s}
	}
	if piece == Pawn && to == p.EpSquare {
		return NewEnPassant(from, to), nil
	}
	if piece == King {
		switch File(to) - File(from) {
		case 2:
			return KingSideCastle, nil
		case -2:
			return QueenSideCastle, nil
		}
	}
	return NewNormalMove(from, to, piece), nil
}

// ParseLegalMove is ParseMove restricted to the legal moves of the position.
func (p *Position) ParseLegalMove(s string) (Move, error) {
	var m, err = p.ParseMove(s)
	if err != nil {
		return MoveEmpty, err
	}
	if !p.IsLegalMove(m) {
		return MoveEmpty, ErrIllegalMove
	}
	return m, nil
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

// UnknownMoveKind is the panic value of switches over Move.Kind that meet a kind they do not know.
func UnknownMoveKind(m Move) error {
	return fmt.Errorf("unknown move kind %d", m.Kind())
}
