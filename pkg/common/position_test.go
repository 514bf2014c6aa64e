package common

import (
	"errors"
	"testing"
)

func TestFenRoundTrip(t *testing.T) {
	for i, fen := range testFens {
		var p, err = NewPositionFromFEN(fen)
		if err != nil {
			t.Fatal(i, err)
		}
		if got := p.String(); got != fen {
			t.Error(i, fen, got)
		}
	}
}

func TestFenDefaults(t *testing.T) {
	var p, err = NewPositionFromFEN("8/8/8/8/8/8/8/K6k w - -")
	if err != nil {
		t.Fatal(err)
	}
	if p.Rule50 != 0 || p.MoveNumber != 1 || p.EpSquare != SquareNone {
		t.Error(p)
	}
}

func TestFenErrors(t *testing.T) {
	var tests = []struct {
		fen     string
		section string
	}{
		{"", SectionFen},
		{"8/8/8/8/8/8/8/K6k w", SectionFen},
		{"8/8/8/8/8/8/K6k w - - 0 1", SectionBoard},
		{"8/8/8/8/8/8/8/K6k1 w - - 0 1", SectionBoard},
		{"8/8/8/8/8/8/8/K5xk w - - 0 1", SectionBoard},
		{"8/8/8/8/8/8/8/K6 w - - 0 1", SectionBoard},
		{"8/8/8/8/8/8/8/KK5k w - - 0 1", SectionBoard},
		{"P7/8/8/8/8/8/8/K6k w - - 0 1", SectionBoard},
		{"8/8/8/8/8/8/8/K5Qk w - - 0 1", SectionBoard},
		{"8/8/8/8/8/8/8/K6k x - - 0 1", SectionSide},
		{"8/8/8/8/8/8/8/K6k w KX - 0 1", SectionCastling},
		{"8/8/8/8/8/8/8/K6k w KK - 0 1", SectionCastling},
		{"8/8/8/8/8/8/8/K6k w - e9 0 1", SectionEnPassant},
		{"8/8/8/8/8/8/8/K6k w - e3 0 1", SectionEnPassant},
		{"4k3/8/8/3P4/8/8/8/4K3 w - e6 0 1", SectionEnPassant},
		{"8/8/8/8/8/8/8/K6k w - - x 1", SectionHalfMove},
		{"8/8/8/8/8/8/8/K6k w - - -1 1", SectionHalfMove},
		{"8/8/8/8/8/8/8/K6k w - - 0 0", SectionFullMove},
	}
	for i, test := range tests {
		var _, err = NewPositionFromFEN(test.fen)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) || parseErr.Section != test.section {
			t.Error(i, test, err)
		}
	}
}

func TestPieceOn(t *testing.T) {
	var p = InitialPosition()
	var tests = []struct {
		sq    int
		piece int
		white bool
	}{
		{SquareE1, King, true},
		{SquareD8, Queen, false},
		{SquareB1, Knight, true},
		{SquareH7, Pawn, false},
		{SquareE4, Empty, false},
	}
	for i, test := range tests {
		var piece, white = p.PieceOn(test.sq)
		if piece != test.piece || white != test.white {
			t.Error(i, test, piece, white)
		}
	}
	if PopCount(p.AllPieces()) != 32 || p.IsCheck() {
		t.Error(p.String())
	}
}
