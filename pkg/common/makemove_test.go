package common

import "testing"

func TestMakeMove(t *testing.T) {
	var tests = []struct {
		fen   string
		moves []string
		want  []string
	}{
		// capture of an unmoved rook, king move, castling
		{
			"r3k2r/8/8/8/8/8/6B1/R3K2R w KQkq - 7 20",
			[]string{"g2a8", "e8d8", "e1g1"},
			[]string{
				"B3k2r/8/8/8/8/8/8/R3K2R b KQk - 0 20",
				"B2k3r/8/8/8/8/8/8/R3K2R w KQ - 1 21",
				"B2k3r/8/8/8/8/8/8/R4RK1 b - - 2 21",
			},
		},
		{
			"4k3/8/8/8/8/8/4P3/4K3 w - - 12 30",
			[]string{"e2e3"},
			[]string{"4k3/8/8/8/8/4P3/8/4K3 b - - 0 30"},
		},
		{
			"4k3/8/8/8/8/8/4P3/4K3 w - - 12 30",
			[]string{"e1d1"},
			[]string{"4k3/8/8/8/8/8/4P3/3K4 b - - 13 30"},
		},
		// the en passant square lives for one ply
		{
			"4k3/3p4/8/8/8/8/8/4K3 b - - 5 40",
			[]string{"d7d5", "e1e2"},
			[]string{
				"4k3/8/8/3p4/8/8/8/4K3 w - d6 0 41",
				"4k3/8/8/3p4/8/8/4K3/8 b - - 1 41",
			},
		},
		{
			"4k3/2p5/8/3P4/8/8/8/4K3 b - - 6 12",
			[]string{"c7c5", "d5c6"},
			[]string{
				"4k3/8/8/2pP4/8/8/8/4K3 w - c6 0 13",
				"4k3/8/2P5/8/8/8/8/4K3 b - - 0 13",
			},
		},
		{
			"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 3 10",
			[]string{"h1h5"},
			[]string{"r3k2r/8/8/8/7R/8/8/R3K3 b Qkq - 4 10"},
		},
		{
			"r3k2r/1P6/8/8/8/8/8/4K3 w kq - 9 50",
			[]string{"b7a8q"},
			[]string{"Q3k2r/8/8/8/8/8/8/4K3 b k - 0 50"},
		},
	}
	for i, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		for j, text := range test.moves {
			move, err := p.ParseLegalMove(text)
			if err != nil {
				t.Fatal(i, text, err)
			}
			var child Position
			p.MakeMove(move, &child)
			if got := child.String(); got != test.want[j] {
				t.Error(i, text, got)
			}
			p = child
		}
	}
}
