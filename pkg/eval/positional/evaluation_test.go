package eval

import (
	"testing"

	. "github.com/sahomat/sahomat/pkg/common"
)

func evaluateFen(t *testing.T, fen string) int {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return NewEvaluationService().Evaluate(&p)
}

func TestSymmetry(t *testing.T) {
	if score := evaluateFen(t, InitialPositionFen); score != 0 {
		t.Error(score)
	}
	var white = evaluateFen(t, "r1bqkbnr/pppppppp/2n5/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 1 2")
	var black = evaluateFen(t, "r1bqkbnr/pppppppp/2n5/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 1 2")
	if white != -black {
		t.Error(white, black)
	}
	var mirrored = evaluateFen(t, "rnbqkbnr/pppp1ppp/8/4p3/8/2N5/PPPPPPPP/R1BQKBNR b KQkq - 1 2")
	if white != mirrored {
		t.Error(white, mirrored)
	}
}

func TestPositionalTerms(t *testing.T) {
	var tests = []struct {
		better, worse string
	}{
		// knight in the centre beats knight on the rim
		{"4k3/8/8/8/3N4/8/8/4K3 w - - 0 1", "4k3/8/8/8/N7/8/8/4K3 w - - 0 1"},
		// advanced pawn
		{"4k3/8/8/3P4/8/8/8/4K3 w - - 0 1", "4k3/8/8/8/8/8/3P4/4K3 w - - 0 1"},
		// castled king while material is on the board
		{"r3k3/8/8/8/8/8/6P1/R4RK1 w - - 0 1", "r3k3/8/8/8/8/8/6P1/R4R1K w - - 0 1"},
		// more material always wins
		{"4k3/8/8/8/8/8/8/R3K3 w - - 0 1", "4k3/8/8/8/8/8/8/N3K3 w - - 0 1"},
	}
	for i, test := range tests {
		var better = evaluateFen(t, test.better)
		var worse = evaluateFen(t, test.worse)
		if better <= worse {
			t.Error(i, test, better, worse)
		}
	}
}
