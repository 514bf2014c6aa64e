package eval

import (
	"testing"

	"github.com/sahomat/sahomat/pkg/common"
)

func TestEvaluate(t *testing.T) {
	var tests = []struct {
		fen   string
		score int
	}{
		{common.InitialPositionFen, 0},
		{"4k3/8/8/8/8/8/8/4K2Q w - - 0 1", 900},
		{"4k3/8/8/8/8/8/8/4K2Q b - - 0 1", -900},
		{"rn2k3/8/8/8/8/8/PP6/4K3 w - - 0 1", -600},
		{"4k3/8/8/8/8/8/8/BN2K3 b - - 0 1", -600},
	}
	var e = NewEvaluationService()
	for i, test := range tests {
		var p, err = common.NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(i, err)
		}
		if got := e.Evaluate(&p); got != test.score {
			t.Error(i, test, got)
		}
	}
}
