package tactic

import (
	"context"
	"log"

	"github.com/sahomat/sahomat/pkg/common"
)

type Engine interface {
	BestMove(ctx context.Context, h *common.History, depth int) (common.Move, error)
}

// SolveTactic searches every test to the given depth and counts the tests
// where the engine finds one of the best moves.
func SolveTactic(ctx context.Context, tests []EpdItem, eng Engine, depth int) (solved int, err error) {
	for i := range tests {
		var test = &tests[i]
		var move, err = eng.BestMove(ctx, common.NewHistory(test.position), depth)
		if err != nil {
			return solved, err
		}
		if test.IsBestMove(move) {
			solved++
		} else {
			log.Printf("Failed test %v: %v", test.content, test.position.MoveToUCI(move))
		}
		log.Printf("Solved %v, Total %v", solved, i+1)
	}
	return solved, nil
}
