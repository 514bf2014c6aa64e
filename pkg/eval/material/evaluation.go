package eval

import (
	"github.com/sahomat/sahomat/pkg/common"
)

var pieceValues = [common.King + 1]int{0, 100, 300, 300, 500, 900, 0}

type EvaluationService struct{}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

// Evaluate counts material from the side to move's point of view.
func (e *EvaluationService) Evaluate(p *common.Position) int {
	var eval = 0
	for piece := common.Pawn; piece < common.King; piece++ {
		eval += pieceValues[piece] *
			(common.PopCount(p.Pieces[common.SideWhite][piece]) - common.PopCount(p.Pieces[common.SideBlack][piece]))
	}
	if !p.WhiteMove {
		eval = -eval
	}
	return eval
}
