package eval

import (
	. "github.com/sahomat/sahomat/pkg/common"
)

const (
	pawnValue   = 100
	knightValue = 300
	bishopValue = 300
	rookValue   = 500
	queenValue  = 900

	mobilityBonus = 3
	// below this much material the king stops caring about shelter
	kingShelterMaterial = 1000
)

// square tables are from white's point of view, a1 first
var (
	pawnAdvance = [8]int{0, 0, 1, 2, 3, 4, 5, 0}

	knightSquare = [64]int{
		-50, 0, 0, 0, 0, 0, 0, -50,
		-30, 0, 0, 0, 0, 0, 0, -30,
		-30, 0, 0, 0, 0, 0, 0, -30,
		-30, 0, 0, 0, 0, 0, 0, -30,
		-30, 0, 0, 0, 0, 0, 0, -30,
		-30, 0, 0, 0, 0, 0, 0, -30,
		-30, 0, 0, 0, 0, 0, 0, -30,
		-50, 0, 0, 0, 0, 0, 0, -50,
	}

	kingShelter = [64]int{
		5, 5, 50, 5, 5, 5, 50, 5,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
		5, 5, 50, 5, 5, 5, 50, 5,
	}
)

type EvaluationService struct {
	score [2]int
}

func NewEvaluationService() *EvaluationService {
	return &EvaluationService{}
}

func (e *EvaluationService) Evaluate(p *Position) int {
	e.score[SideWhite] = e.evaluateSide(p, true)
	e.score[SideBlack] = e.evaluateSide(p, false)
	var result = e.score[SideWhite] - e.score[SideBlack]
	if !p.WhiteMove {
		result = -result
	}
	return result
}

func (e *EvaluationService) evaluateSide(p *Position, white bool) int {
	var pieces = &p.Pieces[SideWhite]
	if !white {
		pieces = &p.Pieces[SideBlack]
	}
	var score = 0

	for x := pieces[Pawn]; x != 0; x &= x - 1 {
		score += pawnValue + pawnAdvance[Rank(relativeSquare(FirstOne(x), white))]
	}
	for x := pieces[Knight]; x != 0; x &= x - 1 {
		score += knightValue + knightSquare[FirstOne(x)]
	}
	score += bishopValue*PopCount(pieces[Bishop]) +
		rookValue*PopCount(pieces[Rook]) +
		queenValue*PopCount(pieces[Queen])

	if score > kingShelterMaterial && pieces[King] != 0 {
		score += kingShelter[FirstOne(pieces[King])]
	}

	score += mobilityBonus * PopCount(p.AttackedSquares(white))
	return score
}

func relativeSquare(sq int, white bool) int {
	if white {
		return sq
	}
	return FlipSquare(sq)
}
