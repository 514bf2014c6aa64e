package arena

import (
	"context"
	"fmt"
	"log"

	"github.com/sahomat/sahomat/pkg/common"
)

// games longer than this are adjudicated as draws
const maxPlies = 400

func playGame(
	ctx context.Context,
	engineA, engineB IEngine,
	depth int,
	info gameInfo,
) (gameResult, error) {

	log.Printf("Started game %v\n", info.gameNumber)

	var startingPos, err = common.NewPositionFromFEN(info.opening)
	if err != nil {
		return gameResult{}, err
	}

	var h = common.NewHistory(startingPos)
	for ply := 0; ; ply++ {
		if result := h.Result(); result != common.ResultNone {
			return gameResult{gameInfo: info, history: h, result: result, comment: resultComment(h, result)}, nil
		}
		if isLowMaterial(&h.Position) {
			return gameResult{gameInfo: info, history: h, result: common.ResultDraw, comment: "low material"}, nil
		}
		if ply >= maxPlies {
			return gameResult{gameInfo: info, history: h, result: common.ResultDraw, comment: "move limit"}, nil
		}
		var eng IEngine
		if h.WhiteMove == info.engineAIsWhite {
			eng = engineA
		} else {
			eng = engineB
		}
		var bestMove, err = eng.BestMove(ctx, h, depth)
		if err != nil {
			return gameResult{}, err
		}
		if !h.IsLegalMove(bestMove) {
			return gameResult{}, fmt.Errorf("bad move %v in %v", bestMove, h.String())
		}
		h = h.MakeMove(bestMove)
	}
}

func resultComment(h *common.History, result common.Result) string {
	switch {
	case result != common.ResultDraw:
		return "checkmate"
	case len(h.LegalMoves()) == 0:
		return "stalemate"
	case h.Rule50 >= 100:
		return "50 moves"
	case h.RepetitionCount() >= 2:
		return "3 fold repetition"
	}
	return "draw"
}

func isLowMaterial(p *common.Position) bool {
	for side := common.SideWhite; side <= common.SideBlack; side++ {
		var pieces = &p.Pieces[side]
		if pieces[common.Pawn]|pieces[common.Rook]|pieces[common.Queen] != 0 {
			return false
		}
	}
	var minors = p.Pieces[common.SideWhite][common.Knight] | p.Pieces[common.SideWhite][common.Bishop] |
		p.Pieces[common.SideBlack][common.Knight] | p.Pieces[common.SideBlack][common.Bishop]
	return !common.MoreThanOne(minors)
}
