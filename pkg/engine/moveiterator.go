package engine

import . "github.com/sahomat/sahomat/pkg/common"

type OrderedMove struct {
	Move Move
	Key  int32
}

var sortPieceValues = [...]int{Empty: 0, Pawn: 1, Knight: 2, Bishop: 3, Rook: 4, Queen: 5, King: 6}

// moveKey puts captures and promotions first, most valuable victim by least valuable attacker.
func moveKey(p *Position, move Move) int {
	switch move.Kind() {
	case MoveNormal:
		var captured = p.WhatPiece(move.To())
		if captured == Empty {
			return 0
		}
		return 8*sortPieceValues[captured] - sortPieceValues[move.Piece()]
	case MoveEnPassant:
		return 8*sortPieceValues[Pawn] - sortPieceValues[Pawn]
	case MovePromotion:
		return 8*(sortPieceValues[p.WhatPiece(move.To())]+sortPieceValues[move.Piece()]) -
			sortPieceValues[Pawn]
	case MoveKingSideCastle, MoveQueenSideCastle:
		return 0
	}
	panic(UnknownMoveKind(move))
}

// genMoves fills buffer with the legal moves of p, best candidates first.
func genMoves(p *Position, buffer []OrderedMove) []OrderedMove {
	var moves [MaxMoves]Move
	var ml = p.GenerateMoves(moves[:])
	for i, m := range ml {
		buffer[i] = OrderedMove{Move: m, Key: int32(moveKey(p, m))}
	}
	var result = buffer[:len(ml)]
	sortMoves(result)
	return result
}

func sortMoves(moves []OrderedMove) {
	for i := 1; i < len(moves); i++ {
		j, t := i, moves[i]
		for ; j > 0 && moves[j-1].Key < t.Key; j-- {
			moves[j] = moves[j-1]
		}
		moves[j] = t
	}
}
