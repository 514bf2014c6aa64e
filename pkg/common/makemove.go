package common

// castleMask[sq] keeps the rights that survive a move touching sq.
var castleMask = initCastleMask()

func initCastleMask() (result [64]int) {
	for sq := range result {
		result[sq] = WhiteKingSide | WhiteQueenSide | BlackKingSide | BlackQueenSide
	}
	result[SquareA1] &^= WhiteQueenSide
	result[SquareE1] &^= WhiteQueenSide | WhiteKingSide
	result[SquareH1] &^= WhiteKingSide
	result[SquareA8] &^= BlackQueenSide
	result[SquareE8] &^= BlackQueenSide | BlackKingSide
	result[SquareH8] &^= BlackKingSide
	return
}

func movePiece(pieces *[King + 1]uint64, piece, from, to int) {
	pieces[piece] ^= SquareMask[from] | SquareMask[to]
}

// capture clears sq from every mask of the given side and reports whether anything was there.
func capture(pieces *[King + 1]uint64, sq int) bool {
	var bb = SquareMask[sq]
	var captured = false
	for piece := Pawn; piece <= King; piece++ {
		if pieces[piece]&bb != 0 {
			pieces[piece] &^= bb
			captured = true
		}
	}
	return captured
}

// MakeMove writes the position after move into result. The move must come
// from the move generator of src; illegal moves leave result undefined.
func (src *Position) MakeMove(move Move, result *Position) {
	*result = *src
	result.EpSquare = SquareNone

	var us = sideIndex(src.WhiteMove)
	var them = us ^ 1
	var own = &result.Pieces[us]
	var opp = &result.Pieces[them]
	var resetRule50 = false

	switch move.Kind() {
	case MoveNormal:
		var from, to, piece = move.From(), move.To(), move.Piece()
		resetRule50 = capture(opp, to) || piece == Pawn
		movePiece(own, piece, from, to)
		if piece == Pawn && AbsDelta(from, to) == 16 {
			result.EpSquare = (from + to) / 2
		}
		result.CastleRights &= castleMask[from] & castleMask[to]
	case MoveEnPassant:
		var from, to = move.From(), move.To()
		movePiece(own, Pawn, from, to)
		opp[Pawn] &^= SquareMask[to+let(src.WhiteMove, -8, 8)]
		resetRule50 = true
	case MovePromotion:
		var from, to = move.From(), move.To()
		capture(opp, to)
		own[Pawn] &^= SquareMask[from]
		own[move.Piece()] |= SquareMask[to]
		result.CastleRights &= castleMask[to]
		resetRule50 = true
	case MoveKingSideCastle, MoveQueenSideCastle:
		var rule = castleRuleFor(us, move.Kind())
		movePiece(own, King, rule.kingFrom, rule.kingTo)
		movePiece(own, Rook, rule.rookFrom, rule.rookTo)
		result.CastleRights &= castleMask[rule.kingFrom]
	default:
		panic(UnknownMoveKind(move))
	}

	for i := range castleRules[them] {
		var rule = &castleRules[them][i]
		if opp[Rook]&SquareMask[rule.rookFrom] == 0 {
			result.CastleRights &^= rule.right
		}
	}

	if resetRule50 {
		result.Rule50 = 0
	} else {
		result.Rule50 = src.Rule50 + 1
	}
	if !src.WhiteMove {
		result.MoveNumber = src.MoveNumber + 1
	}
	result.WhiteMove = !src.WhiteMove
}
