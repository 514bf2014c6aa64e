package common

import (
	"golang.org/x/exp/slices"
)

const (
	f1g1Mask = (uint64(1) << SquareF1) | (uint64(1) << SquareG1)
	b1d1Mask = (uint64(1) << SquareB1) | (uint64(1) << SquareC1) | (uint64(1) << SquareD1)
	f8g8Mask = (uint64(1) << SquareF8) | (uint64(1) << SquareG8)
	b8d8Mask = (uint64(1) << SquareB8) | (uint64(1) << SquareC8) | (uint64(1) << SquareD8)
	e1g1Mask = (uint64(1) << SquareE1) | f1g1Mask
	c1e1Mask = (uint64(1) << SquareC1) | (uint64(1) << SquareD1) | (uint64(1) << SquareE1)
	e8g8Mask = (uint64(1) << SquareE8) | f8g8Mask
	c8e8Mask = (uint64(1) << SquareC8) | (uint64(1) << SquareD8) | (uint64(1) << SquareE8)
)

// castleRule describes one castle: the squares that must be empty and the
// squares the king starts on, passes through or lands on, none of which may be attacked.
type castleRule struct {
	move             Move
	right            int
	kingFrom, kingTo int
	rookFrom, rookTo int
	empty            uint64
	safe             uint64
}

var castleRules = [2][2]castleRule{
	SideWhite: {
		{KingSideCastle, WhiteKingSide, SquareE1, SquareG1, SquareH1, SquareF1, f1g1Mask, e1g1Mask},
		{QueenSideCastle, WhiteQueenSide, SquareE1, SquareC1, SquareA1, SquareD1, b1d1Mask, c1e1Mask},
	},
	SideBlack: {
		{KingSideCastle, BlackKingSide, SquareE8, SquareG8, SquareH8, SquareF8, f8g8Mask, e8g8Mask},
		{QueenSideCastle, BlackQueenSide, SquareE8, SquareC8, SquareA8, SquareD8, b8d8Mask, c8e8Mask},
	},
}

func castleRuleFor(side int, kind MoveKind) *castleRule {
	if kind == MoveKingSideCastle {
		return &castleRules[side][0]
	}
	return &castleRules[side][1]
}

func addPromotions(ml []Move, from, to int) (count int) {
	ml[0] = NewPromotion(from, to, Queen)
	ml[1] = NewPromotion(from, to, Rook)
	ml[2] = NewPromotion(from, to, Bishop)
	ml[3] = NewPromotion(from, to, Knight)
	return 4
}

func pieceAttacks(piece, from int, occ uint64) uint64 {
	switch piece {
	case Knight:
		return KnightAttacks[from]
	case Bishop:
		return BishopAttacks(from, occ)
	case Rook:
		return RookAttacks(from, occ)
	case Queen:
		return QueenAttacks(from, occ)
	case King:
		return KingAttacks[from]
	}
	return 0
}

// LegalMoves returns a fresh slice with every legal move of the position.
func (p *Position) LegalMoves() []Move {
	var buffer [MaxMoves]Move
	return slices.Clone(p.GenerateMoves(buffer[:]))
}

func (p *Position) IsLegalMove(m Move) bool {
	var buffer [MaxMoves]Move
	return slices.Contains(p.GenerateMoves(buffer[:]), m)
}

// GenerateMoves writes the legal moves of the position into ml, which must hold
// at least MaxMoves entries. Checks and pins are resolved while generating, so
// no move is produced that would leave the mover's king attacked.
func (p *Position) GenerateMoves(ml []Move) []Move {
	var us = sideIndex(p.WhiteMove)
	var them = us ^ 1
	var kings = p.Pieces[us][King]
	if kings == 0 {
		return ml[:0]
	}

	var count = 0
	var kingSq = FirstOne(kings)
	var own = p.Occupied(us)
	var opp = p.Occupied(them)
	var allPieces = own | opp
	// sliders see through the king so that it cannot retreat along the checking line
	var occ = allPieces &^ kings

	var (
		attacked, protect, pinned uint64
		pinLine                   [64]uint64
		checks                    int
		x                         uint64
		from, to                  int
	)

	var enemy = &p.Pieces[them]

	for x = enemy[Pawn]; x != 0; x &= x - 1 {
		from = FirstOne(x)
		var attacks = PawnAttacks(from, !p.WhiteMove)
		attacked |= attacks
		if attacks&kings != 0 {
			checks++
			protect = SquareMask[from]
		}
	}

	for x = enemy[Knight]; x != 0; x &= x - 1 {
		from = FirstOne(x)
		var attacks = KnightAttacks[from]
		attacked |= attacks
		if attacks&kings != 0 {
			checks++
			protect = SquareMask[from]
		}
	}

	if enemy[King] != 0 {
		attacked |= KingAttacks[FirstOne(enemy[King])]
	}

	var slider = func(from int, axes []axis) {
		for _, ax := range axes {
			var entry = slide(ax, from, occ)
			attacked |= entry.attacks
			if entry.attacks&kings != 0 {
				checks++
				protect = SquareMask[from] | betweenMask[from][kingSq]
			} else if entry.pinned&kings != 0 {
				var blocker = betweenMask[from][kingSq] & allPieces
				if blocker&own != 0 {
					pinned |= blocker
					pinLine[FirstOne(blocker)] = lineMask(ax, kingSq)
				}
			}
		}
	}

	for x = enemy[Bishop] | enemy[Queen]; x != 0; x &= x - 1 {
		slider(FirstOne(x), bishopAxes[:])
	}
	for x = enemy[Rook] | enemy[Queen]; x != 0; x &= x - 1 {
		slider(FirstOne(x), rookAxes[:])
	}

	for x = KingAttacks[kingSq] &^ own &^ attacked; x != 0; x &= x - 1 {
		ml[count] = NewNormalMove(kingSq, FirstOne(x), King)
		count++
	}

	if checks >= 2 {
		return ml[:count]
	}

	var target = ^own
	if checks == 1 {
		target &= protect
	}

	for piece := Knight; piece <= Queen; piece++ {
		for x = p.Pieces[us][piece]; x != 0; x &= x - 1 {
			from = FirstOne(x)
			var toBB = pieceAttacks(piece, from, allPieces) & target
			if pinned&SquareMask[from] != 0 {
				toBB &= pinLine[from]
			}
			for ; toBB != 0; toBB &= toBB - 1 {
				ml[count] = NewNormalMove(from, FirstOne(toBB), piece)
				count++
			}
		}
	}

	var pawns = p.Pieces[us][Pawn]
	var single, double, promotionRank uint64
	var forward int
	if p.WhiteMove {
		single = Up(pawns) &^ allPieces
		double = Up(single&Rank3Mask) &^ allPieces
		promotionRank = Rank8Mask
		forward = 8
	} else {
		single = Down(pawns) &^ allPieces
		double = Down(single&Rank6Mask) &^ allPieces
		promotionRank = Rank1Mask
		forward = -8
	}

	var pinnedAway = func(from, to int) bool {
		return pinned&SquareMask[from] != 0 && pinLine[from]&SquareMask[to] == 0
	}

	for x = single & target; x != 0; x &= x - 1 {
		to = FirstOne(x)
		from = to - forward
		if pinnedAway(from, to) {
			continue
		}
		if SquareMask[to]&promotionRank != 0 {
			count += addPromotions(ml[count:], from, to)
		} else {
			ml[count] = NewNormalMove(from, to, Pawn)
			count++
		}
	}

	for x = double & target; x != 0; x &= x - 1 {
		to = FirstOne(x)
		from = to - 2*forward
		if pinnedAway(from, to) {
			continue
		}
		ml[count] = NewNormalMove(from, to, Pawn)
		count++
	}

	for x = pawns; x != 0; x &= x - 1 {
		from = FirstOne(x)
		var attacks = PawnAttacks(from, p.WhiteMove)
		var toBB = attacks & opp & target
		if pinned&SquareMask[from] != 0 {
			toBB &= pinLine[from]
		}
		for ; toBB != 0; toBB &= toBB - 1 {
			to = FirstOne(toBB)
			if SquareMask[to]&promotionRank != 0 {
				count += addPromotions(ml[count:], from, to)
			} else {
				ml[count] = NewNormalMove(from, to, Pawn)
				count++
			}
		}

		if p.EpSquare != SquareNone && attacks&SquareMask[p.EpSquare] != 0 {
			var capturedSq = p.EpSquare - forward
			if (SquareMask[p.EpSquare]|SquareMask[capturedSq])&target == 0 ||
				pinnedAway(from, p.EpSquare) {
				continue
			}
			// both pawns leave the rank at once, which the pin tables cannot see
			var move = NewEnPassant(from, p.EpSquare)
			var child Position
			p.MakeMove(move, &child)
			if !child.isAttackedBySide(kingSq, !p.WhiteMove) {
				ml[count] = move
				count++
			}
		}
	}

	if checks == 0 {
		for i := range castleRules[us] {
			var rule = &castleRules[us][i]
			if p.CastleRights&rule.right != 0 &&
				kingSq == rule.kingFrom &&
				p.Pieces[us][Rook]&SquareMask[rule.rookFrom] != 0 &&
				allPieces&rule.empty == 0 &&
				attacked&rule.safe == 0 {
				ml[count] = rule.move
				count++
			}
		}
	}

	return ml[:count]
}
