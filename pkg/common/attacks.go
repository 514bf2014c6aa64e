package common

// slideEntry holds, for one origin and one occupancy of an axis line, the squares
// a slider attacks and the squares lying behind the first blocker up to and
// including the second one. A king found in the pinned ray means the first
// blocker is pinned against it.
type slideEntry struct {
	attacks uint64
	pinned  uint64
}

type slideTable [64][256]slideEntry

type axis int

const (
	axisRank axis = iota
	axisFile
	axisDiagonal
	axisAntiDiagonal
)

var (
	rookAxes   = [...]axis{axisRank, axisFile}
	bishopAxes = [...]axis{axisDiagonal, axisAntiDiagonal}
)

var (
	rankSlides, fileSlides, diagonalSlides, antiDiagonalSlides slideTable

	whitePawnAttacks, blackPawnAttacks [64]uint64
	KnightAttacks                      [64]uint64
	KingAttacks                        [64]uint64
	betweenMask                        [64][64]uint64
)

var (
	knightDeltas = []int{6, 10, 15, 17, -6, -10, -15, -17}
	kingDeltas   = []int{1, 7, 8, 9, -1, -7, -8, -9}
)

// Occupancy projections: bit j of the result is the j-th square of the line,
// counted by file for ranks and diagonals and by rank for files.

func rankIndex(sq int, occ uint64) int {
	return int((occ >> uint(8*Rank(sq))) & 0xFF)
}

func fileIndex(sq int, occ uint64) int {
	return int((((occ >> uint(File(sq))) & FileAMask) * 0x0102040810204080) >> 56)
}

func diagonalIndex(sq int, occ uint64) int {
	return int(((occ & DiagonalMask[Diagonal(sq)]) * FileAMask) >> 56)
}

func antiDiagonalIndex(sq int, occ uint64) int {
	return int(((occ & AntiDiagonalMask[AntiDiagonal(sq)]) * FileAMask) >> 56)
}

func slide(ax axis, sq int, occ uint64) slideEntry {
	switch ax {
	case axisRank:
		return rankSlides[sq][rankIndex(sq, occ)]
	case axisFile:
		return fileSlides[sq][fileIndex(sq, occ)]
	case axisDiagonal:
		return diagonalSlides[sq][diagonalIndex(sq, occ)]
	default:
		return antiDiagonalSlides[sq][antiDiagonalIndex(sq, occ)]
	}
}

func lineMask(ax axis, sq int) uint64 {
	switch ax {
	case axisRank:
		return RankMask[Rank(sq)]
	case axisFile:
		return FileMask[File(sq)]
	case axisDiagonal:
		return DiagonalMask[Diagonal(sq)]
	default:
		return AntiDiagonalMask[AntiDiagonal(sq)]
	}
}

func PawnAttacks(from int, side bool) uint64 {
	if side {
		return whitePawnAttacks[from]
	}
	return blackPawnAttacks[from]
}

func RookAttacks(from int, occ uint64) uint64 {
	return rankSlides[from][rankIndex(from, occ)].attacks |
		fileSlides[from][fileIndex(from, occ)].attacks
}

func BishopAttacks(from int, occ uint64) uint64 {
	return diagonalSlides[from][diagonalIndex(from, occ)].attacks |
		antiDiagonalSlides[from][antiDiagonalIndex(from, occ)].attacks
}

func QueenAttacks(from int, occ uint64) uint64 {
	return BishopAttacks(from, occ) | RookAttacks(from, occ)
}

func stepAttacks(sq int, deltas []int, maxFileDelta int) uint64 {
	var result uint64
	for _, delta := range deltas {
		var to = sq + delta
		if to < 0 || to > 63 || FileDistance(sq, to) > maxFileDelta {
			continue
		}
		result |= SquareMask[to]
	}
	return result
}

func initSlides(table *slideTable, lineIndex func(sq int) int, dirs ...Direction) {
	for sq := 0; sq < 64; sq++ {
		for occ := 0; occ < 256; occ++ {
			var entry slideEntry
			for _, dir := range dirs {
				var blockers = 0
				WalkRay(sq, dir, func(to int) bool {
					if blockers == 0 {
						entry.attacks |= SquareMask[to]
					} else {
						entry.pinned |= SquareMask[to]
					}
					if occ&(1<<uint(lineIndex(to))) != 0 {
						blockers++
					}
					return blockers < 2
				})
			}
			table[sq][occ] = entry
		}
	}
}

func init() {
	initSlides(&rankSlides, File, West, East)
	initSlides(&fileSlides, Rank, North, South)
	initSlides(&diagonalSlides, File, NorthEast, SouthWest)
	initSlides(&antiDiagonalSlides, File, NorthWest, SouthEast)

	for sq := 0; sq < 64; sq++ {
		KnightAttacks[sq] = stepAttacks(sq, knightDeltas, 2)
		KingAttacks[sq] = stepAttacks(sq, kingDeltas, 1)
		whitePawnAttacks[sq] = stepAttacks(sq, []int{7, 9}, 1)
		blackPawnAttacks[sq] = stepAttacks(sq, []int{-7, -9}, 1)
	}

	for s1 := 0; s1 < 64; s1++ {
		for s2 := 0; s2 < 64; s2++ {
			if s1 == s2 || (QueenAttacks(s1, 0)&SquareMask[s2]) == 0 {
				continue
			}
			var delta = (s2 - s1) / SquareDistance(s1, s2)
			for s := s1 + delta; s != s2; s += delta {
				betweenMask[s1][s2] |= SquareMask[s]
			}
		}
	}
}
