package common

const (
	FileA = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

const (
	Rank1 = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

const SquareNone = -1

const (
	SquareA1 = iota
	SquareB1
	SquareC1
	SquareD1
	SquareE1
	SquareF1
	SquareG1
	SquareH1
	SquareA2
	SquareB2
	SquareC2
	SquareD2
	SquareE2
	SquareF2
	SquareG2
	SquareH2
	SquareA3
	SquareB3
	SquareC3
	SquareD3
	SquareE3
	SquareF3
	SquareG3
	SquareH3
	SquareA4
	SquareB4
	SquareC4
	SquareD4
	SquareE4
	SquareF4
	SquareG4
	SquareH4
	SquareA5
	SquareB5
	SquareC5
	SquareD5
	SquareE5
	SquareF5
	SquareG5
	SquareH5
	SquareA6
	SquareB6
	SquareC6
	SquareD6
	SquareE6
	SquareF6
	SquareG6
	SquareH6
	SquareA7
	SquareB7
	SquareC7
	SquareD7
	SquareE7
	SquareF7
	SquareG7
	SquareH7
	SquareA8
	SquareB8
	SquareC8
	SquareD8
	SquareE8
	SquareF8
	SquareG8
	SquareH8
)

// Direction is a step between neighbouring squares as a signed index offset.
type Direction int

const (
	North     Direction = 8
	NorthEast Direction = 9
	East      Direction = 1
	SouthEast Direction = -7
	South     Direction = -8
	SouthWest Direction = -9
	West      Direction = -1
	NorthWest Direction = 7
)

func FlipSquare(sq int) int {
	return sq ^ 56
}

func File(sq int) int {
	return sq & 7
}

func Rank(sq int) int {
	return sq >> 3
}

// Diagonal returns the index (0..14) of the a1-h8 oriented diagonal through sq.
func Diagonal(sq int) int {
	return File(sq) - Rank(sq) + 7
}

// AntiDiagonal returns the index (0..14) of the a8-h1 oriented diagonal through sq.
func AntiDiagonal(sq int) int {
	return File(sq) + Rank(sq)
}

func IsDarkSquare(sq int) bool {
	return (File(sq) & 1) == (Rank(sq) & 1)
}

func FileDistance(sq1, sq2 int) int {
	return AbsDelta(File(sq1), File(sq2))
}

func RankDistance(sq1, sq2 int) int {
	return AbsDelta(Rank(sq1), Rank(sq2))
}

func SquareDistance(sq1, sq2 int) int {
	return Max(FileDistance(sq1, sq2), RankDistance(sq1, sq2))
}

func MakeSquare(file, rank int) int {
	return (rank << 3) | file
}

// Offset steps from sq in direction dir.
// A step that leaves the board, including one that would wrap to the
// opposite edge, reports false.
func Offset(sq int, dir Direction) (int, bool) {
	var to = sq + int(dir)
	if to < 0 || to > 63 {
		return SquareNone, false
	}
	if FileDistance(sq, to) > 1 {
		return SquareNone, false
	}
	return to, true
}

// WalkRay visits the squares from sq (exclusive) towards the edge of the board.
// The walk stops early when visit returns false.
func WalkRay(sq int, dir Direction, visit func(sq int) bool) {
	for {
		var next, ok = Offset(sq, dir)
		if !ok || !visit(next) {
			return
		}
		sq = next
	}
}

const (
	fileNames = "abcdefgh"
	rankNames = "12345678"
)

func SquareName(sq int) string {
	if sq == SquareNone {
		return "-"
	}
	var file = fileNames[File(sq)]
	var rank = rankNames[Rank(sq)]
	return string(file) + string(rank)
}

func ParseSquare(s string) (int, error) {
	if s == "-" {
		return SquareNone, nil
	}
	if len(s) != 2 {
		return SquareNone, &ParseError{Section: SectionSquare, Text: s}
	}
	var file = int(s[0]) - 'a'
	var rank = int(s[1]) - '1'
	if file < FileA || file > FileH || rank < Rank1 || rank > Rank8 {
		return SquareNone, &ParseError{Section: SectionSquare, Text: s}
	}
	return MakeSquare(file, rank), nil
}
