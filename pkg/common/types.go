package common

import "time"

const (
	WhiteKingSide = 1 << iota
	WhiteQueenSide
	BlackKingSide
	BlackQueenSide
)

const (
	SideWhite = iota
	SideBlack
)

const (
	Empty int = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

const MaxMoves = 256

const InitialPositionFen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position is a value type; positions are never modified once built.
// Pieces[side][Empty] is unused.
type Position struct {
	Pieces       [2][King + 1]uint64
	WhiteMove    bool
	CastleRights int
	EpSquare     int
	Rule50       int
	MoveNumber   int
}

type SearchParams struct {
	History  *History
	Depth    int
	Progress func(si SearchInfo)
}

type UciScore struct {
	Centipawns int
	Mate       int
}

type SearchInfo struct {
	Score    UciScore
	Depth    int
	Nodes    int64
	Time     time.Duration
	MainLine []Move
}
