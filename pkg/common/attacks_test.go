package common

import (
	"math/rand"
	"testing"
)

func rayAttacks(sq int, occ uint64, dirs ...Direction) uint64 {
	var result uint64
	for _, dir := range dirs {
		WalkRay(sq, dir, func(to int) bool {
			result |= SquareMask[to]
			return occ&SquareMask[to] == 0
		})
	}
	return result
}

func TestSliderAttacks(t *testing.T) {
	var r = rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		var occ = r.Uint64() & r.Uint64()
		var sq = r.Intn(64)
		var rook = rayAttacks(sq, occ, North, South, West, East)
		var bishop = rayAttacks(sq, occ, NorthWest, NorthEast, SouthWest, SouthEast)
		if got := RookAttacks(sq, occ); got != rook {
			t.Fatal(i, SquareName(sq), occ, got, rook)
		}
		if got := BishopAttacks(sq, occ); got != bishop {
			t.Fatal(i, SquareName(sq), occ, got, bishop)
		}
	}
}

func TestPinnedRay(t *testing.T) {
	// rook a1, blockers c1 and f1: the pinned ray runs d1..f1
	var occ = SquareMask[SquareC1] | SquareMask[SquareF1]
	var entry = slide(axisRank, SquareA1, occ)
	if entry.attacks != SquareMask[SquareB1]|SquareMask[SquareC1] {
		t.Error(BitboardString(entry.attacks))
	}
	var want = SquareMask[SquareD1] | SquareMask[SquareE1] | SquareMask[SquareF1]
	if entry.pinned != want {
		t.Error(BitboardString(entry.pinned))
	}
}

func TestStepAttacks(t *testing.T) {
	var tests = []struct {
		attacks uint64
		count   int
	}{
		{KnightAttacks[SquareA1], 2},
		{KnightAttacks[SquareH8], 2},
		{KnightAttacks[SquareD4], 8},
		{KnightAttacks[SquareB7], 4},
		{KingAttacks[SquareA1], 3},
		{KingAttacks[SquareE4], 8},
		{KingAttacks[SquareH5], 5},
		{PawnAttacks(SquareA2, true), 1},
		{PawnAttacks(SquareH7, false), 1},
		{PawnAttacks(SquareD5, false), 2},
	}
	for i, test := range tests {
		if PopCount(test.attacks) != test.count {
			t.Error(i, BitboardString(test.attacks))
		}
	}
}

func TestBetweenMask(t *testing.T) {
	var tests = []struct {
		s1, s2 int
		count  int
	}{
		{SquareA1, SquareH8, 6},
		{SquareA1, SquareA8, 6},
		{SquareE1, SquareH1, 2},
		{SquareC3, SquareD4, 0},
		{SquareA1, SquareB3, 0},
		{SquareH1, SquareA8, 6},
	}
	for i, test := range tests {
		if got := PopCount(betweenMask[test.s1][test.s2]); got != test.count {
			t.Error(i, test, got)
		}
		if betweenMask[test.s1][test.s2] != betweenMask[test.s2][test.s1] {
			t.Error(i, test)
		}
	}
}
