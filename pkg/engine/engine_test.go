package engine

import (
	"context"
	"errors"
	"testing"

	. "github.com/sahomat/sahomat/pkg/common"
	material "github.com/sahomat/sahomat/pkg/eval/material"
)

func newTestEngine(threads int) *Engine {
	var e = NewEngine(func() interface{} { return material.NewEvaluationService() })
	e.Threads = threads
	return e
}

func newTestHistory(t *testing.T, fen string) *History {
	t.Helper()
	var p, err = NewPositionFromFEN(fen)
	if err != nil {
		t.Fatal(err)
	}
	return NewHistory(p)
}

func TestBestMove(t *testing.T) {
	var tests = []struct {
		fen   string
		depth int
		move  string
	}{
		// free queen
		{"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", 1, "d1d5"},
		{"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", 3, "d1d5"},
		// back rank mates
		{"6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1", 2, "a1a8"},
		{"r5k1/8/8/8/8/8/5PPP/6K1 b - - 0 1", 2, "a8a1"},
		// smothered mate
		{"6rk/6pp/8/6N1/8/8/8/6K1 w - - 0 1", 2, "g5f7"},
	}
	for _, threads := range []int{1, 4} {
		var e = newTestEngine(threads)
		for i, test := range tests {
			var h = newTestHistory(t, test.fen)
			var move, err = e.BestMove(context.Background(), h, test.depth)
			if err != nil {
				t.Fatal(i, err)
			}
			if got := h.MoveToUCI(move); got != test.move {
				t.Error(threads, i, test, got)
			}
		}
	}
}

func TestMateScore(t *testing.T) {
	var e = newTestEngine(2)
	var h = newTestHistory(t, "6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1")
	var si, err = e.Search(context.Background(), SearchParams{History: h, Depth: 3})
	if err != nil {
		t.Fatal(err)
	}
	if si.Score.Mate != 1 || len(si.MainLine) != 1 {
		t.Error(si)
	}
}

func TestThreadsAgree(t *testing.T) {
	var fens = []string{
		InitialPositionFen,
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10",
	}
	var single = newTestEngine(1)
	var parallel = newTestEngine(4)
	for _, depth := range []int{1, 2, 3} {
		for i, fen := range fens {
			var h = newTestHistory(t, fen)
			var a, err = single.Search(context.Background(), SearchParams{History: h, Depth: depth})
			if err != nil {
				t.Fatal(err)
			}
			b, err := parallel.Search(context.Background(), SearchParams{History: h, Depth: depth})
			if err != nil {
				t.Fatal(err)
			}
			if a.Score != b.Score {
				t.Error(depth, i, a.Score, b.Score)
			}
			var p = h.Position
			if !p.IsLegalMove(b.MainLine[0]) {
				t.Error(depth, i, b.MainLine)
			}
		}
	}
}

func TestSearchErrors(t *testing.T) {
	var e = newTestEngine(1)
	var h = newTestHistory(t, InitialPositionFen)
	if _, err := e.BestMove(context.Background(), h, 0); !errors.Is(err, ErrInvalidDepth) {
		t.Error(err)
	}
	if _, err := e.BestMove(context.Background(), h, -3); !errors.Is(err, ErrInvalidDepth) {
		t.Error(err)
	}
	for _, fen := range []string{
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1",
	} {
		var h = newTestHistory(t, fen)
		if _, err := e.BestMove(context.Background(), h, 2); !errors.Is(err, ErrNoLegalMoves) {
			t.Error(fen, err)
		}
	}
}

func TestSearchCancelled(t *testing.T) {
	var e = newTestEngine(2)
	var h = newTestHistory(t, InitialPositionFen)
	var ctx, cancel = context.WithCancel(context.Background())
	cancel()
	var move, err = e.BestMove(ctx, h, 5)
	if !errors.Is(err, context.Canceled) {
		t.Error(err)
	}
	if !h.IsLegalMove(move) {
		t.Error(move)
	}
}

func TestDefaultDepthAndProgress(t *testing.T) {
	var e = newTestEngine(1)
	e.Depth = 2
	e.ProgressMinNodes = 0
	var calls = 0
	var h = newTestHistory(t, InitialPositionFen)
	var si, err = e.Search(context.Background(), SearchParams{
		History:  h,
		Progress: func(si SearchInfo) { calls++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	if si.Depth != 2 || si.Nodes == 0 || calls == 0 {
		t.Error(si, calls)
	}
}

func TestMoveKeyUnknownKind(t *testing.T) {
	var m = Move(7 << 15)
	defer func() {
		var r = recover()
		if err, ok := r.(error); !ok || err.Error() != UnknownMoveKind(m).Error() {
			t.Error(r)
		}
	}()
	var p = InitialPosition()
	moveKey(&p, m)
}
