package engine

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	. "github.com/sahomat/sahomat/pkg/common"
)

var (
	ErrInvalidDepth = errors.New("engine: invalid depth")
	ErrNoLegalMoves = errors.New("engine: no legal moves")
)

type Engine struct {
	Options
	Logger      *log.Logger
	evalBuilder func() interface{}
	threads     []thread
	progress    func(SearchInfo)
	mainLine    mainLine
	start       time.Time
	nodes       int64
	mu          sync.Mutex
}

type thread struct {
	engine    *Engine
	evaluator IEvaluator
	ctx       context.Context
	nodes     int64
	stack     [stackSize]struct {
		position Position
		moveList [MaxMoves]OrderedMove
		pv       pv
	}
}

type pv struct {
	items [stackSize]Move
	size  int
}

type mainLine struct {
	moves []Move
	score int
	depth int
}

type IEvaluator interface {
	Evaluate(p *Position) int
}

func NewEngine(evalBuilder func() interface{}) *Engine {
	return &Engine{
		Options:     NewOptions(),
		evalBuilder: evalBuilder,
	}
}

func (e *Engine) Prepare() {
	var threads = Max(1, e.Threads)
	if len(e.threads) != threads {
		e.threads = make([]thread, threads)
		for i := range e.threads {
			var t = &e.threads[i]
			t.engine = e
			t.evaluator = e.buildEvaluator()
		}
	}
}

// Search runs a fixed depth search of the last position of the history.
// Zero depth means Options.Depth. A cancelled search returns the best line
// found so far together with the context error.
func (e *Engine) Search(ctx context.Context, searchParams SearchParams) (SearchInfo, error) {
	var depth = searchParams.Depth
	if depth == 0 {
		depth = e.Depth
	}
	if depth < 1 || depth > maxHeight {
		return SearchInfo{}, ErrInvalidDepth
	}
	e.start = time.Now()
	e.Prepare()

	var p = &searchParams.History.Position
	var ml = genMoves(p, e.threads[0].stack[0].moveList[:])
	if len(ml) == 0 {
		return SearchInfo{}, ErrNoLegalMoves
	}
	var moves = make([]Move, len(ml))
	for i := range ml {
		moves[i] = ml[i].Move
	}

	e.mainLine = mainLine{
		depth: depth,
		score: -valueInfinity,
		moves: []Move{moves[0]},
	}
	e.nodes = 0
	e.progress = searchParams.Progress
	for i := range e.threads {
		var t = &e.threads[i]
		t.nodes = 0
		t.stack[0].position = *p
	}

	var err = searchRoot(ctx, e, moves, depth)
	for i := range e.threads {
		var t = &e.threads[i]
		e.nodes += t.nodes
		t.nodes = 0
	}
	var result = e.currentSearchResult()
	if e.Logger != nil {
		e.Logger.Printf("search depth %v score %+v nodes %v time %v err %v",
			result.Depth, result.Score, result.Nodes, result.Time, err)
	}
	return result, err
}

// BestMove is the fixed depth search entry point.
func (e *Engine) BestMove(ctx context.Context, h *History, depth int) (Move, error) {
	if depth < 1 {
		return MoveEmpty, ErrInvalidDepth
	}
	var si, err = e.Search(ctx, SearchParams{History: h, Depth: depth})
	if len(si.MainLine) == 0 {
		return MoveEmpty, err
	}
	return si.MainLine[0], err
}

func (e *Engine) currentSearchResult() SearchInfo {
	var score = e.mainLine.score
	if score == -valueInfinity {
		// cancelled before any root move completed
		score = valueDraw
	}
	return SearchInfo{
		Depth:    e.mainLine.depth,
		MainLine: e.mainLine.moves,
		Score:    newUciScore(score),
		Nodes:    e.nodes,
		Time:     time.Since(e.start),
	}
}

func (e *Engine) bestScore() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.mainLine.score
}

func (e *Engine) onRootMoveComplete(t *thread, move Move, score int) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.nodes += t.nodes
	t.nodes = 0
	if score > e.mainLine.score {
		e.mainLine.score = score
		e.mainLine.moves = append([]Move{move}, t.stack[1].pv.toSlice()...)
		if e.progress != nil && e.nodes >= int64(e.ProgressMinNodes) {
			e.progress(e.currentSearchResult())
		}
	}
}

func (pv *pv) clear() {
	pv.size = 0
}

func (pv *pv) assign(m Move, child *pv) {
	pv.size = 1
	pv.items[0] = m
	if child.size > 0 {
		pv.size += child.size
		copy(pv.items[1:], child.items[:child.size])
	}
}

func (pv *pv) toSlice() []Move {
	var result = make([]Move, pv.size)
	copy(result, pv.items[:pv.size])
	return result
}

func (e *Engine) buildEvaluator() IEvaluator {
	if e, ok := e.evalBuilder().(IEvaluator); ok {
		return e
	}
	panic(errors.New("bad eval builder"))
}
