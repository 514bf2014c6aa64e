package engine

import (
	"context"
	"errors"

	. "github.com/sahomat/sahomat/pkg/common"
	"golang.org/x/sync/errgroup"
)

var errSearchTimeout = errors.New("search timeout")

const checkContextNodes = 4096

// searchRoot hands the root moves to the threads one at a time. Each thread
// seeds its window from the best score published so far; scores read before
// another thread publishes may be stale, which costs pruning but not accuracy.
func searchRoot(ctx context.Context, e *Engine, ml []Move, depth int) error {
	g, ctx := errgroup.WithContext(ctx)

	var tasks = make(chan Move)

	g.Go(func() error {
		defer close(tasks)
		for _, move := range ml {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case tasks <- move:
			}
		}
		return nil
	})

	for i := range e.threads {
		var t = &e.threads[i]
		t.ctx = ctx
		g.Go(func() error {
			return t.searchTasks(tasks, depth)
		})
	}

	return g.Wait()
}

func (t *thread) searchTasks(tasks <-chan Move, depth int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if r == errSearchTimeout {
				err = t.ctx.Err()
				return
			}
			panic(r)
		}
	}()

	var root = &t.stack[0].position
	var child = &t.stack[1].position
	for move := range tasks {
		var alpha = t.engine.bestScore()
		root.MakeMove(move, child)
		var score = -t.alphaBeta(-valueInfinity, -alpha, depth-1, 1)
		t.engine.onRootMoveComplete(t, move, score)
	}
	return nil
}

func (t *thread) alphaBeta(alpha, beta, depth, height int) int {
	t.clearPV(height)
	t.incNodes()

	var position = &t.stack[height].position
	if depth <= 0 || height >= maxHeight {
		return t.evaluator.Evaluate(position)
	}

	var ml = genMoves(position, t.stack[height].moveList[:])
	if len(ml) == 0 {
		if position.IsCheck() {
			return lossIn(height)
		}
		return valueDraw
	}

	var best = -valueInfinity
	var child = &t.stack[height+1].position
	for i := range ml {
		var move = ml[i].Move
		position.MakeMove(move, child)
		var score = -t.alphaBeta(-beta, -Max(alpha, best), depth-1, height+1)
		if score > best {
			best = score
			t.assignPV(height, move)
			if best >= beta {
				break
			}
		}
	}
	return best
}

func (t *thread) incNodes() {
	t.nodes++
	if t.nodes%checkContextNodes == 0 && t.ctx.Err() != nil {
		panic(errSearchTimeout)
	}
}

func (t *thread) clearPV(height int) {
	t.stack[height].pv.clear()
}

func (t *thread) assignPV(height int, m Move) {
	t.stack[height].pv.assign(m, &t.stack[height+1].pv)
}
