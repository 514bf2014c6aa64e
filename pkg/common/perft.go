package common

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Perft counts the leaf nodes of the legal move tree of the given depth.
func Perft(p *Position, depth int) int {
	if depth <= 0 {
		return 1
	}
	var result = 0
	var buffer [MaxMoves]Move
	var child Position
	for _, move := range p.GenerateMoves(buffer[:]) {
		if depth > 1 {
			p.MakeMove(move, &child)
			result += Perft(&child, depth-1)
		} else {
			result++
		}
	}
	return result
}

type PerftEntry struct {
	Move  Move
	UCI   string
	Nodes int
}

// PerftDivide runs Perft below every root move on a pool of threads workers.
// Entries keep the generator's order.
func PerftDivide(ctx context.Context, p *Position, depth, threads int) ([]PerftEntry, error) {
	var moves = p.LegalMoves()
	var result = make([]PerftEntry, len(moves))
	if depth <= 0 {
		return result[:0], nil
	}

	g, ctx := errgroup.WithContext(ctx)

	var tasks = make(chan int)

	g.Go(func() error {
		defer close(tasks)
		for i := range moves {
			if err := ctx.Err(); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case tasks <- i:
			}
		}
		return nil
	})

	for i := 0; i < Max(1, threads); i++ {
		g.Go(func() error {
			var child Position
			for i := range tasks {
				p.MakeMove(moves[i], &child)
				result[i] = PerftEntry{
					Move:  moves[i],
					UCI:   p.MoveToUCI(moves[i]),
					Nodes: Perft(&child, depth-1),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
