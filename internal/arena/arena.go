package arena

import (
	"context"
	"log"
	"runtime"
	"sync"

	"github.com/sahomat/sahomat/pkg/common"
	"golang.org/x/sync/errgroup"
)

type IEngine interface {
	BestMove(ctx context.Context, h *common.History, depth int) (common.Move, error)
}

type gameInfo struct {
	opening        string
	engineAIsWhite bool
	gameNumber     int
}

type gameResult struct {
	gameInfo gameInfo
	history  *common.History
	comment  string
	result   common.Result
}

// Run plays every opening twice, once per color, between fresh engines built
// by newEngineA and newEngineB. Scores are from engine A's point of view.
func Run(
	ctx context.Context,
	gameConcurrency int,
	depth int,
	openings []string,
	newEngineA, newEngineB func() IEngine,
) (Stats, error) {
	log.Println("arena started")
	defer log.Println("arena finished")

	log.Println("NumCPU", runtime.NumCPU(),
		"GOMAXPROCS", runtime.GOMAXPROCS(0),
		"gameConcurrency", gameConcurrency,
		"depth", depth)

	g, ctx := errgroup.WithContext(ctx)

	var gameInfos = make(chan gameInfo)
	var gameResults = make(chan gameResult)
	var stats Stats

	g.Go(func() error {
		defer close(gameInfos)
		return loadOpenings(ctx, openings, gameInfos)
	})

	g.Go(func() error {
		return showResults(ctx, gameResults, &stats)
	})

	var wg = &sync.WaitGroup{}

	for i := 0; i < common.Max(1, gameConcurrency); i++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return playGames(ctx, depth, newEngineA(), newEngineB(), gameInfos, gameResults)
		})
	}

	g.Go(func() error {
		wg.Wait()
		close(gameResults)
		return nil
	})

	var err = g.Wait()
	return stats, err
}

func playGames(
	ctx context.Context,
	depth int,
	engineA, engineB IEngine,
	gameInfos <-chan gameInfo,
	gameResults chan<- gameResult,
) error {
	for gameInfo := range gameInfos {
		var res, err = playGame(ctx, engineA, engineB, depth, gameInfo)
		if err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameResults <- res:
		}
	}
	return nil
}
