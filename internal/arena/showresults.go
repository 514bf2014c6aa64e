package arena

import (
	"context"
	"log"
	"math"

	"github.com/sahomat/sahomat/pkg/common"
)

type Stats struct {
	Wins, Losses, Draws int
}

func (s Stats) Games() int {
	return s.Wins + s.Losses + s.Draws
}

func showResults(
	ctx context.Context,
	gameResults <-chan gameResult,
	stats *Stats,
) error {
	for gameResult := range gameResults {
		log.Printf("Finished game %v: %v {%v} %v\n",
			gameResult.gameInfo.gameNumber,
			gameResult.result,
			gameResult.comment,
			gameResult.history.String())
		if gameResult.result == common.ResultDraw {
			stats.Draws++
		} else if gameResult.result == common.ResultWhiteWins && gameResult.gameInfo.engineAIsWhite ||
			gameResult.result == common.ResultBlackWins && !gameResult.gameInfo.engineAIsWhite {
			stats.Wins++
		} else {
			stats.Losses++
		}
		var stat = computeStat(stats.Wins, stats.Losses, stats.Draws)
		log.Printf("Score: %v - %v - %v  [%.3f] %v\n",
			stats.Wins, stats.Losses, stats.Draws, stat.winningFraction, stats.Games())
		log.Printf("Elo difference: %.1f, LOS: %.1f %%\n",
			stat.eloDifference, stat.los*100)
	}
	return nil
}

type GameStatistics struct {
	winningFraction float64
	eloDifference   float64
	los             float64
}

//https://www.chessprogramming.org/Match_Statistics
func computeStat(wins, losses, draws int) GameStatistics {
	var games = wins + losses + draws
	var winningFraction = (float64(wins) + 0.5*float64(draws)) / float64(games)
	var eloDifference = -math.Log(1/winningFraction-1) * 400 / math.Ln10
	var los = 0.5 + 0.5*math.Erf(float64(wins-losses)/math.Sqrt(2*float64(wins+losses)))
	return GameStatistics{
		winningFraction: winningFraction,
		eloDifference:   eloDifference,
		los:             los,
	}
}
