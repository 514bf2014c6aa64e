package arena

import (
	"context"
	"testing"

	"github.com/sahomat/sahomat/pkg/engine"
	material "github.com/sahomat/sahomat/pkg/eval/material"
)

func newMaterialEngine() IEngine {
	return engine.NewEngine(func() interface{} { return material.NewEvaluationService() })
}

func TestDefaultOpenings(t *testing.T) {
	var openings = DefaultOpenings()
	if len(openings) == 0 {
		t.Fatal("no openings")
	}
	var gameInfos = make(chan gameInfo, 2*len(openings))
	if err := loadOpenings(context.Background(), openings, gameInfos); err != nil {
		t.Error(err)
	}
	if len(gameInfos) != 2*len(openings) {
		t.Error(len(gameInfos))
	}
}

func TestRun(t *testing.T) {
	var openings = []string{
		// white mates in one, black has no defence
		"6k1/5ppp/8/8/8/8/5PPP/R5K1 w - - 0 1",
		// bare kings
		"8/8/4k3/8/8/4K3/8/8 w - - 0 1",
	}
	var stats, err = Run(context.Background(), 2, 2, openings, newMaterialEngine, newMaterialEngine)
	if err != nil {
		t.Fatal(err)
	}
	if stats.Games() != 4 || stats.Wins != 1 || stats.Losses != 1 || stats.Draws != 2 {
		t.Error(stats)
	}
}
