package main

import (
	"context"
	"flag"
	"log"

	"github.com/sahomat/sahomat/internal/arena"
	"github.com/sahomat/sahomat/internal/evalbuilder"
	"github.com/sahomat/sahomat/pkg/engine"
)

type Config struct {
	Concurrency int
	Depth       int
	EvalA       string
	EvalB       string
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Println(err)
	}
}

func run() error {
	flag.IntVar(&config.Concurrency, "concurrency", 4, "Number of games played at once")
	flag.IntVar(&config.Depth, "depth", 3, "Search depth per move")
	flag.StringVar(&config.EvalA, "evala", "positional", "Evaluation of engine A")
	flag.StringVar(&config.EvalB, "evalb", "material", "Evaluation of engine B")
	flag.Parse()

	log.Printf("%+v", config)

	var stats, err = arena.Run(context.Background(), config.Concurrency, config.Depth,
		arena.DefaultOpenings(), newEngine(config.EvalA), newEngine(config.EvalB))
	if err != nil {
		return err
	}
	log.Printf("%+v", stats)
	return nil
}

func newEngine(eval string) func() arena.IEngine {
	return func() arena.IEngine {
		var eng = engine.NewEngine(evalbuilder.Get(eval))
		eng.Threads = 1
		eng.Prepare()
		return eng
	}
}
