package main

import (
	"context"
	"flag"
	"log"

	"github.com/sahomat/sahomat/internal/evalbuilder"
	"github.com/sahomat/sahomat/internal/tactic"
	"github.com/sahomat/sahomat/pkg/engine"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	var (
		filepath = "tests.epd"
		evalName = ""
		depth    = 4
		threads  = 1
	)
	flag.StringVar(&filepath, "epd", filepath, "test suite, one '<fen> bm <moves>;' per line")
	flag.StringVar(&evalName, "eval", evalName, "evaluation function")
	flag.IntVar(&depth, "depth", depth, "search depth")
	flag.IntVar(&threads, "threads", threads, "root search threads")
	flag.Parse()

	log.Println("solveTactic started",
		"filepath", filepath,
		"evalName", evalName,
		"depth", depth)
	defer log.Println("solveTactic finished")

	var tests, err = tactic.LoadEpd(filepath)
	if err != nil {
		return err
	}
	var eng = engine.NewEngine(evalbuilder.Get(evalName))
	eng.Threads = threads
	eng.Prepare()
	solved, err := tactic.SolveTactic(context.Background(), tests, eng, depth)
	if err != nil {
		return err
	}
	log.Printf("Solved %v of %v", solved, len(tests))
	return nil
}
