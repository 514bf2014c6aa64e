package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"

	"github.com/sahomat/sahomat/pkg/common"
)

type Config struct {
	Fen     string
	Depth   int
	Threads int
	Divide  bool
}

var config Config

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	var err = run()
	if err != nil {
		log.Fatal(err)
	}
}

func run() error {
	flag.StringVar(&config.Fen, "fen", common.InitialPositionFen, "position to count")
	flag.IntVar(&config.Depth, "depth", 5, "perft depth")
	flag.IntVar(&config.Threads, "threads", runtime.NumCPU(), "number of worker threads")
	flag.BoolVar(&config.Divide, "divide", false, "print the count below every root move")
	flag.Parse()

	log.Printf("%+v", config)

	var p, err = common.NewPositionFromFEN(config.Fen)
	if err != nil {
		return err
	}
	var start = time.Now()
	entries, err := common.PerftDivide(context.Background(), &p, config.Depth, config.Threads)
	if err != nil {
		return fmt.Errorf("perft: %w", err)
	}
	var total = 0
	for _, entry := range entries {
		if config.Divide {
			fmt.Printf("%v: %v\n", entry.UCI, entry.Nodes)
		}
		total += entry.Nodes
	}
	if config.Depth <= 0 {
		total = 1
	}
	var elapsed = time.Since(start)
	fmt.Printf("Nodes: %v\n", total)
	log.Printf("Time: %v NPS: %.0f", elapsed, float64(total)/elapsed.Seconds())
	return nil
}
