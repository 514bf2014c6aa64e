package main

import (
	"flag"
	"log"
	"os"
	"runtime"

	"github.com/sahomat/sahomat/internal/evalbuilder"
	"github.com/sahomat/sahomat/pkg/engine"
	"github.com/sahomat/sahomat/pkg/uci"
)

const (
	name   = "Sahomat"
	author = "Sahomat authors"
)

var (
	versionName = "dev"
	buildDate   = "(null)"
	gitRevision = "(null)"
	flgEval     string
	flgThreads  int
	flgDepth    int
	flgVerbose  bool
)

func main() {
	flag.StringVar(&flgEval, "eval", "", "specifies evaluation function (positional, material)")
	flag.IntVar(&flgThreads, "threads", 1, "number of root search threads")
	flag.IntVar(&flgDepth, "depth", 4, "default search depth")
	flag.BoolVar(&flgVerbose, "verbose", false, "log search summaries")
	flag.Parse()

	var logger = log.New(os.Stderr, "", log.LstdFlags|log.Lshortfile)

	logger.Println(name,
		"VersionName", versionName,
		"BuildDate", buildDate,
		"GitRevision", gitRevision,
		"RuntimeVersion", runtime.Version(),
		"GOARCH", runtime.GOARCH,
		"GOOS", runtime.GOOS,
		"NumCPU", runtime.NumCPU(),
	)

	var eng = engine.NewEngine(evalbuilder.Get(flgEval))
	eng.Threads = flgThreads
	eng.Depth = flgDepth
	if flgVerbose {
		eng.Logger = logger
	}

	var protocol = uci.New(name, author, versionName, eng,
		[]uci.Option{
			&uci.IntOption{Name: "Threads", Min: 1, Max: runtime.NumCPU(), Value: &eng.Options.Threads},
			&uci.IntOption{Name: "Depth", Min: 1, Max: 64, Value: &eng.Options.Depth},
		},
	)
	protocol.Run(os.Stdin, os.Stdout, logger)
}
