package uci

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/sahomat/sahomat/pkg/common"
	"golang.org/x/exp/slices"
)

type Engine interface {
	Prepare()
	Search(ctx context.Context, searchParams common.SearchParams) (common.SearchInfo, error)
}

type Protocol struct {
	name         string
	author       string
	version      string
	options      []Option
	engine       Engine
	history      *common.History
	searchRoot   common.Position
	thinking     bool
	engineOutput chan common.SearchInfo
	cancel       context.CancelFunc
	output       io.Writer
	logger       *log.Logger
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:    name,
		author:  author,
		version: version,
		engine:  engine,
		options: options,
		history: common.NewHistory(common.InitialPosition()),
	}
}

// Run serves commands from input until quit or the end of input. At the end
// of input a running search is allowed to finish; quit stops it.
func (uci *Protocol) Run(input io.Reader, output io.Writer, logger *log.Logger) {
	uci.output = output
	uci.logger = logger

	var commands = make(chan string)
	var quit = make(chan bool, 1)

	go func() {
		defer close(commands)
		quit <- readCommands(input, commands)
	}()

	var searchResult common.SearchInfo
	var inputDone = false
	for !inputDone || uci.thinking {
		select {
		case si, ok := <-uci.engineOutput:
			if ok {
				fmt.Fprintln(uci.output, searchInfoToUci(uci.searchRoot, si))
				searchResult = si
			} else {
				if len(searchResult.MainLine) != 0 {
					fmt.Fprintf(uci.output, "bestmove %v\n", uci.searchRoot.MoveToUCI(searchResult.MainLine[0]))
				} else {
					fmt.Fprintln(uci.output, "bestmove 0000")
				}
				uci.thinking = false
				uci.cancel = nil
				uci.engineOutput = nil
				searchResult = common.SearchInfo{}
			}
		case commandLine, ok := <-commands:
			if !ok {
				commands = nil
				inputDone = true
				if <-quit && uci.thinking {
					uci.cancel()
				}
				continue
			}
			var err = uci.handle(commandLine)
			if err != nil {
				logger.Println(err)
			}
		}
	}
}

func (uci *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	if len(fields) == 0 {
		return nil
	}
	var commandName = fields[0]
	fields = fields[1:]

	if uci.thinking {
		switch commandName {
		case "stop":
			uci.cancel()
			return nil
		case "isready":
			return uci.isReadyCommand(fields)
		}
		return errors.New("search still run")
	}

	var h func(fields []string) error

	switch commandName {
	case "uci":
		h = uci.uciCommand
	case "setoption":
		h = uci.setOptionCommand
	case "isready":
		h = uci.isReadyCommand
	case "position":
		h = uci.positionCommand
	case "go":
		h = uci.goCommand
	case "ucinewgame":
		h = uci.uciNewGameCommand
	case "stop":
		return nil
	}

	if h == nil {
		return fmt.Errorf("command not found: %v", commandName)
	}

	return h(fields)
}

func (uci *Protocol) uciCommand(fields []string) error {
	fmt.Fprintf(uci.output, "id name %s %s\n", uci.name, uci.version)
	fmt.Fprintf(uci.output, "id author %s\n", uci.author)
	for _, option := range uci.options {
		fmt.Fprintln(uci.output, option.UciString())
	}
	fmt.Fprintln(uci.output, "uciok")
	return nil
}

func (uci *Protocol) setOptionCommand(fields []string) error {
	if len(fields) < 4 || fields[0] != "name" || fields[2] != "value" {
		return errors.New("invalid setoption arguments")
	}
	var name, value = fields[1], fields[3]
	var index = slices.IndexFunc(uci.options, func(option Option) bool {
		return strings.EqualFold(option.UciName(), name)
	})
	if index < 0 {
		return fmt.Errorf("unhandled option %v", name)
	}
	return uci.options[index].Set(value)
}

func (uci *Protocol) isReadyCommand(fields []string) error {
	if !uci.thinking {
		uci.engine.Prepare()
	}
	fmt.Fprintln(uci.output, "readyok")
	return nil
}

func (uci *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return errors.New("empty position command")
	}
	var token = fields[0]
	var fen string
	var movesIndex = slices.Index(fields, "moves")
	if token == "startpos" {
		fen = common.InitialPositionFen
	} else if token == "fen" {
		if movesIndex == -1 {
			fen = strings.Join(fields[1:], " ")
		} else {
			fen = strings.Join(fields[1:movesIndex], " ")
		}
	} else {
		return errors.New("unknown position command")
	}
	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return fmt.Errorf("position: %w", err)
	}
	var h = common.NewHistory(p)
	if movesIndex >= 0 {
		for _, smove := range fields[movesIndex+1:] {
			h, err = h.MakeMoveText(smove)
			if err != nil {
				return fmt.Errorf("position move %v: %w", smove, err)
			}
		}
	}
	uci.history = h
	return nil
}

func (uci *Protocol) goCommand(fields []string) error {
	var depth, err = parseDepth(fields)
	if err != nil {
		return err
	}
	var ctx, cancel = context.WithCancel(context.Background())
	var engineOutput = make(chan common.SearchInfo, 3)
	var history = uci.history
	var logger = uci.logger
	uci.cancel = cancel
	uci.thinking = true
	uci.searchRoot = history.Position
	uci.engineOutput = engineOutput
	go func() {
		defer cancel()
		var searchResult, err = uci.engine.Search(ctx, common.SearchParams{
			History: history,
			Depth:   depth,
			Progress: func(si common.SearchInfo) {
				select {
				case engineOutput <- si:
				default:
				}
			},
		})
		if err != nil && !errors.Is(err, context.Canceled) {
			logger.Println(err)
		}
		if len(searchResult.MainLine) != 0 {
			engineOutput <- searchResult
		}
		close(engineOutput)
	}()
	return nil
}

func (uci *Protocol) uciNewGameCommand(fields []string) error {
	uci.history = common.NewHistory(common.InitialPosition())
	return nil
}

func searchInfoToUci(root common.Position, si common.SearchInfo) string {
	var sb = &strings.Builder{}
	fmt.Fprintf(sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		fmt.Fprintf(sb, " pv")
		var p = root
		var child common.Position
		for _, move := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(p.MoveToUCI(move))
			p.MakeMove(move, &child)
			p = child
		}
	}
	return sb.String()
}

// parseDepth reads "depth N" from go arguments; clock and node limits are ignored.
func parseDepth(args []string) (int, error) {
	for i := 0; i < len(args); i++ {
		if args[i] == "depth" {
			if i+1 >= len(args) {
				return 0, errors.New("go: missing depth")
			}
			var depth, err = strconv.Atoi(args[i+1])
			if err != nil || depth < 1 {
				return 0, fmt.Errorf("go: bad depth %q", args[i+1])
			}
			return depth, nil
		}
	}
	return 0, nil
}
