package uci

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/sahomat/sahomat/pkg/engine"
	material "github.com/sahomat/sahomat/pkg/eval/material"
)

func runSession(t *testing.T, input string) (output, logs string, eng *engine.Engine) {
	t.Helper()
	eng = engine.NewEngine(func() interface{} { return material.NewEvaluationService() })
	var protocol = New("sahomat", "test", "dev", eng, []Option{
		&IntOption{Name: "Threads", Min: 1, Max: 8, Value: &eng.Threads},
		&IntOption{Name: "Depth", Min: 1, Max: 32, Value: &eng.Depth},
	})
	var out, logBuffer bytes.Buffer
	protocol.Run(strings.NewReader(input), &out, log.New(&logBuffer, "", 0))
	return out.String(), logBuffer.String(), eng
}

func TestSession(t *testing.T) {
	var output, logs, eng = runSession(t, strings.Join([]string{
		"uci",
		"setoption name Threads value 2",
		"setoption name depth value 3",
		"isready",
		"position fen 6k1/5ppp/8/8/8/8/8/R5K1 w - - 0 1",
		"go depth 2",
	}, "\n"))
	for _, want := range []string{
		"id name sahomat dev",
		"option name Threads type spin default 1 min 1 max 8",
		"uciok",
		"readyok",
		"score mate 1",
		"bestmove a1a8",
	} {
		if !strings.Contains(output, want) {
			t.Error(want, output)
		}
	}
	if logs != "" {
		t.Error(logs)
	}
	if eng.Threads != 2 || eng.Depth != 3 {
		t.Error(eng.Options)
	}
}

func TestPositionMoves(t *testing.T) {
	// the knight on f3 can take the queen on h4
	var output, logs, _ = runSession(t, strings.Join([]string{
		"position startpos moves e2e4 e7e5 g1f3 d8h4 f1c4 b8c6",
		"go depth 1",
	}, "\n"))
	if logs != "" {
		t.Error(logs)
	}
	if !strings.Contains(output, "bestmove f3h4") {
		t.Error(output)
	}
}

func TestNoLegalMoves(t *testing.T) {
	var output, _, _ = runSession(t, strings.Join([]string{
		"position fen 7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"go",
	}, "\n"))
	if !strings.Contains(output, "bestmove 0000") {
		t.Error(output)
	}
}

func TestBadCommands(t *testing.T) {
	var _, logs, _ = runSession(t, strings.Join([]string{
		"xyzzy",
		"setoption name Hash value 16",
		"setoption name Threads value 100",
		"position fen 8/8/8",
		"position startpos moves e2e5",
		"go depth x",
	}, "\n"))
	var lines = strings.Split(strings.TrimSpace(logs), "\n")
	if len(lines) != 6 {
		t.Error(logs)
	}
}

func TestQuitStopsSearch(t *testing.T) {
	var output, _, _ = runSession(t, strings.Join([]string{
		"position startpos",
		"go depth 30",
		"quit",
		"isready",
	}, "\n"))
	if !strings.Contains(output, "bestmove") || strings.Contains(output, "readyok") {
		t.Error(output)
	}
}
