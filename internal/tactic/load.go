package tactic

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sahomat/sahomat/pkg/common"
	"golang.org/x/exp/slices"
)

type EpdItem struct {
	content   string
	position  common.Position
	bestMoves []common.Move
}

func (item *EpdItem) IsBestMove(m common.Move) bool {
	return slices.Contains(item.bestMoves, m)
}

func LoadEpd(filePath string) ([]EpdItem, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadEpd(file)
}

// ReadEpd parses one test per line. Lines that fail to parse are logged and skipped.
func ReadEpd(r io.Reader) ([]EpdItem, error) {
	var result []EpdItem
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var line = strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		var test, err = parseEpdTest(line)
		if err != nil {
			log.Println(err)
			continue
		}
		result = append(result, test)
	}
	return result, scanner.Err()
}

// parseEpdTest reads "<fen> bm <moves>;" with moves in coordinate notation.
func parseEpdTest(s string) (EpdItem, error) {
	var bmBegin = strings.Index(s, " bm ")
	var bmEnd = strings.Index(s, ";")
	if bmBegin < 0 || bmEnd < bmBegin {
		return EpdItem{}, fmt.Errorf("no best moves %v", s)
	}
	var fen = strings.TrimSpace(s[:bmBegin])
	var sBestMoves = strings.Fields(s[bmBegin+len(" bm ") : bmEnd])

	var p, err = common.NewPositionFromFEN(fen)
	if err != nil {
		return EpdItem{}, err
	}

	var bestMoves []common.Move
	for _, sBestMove := range sBestMoves {
		var move, err = p.ParseLegalMove(sBestMove)
		if err != nil {
			return EpdItem{}, fmt.Errorf("parse move failed %v: %w", s, err)
		}
		bestMoves = append(bestMoves, move)
	}
	if len(bestMoves) == 0 {
		return EpdItem{}, fmt.Errorf("empty best moves %v", s)
	}

	return EpdItem{
		content:   s,
		position:  p,
		bestMoves: bestMoves,
	}, nil
}
