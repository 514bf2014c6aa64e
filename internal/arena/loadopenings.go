package arena

import (
	"context"
	_ "embed"
	"strings"

	"github.com/sahomat/sahomat/pkg/common"
)

//go:embed openings.txt
var openingsTxt string

// DefaultOpenings lists the embedded opening positions, one FEN per line.
func DefaultOpenings() []string {
	return parseOpenings(openingsTxt)
}

func parseOpenings(text string) []string {
	var result []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if !(line == "" || strings.HasPrefix(line, "//")) {
			result = append(result, line)
		}
	}
	return result
}

func loadOpenings(
	ctx context.Context,
	openings []string,
	gameInfos chan<- gameInfo,
) error {
	for i, opening := range openings {
		if _, err := common.NewPositionFromFEN(opening); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: true, gameNumber: 1 + 2*i}:
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case gameInfos <- gameInfo{opening: opening, engineAIsWhite: false, gameNumber: 1 + 2*i + 1}:
		}
	}
	return nil
}
