package uci

import (
	"bufio"
	"io"
)

// readCommands forwards non-empty lines of r until "quit" or the end of input.
// quit reports whether the input asked to quit.
func readCommands(r io.Reader, commands chan<- string) (quit bool) {
	var scanner = bufio.NewScanner(r)
	for scanner.Scan() {
		var commandLine = scanner.Text()
		if commandLine == "quit" {
			return true
		}
		if commandLine != "" {
			commands <- commandLine
		}
	}
	return false
}
