package common

type Result int

const (
	ResultNone Result = iota
	ResultWhiteWins
	ResultBlackWins
	ResultDraw
)

func (r Result) String() string {
	switch r {
	case ResultWhiteWins:
		return "1-0"
	case ResultBlackWins:
		return "0-1"
	case ResultDraw:
		return "1/2-1/2"
	}
	return "*"
}

// History is an immutable chain of positions; the zero previous link marks the root.
type History struct {
	Position
	previous *History
}

func NewHistory(p Position) *History {
	return &History{Position: p}
}

// MakeMove returns the history extended by a move generated for the last position.
func (h *History) MakeMove(m Move) *History {
	var child = &History{previous: h}
	h.Position.MakeMove(m, &child.Position)
	return child
}

// MakeMoveText parses a coordinate move and applies it if it is legal.
func (h *History) MakeMoveText(text string) (*History, error) {
	var m, err = h.ParseLegalMove(text)
	if err != nil {
		return nil, err
	}
	return h.MakeMove(m), nil
}

func (h *History) Previous() (*History, error) {
	if h.previous == nil {
		return nil, ErrNoPreviousPosition
	}
	return h.previous, nil
}

// Positions lists the chain oldest first.
func (h *History) Positions() []Position {
	var n = 0
	for x := h; x != nil; x = x.previous {
		n++
	}
	var result = make([]Position, n)
	for x := h; x != nil; x = x.previous {
		n--
		result[n] = x.Position
	}
	return result
}

// RepetitionCount is the number of earlier positions equal to the last one.
// Positions before the last capture or pawn move cannot repeat and are not visited.
func (h *History) RepetitionCount() int {
	var count = 0
	var rule50 = h.Rule50
	for x := h.previous; x != nil && rule50 > 0; x = x.previous {
		rule50--
		if h.IsRepetition(&x.Position) {
			count++
		}
	}
	return count
}

func (h *History) Result() Result {
	var buffer [MaxMoves]Move
	if len(h.GenerateMoves(buffer[:])) == 0 {
		if !h.IsCheck() {
			return ResultDraw
		}
		if h.WhiteMove {
			return ResultBlackWins
		}
		return ResultWhiteWins
	}
	if h.Rule50 >= 100 || h.RepetitionCount() >= 2 {
		return ResultDraw
	}
	return ResultNone
}
