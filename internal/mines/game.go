package mines

import (
	"fmt"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// [Status] implements [encoding.TextMarshaler]
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Game is a single running session. The board is generated on the first
// reveal so that the opening move is never a mine.
//
// Game is not safe for concurrent use; callers serialise access.
type Game struct {
	GameParams

	board    *Board /* nil until the first reveal */
	cells    *Cells /* player knowledge */
	status   Status
	exploded Point
	rnd      *rand.Rand
}

// NewGame validates params and returns a game waiting for its first
// reveal. A nil r falls back to a randomly seeded source.
func NewGame(params GameParams, r *rand.Rand) (*Game, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	g := &Game{
		GameParams: params,
		cells:      NewCells(params.Size),
		rnd:        r,
	}
	return g, nil
}

func (g *Game) Status() Status {
	return g.status
}

func (g *Game) Over() bool {
	return g.status != InProgress
}

// Started reports whether the board has been generated.
func (g *Game) Started() bool {
	return g.board != nil
}

// Board returns the generated board, or nil before the first reveal.
func (g *Game) Board() *Board {
	return g.board
}

// Remaining is the mine count minus the number of flags placed. It goes
// negative when the player places more flags than there are mines.
func (g *Game) Remaining() int {
	return g.MineCount - g.cells.Count(Flagged)
}

// Restart discards the board and covers every cell again. The next reveal
// generates a new board.
func (g *Game) Restart() {
	g.board = nil
	g.cells.Reset(g.Size)
	g.status = InProgress
	g.exploded = Point{}
}

// Reveal opens the cell at p. On a finished game or on a flagged or
// revealed cell it does nothing and returns a Blocked outcome.
func (g *Game) Reveal(p Point) (Outcome, error) {
	if !p.In(g.Size) {
		return Outcome{Kind: Blocked}, invalidPoint(p)
	}
	if g.Over() || !revealable(g.cells.Get(p)) {
		return Outcome{Kind: Blocked}, nil
	}

	if g.board == nil {
		board, err := Generate(g.GameParams, p, g.rnd)
		if err != nil {
			return Outcome{Kind: Blocked}, err
		}
		g.board = board
	}

	out, opened := reveal(g.board, g.cells, p)
	if out.Kind == MineHit {
		g.lose(p)
	}

	Log.WithFields(logrus.Fields{
		"point":   p.String(),
		"outcome": out.String(),
		"opened":  len(opened),
	}).Debug("reveal")

	return out, nil
}

// ToggleMark cycles the mark of a covered cell (hidden -> flagged ->
// questioned -> hidden) and returns the new state. ok is false when the
// cell is revealed or the game is over; the state is then unchanged.
//
// Placing or removing a flag checks for victory.
func (g *Game) ToggleMark(p Point) (state CellState, ok bool, err error) {
	if !p.In(g.Size) {
		return Hidden, false, invalidPoint(p)
	}
	prev := g.cells.Get(p)
	if g.Over() || prev == Revealed {
		return prev, false, nil
	}

	state = prev.nextMark()
	g.cells.Set(p, state)

	if prev == Flagged || state == Flagged {
		if g.board != nil && CheckVictory(g.cells, g.board.MineSet()) {
			g.status = Won
			Log.WithField("seed", g.Seed()).Debug("game won")
		}
	}

	return state, true, nil
}

// Chord opens every covered, unflagged neighbour of a revealed number once
// the player has placed that many flags around it. It returns Blocked when
// nothing could be opened and MineHit when a wrongly placed flag let it
// open a mine. Otherwise it is SafeEmpty when a zero cell was opened, and
// SafeNumber carrying the last opened number when only numbers were.
func (g *Game) Chord(p Point) (Outcome, error) {
	if !p.In(g.Size) {
		return Outcome{Kind: Blocked}, invalidPoint(p)
	}
	if g.Over() || g.board == nil || g.cells.Get(p) != Revealed {
		return Outcome{Kind: Blocked}, nil
	}
	n := g.board.Adjacent(p)
	if n == 0 {
		return Outcome{Kind: Blocked}, nil
	}

	var (
		flags int
		todo  []Point
	)
	for _, q := range p.Neighbors(g.Size) {
		switch g.cells.Get(q) {
		case Flagged:
			flags++
		case Hidden, Questioned:
			todo = append(todo, q)
		}
	}
	if flags != n || len(todo) == 0 {
		return Outcome{Kind: Blocked}, nil
	}

	result := Outcome{Kind: SafeNumber}
	for _, q := range todo {
		out, _ := reveal(g.board, g.cells, q)
		switch out.Kind {
		case MineHit:
			g.lose(q)
			return out, nil
		case SafeEmpty:
			result = out
		case SafeNumber:
			if result.Kind == SafeNumber {
				result = out
			}
		}
	}
	return result, nil
}

func (g *Game) lose(p Point) {
	g.status = Lost
	g.exploded = p
	Log.WithFields(logrus.Fields{
		"seed":  g.Seed(),
		"point": p.String(),
	}).Debug("game lost")
}
