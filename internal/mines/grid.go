package mines

import (
	"fmt"
	"strings"
)

type CellState int8

const (
	Hidden CellState = iota
	Revealed
	Flagged
	Questioned
)

func (s CellState) String() string {
	switch s {
	case Hidden:
		return "hidden"
	case Revealed:
		return "revealed"
	case Flagged:
		return "flagged"
	case Questioned:
		return "questioned"
	default:
		return fmt.Sprintf("CellState(%d)", int8(s))
	}
}

// [CellState] implements [encoding.TextMarshaler]
func (s CellState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *CellState) UnmarshalText(text []byte) error {
	for state := Hidden; state <= Questioned; state++ {
		if state.String() == string(text) {
			*s = state
			return nil
		}
	}
	return fmt.Errorf("unknown cell state %q", text)
}

// nextMark is the secondary-action cycle of a covered cell:
// hidden -> flagged -> questioned -> hidden.
func (s CellState) nextMark() CellState {
	switch s {
	case Hidden:
		return Flagged
	case Flagged:
		return Questioned
	case Questioned:
		return Hidden
	}
	return s
}

// Cells holds the player-visible state of every cell of a board, indexed
// by position.
type Cells struct {
	size   int
	states []CellState
}

func NewCells(size int) *Cells {
	c := &Cells{}
	c.Reset(size)
	return c
}

// Reset covers every cell of a size×size board.
func (c *Cells) Reset(size int) {
	c.size = size
	c.states = make([]CellState, size*size)
}

func (c *Cells) Size() int {
	return c.size
}

func (c *Cells) Get(p Point) CellState {
	return c.states[p.index(c.size)]
}

// Set changes the state of the cell at p. Revealed cells never change;
// Set reports whether the state was applied.
func (c *Cells) Set(p Point, s CellState) bool {
	i := p.index(c.size)
	if c.states[i] == Revealed {
		return false
	}
	c.states[i] = s
	return true
}

func (c *Cells) Count(s CellState) (n int) {
	for _, v := range c.states {
		if v == s {
			n++
		}
	}
	return
}

// Flagged returns the flagged points in row-major order.
func (c *Cells) Flagged() []Point {
	var points []Point
	for i, v := range c.states {
		if v == Flagged {
			points = append(points, pointAt(i, c.size))
		}
	}
	return points
}

func (c *Cells) ToString() string {
	var b strings.Builder
	for y := range c.size {
		for x := range c.size {
			var r byte
			switch c.states[y*c.size+x] {
			case Hidden:
				r = '#'
			case Revealed:
				r = '.'
			case Flagged:
				r = 'F'
			case Questioned:
				r = '?'
			}
			b.WriteByte(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
