package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCellsReset(t *testing.T) {
	c := NewCells(4)
	assert.Equal(t, 16, c.Count(Hidden))

	c.Set(Point{1, 1}, Revealed)
	c.Set(Point{2, 2}, Flagged)
	c.Reset(3)
	assert.Equal(t, 3, c.Size())
	assert.Equal(t, 9, c.Count(Hidden))
	assert.Empty(t, c.Flagged())
}

func TestCellsRevealedIsTerminal(t *testing.T) {
	c := NewCells(3)
	p := Point{1, 2}
	assert.True(t, c.Set(p, Revealed))
	for _, s := range []CellState{Hidden, Flagged, Questioned} {
		assert.False(t, c.Set(p, s))
		assert.Equal(t, Revealed, c.Get(p))
	}
}

func TestCellsFlagged(t *testing.T) {
	c := NewCells(3)
	c.Set(Point{2, 0}, Flagged)
	c.Set(Point{0, 2}, Flagged)
	c.Set(Point{1, 1}, Questioned)
	assert.Equal(t, []Point{{2, 0}, {0, 2}}, c.Flagged())
	assert.Equal(t, 2, c.Count(Flagged))
	assert.Equal(t, "##F\n#?#\nF##\n", c.ToString())
}

func TestMarkCycle(t *testing.T) {
	assert.Equal(t, Flagged, Hidden.nextMark())
	assert.Equal(t, Questioned, Flagged.nextMark())
	assert.Equal(t, Hidden, Questioned.nextMark())
	assert.Equal(t, Revealed, Revealed.nextMark())
}

func TestCellStateText(t *testing.T) {
	for _, s := range []CellState{Hidden, Revealed, Flagged, Questioned} {
		text, err := s.MarshalText()
		assert.NoError(t, err)
		var back CellState
		assert.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, s, back)
	}
	var s CellState
	assert.Error(t, s.UnmarshalText([]byte("exploded")))
}
