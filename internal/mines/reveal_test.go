package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBoard(t *testing.T, size int, mines ...Point) *Board {
	t.Helper()
	b, err := NewBoard(size, mines)
	require.NoError(t, err)
	return b
}

func TestRevealNumber(t *testing.T) {
	b := mustBoard(t, 5, Point{0, 0}, Point{1, 0}, Point{0, 1})
	cells := NewCells(5)

	out, opened := reveal(b, cells, Point{1, 1})
	assert.Equal(t, Outcome{Kind: SafeNumber, Number: 3}, out)
	assert.Equal(t, []Point{{1, 1}}, opened)
	assert.Equal(t, 1, cells.Count(Revealed))
	for _, n := range (Point{1, 1}).Neighbors(5) {
		assert.Equal(t, Hidden, cells.Get(n))
	}
}

func TestRevealMine(t *testing.T) {
	b := mustBoard(t, 5, Point{2, 2})
	cells := NewCells(5)

	out, opened := reveal(b, cells, Point{2, 2})
	assert.Equal(t, MineHit, out.Kind)
	assert.Equal(t, []Point{{2, 2}}, opened)
	assert.Equal(t, Revealed, cells.Get(Point{2, 2}))
}

func TestRevealFloodFill(t *testing.T) {
	b := mustBoard(t, 5, Point{4, 4})
	cells := NewCells(5)

	out, opened := reveal(b, cells, Point{0, 0})
	assert.Equal(t, SafeEmpty, out.Kind)
	assert.Len(t, opened, 24)
	assert.Equal(t, 24, cells.Count(Revealed))
	assert.Equal(t, Hidden, cells.Get(Point{4, 4}))
}

func TestRevealFloodFillStopsAtNumbers(t *testing.T) {
	// a wall of mines in column 2 splits the board
	b := mustBoard(t, 5, Point{2, 0}, Point{2, 1}, Point{2, 2}, Point{2, 3}, Point{2, 4})
	cells := NewCells(5)

	out, _ := reveal(b, cells, Point{0, 2})
	assert.Equal(t, SafeEmpty, out.Kind)
	for y := range 5 {
		assert.Equal(t, Revealed, cells.Get(Point{0, y}))
		assert.Equal(t, Revealed, cells.Get(Point{1, y}))
		for x := 2; x < 5; x++ {
			assert.Equal(t, Hidden, cells.Get(Point{x, y}))
		}
	}
}

func TestRevealFloodFillRespectsFlags(t *testing.T) {
	b := mustBoard(t, 5, Point{4, 4})
	cells := NewCells(5)
	cells.Set(Point{2, 2}, Flagged)
	cells.Set(Point{1, 1}, Questioned)

	out, opened := reveal(b, cells, Point{0, 0})
	assert.Equal(t, SafeEmpty, out.Kind)
	assert.Equal(t, Flagged, cells.Get(Point{2, 2}))
	assert.NotContains(t, opened, Point{2, 2})
	assert.Equal(t, Revealed, cells.Get(Point{1, 1}))
	assert.Equal(t, 23, cells.Count(Revealed))
}

func TestRevealBlocked(t *testing.T) {
	b := mustBoard(t, 5, Point{4, 4})
	cells := NewCells(5)

	cells.Set(Point{0, 0}, Flagged)
	out, opened := reveal(b, cells, Point{0, 0})
	assert.Equal(t, Blocked, out.Kind)
	assert.Empty(t, opened)
	assert.Equal(t, 0, cells.Count(Revealed))

	out, _ = reveal(b, cells, Point{3, 3})
	assert.Equal(t, Outcome{Kind: SafeNumber, Number: 1}, out)

	out, opened = reveal(b, cells, Point{3, 3})
	assert.Equal(t, Blocked, out.Kind)
	assert.Empty(t, opened)
}

func TestRevealIdempotentAfterFlood(t *testing.T) {
	b := mustBoard(t, 6, Point{5, 5}, Point{0, 5})
	cells := NewCells(6)

	reveal(b, cells, Point{2, 2})
	before := cells.ToString()
	for y := range 6 {
		for x := range 6 {
			p := Point{x, y}
			if cells.Get(p) != Revealed {
				continue
			}
			out, opened := reveal(b, cells, p)
			assert.Equal(t, Blocked, out.Kind)
			assert.Empty(t, opened)
		}
	}
	assert.Equal(t, before, cells.ToString())
}

func TestFloodFillNeverRevealsMines(t *testing.T) {
	t.Parallel()

	for _, test := range presetTests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			for seed := range uint64(10) {
				r := rand.New(rand.NewPCG(seed, 3))
				b, err := Generate(test.params, Point{0, 0}, r)
				require.NoError(t, err)
				for y := range b.Size {
					for x := range b.Size {
						p := Point{x, y}
						if !b.IsEmpty(p) {
							continue
						}
						cells := NewCells(b.Size)
						out, opened := reveal(b, cells, p)
						require.Equal(t, SafeEmpty, out.Kind)
						for _, q := range opened {
							require.False(t, b.IsMine(q), "flood from %s opened mine %s", p, q)
						}
						assert.Len(t, opened, cells.Count(Revealed))
					}
				}
			}
		})
	}
}
