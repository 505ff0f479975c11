package mines

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckVictory(t *testing.T) {
	t.Parallel()

	r := rand.New(rand.NewPCG(1, 2))
	b, err := Generate(Beginner, Point{0, 0}, r)
	require.NoError(t, err)
	mines := b.Mines()
	require.Len(t, mines, 10)

	var safe Point
	for i := range 64 {
		if p := pointAt(i, 8); !b.IsMine(p) {
			safe = p
			break
		}
	}

	tests := []struct {
		name    string
		flagged []Point
		want    bool
	}{
		{"nothing flagged", nil, false},
		{"nine of ten", mines[:9], false},
		{"all ten", mines, true},
		{"all ten and a safe cell", append(append([]Point{}, mines...), safe), false},
		{"only a safe cell", []Point{safe}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			cells := NewCells(8)
			for _, p := range test.flagged {
				cells.Set(p, Flagged)
			}
			assert.Equal(t, test.want, CheckVictory(cells, b.MineSet()))
		})
	}
}

func TestCheckVictoryIgnoresQuestionMarks(t *testing.T) {
	b := mustBoard(t, 3, Point{0, 0}, Point{2, 2})
	cells := NewCells(3)
	cells.Set(Point{0, 0}, Flagged)
	cells.Set(Point{2, 2}, Questioned)
	assert.False(t, CheckVictory(cells, b.MineSet()))

	cells.Set(Point{2, 2}, Flagged)
	cells.Set(Point{1, 1}, Questioned)
	assert.True(t, CheckVictory(cells, b.MineSet()))
}
