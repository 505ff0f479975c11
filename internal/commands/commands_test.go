package commands

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestByPiece(t *testing.T) {
	testCases := []struct {
		input string
		sep   string
		array []string
	}{
		{"a b c", " ", []string{"a", "b", "c"}},
		{"foo\nbar\nbaz\n\nbazz", "\n", []string{"foo", "bar", "baz", "", "bazz"}},
	}
	for _, test := range testCases {
		for i, p := range byPiece(test.input, test.sep) {
			if i < 0 || i >= len(test.array) {
				t.Errorf("byPiece returned an invalid index: %d", i)
			}
			if p != test.array[i] {
				t.Errorf("byPiece returned an incorrect piece: have %s, want %s",
					p, test.array[i])
			}
		}
	}
}

func TestLines(t *testing.T) {
	var got []string
	for _, line := range Lines("  o 1 2\r\nf 3 4\n\n") {
		got = append(got, line)
	}
	assert.Equal(t, []string{"o 1 2", "f 3 4"}, got)
}

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		want Command
		err  error
	}{
		{line: "g", want: Command{Op: Get}},
		{line: "", want: Command{Op: Get}},
		{line: "o 1 2", want: Command{Op: Open, Point: mines.Point{X: 1, Y: 2}}},
		{line: "F  3 4", want: Command{Op: Flag, Point: mines.Point{X: 3, Y: 4}}},
		{line: "c 0 7", want: Command{Op: Chord, Point: mines.Point{X: 0, Y: 7}}},
		{line: "r", want: Command{Op: Restart}},
		{line: "x 1 2", err: ErrUnknownCommand},
		{line: "o 1", err: ErrNargs},
		{line: "r 1", err: ErrNargs},
	}
	for _, test := range tests {
		t.Run(test.line, func(t *testing.T) {
			c, err := Parse(test.line)
			if test.err != nil {
				assert.ErrorIs(t, err, test.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, c)
		})
	}

	_, err := Parse("o a 2")
	assert.EqualError(t, err, "first argument must be an int")
	_, err = Parse("o 1 b")
	assert.EqualError(t, err, "second argument must be an int")
}

func TestExecute(t *testing.T) {
	g, err := mines.NewGame(mines.Beginner, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	res, err := Execute(g, "f 7 7")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.Equal(t, mines.Flagged, res.Mark)

	res, err = Execute(g, "o 7 7")
	require.NoError(t, err)
	assert.False(t, res.Applied)
	assert.Equal(t, mines.Blocked, res.Outcome.Kind)

	res, err = Execute(g, "o 0 0")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.NotEqual(t, mines.MineHit, res.Outcome.Kind)
	assert.True(t, g.Started())

	_, err = Execute(g, "o 8 0")
	assert.ErrorIs(t, err, mines.ErrInvalidCoordinate)

	res, err = Execute(g, "r")
	require.NoError(t, err)
	assert.True(t, res.Applied)
	assert.False(t, g.Started())
}
