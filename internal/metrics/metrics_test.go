package metrics

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestCounters(t *testing.T) {
	m := New(func() int { return 3 })

	m.GameStarted(mines.Beginner)
	m.GameStarted(mines.Beginner)
	m.GameStarted(mines.GameParams{Size: 5, MineCount: 2})
	assert.Equal(t, 2.0, testutil.ToFloat64(m.GamesStarted.WithLabelValues("beginner")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesStarted.WithLabelValues("custom")))

	m.GameFinished(mines.Lost)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.GamesFinished.WithLabelValues("lost")))
}

func TestObserveMove(t *testing.T) {
	m := New(func() int { return 0 })

	m.ObserveMove(commands.Result{Command: commands.Command{Op: commands.Get}})
	m.ObserveMove(commands.Result{
		Command: commands.Command{Op: commands.Open},
		Outcome: mines.Outcome{Kind: mines.SafeNumber, Number: 2},
		Applied: true,
	})
	m.ObserveMove(commands.Result{
		Command: commands.Command{Op: commands.Flag},
		Mark:    mines.Flagged,
		Applied: true,
	})
	m.ObserveMove(commands.Result{Command: commands.Command{Op: commands.Flag}})

	assert.Equal(t, 3, testutil.CollectAndCount(m.Moves))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Moves.WithLabelValues("open", "safe_number")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Moves.WithLabelValues("flag", mines.Flagged.String())))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Moves.WithLabelValues("flag", "blocked")))
}

func TestHandler(t *testing.T) {
	m := New(func() int { return 7 })
	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "minesweeper_sessions_active 7")
}
