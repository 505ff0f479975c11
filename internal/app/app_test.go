package app

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Mode:     "development",
		Addr:     "127.0.0.1:0",
		Tickets:  config.TicketsConfig{Lifetime: time.Hour},
		Sessions: config.SessionsConfig{TTL: time.Hour, SweepInterval: time.Minute},
		Game:     config.GameConfig{Preset: "beginner"},
	}
}

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestNewRejectsUnknownPreset(t *testing.T) {
	c := testConfig()
	c.Game.Preset = "nightmare"
	_, err := New(quietLogger(), c)
	assert.ErrorContains(t, err, "game.preset")
}

func TestRoutes(t *testing.T) {
	a, err := New(quietLogger(), testConfig())
	require.NoError(t, err)
	server := httptest.NewServer(a.Handler())
	defer server.Close()

	resp, err := http.Post(server.URL+"/game?preset=intermediate", "", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, resp.Header.Get(config.TicketHeader))

	resp, err = http.Get(server.URL + "/metrics")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, err)
	assert.Contains(t, string(body), `minesweeper_games_started_total{preset="intermediate"} 1`)
	assert.Contains(t, string(body), "minesweeper_sessions_active 1")

	resp, err = http.Get(server.URL + "/presets")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestStartStopsWithContext(t *testing.T) {
	a, err := New(quietLogger(), testConfig())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() {
		done <- a.Start(ctx)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Start did not return after cancel")
	}
}
