package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
)

const namespace = "minesweeper"

type Metrics struct {
	registry *prometheus.Registry

	GamesStarted  *prometheus.CounterVec
	GamesFinished *prometheus.CounterVec
	Moves         *prometheus.CounterVec
}

// New registers the game collectors on a fresh registry. activeSessions is
// polled on every scrape.
func New(activeSessions func() int) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		GamesStarted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Number of games started",
		}, []string{"preset"}),
		GamesFinished: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Number of games won or lost",
		}, []string{"status"}),
		Moves: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "moves_total",
			Help:      "Number of moves applied to games",
		}, []string{"move", "outcome"}),
	}

	m.registry.MustRegister(
		m.GamesStarted,
		m.GamesFinished,
		m.Moves,
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "sessions_active",
			Help:      "Number of sessions held in memory",
		}, func() float64 {
			return float64(activeSessions())
		}),
	)

	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) GameStarted(params mines.GameParams) {
	m.GamesStarted.WithLabelValues(params.Preset()).Inc()
}

func (m *Metrics) GameFinished(status mines.Status) {
	m.GamesFinished.WithLabelValues(status.String()).Inc()
}

// ObserveMove counts a command by its op and what it did. Get is not a move.
func (m *Metrics) ObserveMove(res commands.Result) {
	var outcome string
	switch res.Command.Op {
	case commands.Get:
		return
	case commands.Open, commands.Chord:
		outcome = res.Outcome.Kind.String()
	case commands.Flag:
		if !res.Applied {
			outcome = mines.Blocked.String()
		} else {
			outcome = res.Mark.String()
		}
	default:
		outcome = "applied"
	}
	m.Moves.WithLabelValues(res.Command.Op.String(), outcome).Inc()
}
