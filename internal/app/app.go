package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/metrics"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/sessions"
)

type App struct {
	logger  *logrus.Logger
	config  *config.Config
	router  *http.ServeMux
	store   *sessions.Store
	tickets *config.Tickets
	cookies *config.Cookies
	ws      *config.WebSocket
	metrics *metrics.Metrics
}

func New(logger *logrus.Logger, c *config.Config) (*App, error) {
	if _, err := mines.ParsePreset(c.Game.Preset); err != nil {
		return nil, fmt.Errorf("game.preset: %w", err)
	}

	tickets, err := config.NewTickets(c.Tickets)
	if err != nil {
		return nil, err
	}

	store := sessions.New(createRand())

	app := &App{
		logger:  logger,
		config:  c,
		router:  http.NewServeMux(),
		store:   store,
		tickets: tickets,
		cookies: config.NewCookies(c),
		ws:      config.NewWebSocket(c.Cors.AllowedOrigins),
		metrics: metrics.New(store.Len),
	}

	app.loadRoutes()

	return app, nil
}

func (a *App) Handler() http.Handler {
	return middleware.Wrap(
		a.router,
		middleware.Logging(a.logger),
		middleware.Tickets(a.logger, a.tickets, a.cookies),
		middleware.Cors(a.config.Cors),
	)
}

// Start serves until ctx is done, sweeping idle sessions alongside.
func (a *App) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:    a.config.Addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	a.logger.Infof("ready to serve @ %s", a.config.Addr)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*30)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		return a.store.Run(gCtx, a.config.Sessions.SweepInterval, a.config.Sessions.TTL)
	})

	return g.Wait()
}
