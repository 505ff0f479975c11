package app

import (
	"hash/maphash"
	"math/rand/v2"

	"github.com/vancomm/minesweeper-engine/internal/handlers"
)

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (a *App) loadRoutes() {
	game := handlers.NewGameHandler(
		a.logger, a.store, a.tickets, a.cookies, a.ws, a.metrics,
		a.config.Game.Preset,
	)

	a.router.HandleFunc("GET /presets", game.Presets)
	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game/{id}", game.Fetch)
	a.router.HandleFunc("DELETE /game/{id}", game.Forfeit)
	a.router.HandleFunc("POST /game/{id}/move", game.MakeAMove)
	a.router.HandleFunc("POST /game/{id}/restart", game.Restart)
	a.router.HandleFunc("POST /game/{id}/batch", game.Batch)
	a.router.HandleFunc("GET /game/{id}/connect", game.ConnectWS)

	a.router.Handle("GET /metrics", a.metrics.Handler())
}
