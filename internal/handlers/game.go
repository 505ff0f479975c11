package handlers

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/metrics"
	"github.com/vancomm/minesweeper-engine/internal/middleware"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/sessions"
)

const maxBatchBytes = 64 << 10

var ErrSessionNotFound = errors.New("game session not found")

type GameHandler struct {
	logger        *logrus.Logger
	store         *sessions.Store
	tickets       *config.Tickets
	cookies       *config.Cookies
	ws            *config.WebSocket
	metrics       *metrics.Metrics
	defaultPreset string
}

func NewGameHandler(
	logger *logrus.Logger,
	store *sessions.Store,
	tickets *config.Tickets,
	cookies *config.Cookies,
	ws *config.WebSocket,
	metrics *metrics.Metrics,
	defaultPreset string,
) *GameHandler {
	handler := &GameHandler{
		logger:        logger,
		store:         store,
		tickets:       tickets,
		cookies:       cookies,
		ws:            ws,
		metrics:       metrics,
		defaultPreset: defaultPreset,
	}

	return handler
}

// session looks up the path session and checks the request ticket grants
// it. On failure the response is already written.
func (h GameHandler) session(w http.ResponseWriter, r *http.Request) (*sessions.Session, bool) {
	id := r.PathValue("id")
	session, ok := h.store.Get(id)
	if !ok {
		sendErrorOrLog(w, h.logger, http.StatusNotFound, ErrSessionNotFound)
		return nil, false
	}
	if err := middleware.SessionClaims(r.Context()).Grants(id); err != nil {
		sendErrorOrLog(w, h.logger, http.StatusForbidden, err)
		return nil, false
	}
	return session, true
}

// apply runs c against g and records it. Callers hold the session.
func (h GameHandler) apply(g *mines.Game, c commands.Command) (commands.Result, error) {
	before := g.Status()
	res, err := c.Apply(g)
	if err != nil {
		return res, err
	}
	h.metrics.ObserveMove(res)
	if g.Over() && g.Status() != before {
		h.metrics.GameFinished(g.Status())
		h.logger.WithFields(logrus.Fields{
			"status": g.Status(),
			"params": g.Seed(),
		}).Debug("game finished")
	}
	return res, nil
}

func (h GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseCreateNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	params, err := dto.Params(h.defaultPreset)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, err := h.store.Create(params)
	var confErr mines.ConfigurationError
	if errors.As(err, &confErr) {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to create a game session")
		return
	}

	now := time.Now()
	token, err := h.tickets.Issue(session.ID, now)
	if err != nil {
		h.store.Delete(session.ID)
		w.WriteHeader(http.StatusInternalServerError)
		h.logger.WithError(err).Error("unable to issue a session ticket")
		return
	}
	h.cookies.SetTicket(w, token, now.Add(h.tickets.Lifetime()))
	h.metrics.GameStarted(params)

	var resp *GameSessionDTO
	_ = session.Do(func(g *mines.Game) error {
		resp = NewGameSessionDTO(session, g)
		return nil
	})
	resp.Ticket = token

	sendJSONOrLog(w, h.logger, resp)
}

func (h GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var resp *GameSessionDTO
	_ = session.Do(func(g *mines.Game) error {
		resp = NewGameSessionDTO(session, g)
		return nil
	})

	sendJSONOrLog(w, h.logger, resp)
}

func (h GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	pos, err := ParsePosition(query)
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var resp *GameSessionDTO
	err = session.Do(func(g *mines.Game) error {
		res, err := h.apply(g, commands.Command{Op: move, Point: mines.Point(pos)})
		if err != nil {
			return err
		}
		resp = NewGameSessionDTO(session, g)
		resp.Move = NewMoveDTO(res)
		return nil
	})
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusBadRequest, err)
		return
	}

	sendJSONOrLog(w, h.logger, resp)
}

func (h GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	var resp *GameSessionDTO
	err := session.Do(func(g *mines.Game) error {
		if _, err := h.apply(g, commands.Command{Op: commands.Restart}); err != nil {
			return err
		}
		h.metrics.GameStarted(g.GameParams)
		resp = NewGameSessionDTO(session, g)
		return nil
	})
	if err != nil {
		h.logger.WithError(err).Error("unable to restart game")
		sendErrorOrLog(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	sendJSONOrLog(w, h.logger, resp)
}

// Forfeit ends the session and clears the ticket cookie.
func (h GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}
	h.store.Delete(session.ID)
	h.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// runBatch applies every line of text in order and stops at the first
// error or once the game is over. Callers hold the session.
func (h GameHandler) runBatch(g *mines.Game, text string) (*BatchErrorDTO, *commands.Result) {
	var last *commands.Result
	for i, line := range commands.Lines(text) {
		c, err := commands.Parse(line)
		if err == nil {
			var res commands.Result
			res, err = h.apply(g, c)
			last = &res
		}
		if err != nil {
			return &BatchErrorDTO{Loc: i, Error: err.Error()}, last
		}
		if g.Over() {
			break
		}
	}
	return nil, last
}

func (h GameHandler) Batch(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBatchBytes))
	if err != nil {
		sendErrorOrLog(w, h.logger, http.StatusRequestEntityTooLarge, err)
		return
	}

	var (
		resp     *GameSessionDTO
		batchErr *BatchErrorDTO
	)
	_ = session.Do(func(g *mines.Game) error {
		var last *commands.Result
		batchErr, last = h.runBatch(g, string(body))
		resp = NewGameSessionDTO(session, g)
		if last != nil {
			resp.Move = NewMoveDTO(*last)
		}
		return nil
	})
	if batchErr != nil {
		sendStatusOrLog(w, h.logger, http.StatusBadRequest, batchErr)
		return
	}

	sendJSONOrLog(w, h.logger, resp)
}

func (h GameHandler) Presets(w http.ResponseWriter, r *http.Request) {
	presets := make([]PresetDTO, 0, len(mines.PresetNames))
	for _, name := range mines.PresetNames {
		params, _ := mines.ParsePreset(name)
		presets = append(presets, PresetDTO{
			Name:      name,
			Size:      params.Size,
			MineCount: params.MineCount,
		})
	}
	sendJSONOrLog(w, h.logger, presets)
}
