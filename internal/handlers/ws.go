package handlers

import (
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/commands"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/sessions"
)

// ConnectWS upgrades to a websocket that takes command batches as text
// messages and answers each with the session, or with a batch error.
func (h GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, ok := h.session(w, r)
	if !ok {
		return
	}

	conn, err := h.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.WithError(err).Error("unable to upgrade connection")
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxBatchBytes)

	log := h.logger.WithField("session", session.ID)
	if err := h.wsRunGameLoop(conn, session, log); err != nil {
		if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
			log.WithError(err).Warn("websocket loop ended")
		}
	}
}

func (h GameHandler) wsRunGameLoop(
	conn *websocket.Conn, session *sessions.Session, log *logrus.Entry,
) error {
	for {
		mt, buf, err := conn.ReadMessage()
		if err != nil {
			return err
		}
		if mt != websocket.TextMessage {
			return nil
		}
		log.Debugf("> %q", buf)

		var (
			resp     *GameSessionDTO
			batchErr *BatchErrorDTO
		)
		_ = session.Do(func(g *mines.Game) error {
			var last *commands.Result
			batchErr, last = h.runBatch(g, string(buf))
			resp = NewGameSessionDTO(session, g)
			if last != nil {
				resp.Move = NewMoveDTO(*last)
			}
			return nil
		})

		var out any = resp
		if batchErr != nil {
			out = batchErr
		}
		if err := conn.WriteJSON(out); err != nil {
			return err
		}
	}
}
