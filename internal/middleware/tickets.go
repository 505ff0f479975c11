package middleware

import (
	"context"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

type CtxKey int

const (
	CtxSessionClaims CtxKey = iota
)

// Tickets parses the session ticket, if any, and stores its claims in the
// request context. Requests without a valid ticket pass through untouched;
// handlers decide whether claims are required.
func Tickets(log *logrus.Logger, tickets *config.Tickets, cookies *config.Cookies) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := config.TicketFromRequest(r)
			if !ok {
				h.ServeHTTP(w, r)
				return
			}
			claims, err := tickets.Parse(token)
			if err != nil {
				log.WithError(err).Debug("rejected session ticket")
				cookies.Clear(w)
				h.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), CtxSessionClaims, claims)
			h.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionClaims returns the claims stored by Tickets, or nil.
func SessionClaims(ctx context.Context) *config.SessionClaims {
	claims, _ := ctx.Value(CtxSessionClaims).(*config.SessionClaims)
	return claims
}
