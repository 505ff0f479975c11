package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/vancomm/minesweeper-engine/internal/config"
)

// Cors allows any origin unless cors.allowed_origins is set.
func Cors(c config.CorsConfig) Middleware {
	options := cors.Options{
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
			http.MethodPost,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{config.TicketHeader},
		AllowCredentials: true,
	}
	if len(c.AllowedOrigins) > 0 {
		options.AllowedOrigins = c.AllowedOrigins
	} else {
		options.AllowOriginFunc = func(origin string) bool {
			return true
		}
	}
	return cors.New(options).Handler
}
