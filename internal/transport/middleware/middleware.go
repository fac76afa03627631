// Package middleware holds the HTTP middleware shared by every route.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

// Base returns the stack mounted in front of every route, outermost first:
// request id, panic recovery, access log, metrics, CORS.
func Base(logger *slog.Logger, rec httpRecorder, cors config.CORSConfig) chi.Middlewares {
	return chi.Middlewares{
		RequestID(),
		Recovery(logger),
		Logger(logger),
		Metrics(rec),
		CORS(cors),
	}
}
