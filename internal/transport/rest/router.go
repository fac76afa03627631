package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
	"github.com/bhagyarekha373/Reuse-Hub/internal/transport/middleware"
	"github.com/bhagyarekha373/Reuse-Hub/pkg/ctxutil"
)

// APIPrefix is the mount point of the JSON API.
const APIPrefix = "/api/v1"

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, string, error)
}

type httpRecorder interface {
	ObserveHTTP(method, route string, status int, d time.Duration)
}

// RouterDeps collects everything NewRouter wires together.
type RouterDeps struct {
	Logger  *slog.Logger
	Version string

	Server    config.ServerConfig
	CORS      config.CORSConfig
	RateLimit config.RateLimitConfig
	Market    config.MarketConfig
	// MaxUploadBytes bounds a single image.
	MaxUploadBytes int64

	// Limiter is nil when rate limiting is disabled.
	Limiter *middleware.RateLimiter
	Tokens  tokenValidator
	Metrics httpRecorder
	// MetricsHandler serves /metrics. Nil leaves the route unmounted.
	MetricsHandler http.Handler
	// Media serves stored images below /media. Nil for remote storage.
	Media http.Handler

	DB    pinger
	Cache pinger

	Auth       authService
	Items      catalogService
	Uploads    mediaService
	Orders     orderingService
	Profiles   profileService
	Comments   commentService
	Categories categoryService
}

// NewRouter builds the HTTP handler for the whole service.
//
// Middleware order: RealIP (trusted proxies only), RequestID, Recovery,
// Logger, Metrics, CORS, then Auth and rate limits on the API subtree.
func NewRouter(deps *RouterDeps) http.Handler {
	log := deps.Logger
	r := chi.NewRouter()

	if deps.Server.TrustProxy {
		r.Use(chimw.RealIP)
	}
	r.Use(middleware.Base(log, deps.Metrics, deps.CORS)...)
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, ErrorResponse{Error: "Not found", Code: CodeNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "Method not allowed", Code: CodeBadRequest})
	})

	health := NewHealthHandler(deps.DB, deps.Cache, deps.Version)
	r.Get("/live", health.Live)
	r.Get("/ready", health.Ready)
	r.Get("/health", health.Health)
	if deps.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", deps.MetricsHandler)
	}
	if deps.Media != nil {
		r.Mount("/media", http.StripPrefix("/media", deps.Media))
	}

	authH := NewAuthHandler(deps.Auth, log)
	itemH := NewItemHandler(deps.Items, log, deps.Market.CurrencySymbol, deps.MaxUploadBytes)
	uploadH := NewUploadHandler(deps.Uploads, log, deps.MaxUploadBytes)
	orderH := NewOrderHandler(deps.Orders, log)
	profileH := NewProfileHandler(deps.Profiles, deps.Items.Viewer, log, deps.Market.CurrencySymbol)
	commentH := NewCommentHandler(deps.Comments, log)
	categoryH := NewCategoryHandler(deps.Categories, log)

	general, strict := passThrough, passThrough
	if deps.Limiter != nil {
		general = deps.Limiter.Limit(deps.RateLimit.RequestsPerMin)
		strict = deps.Limiter.Limit(deps.RateLimit.AuthPerMin)
	}

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(middleware.Auth(deps.Tokens))
		r.Use(general)

		r.Route("/auth", func(r chi.Router) {
			r.With(strict).Post("/signup", authH.SignUp)
			r.With(strict).Post("/login", authH.SignIn)
			r.With(strict).Post("/refresh", authH.Refresh)
			r.With(requireIdentity).Post("/logout", authH.SignOut)
			r.With(requireIdentity).Get("/session", authH.Session)
		})

		r.Get("/categories", categoryH.List)

		r.Route("/items", func(r chi.Router) {
			r.Get("/", itemH.List)
			r.Get("/featured", itemH.Featured)
			r.Get("/{id}", itemH.Get)
			r.Get("/{id}/comments", commentH.List)

			r.Group(func(r chi.Router) {
				r.Use(requireIdentity)
				r.Post("/", itemH.Create)
				r.Put("/{id}", itemH.Update)
				r.Delete("/{id}", itemH.Delete)
				r.Post("/{id}/comments", commentH.Add)
				r.Post("/{id}/orders", orderH.Place)
			})
		})

		r.With(requireIdentity).Post("/uploads", uploadH.Upload)

		r.Route("/orders", func(r chi.Router) {
			r.Use(requireIdentity)
			r.Get("/", orderH.ListMine)
			r.Get("/purchases", orderH.Purchases)
			r.Get("/sales", orderH.Sales)
			r.Get("/{id}", orderH.Get)
			r.Post("/{id}/advance", orderH.Advance)
		})

		r.Route("/profiles", func(r chi.Router) {
			r.With(requireIdentity).Get("/me", profileH.Me)
			r.With(requireIdentity).Put("/me", profileH.Update)
			r.Get("/{id}", profileH.Public)
		})
	})

	return r
}

// requireIdentity rejects anonymous requests before any body is read.
func requireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := ctxutil.UserIDFromCtx(r.Context()); !ok {
			writeError(w, http.StatusUnauthorized, ErrorResponse{
				Error:    "Please login to continue",
				Code:     CodeUnauthenticated,
				Redirect: RedirectLogin,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func passThrough(next http.Handler) http.Handler { return next }
