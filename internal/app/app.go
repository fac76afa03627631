package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/cache/redis"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/authmethod"
	categoryrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/category"
	commentrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/comment"
	itemrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/item"
	orderrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/order"
	profilerepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/profile"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/token"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/user"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/storage/local"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/storage/supabase"
	"github.com/bhagyarekha373/Reuse-Hub/internal/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
	"github.com/bhagyarekha373/Reuse-Hub/internal/metrics"
	authsvc "github.com/bhagyarekha373/Reuse-Hub/internal/service/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/category"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/comment"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/ordering"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/profile"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
	"github.com/bhagyarekha373/Reuse-Hub/internal/transport/middleware"
	"github.com/bhagyarekha373/Reuse-Hub/internal/transport/rest"
	"github.com/bhagyarekha373/Reuse-Hub/migrations"
)

// CacheKeyPrefix namespaces every Redis key written by this service.
const CacheKeyPrefix = "reusehub:"

// kvCache is the optional Redis cache. It stays nil when Redis is not
// configured so consumers see a true nil interface.
type kvCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Ping(ctx context.Context) error
}

// ObjectStore is where item images are written.
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) error
	PublicURL(key string) string
}

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL and the optional Redis cache, wires every service behind the
// REST router and serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.Bool("redis", cfg.Redis.Enabled()),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		n, err := postgres.Migrate(ctx, cfg.Database.DSN, migrations.FS)
		if err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		logger.Info("migrations applied", slog.Int("count", n))
	}

	var cache kvCache
	if cfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer client.Close()
		cache = redis.New(client, CacheKeyPrefix)
	}

	store, mediaHandler, err := NewObjectStore(cfg.Storage)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	// Repositories
	users := user.New(pool)
	profiles := profilerepo.New(pool)
	tokens := token.New(pool)
	authMethods := authmethod.New(pool)
	categories := categoryrepo.New(pool)
	items := itemrepo.New(pool)
	orders := orderrepo.New(pool)
	comments := commentrepo.New(pool)
	tx := postgres.NewTxManager(pool)

	// Services
	sessions := session.RequestScoped{}
	jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authService := authsvc.NewService(logger, users, profiles, tokens, authMethods, tx, jwt, sessions, cfg.Auth)
	mediaService := media.NewService(logger, store, sessions, collector, cfg.Storage.MaxUploadBytes)
	catalogService := catalog.NewService(logger, items, categories, profiles, mediaService, tx, sessions, collector, cfg.Market)
	orderingService := ordering.NewService(logger, orders, items, sessions, collector)
	profileService := profile.NewService(logger, profiles, catalogService, sessions)
	commentService := comment.NewService(logger, comments, sessions)
	categoryService := category.NewService(logger, categories, cache, cfg.Redis.CacheTTL)

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	deps := &rest.RouterDeps{
		Logger:         logger,
		Version:        Version,
		Server:         cfg.Server,
		CORS:           cfg.CORS,
		RateLimit:      cfg.RateLimit,
		Market:         cfg.Market,
		MaxUploadBytes: cfg.Storage.MaxUploadBytes,
		Limiter:        limiter,
		Tokens:         authService,
		Metrics:        collector,
		MetricsHandler: metrics.Handler(reg),
		Media:          mediaHandler,
		DB:             pool,
		Cache:          cache,
		Auth:           authService,
		Items:          catalogService,
		Uploads:        mediaService,
		Orders:         orderingService,
		Profiles:       profileService,
		Comments:       commentService,
		Categories:     categoryService,
	}
	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      rest.NewRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if cfg.Auth.CleanupInterval > 0 {
		g.Go(func() error {
			runTokenCleanup(gctx, logger, authService, cfg.Auth.CleanupInterval)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped gracefully")
	return nil
}

// NewObjectStore builds the configured image store. The local driver also
// returns the handler that serves stored files.
func NewObjectStore(cfg config.StorageConfig) (ObjectStore, http.Handler, error) {
	switch cfg.Driver {
	case config.StorageSupabase:
		store, err := supabase.New(supabase.Config{
			BaseURL:    cfg.SupabaseURL,
			ServiceKey: cfg.SupabaseKey,
			Bucket:     cfg.Bucket,
			Timeout:    cfg.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("storage: %w", err)
		}
		return store, nil, nil
	default:
		store, err := local.New(cfg.LocalDir, cfg.PublicBaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("storage: %w", err)
		}
		return store, store.Handler(), nil
	}
}

type tokenCleaner interface {
	CleanupExpiredTokens(ctx context.Context) (int, error)
}

// runTokenCleanup purges expired refresh tokens every interval until ctx
// is cancelled.
func runTokenCleanup(ctx context.Context, logger *slog.Logger, c tokenCleaner, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := c.CleanupExpiredTokens(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
				continue
			}
			if n > 0 {
				logger.InfoContext(ctx, "expired tokens removed", slog.Int("count", n))
			}
		}
	}
}
