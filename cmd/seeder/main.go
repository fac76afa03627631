// Command seeder fills the marketplace with demo categories, sellers and
// listings. Listings go through the catalog service, so every seed passes
// the same validation as user input. Running it twice is safe.
//
// Flags:
//
//	--phase          comma-separated list of phases to run (default: all)
//	--dry-run        validate the dataset without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/cache/redis"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/authmethod"
	categoryrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/category"
	itemrepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/item"
	profilerepo "github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/profile"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/token"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/user"
	"github.com/bhagyarekha373/Reuse-Hub/internal/app"
	"github.com/bhagyarekha373/Reuse-Hub/internal/app/seeder"
	"github.com/bhagyarekha373/Reuse-Hub/internal/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
	"github.com/bhagyarekha373/Reuse-Hub/internal/metrics"
	authsvc "github.com/bhagyarekha373/Reuse-Hub/internal/service/auth"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/catalog"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/category"
	"github.com/bhagyarekha373/Reuse-Hub/internal/service/media"
	"github.com/bhagyarekha373/Reuse-Hub/internal/session"
)

// Compile-time interface assertions.
var (
	_ seeder.CategoryStore = (*categoryrepo.Repo)(nil)
	_ seeder.Accounts      = (*authsvc.Service)(nil)
	_ seeder.Listings      = (*catalog.Service)(nil)
)

func main() {
	phaseFlag := flag.String("phase", "", "comma-separated phases to run (default: all)")
	dryRunFlag := flag.Bool("dry-run", false, "validate the dataset without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	dataset, err := seeder.LoadDataset(seederCfg.DatasetPath)
	if err != nil {
		logger.Error("load dataset", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var phases []string
	if *phaseFlag != "" {
		phases = strings.Split(*phaseFlag, ",")
		for i := range phases {
			phases[i] = strings.TrimSpace(phases[i])
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	store, _, err := app.NewObjectStore(appCfg.Storage)
	if err != nil {
		logger.Error("open storage", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The seeder acts as one seller at a time. Sign-in events from the auth
	// service move the holder to the next seller.
	holder := session.NewHolder(nil)

	profiles := profilerepo.New(pool)
	categories := categoryrepo.New(pool)
	tx := postgres.NewTxManager(pool)
	jwt := auth.NewJWTManager(appCfg.Auth.JWTSecret, appCfg.Auth.JWTIssuer, appCfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, user.New(pool), profiles, token.New(pool), authmethod.New(pool),
		tx, jwt, holder, appCfg.Auth).WithObserver(holder)
	mediaService := media.NewService(logger, store, holder, metrics.Discard{}, appCfg.Storage.MaxUploadBytes)
	catalogService := catalog.NewService(logger, itemrepo.New(pool), categories, profiles, mediaService,
		tx, holder, metrics.Discard{}, appCfg.Market)

	var invalidator seeder.CacheInvalidator
	if appCfg.Redis.Enabled() {
		client, err := redis.Connect(ctx, appCfg.Redis)
		if err != nil {
			logger.Warn("redis unavailable, category cache not invalidated", slog.String("error", err.Error()))
		} else {
			defer client.Close()
			invalidator = category.NewService(logger, categories, redis.New(client, app.CacheKeyPrefix), appCfg.Redis.CacheTTL)
		}
	}

	pipeline := seeder.NewPipeline(logger, categories, invalidator, authService, catalogService, *seederCfg)
	if err := pipeline.Run(ctx, dataset, phases); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
