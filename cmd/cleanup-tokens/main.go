// Command cleanup-tokens purges refresh tokens that expired or were revoked
// by logout or rotation. Meant to run from cron next to the API; it reads
// the same environment as the server.
//
// Flags:
//
//	--timeout  upper bound for the whole run (default 30s)
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres"
	"github.com/bhagyarekha373/Reuse-Hub/internal/adapter/postgres/token"
	"github.com/bhagyarekha373/Reuse-Hub/internal/app"
	"github.com/bhagyarekha373/Reuse-Hub/internal/config"
)

func main() {
	timeout := flag.Duration("timeout", 30*time.Second, "upper bound for the whole run")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	started := time.Now()
	n, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("purge refresh tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("refresh tokens purged",
		slog.Int("deleted", n),
		slog.Duration("took", time.Since(started)),
	)
}
