// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job.
//
// Usage:
//
//	cleanup-tokens [--older-than=24h]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/receptionist-backend/internal/app"
	"github.com/heartmarshall/receptionist-backend/internal/config"
	authsvc "github.com/heartmarshall/receptionist-backend/internal/service/auth"
)

func main() {
	olderThan := flag.Duration("older-than", 0, "keep tokens that expired or were revoked within this window")
	flag.Parse()

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	// Only the token store is touched; the remaining collaborators stay nil.
	svc := authsvc.NewService(logger, nil, tokenrepo.New(pool), nil, postgres.NewTxManager(pool), nil, 0, cfg.BcryptCost)

	deleted, err := svc.CleanupExpiredTokens(ctx, *olderThan)
	if err != nil {
		os.Exit(1)
	}

	fmt.Printf("Deleted %d expired/revoked refresh tokens.\n", deleted)
}
