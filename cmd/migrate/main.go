// Command migrate applies or reverts the schema migration set.
//
// Usage:
//
//	migrate up
//	migrate down
//	migrate down-to <version>
//	migrate status
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/receptionist-backend/internal/app"
	"github.com/heartmarshall/receptionist-backend/internal/config"
	"github.com/heartmarshall/receptionist-backend/internal/migrations"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: migrate up|down|down-to <version>|status")
		os.Exit(2)
	}

	logger := app.NewLogger(config.LogConfig{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: envOr("LOG_FORMAT", "text"),
	})

	if err := run(os.Args[1], os.Args[2:], logger); err != nil {
		logger.Error("migrate failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cmd string, args []string, logger *slog.Logger) error {
	dsn := os.Getenv("DATABASE_DSN")
	if dsn == "" {
		return fmt.Errorf("DATABASE_DSN environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	provider, err := migrations.NewProvider(db, logger)
	if err != nil {
		return err
	}

	switch cmd {
	case "up":
		results, err := provider.Up(ctx)
		logResults(logger, results)
		return err
	case "down":
		result, err := provider.Down(ctx)
		if result != nil {
			logResults(logger, []*goose.MigrationResult{result})
		}
		return err
	case "down-to":
		if len(args) != 1 {
			return fmt.Errorf("down-to requires a target version")
		}
		version, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", args[0], err)
		}
		results, err := provider.DownTo(ctx, version)
		logResults(logger, results)
		return err
	case "status":
		statuses, err := provider.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			applied := "pending"
			if s.State == goose.StateApplied {
				applied = s.AppliedAt.Format(time.RFC3339)
			}
			fmt.Printf("%5d  %s\n", s.Source.Version, applied)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func logResults(logger *slog.Logger, results []*goose.MigrationResult) {
	for _, r := range results {
		logger.Info("migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("direction", r.Direction),
			slog.Duration("duration", r.Duration),
		)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
