// Command promote changes a user's role by email address. It is used to
// bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com [--role=admin|user]
//
// Requires DATABASE_DSN environment variable to be set.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/receptionist-backend/internal/adapter/postgres"
	tokenrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/receptionist-backend/internal/app"
	"github.com/heartmarshall/receptionist-backend/internal/config"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	usersvc "github.com/heartmarshall/receptionist-backend/internal/service/user"
)

func main() {
	email := flag.String("email", "", "email of the user to update")
	role := flag.String("role", string(domain.UserRoleAdmin), "new role: admin or user")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com [--role=admin|user]")
		os.Exit(2)
	}

	cfg, err := config.LoadTool()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	svc := usersvc.NewService(logger, userrepo.New(pool), tokenrepo.New(pool), postgres.NewTxManager(pool), cfg.BcryptCost)

	u, err := svc.SetRole(ctx, *email, domain.UserRole(*role))
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fmt.Printf("No user found with email %q.\n", *email)
		os.Exit(1)
	case err != nil:
		logger.Error("update role", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("User %q is now %s.\n", u.EmailOrEmpty(), u.Role)
}
