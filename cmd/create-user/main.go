// Command create-user registers a local account, or resets the password of
// an existing one.
//
// Usage:
//
//	create-user --email=owner@example.com --name="Owner" [--role=user|admin]
//	create-user --email=owner@example.com --reset
//
// The password is read from the USER_PASSWORD environment variable so it
// never shows up in shell history. Requires DATABASE_DSN.
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
	userrepo "github.com/heartmarshall/receptionist-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/receptionist-backend/internal/app"
	"github.com/heartmarshall/receptionist-backend/internal/config"
	"github.com/heartmarshall/receptionist-backend/internal/domain"
	usersvc "github.com/heartmarshall/receptionist-backend/internal/service/user"
)

func main() {
	email := flag.String("email", "", "account email")
	name := flag.String("name", "", "display name")
	role := flag.String("role", string(domain.UserRoleUser), "role: user or admin")
	reset := flag.Bool("reset", false, "reset the password of an existing account")
	flag.Parse()

	password := os.Getenv("USER_PASSWORD")
	if *email == "" || password == "" {
		fmt.Fprintln(os.Stderr, "Usage: USER_PASSWORD=... create-user --email=... --name=... [--role=user|admin] [--reset]")
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

	if *reset {
		if err := svc.ResetPassword(ctx, *email, password); err != nil {
			logger.Error("reset password", slog.String("error", err.Error()))
			os.Exit(1)
		}
		fmt.Printf("Password of %q reset.\n", *email)
		return
	}

	u, err := svc.Create(ctx, usersvc.CreateInput{
		Email:    *email,
		Name:     *name,
		Password: password,
		Role:     domain.UserRole(*role),
	})
	if err != nil {
		for _, fe := range domain.Fields(err) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", fe.Field, fe.Message)
		}
		logger.Error("create user", slog.String("error", err.Error()))
		os.Exit(1)
	}

	fmt.Printf("User %s created (%s).\n", u.ID, u.Role)
}
