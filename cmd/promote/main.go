// Command promote sets an account's role to admin by email address.
// It is used to bootstrap the first administrator, so it is not audited.
//
// Usage:
//
//	promote --email=user@example.com
//
// Exit codes: 0 = success, 1 = error or no such account.
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

	"github.com/joho/godotenv"

	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/localbiz-backend/internal/app"
	"github.com/heartmarshall/localbiz-backend/internal/config"
	"github.com/heartmarshall/localbiz-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of the account to promote to admin")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	_ = godotenv.Load()

	cfg, err := config.Load()
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

	acc, err := account.New(pool).SetRoleByEmail(ctx, *email, domain.UserRoleAdmin)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Error("no account with this email", slog.String("email", *email))
		} else {
			logger.Error("update role", slog.String("error", err.Error()))
		}
		pool.Close()
		os.Exit(1)
	}

	logger.Info("account promoted to admin",
		slog.String("account_id", acc.ID.String()),
		slog.String("email", acc.Email),
	)
}
