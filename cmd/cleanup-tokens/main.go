// Command cleanup-tokens deletes expired and revoked refresh tokens. It is
// intended to be invoked by an external cron job.
//
// Usage:
//
//	cleanup-tokens
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/account"
	"github.com/heartmarshall/localbiz-backend/internal/adapter/postgres/token"
	"github.com/heartmarshall/localbiz-backend/internal/app"
	"github.com/heartmarshall/localbiz-backend/internal/auth"
	"github.com/heartmarshall/localbiz-backend/internal/config"
	authsvc "github.com/heartmarshall/localbiz-backend/internal/service/auth"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
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

	svc := authsvc.NewService(
		logger,
		account.New(pool),
		token.New(pool),
		postgres.NewTxManager(pool),
		auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		cfg.Auth,
	)

	deleted, err := svc.CleanupExpiredTokens(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		pool.Close()
		os.Exit(1)
	}

	logger.Info("refresh token cleanup completed", slog.Int64("deleted", deleted))
}
