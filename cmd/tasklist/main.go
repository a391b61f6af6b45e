// Command tasklist starts the to-do list HTTP server.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	adapthttp "tasklist/internal/adapter/http"
	"tasklist/internal/adapter/postgres"
	"tasklist/internal/app"
)

func main() {
	addr := env("ADDR", ":8080")
	sessionTTL := envDuration("SESSION_TTL", 24*time.Hour)

	logger, _ := zap.NewProduction()
	defer func() { _ = logger.Sync() }()

	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		logger.Fatal("DATABASE_URL is required")
	}

	db, err := postgres.Open(connStr)
	if err != nil {
		logger.Fatal("db open", zap.Error(err))
	}
	defer func() { _ = db.Close() }()

	sessionRepo := postgres.NewSessionRepo(db)
	authSvc := app.NewAuthService(postgres.NewAccountRepo(db), sessionRepo, sessionTTL)
	listSvc := app.NewListService(postgres.NewListRepo(db))
	itemSvc := app.NewItemService(postgres.NewItemRepo(db))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go sweepSessions(ctx, authSvc, logger)

	srv := &http.Server{
		Addr:              addr,
		Handler:           adapthttp.New(authSvc, listSvc, itemSvc, logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", addr))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("serve", zap.Error(err))
	}
}

// sweepSessions periodically deletes expired sessions until ctx ends.
func sweepSessions(ctx context.Context, auth *app.AuthService, logger *zap.Logger) {
	t := time.NewTicker(time.Hour)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			if err := auth.SweepExpired(ctx); err != nil {
				logger.Warn("session sweep", zap.Error(err))
			}
		}
	}
}

func env(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
