package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dmitrijs2005/gymtrack/internal/buildinfo"
	"github.com/dmitrijs2005/gymtrack/internal/logging"
	"github.com/dmitrijs2005/gymtrack/internal/server/auth"
	"github.com/dmitrijs2005/gymtrack/internal/server/config"
	"github.com/dmitrijs2005/gymtrack/internal/server/httpapi"
	"github.com/dmitrijs2005/gymtrack/internal/server/repositories/users"
	"github.com/dmitrijs2005/gymtrack/internal/server/storage"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	if err := run(); err != nil {
		log.Fatalf("%v", err)
	}
}

func run() error {
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := sql.Open("sqlite", cfg.DatabasePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := users.Migrate(ctx, db); err != nil {
		return err
	}

	avatars, err := storage.NewAvatarStore(cfg.AvatarDir)
	if err != nil {
		return err
	}

	tokens := auth.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)
	api := httpapi.NewServer(users.NewSQLiteRepository(db), tokens, avatars,
		cfg.AvatarMaxBytes, cfg.BcryptCost, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "devserver listening", "addr", cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
