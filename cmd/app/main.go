package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tradi3/chatquest/internal/boss"
	"github.com/tradi3/chatquest/internal/config"
	"github.com/tradi3/chatquest/internal/economy"
	"github.com/tradi3/chatquest/internal/gamble"
	"github.com/tradi3/chatquest/internal/item"
	"github.com/tradi3/chatquest/internal/medic"
	"github.com/tradi3/chatquest/internal/quest"
	"github.com/tradi3/chatquest/internal/server"
	"github.com/tradi3/chatquest/internal/stats"
	"github.com/tradi3/chatquest/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	store, err := storage.Open(cfg.DataPath)
	if err != nil {
		slog.Error("Failed to open store", "path", cfg.DataPath, "error", err)
		os.Exit(1)
	}

	catalog, err := item.LoadCatalog(cfg.ItemsPath)
	if err != nil {
		slog.Error("Failed to load item catalog", "path", cfg.ItemsPath, "error", err)
		os.Exit(1)
	}
	slog.Info("Item catalog loaded", "season", catalog.Season, "pool", len(catalog.Pool), "stock", len(catalog.Stock))

	roller := item.NewRoller(catalog)
	svcs := server.Services{
		Quest:   quest.NewService(store, roller),
		Boss:    boss.NewService(store),
		Gamble:  gamble.NewService(store),
		Economy: economy.NewService(store, catalog),
		Medic:   medic.NewService(store),
		Stats:   stats.NewService(store),
	}

	srv := server.NewServer(cfg.Port, store, svcs)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
	defer cancel()
	if err := srv.Stop(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
