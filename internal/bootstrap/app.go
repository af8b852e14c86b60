// Package bootstrap wires the application together: configuration, store,
// event bus, services and the HTTP server, plus graceful shutdown.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fitquest/FitQuest_Go/internal/challenge"
	"github.com/fitquest/FitQuest_Go/internal/config"
	"github.com/fitquest/FitQuest_Go/internal/database/memory"
	"github.com/fitquest/FitQuest_Go/internal/event"
	"github.com/fitquest/FitQuest_Go/internal/handler"
	"github.com/fitquest/FitQuest_Go/internal/meal"
	"github.com/fitquest/FitQuest_Go/internal/planner"
	"github.com/fitquest/FitQuest_Go/internal/progress"
	"github.com/fitquest/FitQuest_Go/internal/rpg"
	"github.com/fitquest/FitQuest_Go/internal/server"
	"github.com/fitquest/FitQuest_Go/internal/user"
	"github.com/fitquest/FitQuest_Go/internal/workout"
)

const shutdownTimeout = 10 * time.Second

// Run boots the application and blocks until shutdown
func Run(cfg *config.Config) error {
	handler.InitValidator()

	store := memory.NewStore()
	if cfg.SeedData {
		store.Seed()
		slog.Info(LogMsgStoreSeeded)
	}

	bus := event.NewMemoryBus()
	if err := RegisterEventHandlers(bus); err != nil {
		return err
	}

	var generator planner.Generator
	if cfg.GeminiAPIKey != "" {
		generator = planner.NewGeminiClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		slog.Info(LogMsgPlannerLive, "model", cfg.GeminiModel)
	} else {
		slog.Info(LogMsgPlannerFallback)
	}

	services := server.Services{
		User:      user.NewService(store, bus),
		Workout:   workout.NewService(store),
		Meal:      meal.NewService(store),
		Progress:  progress.NewService(store),
		Challenge: challenge.NewService(store, store, bus),
		RPG:       rpg.NewService(store, bus),
		Planner:   planner.NewService(generator, bus),
	}

	srv := server.NewServer(cfg.Port, nil, store, services)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-quit:
		slog.Info(LogMsgShuttingDownServer, "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	GracefulShutdown(ctx, srv)
	return nil
}
