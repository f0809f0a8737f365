package main

import (
	"context"
	"errors"
	"flag"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/api"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/adapter/backend"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/messagebus"
	plannerapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/planner"
	reminderapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/reminder"
	wellnessapp "github.com/Hammad-sajid/SPA-FYP-sub001/internal/app/wellness"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/config"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain"
	"github.com/Hammad-sajid/SPA-FYP-sub001/internal/domain/reminder"
	"github.com/joho/godotenv"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	// .env is optional
	_ = godotenv.Load()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	inbox := reminderapp.NewInbox()
	bus.Register(reminder.EventFired, inbox.HandleFired)
	bus.Register(reminder.EventFired, func(event domain.Event) error {
		fired, ok := event.(*reminder.FiredEvent)
		if !ok {
			return nil
		}
		logger.Debug("reminder fired",
			"owner_id", fired.Toast.OwnerID,
			"reminder_id", fired.Toast.ReminderID,
		)
		return nil
	})

	client := backend.New(
		backend.BaseURL(cfg.Backend.BaseURL),
		backend.HTTPClient(&http.Client{Timeout: cfg.Backend.Timeout}),
		backend.Logger(logger.With("component", "backend")),
		backend.SessionCookie(cfg.Backend.SessionCookie),
		backend.Breaker(backend.BreakerSettings{
			MaxRequests:      cfg.Backend.Breaker.MaxRequests,
			Interval:         cfg.Backend.Breaker.Interval,
			Timeout:          cfg.Backend.Breaker.Timeout,
			FailureThreshold: cfg.Backend.Breaker.FailureThreshold,
		}),
	)

	reminders := reminderapp.NewService(logger.With("component", "reminders"), reminderapp.SystemClock(), bus, inbox)

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.Backend(client),
		api.WellnessService(wellnessapp.New(logger, client)),
		api.PlannerService(plannerapp.New(logger, client, reminders, cfg.Location())),
		api.ReminderService(reminders),
		api.SessionCookie(cfg.Backend.SessionCookie),
		api.Location(cfg.Location()),
	)

	ctx := context.Background()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		logger.Info("server started", "host", cfg.Server.Host, "port", cfg.Server.Port, "backend", cfg.Backend.BaseURL)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server closed with unexpected error", "error", err)
			}
		}
	}

	reminders.Close()
	bus.Close()
	logger.Info("server shutdown")
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
