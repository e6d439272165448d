package main

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

	"github.com/google/uuid"

	"github.com/example/content-assistant/internal/application"
	"github.com/example/content-assistant/internal/config"
	httptransport "github.com/example/content-assistant/internal/http"
	"github.com/example/content-assistant/internal/logging"
	"github.com/example/content-assistant/internal/persistence/sqlite"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "assistant:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(cfg.LogLevel))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storage, err := sqlite.Open(cfg.SQLiteDSN)
	if err != nil {
		return fmt.Errorf("open sqlite storage: %w", err)
	}
	defer func() {
		if closeErr := storage.Close(); closeErr != nil {
			logger.Error("closing storage", "error", closeErr)
		}
	}()

	if err := storage.Migrate(ctx); err != nil {
		return fmt.Errorf("migrate sqlite storage: %w", err)
	}

	idGenerator := uuid.NewString
	now := time.Now

	contentService := application.NewContentService(storage, storage, nil, idGenerator, now, logger)
	brandService := application.NewBrandService(storage, idGenerator, now, logger)
	planService := application.NewPlanService(storage, storage, storage, storage, nil, idGenerator, now, logger)
	scheduleService := application.NewScheduleService(storage, storage, idGenerator, now, logger)
	alarmService := application.NewAlarmService(storage, nil, loggingSoundPlayer{logger: logger}, loggingNotifier{logger: logger}, idGenerator, now, logger)

	router := httptransport.NewRouter(httptransport.RouterConfig{
		Content:   httptransport.NewContentHandler(contentService, cfg.HistoryLimit, logger),
		Brands:    httptransport.NewBrandHandler(brandService, logger),
		Plans:     httptransport.NewPlanHandler(planService, logger),
		Schedules: httptransport.NewScheduleHandler(scheduleService, logger),
		Alarms:    httptransport.NewAlarmHandler(alarmService, logger),
		Middleware: []func(http.Handler) http.Handler{
			httptransport.RequestLogger(logger),
			httptransport.RequireUser(logger),
		},
	})

	go alarmService.Run(ctx, cfg.AlarmCheckInterval)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown", "error", err)
		}
	}()

	logger.Info("assistant listening",
		"addr", server.Addr,
		"alarm_check_interval", cfg.AlarmCheckInterval.String(),
	)

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve http: %w", err)
	}

	<-shutdownDone
	return nil
}

// loggingSoundPlayer stands in for the browser audio channel. A deployment
// with a real delivery mechanism swaps this for its own implementation.
type loggingSoundPlayer struct {
	logger *slog.Logger
}

func (p loggingSoundPlayer) Play() {
	p.logger.Info("alarm sound")
}

type loggingNotifier struct {
	logger *slog.Logger
}

func (n loggingNotifier) Notify(title, body string) {
	n.logger.Info("alarm notification", "title", title, "body", body)
}
