// Package main is the entry point for the Planner API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/planner/internal/config"
	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler"
	"github.com/pkordes/planner/internal/middleware"
	"github.com/pkordes/planner/internal/notify"
	"github.com/pkordes/planner/internal/repo"
	"github.com/pkordes/planner/internal/service"
	"github.com/pkordes/planner/internal/telemetry"
	"github.com/pkordes/planner/migrations"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Tracing ----------------------------------------------------------
	shutdownTracing, err := telemetry.Setup(ctx, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", "error", err)
		}
	}()

	// --- Database ---------------------------------------------------------
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(ctx); err != nil {
		return err
	}
	logger.Info("database connection established")

	sqlDB := stdlib.OpenDBFromPool(pool)
	applied, err := migrations.Up(ctx, sqlDB)
	_ = sqlDB.Close()
	if err != nil {
		return err
	}
	logger.Info("migrations applied", "count", applied)

	// --- Notifications ----------------------------------------------------
	sender, err := newSender(cfg, logger)
	if err != nil {
		return err
	}
	dispatcher := notify.NewDispatcher(sender, logger, notify.Options{
		Timeout:     cfg.NotifyTimeout,
		Concurrency: cfg.NotifyConcurrency,
	})
	mailer := notify.NewTripMailer(dispatcher, notify.NewRenderer(cfg.Mail.Locale), cfg.APIBaseURL, logger)

	// --- Services ---------------------------------------------------------
	trips := repo.NewTripRepo(pool)
	participants := repo.NewParticipantRepo(pool)
	activities := repo.NewActivityRepo(pool)
	links := repo.NewLinkRepo(pool)
	clock := domain.SystemClock{}

	srv := handler.NewServer(handler.Services{
		Trips:        service.NewTripService(trips, participants, mailer, clock, logger),
		Participants: service.NewParticipantService(trips, participants, mailer, logger),
		Activities:   service.NewActivityService(trips, activities),
		Links:        service.NewLinkService(trips, links),
		Export:       service.NewExportService(trips, activities),
	}, cfg.WebBaseURL, logger)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Tracing → Logger →
	// Recoverer → CORS → body limit.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewTracing(telemetry.ServiceName))
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	handler.NewRouter(r, srv)

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	logger.Info("shutting down server")

	// Give in-flight requests, including invitation fan-outs, up to 15
	// seconds to complete.
	sctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(sctx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// newSender picks SMTP delivery when a relay is configured and logs emails otherwise.
func newSender(cfg config.Config, logger *slog.Logger) (notify.Sender, error) {
	if cfg.SMTP.Host == "" {
		logger.Warn("SMTP_HOST not set, emails will be logged instead of sent")
		return notify.NewLogSender(logger), nil
	}
	s, err := notify.NewSMTPSender(notify.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.Mail.FromName,
		FromAddress: cfg.Mail.FromAddress,
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}
