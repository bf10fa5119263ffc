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

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/recruitme/recruitme-go/internal/config"
	"github.com/recruitme/recruitme-go/internal/crypto"
	"github.com/recruitme/recruitme-go/internal/handler"
	"github.com/recruitme/recruitme-go/internal/logger"
	"github.com/recruitme/recruitme-go/internal/metrics"
	"github.com/recruitme/recruitme-go/internal/middleware"
	"github.com/recruitme/recruitme-go/internal/repository"
	"github.com/recruitme/recruitme-go/internal/service"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(os.Stdout, cfg.LogLevel, cfg.IsProduction())
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repository.NewDB(ctx, cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if cfg.MigrateOnStart {
		if err := repository.Migrate(db, cfg.DatabaseDriver, cfg.DatabaseDSN); err != nil {
			return err
		}
		log.Info("database migrated", "driver", cfg.DatabaseDriver)
	}

	tokens := crypto.NewTokenCodec(crypto.TokenConfig{Secret: cfg.JWTSecret, Expiry: cfg.JWTExpiry})

	users := repository.NewUserRepository(db)
	companies := repository.NewCompanyRepository(db)
	programs := repository.NewProgramRepository(db)
	enrollments := repository.NewEnrollmentRepository(db)
	saved := repository.NewSavedProgramRepository(db)

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		RPS:             cfg.AuthRateRPS,
		Burst:           cfg.AuthRateBurst,
		CleanupInterval: time.Minute,
	})
	defer limiter.Stop()

	router := handler.NewRouter(handler.Deps{
		Auth:          service.NewAuthService(users, tokens),
		Companies:     service.NewCompanyService(companies, tokens),
		Programs:      service.NewProgramService(programs, companies),
		Enrollments:   service.NewEnrollmentService(enrollments, users, programs),
		SavedPrograms: service.NewSavedProgramService(saved, users, programs),
		Tokens:        tokens,
		RateLimiter:   limiter,
		Logger:        log,
		FrontendURL:   cfg.FrontendURL,
		TrustProxy:    cfg.TrustProxy,
		Metrics:       metrics.NewCollector(reg),
		Gatherer:      reg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	log.Info("server stopped")
	return nil
}
