// Package main is the entry point for the studio booking API server.
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

	"github.com/pkordes/studiobook/backend/internal/cache"
	"github.com/pkordes/studiobook/backend/internal/config"
	"github.com/pkordes/studiobook/backend/internal/events"
	"github.com/pkordes/studiobook/backend/internal/handler"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
	"github.com/pkordes/studiobook/backend/internal/logger"
	"github.com/pkordes/studiobook/backend/internal/middleware"
	"github.com/pkordes/studiobook/backend/internal/repo"
	"github.com/pkordes/studiobook/backend/internal/service"
	"github.com/pkordes/studiobook/backend/migrations"
	"github.com/pkordes/studiobook/backend/spec"
)

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use the default stderr logger before ours is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)
	slog.SetDefault(log)

	// --- Database ---------------------------------------------------------
	// New() does not open connections immediately; the first query does.
	pool, err := pgxpool.New(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Verify the DB is reachable before accepting traffic.
	if err := pool.Ping(context.Background()); err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	log.Info("database connection established")

	if cfg.MigrateOnStart {
		if err := migrate(context.Background(), pool, log); err != nil {
			log.Error("migration failed", "error", err)
			os.Exit(1)
		}
	}

	// --- Optional infrastructure -----------------------------------------
	var blockedDates service.BlockedDatesCache
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		blockedDates = cache.NewBlockedDates(rdb, cfg.BlockedDatesTTL)
		log.Info("blocked dates cache enabled", "ttl", cfg.BlockedDatesTTL)
	}

	var publisher service.EventPublisher
	if len(cfg.KafkaBrokers) > 0 {
		kafka, err := events.DialKafka(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("failed to connect to kafka", "error", err)
			os.Exit(1)
		}
		defer kafka.Close()
		publisher = kafka
		log.Info("reservation events enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// --- Services ---------------------------------------------------------
	listingRepo := repo.NewListingRepo(pool)
	reservationRepo := repo.NewReservationRepo(pool)
	userRepo := repo.NewUserRepo(pool)

	listingSvc := service.NewListingService(listingRepo, blockedDates, log)
	reservationSvc := service.NewReservationService(reservationRepo, blockedDates, publisher, log)
	authSvc := service.NewAuthService(userRepo)

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer
	// → CORS → body limit → authentication.
	// RequestID generates a unique trace ID per request.
	// RealIP sets r.RemoteAddr from X-Forwarded-For / X-Real-IP (safe behind a proxy).
	// SlogLogger writes one structured log line per request.
	// Recoverer catches panics and returns HTTP 500 instead of crashing.
	// The authenticator only attaches a user; handlers decide whether one is required.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(middleware.NewAuthenticator(authSvc, log))

	r.Get("/openapi.yaml", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		_, _ = w.Write(spec.OpenAPI)
	})

	// gen.NewStrictHandlerWithOptions adapts our StrictServerInterface
	// implementation to the lower-level ServerInterface chi expects.
	srv := handler.NewServer(listingSvc, reservationSvc, log)
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(log))
	gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})

	// --- HTTP Server ------------------------------------------------------
	// Explicit timeouts prevent slowloris and resource exhaustion attacks.
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(ctx); err != nil {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// migrate applies pending goose migrations over a database/sql handle that
// borrows connections from the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool, log *slog.Logger) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	results, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	for _, res := range results {
		log.Info("migration applied", "version", res.Source.Version, "path", res.Source.Path, "duration", res.Duration)
	}
	return nil
}
