// Package main loads development fixtures from a TOML file into the database.
// It expects a freshly migrated database; re-running it fails on the unique
// user emails rather than duplicating data.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"

	"github.com/pkordes/studiobook/backend/internal/config"
	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/logger"
	"github.com/pkordes/studiobook/backend/internal/repo"
	"github.com/pkordes/studiobook/backend/internal/service"
	"github.com/pkordes/studiobook/backend/migrations"
)

func main() {
	file := flag.String("file", "seeds/dev.toml", "path to the TOML fixture file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stdout)

	if err := run(context.Background(), cfg, *file, log); err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed complete", "file", *file)
}

func run(ctx context.Context, cfg config.Config, path string, log *slog.Logger) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open fixtures: %w", err)
	}
	defer f.Close()

	fixtures, err := parseSeed(f)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("create pool: %w", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	_, err = migrations.Up(ctx, db)
	db.Close()
	if err != nil {
		return err
	}

	dst := &poolSeeder{
		users:        repo.NewUserRepo(pool),
		listings:     service.NewListingService(repo.NewListingRepo(pool), nil, log),
		reservations: service.NewReservationService(repo.NewReservationRepo(pool), nil, nil, log),
	}
	return apply(ctx, fixtures, dst, time.Now(), log)
}

// poolSeeder writes users through the repo and everything else through the
// services so fixtures pass the same validation as API traffic.
type poolSeeder struct {
	users        repo.UserRepo
	listings     *service.ListingService
	reservations *service.ReservationService
}

func (p *poolSeeder) CreateUser(ctx context.Context, u domain.User) (domain.User, error) {
	return p.users.Create(ctx, u)
}

func (p *poolSeeder) CreateSession(ctx context.Context, s domain.Session) error {
	return p.users.CreateSession(ctx, s)
}

func (p *poolSeeder) CreateListing(ctx context.Context, ownerID uuid.UUID, l domain.Listing) (domain.Listing, error) {
	return p.listings.Create(ctx, ownerID, l)
}

func (p *poolSeeder) CreateReservation(ctx context.Context, req domain.ReservationRequest) (domain.Listing, error) {
	return p.reservations.Create(ctx, req)
}
