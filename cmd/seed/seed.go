package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/pkordes/studiobook/backend/internal/domain"
)

// seedFile is the TOML fixture layout.
type seedFile struct {
	Users    []seedUser    `toml:"users"`
	Listings []seedListing `toml:"listings"`
}

type seedUser struct {
	Name        string `toml:"name"`
	Email       string `toml:"email"`
	Token       string `toml:"token"`
	SessionDays int    `toml:"session_days"`
}

type seedListing struct {
	Owner                string            `toml:"owner"`
	Title                string            `toml:"title"`
	Price                float64           `toml:"price"`
	MinimumBookingLength float64           `toml:"minimum_booking_length"`
	CrewCount            int               `toml:"crew_count"`
	Area                 int               `toml:"area"`
	Reservations         []seedReservation `toml:"reservations"`
}

type seedReservation struct {
	User      string `toml:"user"`
	StartDate string `toml:"start_date"`
	EndDate   string `toml:"end_date"`
	StartTime string `toml:"start_time"`
	EndTime   string `toml:"end_time"`
}

// parseSeed decodes fixtures and checks that every owner and guest refers to
// a declared user. Unknown keys are rejected so typos do not pass silently.
func parseSeed(r io.Reader) (seedFile, error) {
	var s seedFile
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return seedFile{}, fmt.Errorf("decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return seedFile{}, fmt.Errorf("unknown keys: %v", undecoded)
	}

	emails := make(map[string]bool, len(s.Users))
	for _, u := range s.Users {
		if u.Email == "" {
			return seedFile{}, fmt.Errorf("user %q has no email", u.Name)
		}
		emails[u.Email] = true
	}
	for _, l := range s.Listings {
		if !emails[l.Owner] {
			return seedFile{}, fmt.Errorf("listing %q: unknown owner %q", l.Title, l.Owner)
		}
		for _, res := range l.Reservations {
			if !emails[res.User] {
				return seedFile{}, fmt.Errorf("listing %q: unknown guest %q", l.Title, res.User)
			}
		}
	}
	return s, nil
}

// seeder is what apply needs from the repos and services.
type seeder interface {
	CreateUser(ctx context.Context, u domain.User) (domain.User, error)
	CreateSession(ctx context.Context, s domain.Session) error
	CreateListing(ctx context.Context, ownerID uuid.UUID, l domain.Listing) (domain.Listing, error)
	CreateReservation(ctx context.Context, req domain.ReservationRequest) (domain.Listing, error)
}

// apply writes the fixtures in dependency order. Reservations go through the
// reservation writer, so their totals are computed exactly as in production.
func apply(ctx context.Context, s seedFile, dst seeder, now time.Time, log *slog.Logger) error {
	users := make(map[string]domain.User, len(s.Users))
	for _, su := range s.Users {
		u, err := dst.CreateUser(ctx, domain.User{Name: su.Name, Email: su.Email})
		if err != nil {
			return fmt.Errorf("user %s: %w", su.Email, err)
		}
		users[su.Email] = u
		if su.Token != "" {
			days := max(su.SessionDays, 1)
			session := domain.Session{Token: su.Token, UserID: u.ID, ExpiresAt: now.AddDate(0, 0, days)}
			if err := dst.CreateSession(ctx, session); err != nil {
				return fmt.Errorf("session for %s: %w", su.Email, err)
			}
		}
		log.Info("seeded user", "email", u.Email, "id", u.ID)
	}

	for _, sl := range s.Listings {
		listing, err := dst.CreateListing(ctx, users[sl.Owner].ID, domain.Listing{
			Title:                sl.Title,
			Price:                sl.Price,
			MinimumBookingLength: sl.MinimumBookingLength,
			CrewCount:            sl.CrewCount,
			Area:                 sl.Area,
		})
		if err != nil {
			return fmt.Errorf("listing %q: %w", sl.Title, err)
		}
		log.Info("seeded listing", "title", listing.Title, "id", listing.ID)

		for _, sr := range sl.Reservations {
			zero := 0.0
			updated, err := dst.CreateReservation(ctx, domain.ReservationRequest{
				ListingID:  listing.ID.String(),
				UserID:     users[sr.User].ID,
				StartDate:  sr.StartDate,
				EndDate:    sr.EndDate,
				StartTime:  sr.StartTime,
				EndTime:    sr.EndTime,
				TotalPrice: &zero,
				TotalHours: &zero,
			})
			if err != nil {
				return fmt.Errorf("listing %q reservation %s: %w", sl.Title, sr.StartDate, err)
			}
			created := updated.Reservations[len(updated.Reservations)-1]
			log.Info("seeded reservation", "listing", listing.Title, "start_date", created.StartDate, "total_price", created.TotalPrice)
		}
	}
	return nil
}
