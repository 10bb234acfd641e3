package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/studiobook/backend/internal/domain"
	"github.com/pkordes/studiobook/backend/internal/handler"
	"github.com/pkordes/studiobook/backend/internal/handler/gen"
	"github.com/pkordes/studiobook/backend/internal/middleware"
)

// mockListingServicer is a test double for handler.ListingServicer.
// Set only the method fields your test needs.
type mockListingServicer struct {
	create       func(ctx context.Context, ownerID uuid.UUID, l domain.Listing) (domain.Listing, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Listing, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error)
	blockedDates func(ctx context.Context, id uuid.UUID) ([]domain.Date, error)
	quote        func(ctx context.Context, id uuid.UUID, req domain.QuoteRequest) (domain.Quote, error)
}

func (m *mockListingServicer) Create(ctx context.Context, ownerID uuid.UUID, l domain.Listing) (domain.Listing, error) {
	return m.create(ctx, ownerID, l)
}
func (m *mockListingServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Listing, error) {
	return m.getByID(ctx, id)
}
func (m *mockListingServicer) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Listing, int64, error) {
	return m.listPaged(ctx, p)
}
func (m *mockListingServicer) BlockedDates(ctx context.Context, id uuid.UUID) ([]domain.Date, error) {
	return m.blockedDates(ctx, id)
}
func (m *mockListingServicer) Quote(ctx context.Context, id uuid.UUID, req domain.QuoteRequest) (domain.Quote, error) {
	return m.quote(ctx, id, req)
}

// compile-time check: mockListingServicer must satisfy handler.ListingServicer.
var _ handler.ListingServicer = (*mockListingServicer)(nil)

type mockReservationServicer struct {
	create func(ctx context.Context, req domain.ReservationRequest) (domain.Listing, error)
}

func (m *mockReservationServicer) Create(ctx context.Context, req domain.ReservationRequest) (domain.Listing, error) {
	return m.create(ctx, req)
}

var _ handler.ReservationServicer = (*mockReservationServicer)(nil)

// ---- helpers ---------------------------------------------------------------

const aliceToken = "alice-token"

var alice = domain.User{ID: uuid.MustParse("8f14e45f-ceea-467a-9d5b-3a4f6e2c1b90"), Name: "Alice"}

type staticSessions struct{}

func (staticSessions) UserBySessionToken(_ context.Context, token string) (domain.User, error) {
	if token == aliceToken {
		return alice, nil
	}
	return domain.User{}, domain.ErrUnauthenticated
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newHTTPHandler wires a Server with the given mocks into the generated chi
// router behind the authenticator. This mirrors how main.go wires it in production.
func newHTTPHandler(listings handler.ListingServicer, reservations handler.ReservationServicer) http.Handler {
	srv := handler.NewServer(listings, reservations, discardLogger())
	strict := gen.NewStrictHandlerWithOptions(srv, nil, handler.StrictOptions(discardLogger()))

	r := chi.NewRouter()
	r.Use(middleware.NewAuthenticator(staticSessions{}, discardLogger()))
	return gen.HandlerWithOptions(strict, gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: handler.RequestErrorHandler,
	})
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

// do sends one request; a non-empty token is sent as a bearer token.
func do(h http.Handler, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var body gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body.Error
}

func listingFixture() domain.Listing {
	return domain.Listing{
		ID:                   uuid.New(),
		OwnerID:              alice.ID,
		Title:                "Daylight Loft",
		Price:                100,
		MinimumBookingLength: 2,
		CrewCount:            12,
		Area:                 1800,
		Reservations:         []domain.Reservation{},
	}
}

func ptr[T any](v T) *T { return &v }
