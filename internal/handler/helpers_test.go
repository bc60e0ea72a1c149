package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler"
	"github.com/pkordes/planner/internal/handler/gen"
	"github.com/pkordes/planner/internal/service"
)

// Test doubles for the servicer interfaces. Set only the method fields your
// test needs.

type mockTripServicer struct {
	create  func(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update  func(ctx context.Context, id uuid.UUID, changes domain.TripChanges) (domain.Trip, error)
	confirm func(ctx context.Context, id uuid.UUID) (service.ConfirmOutcome, error)
}

func (m *mockTripServicer) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	return m.create(ctx, in)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) Update(ctx context.Context, id uuid.UUID, changes domain.TripChanges) (domain.Trip, error) {
	return m.update(ctx, id, changes)
}
func (m *mockTripServicer) Confirm(ctx context.Context, id uuid.UUID) (service.ConfirmOutcome, error) {
	return m.confirm(ctx, id)
}

type mockParticipantServicer struct {
	invite     func(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	confirm    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	getByID    func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

func (m *mockParticipantServicer) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	return m.invite(ctx, tripID, email)
}
func (m *mockParticipantServicer) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}
func (m *mockParticipantServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantServicer) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTrip(ctx, tripID)
}

type mockActivityServicer struct {
	create    func(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	listByDay func(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error)
}

func (m *mockActivityServicer) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	return m.create(ctx, tripID, title, occursAt)
}
func (m *mockActivityServicer) ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error) {
	return m.listByDay(ctx, tripID)
}

type mockLinkServicer struct {
	create     func(ctx context.Context, tripID uuid.UUID, title, rawURL string) (domain.Link, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error)
}

func (m *mockLinkServicer) Create(ctx context.Context, tripID uuid.UUID, title, rawURL string) (domain.Link, error) {
	return m.create(ctx, tripID, title, rawURL)
}
func (m *mockLinkServicer) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
	return m.listByTrip(ctx, tripID, p)
}

type mockExportServicer struct {
	itinerary func(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryRow, error)
}

func (m *mockExportServicer) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryRow, error) {
	return m.itinerary(ctx, tripID)
}

// compile-time checks
var (
	_ handler.TripServicer        = (*mockTripServicer)(nil)
	_ handler.ParticipantServicer = (*mockParticipantServicer)(nil)
	_ handler.ActivityServicer    = (*mockActivityServicer)(nil)
	_ handler.LinkServicer        = (*mockLinkServicer)(nil)
	_ handler.ExportServicer      = (*mockExportServicer)(nil)
)

// ---- helpers ---------------------------------------------------------------

const webBaseURL = "http://web.test"

// newHTTPHandler wires a Server with the given mocks into the generated chi
// router. This mirrors exactly how main.go wires it in production.
func newHTTPHandler(svc handler.Services) http.Handler {
	srv := handler.NewServer(svc, webBaseURL, slog.New(slog.DiscardHandler))
	return handler.NewRouter(chi.NewRouter(), srv)
}

func do(t *testing.T, h http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) gen.ErrorDetail {
	t.Helper()
	var resp gen.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return resp.Error
}

func tripFixture() domain.Trip {
	return domain.Trip{
		ID:          uuid.New(),
		Destination: "Florianópolis",
		StartsAt:    time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}
}

func tripNotFound(context.Context, uuid.UUID) (domain.Trip, error) {
	return domain.Trip{}, domain.ErrTripNotFound
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
