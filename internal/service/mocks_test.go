package service_test

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
	"github.com/pkordes/planner/internal/service"
)

// Hand-written test doubles. Each method is a function field; set only the
// ones a test needs. Calling an unset one panics, which fails the test loudly.

type mockTripRepo struct {
	createWithParticipants func(ctx context.Context, trip domain.Trip, ps []domain.Participant) (domain.Trip, []domain.Participant, error)
	getByID                func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	update                 func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	markConfirmed          func(ctx context.Context, id uuid.UUID) (bool, error)
}

func (m *mockTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, ps []domain.Participant) (domain.Trip, []domain.Participant, error) {
	return m.createWithParticipants(ctx, trip, ps)
}
func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) MarkConfirmed(ctx context.Context, id uuid.UUID) (bool, error) {
	return m.markConfirmed(ctx, id)
}

type mockParticipantRepo struct {
	create       func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	confirm      func(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

func (m *mockParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.create(ctx, p)
}
func (m *mockParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.getByID(ctx, id)
}
func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripID(ctx, tripID)
}
func (m *mockParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	return m.confirm(ctx, id)
}

type mockActivityRepo struct {
	create       func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	listByTripID func(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Activity, error) {
	return m.listByTripID(ctx, tripID)
}

type mockLinkRepo struct {
	create            func(ctx context.Context, l domain.Link) (domain.Link, error)
	listByTripIDPaged func(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Link, int64, error)
}

func (m *mockLinkRepo) Create(ctx context.Context, l domain.Link) (domain.Link, error) {
	return m.create(ctx, l)
}
func (m *mockLinkRepo) ListByTripIDPaged(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) ([]domain.Link, int64, error) {
	return m.listByTripIDPaged(ctx, tripID, p)
}

// recordingMailer remembers every email the services asked for.
type recordingMailer struct {
	mu            sync.Mutex
	confirmations []domain.Participant
	invitations   [][]domain.Participant
}

func (m *recordingMailer) SendTripConfirmation(_ context.Context, _ domain.Trip, owner domain.Participant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.confirmations = append(m.confirmations, owner)
}

func (m *recordingMailer) SendInvitations(_ context.Context, _ domain.Trip, invitees []domain.Participant) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.invitations = append(m.invitations, invitees)
}

// compile-time checks
var (
	_ repo.TripRepo        = (*mockTripRepo)(nil)
	_ repo.ParticipantRepo = (*mockParticipantRepo)(nil)
	_ repo.ActivityRepo    = (*mockActivityRepo)(nil)
	_ repo.LinkRepo        = (*mockLinkRepo)(nil)
	_ service.Mailer       = (*recordingMailer)(nil)
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func tripNotFound(context.Context, uuid.UUID) (domain.Trip, error) {
	return domain.Trip{}, domain.ErrTripNotFound
}

func returnsTrip(trip domain.Trip) func(context.Context, uuid.UUID) (domain.Trip, error) {
	return func(context.Context, uuid.UUID) (domain.Trip, error) { return trip, nil }
}
