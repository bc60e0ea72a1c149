package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
)

// ParticipantService manages a trip's roster. Confirmation state of a
// participant is independent of the trip's dates and confirmation.
type ParticipantService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	log          *slog.Logger
}

// NewParticipantService constructs a ParticipantService.
func NewParticipantService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, log *slog.Logger) *ParticipantService {
	return &ParticipantService{trips: trips, participants: participants, mailer: mailer, log: log}
}

// Invite adds an unconfirmed participant to a trip and emails them a
// confirmation link. The same email may be invited more than once.
// Returns domain.ErrTripNotFound before looking at the email.
func (s *ParticipantService) Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error) {
	ctx, span := tracer.Start(ctx, "ParticipantService.Invite", trace.WithAttributes(attribute.String("trip.id", tripID.String())))
	defer span.End()

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	email, err = validateEmail("email", email)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}

	created, err := s.participants.Create(ctx, domain.NewInvitee(tripID, email))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Invite: %w", err)
	}
	s.log.InfoContext(ctx, "participant invited", "trip_id", tripID, "participant_id", created.ID)

	s.mailer.SendInvitations(ctx, trip, []domain.Participant{created})
	return created, nil
}

// Confirm marks a participant as attending. Confirming twice is harmless.
// Returns domain.ErrParticipantNotFound if it does not exist.
func (s *ParticipantService) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.Confirm(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.Confirm: %w", err)
	}
	return p, nil
}

// GetByID returns a single participant.
// Returns domain.ErrParticipantNotFound if it does not exist.
func (s *ParticipantService) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	p, err := s.participants.GetByID(ctx, id)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.ParticipantService.GetByID: %w", err)
	}
	return p, nil
}

// ListByTrip returns the trip's participants, owner first.
// Returns domain.ErrTripNotFound if the trip does not exist.
func (s *ParticipantService) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	ps, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ParticipantService.ListByTrip: %w", err)
	}
	return ps, nil
}
