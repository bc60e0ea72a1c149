// Package service contains the business logic of the trip planner.
// Services validate inputs, enforce the trip lifecycle and scheduling rules,
// and orchestrate repo calls and notifications.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
)

var tracer = otel.Tracer("github.com/pkordes/planner/internal/service")

// ConfirmOutcome tells the caller what a trip confirmation did.
type ConfirmOutcome int

const (
	// Confirmed means this call flipped the trip to confirmed and invited participants.
	Confirmed ConfirmOutcome = iota
	// AlreadyConfirmed means the trip was confirmed before; nothing was done.
	AlreadyConfirmed
)

// TripService owns the trip lifecycle: draft on creation, confirmed once.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
	mailer       Mailer
	clock        domain.Clock
	log          *slog.Logger
}

// NewTripService constructs a TripService.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo, mailer Mailer, clock domain.Clock, log *slog.Logger) *TripService {
	return &TripService{trips: trips, participants: participants, mailer: mailer, clock: clock, log: log}
}

// Create validates and persists a new draft trip with its owner (confirmed)
// and invitees (unconfirmed), then emails the owner a confirmation link.
// Returns domain.ErrValidation if input violates business rules.
func (s *TripService) Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error) {
	ctx, span := tracer.Start(ctx, "TripService.Create")
	defer span.End()

	trip, participants, err := s.prepareTrip(in)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}

	created, stored, err := s.trips.CreateWithParticipants(ctx, trip, participants)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	span.SetAttributes(attribute.String("trip.id", created.ID.String()))
	s.log.InfoContext(ctx, "trip created", "trip_id", created.ID, "invitees", len(stored)-1)

	s.mailer.SendTripConfirmation(ctx, created, stored[0])
	return created, nil
}

// prepareTrip validates in and builds the rows to insert. The owner is always
// the first participant.
func (s *TripService) prepareTrip(in domain.NewTrip) (domain.Trip, []domain.Participant, error) {
	destination, err := validateMinLength("destination", in.Destination, domain.MinDestinationLength)
	if err != nil {
		return domain.Trip{}, nil, err
	}
	if err := domain.ValidateDateRange(in.StartsAt, in.EndsAt, s.clock.Now()); err != nil {
		return domain.Trip{}, nil, err
	}

	owner := in.Owner
	if owner.Email, err = validateEmail("owner email", owner.Email); err != nil {
		return domain.Trip{}, nil, err
	}

	participants := make([]domain.Participant, 0, len(in.EmailsToInvite)+1)
	participants = append(participants, domain.NewOwnerParticipant(owner))
	for _, raw := range in.EmailsToInvite {
		email, err := validateEmail("invitee email", raw)
		if err != nil {
			return domain.Trip{}, nil, err
		}
		participants = append(participants, domain.NewInvitee(uuid.Nil, email))
	}

	trip := domain.Trip{Destination: destination, StartsAt: in.StartsAt, EndsAt: in.EndsAt}
	return trip, participants, nil
}

// GetByID returns a single trip by ID.
// Returns domain.ErrTripNotFound if it does not exist.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return trip, nil
}

// Update changes a trip's destination and dates. The date range is checked
// against the time of this call. Confirmation state and participants are
// left alone, and confirmed trips may still be edited.
// Returns domain.ErrTripNotFound or domain.ErrValidation.
func (s *TripService) Update(ctx context.Context, id uuid.UUID, changes domain.TripChanges) (domain.Trip, error) {
	ctx, span := tracer.Start(ctx, "TripService.Update", trace.WithAttributes(attribute.String("trip.id", id.String())))
	defer span.End()

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	destination, err := validateMinLength("destination", changes.Destination, domain.MinDestinationLength)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if err := domain.ValidateDateRange(changes.StartsAt, changes.EndsAt, s.clock.Now()); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	trip.Destination = destination
	trip.StartsAt = changes.StartsAt
	trip.EndsAt = changes.EndsAt

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Confirm moves a draft trip to confirmed and invites every non-owner
// participant. Confirming an already confirmed trip is a successful no-op
// that sends nothing. Invitations are sent concurrently and best effort:
// the call waits for them, but a failed send does not fail the confirmation.
// Returns domain.ErrTripNotFound if the trip does not exist.
func (s *TripService) Confirm(ctx context.Context, id uuid.UUID) (ConfirmOutcome, error) {
	ctx, span := tracer.Start(ctx, "TripService.Confirm", trace.WithAttributes(attribute.String("trip.id", id.String())))
	defer span.End()

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if trip.IsConfirmed {
		return AlreadyConfirmed, nil
	}

	changed, err := s.trips.MarkConfirmed(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("service.TripService.Confirm: %w", err)
	}
	if !changed {
		// Lost a race with a concurrent confirmation; that call sends the invitations.
		return AlreadyConfirmed, nil
	}
	trip.IsConfirmed = true

	participants, err := s.participants.ListByTripID(ctx, id)
	if err != nil {
		// The trip is confirmed; only the invitations are lost.
		s.log.ErrorContext(ctx, "trip confirmed but participants could not be loaded", "trip_id", id, "error", err)
		return Confirmed, nil
	}

	invitees := make([]domain.Participant, 0, len(participants))
	for _, p := range participants {
		if !p.IsOwner {
			invitees = append(invitees, p)
		}
	}
	s.log.InfoContext(ctx, "trip confirmed", "trip_id", id, "invitees", len(invitees))

	s.mailer.SendInvitations(ctx, trip, invitees)
	return Confirmed, nil
}
