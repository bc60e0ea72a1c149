package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/planner/internal/domain"
)

// ParticipantRepo defines the persistence operations for Participants.
type ParticipantRepo interface {
	// Create inserts a single participant and returns the persisted record.
	Create(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// GetByID retrieves a participant by ID.
	// Returns domain.ErrParticipantNotFound if it does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)

	// ListByTripID returns a trip's participants, owner first, then invitees
	// by creation time.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Confirm sets is_confirmed to true and returns the updated record.
	// Confirming twice is harmless.
	// Returns domain.ErrParticipantNotFound if it does not exist.
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
}

type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db connection.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, is_owner, is_confirmed, created_at`

func (r *pgParticipantRepo) Create(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	const q = `
		INSERT INTO participants (trip_id, name, email, is_owner, is_confirmed, created_at)
		VALUES (@trip_id, @name, @email, @is_owner, @is_confirmed, clock_timestamp())
		RETURNING ` + participantColumns

	args := pgx.NamedArgs{
		"trip_id":      p.TripID,
		"name":         p.Name, // nil becomes NULL
		"email":        p.Email,
		"is_owner":     p.IsOwner,
		"is_confirmed": p.IsConfirmed,
	}

	result, err := scanParticipant(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgParticipantRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM participants WHERE id = @id`

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.GetByID: %w", notFound(err, domain.ErrParticipantNotFound))
	}
	return result, nil
}

func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `
		SELECT ` + participantColumns + `
		FROM participants
		WHERE trip_id = @trip_id
		ORDER BY is_owner DESC, created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: %w", err)
	}
	participants, err := collect(rows, scanParticipant)
	if err != nil {
		return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: scan: %w", err)
	}
	return participants, nil
}

func (r *pgParticipantRepo) Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error) {
	const q = `
		UPDATE participants
		SET is_confirmed = true
		WHERE id = @id
		RETURNING ` + participantColumns

	result, err := scanParticipant(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Confirm: %w", notFound(err, domain.ErrParticipantNotFound))
	}
	return result, nil
}

func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
	)
	err := s.Scan(&id, &tripID, &p.Name, &p.Email, &p.IsOwner, &p.IsConfirmed, &p.CreatedAt)
	if err != nil {
		return domain.Participant{}, err
	}
	p.ID = fromPG(id)
	p.TripID = fromPG(tripID)
	return p, nil
}
