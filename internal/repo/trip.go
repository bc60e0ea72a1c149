package repo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/planner/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// The service layer depends on this interface, not the concrete Postgres implementation,
// which allows the service to be unit-tested with a mock.
type TripRepo interface {
	// CreateWithParticipants inserts a new trip together with its initial
	// participants in one transaction and returns the persisted trip plus the
	// participants with their generated IDs.
	CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error)

	// GetByID retrieves a single trip by its UUID primary key.
	// Returns domain.ErrTripNotFound if no trip with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)

	// Update overwrites destination and dates of an existing trip and returns
	// the updated record. Confirmation state is never touched.
	// Returns domain.ErrTripNotFound if no trip with that ID exists.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// MarkConfirmed flips is_confirmed to true. It reports false when the trip
	// was already confirmed, so concurrent confirmations flip it only once.
	// Returns domain.ErrTripNotFound if no trip with that ID exists.
	MarkConfirmed(ctx context.Context, id uuid.UUID) (bool, error)
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, destination, starts_at, ends_at, is_confirmed, created_at, updated_at`

// CreateWithParticipants inserts the trip row, then bulk-copies its participants.
func (r *pgTripRepo) CreateWithParticipants(ctx context.Context, trip domain.Trip, participants []domain.Participant) (domain.Trip, []domain.Participant, error) {
	const q = `
		INSERT INTO trips (destination, starts_at, ends_at)
		VALUES (@destination, @starts_at, @ends_at)
		RETURNING ` + tripColumns

	var (
		created domain.Trip
		stored  []domain.Participant
	)
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		var err error
		created, err = scanTrip(tx.QueryRow(ctx, q, pgx.NamedArgs{
			"destination": trip.Destination,
			"starts_at":   trip.StartsAt,
			"ends_at":     trip.EndsAt,
		}))
		if err != nil {
			return err
		}

		// Rows copied together would share now(); a microsecond per position
		// and time-ordered ids keep the listing in input order.
		stored = make([]domain.Participant, len(participants))
		for i, p := range participants {
			if p.ID, err = uuid.NewV7(); err != nil {
				return fmt.Errorf("participant id: %w", err)
			}
			p.TripID = created.ID
			p.CreatedAt = created.CreatedAt.Add(time.Duration(i) * time.Microsecond)
			stored[i] = p
		}

		_, err = tx.CopyFrom(ctx,
			pgx.Identifier{"participants"},
			[]string{"id", "trip_id", "name", "email", "is_owner", "is_confirmed", "created_at"},
			pgx.CopyFromSlice(len(stored), func(i int) ([]any, error) {
				p := stored[i]
				return []any{p.ID, p.TripID, p.Name, p.Email, p.IsOwner, p.IsConfirmed, p.CreatedAt}, nil
			}),
		)
		return err
	})
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("repo.TripRepo.CreateWithParticipants: %w", err)
	}
	return created, stored, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", notFound(err, domain.ErrTripNotFound))
	}
	return result, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET destination = @destination,
		    starts_at   = @starts_at,
		    ends_at     = @ends_at,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"destination": trip.Destination,
		"starts_at":   trip.StartsAt,
		"ends_at":     trip.EndsAt,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", notFound(err, domain.ErrTripNotFound))
	}
	return result, nil
}

// MarkConfirmed sets is_confirmed only on trips that are still drafts.
func (r *pgTripRepo) MarkConfirmed(ctx context.Context, id uuid.UUID) (bool, error) {
	const q = `
		UPDATE trips
		SET is_confirmed = true,
		    updated_at   = now()
		WHERE id = @id AND NOT is_confirmed`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return false, fmt.Errorf("repo.TripRepo.MarkConfirmed: %w", err)
	}
	if tag.RowsAffected() == 1 {
		return true, nil
	}

	// Nothing changed: either already confirmed or missing.
	if _, err := r.GetByID(ctx, id); err != nil {
		return false, fmt.Errorf("repo.TripRepo.MarkConfirmed: %w", err)
	}
	return false, nil
}

// scanTrip maps a single database row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t  domain.Trip
		id pgtype.UUID
	)
	err := s.Scan(&id, &t.Destination, &t.StartsAt, &t.EndsAt, &t.IsConfirmed, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.Trip{}, err
	}
	t.ID = fromPG(id)
	return t, nil
}
