package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
)

// ActivityService schedules activities inside a trip's date range and
// projects them into a per-day agenda.
type ActivityService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewActivityService constructs an ActivityService.
func NewActivityService(trips repo.TripRepo, activities repo.ActivityRepo) *ActivityService {
	return &ActivityService{trips: trips, activities: activities}
}

// Create schedules an activity. occursAt must fall within the trip's span;
// both bounds are inclusive.
// Returns domain.ErrTripNotFound, domain.ErrValidation, or
// domain.ErrActivityOutOfRange.
func (s *ActivityService) Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error) {
	ctx, span := tracer.Start(ctx, "ActivityService.Create", trace.WithAttributes(attribute.String("trip.id", tripID.String())))
	defer span.End()

	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}

	title, err = validateMinLength("title", title, domain.MinTitleLength)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	if !trip.Contains(occursAt) {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", domain.ErrActivityOutOfRange)
	}

	created, err := s.activities.Create(ctx, domain.Activity{TripID: tripID, Title: title, OccursAt: occursAt})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.ActivityService.Create: %w", err)
	}
	return created, nil
}

// ListByDay returns one bucket per calendar day of the trip, in day order,
// empty days included.
// Returns domain.ErrTripNotFound if the trip does not exist.
func (s *ActivityService) ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDay: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ActivityService.ListByDay: %w", err)
	}
	return domain.BucketByDay(trip, activities), nil
}
