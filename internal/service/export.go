package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
)

// ExportService assembles a flat itinerary export of one trip.
type ExportService struct {
	trips      repo.TripRepo
	activities repo.ActivityRepo
}

// NewExportService constructs an ExportService backed by the provided repos.
func NewExportService(trips repo.TripRepo, activities repo.ActivityRepo) *ExportService {
	return &ExportService{trips: trips, activities: activities}
}

// Itinerary returns one ItineraryRow per activity, in agenda order.
// A trip with no activities contributes one row with empty activity fields.
// Returns domain.ErrTripNotFound if the trip does not exist.
func (s *ExportService) Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryRow, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Itinerary: %w", err)
	}
	activities, err := s.activities.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ExportService.Itinerary: %w", err)
	}

	base := domain.ItineraryRow{
		TripID:          trip.ID.String(),
		Destination:     trip.Destination,
		TripStartsAt:    trip.StartsAt,
		TripEndsAt:      trip.EndsAt,
		TripIsConfirmed: trip.IsConfirmed,
	}

	var rows []domain.ItineraryRow
	for i, bucket := range domain.BucketByDay(trip, activities) {
		for _, a := range bucket.Activities {
			row := base
			row.Day = i + 1
			row.Date = bucket.Date.Format(time.DateOnly)
			row.ActivityTitle = a.Title
			occursAt := a.OccursAt
			row.OccursAt = &occursAt
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		rows = append(rows, base)
	}
	return rows, nil
}
