package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/service"
)

func TestExportService_Itinerary_OneRowPerActivity(t *testing.T) {
	trip := storedTrip()
	trip.IsConfirmed = true
	first := domain.Activity{ID: uuid.New(), Title: "Arrival", OccursAt: time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)}
	last := domain.Activity{ID: uuid.New(), Title: "Departure", OccursAt: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)}

	svc := service.NewExportService(
		&mockTripRepo{getByID: returnsTrip(trip)},
		&mockActivityRepo{
			listByTripID: func(context.Context, uuid.UUID) ([]domain.Activity, error) {
				return []domain.Activity{first, last}, nil
			},
		},
	)

	rows, err := svc.Itinerary(context.Background(), trip.ID)

	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, trip.ID.String(), rows[0].TripID)
	assert.Equal(t, "Florianópolis", rows[0].Destination)
	assert.True(t, rows[0].TripIsConfirmed)
	assert.Equal(t, 1, rows[0].Day)
	assert.Equal(t, "2025-03-10", rows[0].Date)
	assert.Equal(t, "Arrival", rows[0].ActivityTitle)
	require.NotNil(t, rows[0].OccursAt)
	assert.Equal(t, first.OccursAt, *rows[0].OccursAt)

	assert.Equal(t, 3, rows[1].Day)
	assert.Equal(t, "2025-03-12", rows[1].Date)
	assert.Equal(t, "Departure", rows[1].ActivityTitle)
}

func TestExportService_Itinerary_NoActivities(t *testing.T) {
	trip := storedTrip()
	svc := service.NewExportService(
		&mockTripRepo{getByID: returnsTrip(trip)},
		&mockActivityRepo{
			listByTripID: func(context.Context, uuid.UUID) ([]domain.Activity, error) {
				return []domain.Activity{}, nil
			},
		},
	)

	rows, err := svc.Itinerary(context.Background(), trip.ID)

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, trip.ID.String(), rows[0].TripID)
	assert.Zero(t, rows[0].Day)
	assert.Empty(t, rows[0].ActivityTitle)
	assert.Nil(t, rows[0].OccursAt)
}

func TestExportService_Itinerary_MissingTrip(t *testing.T) {
	svc := service.NewExportService(&mockTripRepo{getByID: tripNotFound}, &mockActivityRepo{})

	_, err := svc.Itinerary(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
