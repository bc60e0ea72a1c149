package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
)

func TestActivityRepo_Create(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)
	trip := createTrip(t, tx)

	input := domain.Activity{TripID: trip.ID, Title: "Beach day", OccursAt: trip.StartsAt.Add(10 * time.Hour)}
	got, err := r.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, "Beach day", got.Title)
	assert.True(t, got.OccursAt.Equal(input.OccursAt))
	assert.False(t, got.CreatedAt.IsZero())
}

func TestActivityRepo_ListByTripID_OrderedByOccursAt(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewActivityRepo(tx)
	ctx := context.Background()
	trip := createTrip(t, tx)

	for _, a := range []domain.Activity{
		{TripID: trip.ID, Title: "Dinner", OccursAt: trip.StartsAt.Add(20 * time.Hour)},
		{TripID: trip.ID, Title: "Breakfast", OccursAt: trip.StartsAt.Add(8 * time.Hour)},
		{TripID: trip.ID, Title: "Checkout", OccursAt: trip.EndsAt},
	} {
		_, err := r.Create(ctx, a)
		require.NoError(t, err)
	}

	got, err := r.ListByTripID(ctx, trip.ID)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "Breakfast", got[0].Title)
	assert.Equal(t, "Dinner", got[1].Title)
	assert.Equal(t, "Checkout", got[2].Title)
}
