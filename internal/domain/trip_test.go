package domain_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pkordes/planner/internal/domain"
)

var now = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestValidateDateRange_Valid(t *testing.T) {
	start := now.Add(24 * time.Hour)
	end := start.Add(48 * time.Hour)

	assert.NoError(t, domain.ValidateDateRange(start, end, now))
}

func TestValidateDateRange_StartExactlyNow(t *testing.T) {
	// "now" itself is not in the past.
	assert.NoError(t, domain.ValidateDateRange(now, now.Add(time.Hour), now))
}

func TestValidateDateRange_StartInPast(t *testing.T) {
	start := now.Add(-time.Second)

	err := domain.ValidateDateRange(start, start.Add(72*time.Hour), now)

	assert.ErrorIs(t, err, domain.ErrStartInPast)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateDateRange_StartInPastCheckedFirst(t *testing.T) {
	// Both rules are violated; the start-date rule is reported.
	start := now.Add(-time.Hour)

	err := domain.ValidateDateRange(start, start.Add(-time.Hour), now)

	assert.ErrorIs(t, err, domain.ErrStartInPast)
}

func TestValidateDateRange_EndBeforeStart(t *testing.T) {
	start := now.Add(24 * time.Hour)

	err := domain.ValidateDateRange(start, start.Add(-time.Minute), now)

	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestValidateDateRange_EndEqualToStart(t *testing.T) {
	start := now.Add(24 * time.Hour)

	err := domain.ValidateDateRange(start, start, now)

	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
}

func TestTrip_Contains_BoundsInclusive(t *testing.T) {
	trip := domain.Trip{
		StartsAt: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, trip.Contains(trip.StartsAt))
	assert.True(t, trip.Contains(trip.EndsAt))
	assert.False(t, trip.Contains(trip.EndsAt.Add(time.Second)))
	assert.False(t, trip.Contains(trip.StartsAt.Add(-time.Second)))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrTripNotFound))
	assert.Equal(t, domain.KindNotFound, domain.KindOf(domain.ErrParticipantNotFound))
	assert.Equal(t, domain.KindValidation, domain.KindOf(domain.ErrEndBeforeStart))
	assert.Equal(t, domain.KindOutOfRange, domain.KindOf(domain.ErrActivityOutOfRange))
	assert.Equal(t, domain.KindInternal, domain.KindOf(assert.AnError))
	assert.Equal(t, domain.KindInternal, domain.KindOf(nil))
}

func TestMessageOf(t *testing.T) {
	wrapped := fmt.Errorf("service.TripService.Create: %w", domain.Invalid("destination is too short"))

	assert.Equal(t, "destination is too short", domain.MessageOf(wrapped))
	assert.Equal(t, "trip not found", domain.MessageOf(fmt.Errorf("ctx: %w", domain.ErrTripNotFound)))
	assert.Equal(t, "not found", domain.MessageOf(fmt.Errorf("ctx: %w", domain.ErrNotFound)))
	assert.ErrorIs(t, wrapped, domain.ErrValidation)
}
