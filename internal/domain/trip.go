// Package domain contains the core data types and pure business rules of the
// trip planner: entities, the error taxonomy, trip date validation and the
// per-day agenda projection.
// This package is imported by every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinDestinationLength is the shortest destination a trip may have.
const MinDestinationLength = 4

// Trip is the top-level aggregate; participants, activities and links belong to a trip.
// A trip starts as a draft (IsConfirmed=false) and is confirmed exactly once.
type Trip struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	IsConfirmed bool      `json:"is_confirmed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Owner identifies the person creating a trip. The owner becomes a confirmed
// participant as part of trip creation.
type Owner struct {
	Name  string
	Email string
}

// NewTrip is the input to trip creation.
type NewTrip struct {
	Destination    string
	StartsAt       time.Time
	EndsAt         time.Time
	Owner          Owner
	EmailsToInvite []string
}

// TripChanges is the input to a trip update. Only these fields are mutable.
type TripChanges struct {
	Destination string
	StartsAt    time.Time
	EndsAt      time.Time
}

// ValidateDateRange checks a proposed trip interval against now.
// Rules apply in order: the start must not be before now, then the end must
// come after the start. It is shared by create and update, so updates are
// checked against the time of the update, not the time of creation.
func ValidateDateRange(startsAt, endsAt, now time.Time) error {
	if startsAt.Before(now) {
		return ErrStartInPast
	}
	// Equal bounds would describe a zero-length trip; starts_at < ends_at is
	// the stored invariant.
	if !endsAt.After(startsAt) {
		return ErrEndBeforeStart
	}
	return nil
}

// Contains reports whether t falls inside the trip window, bounds inclusive.
func (t Trip) Contains(at time.Time) bool {
	return !at.Before(t.StartsAt) && !at.After(t.EndsAt)
}
