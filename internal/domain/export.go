package domain

import "time"

// ItineraryRow is a single row in a trip's itinerary export.
// It is a flat, denormalized view: one row per activity, with trip fields
// repeated on every row. A trip with no activities yields one row with zero
// values for all activity fields.
type ItineraryRow struct {
	// Trip fields, repeated for every activity.
	TripID          string
	Destination     string
	TripStartsAt    time.Time
	TripEndsAt      time.Time
	TripIsConfirmed bool

	// Activity fields, zero values when the trip has no activities.
	Day           int    // 1-based day of the trip the activity falls on
	Date          string // "2006-01-02" calendar date of the activity
	ActivityTitle string
	OccursAt      *time.Time
}
