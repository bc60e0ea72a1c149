package domain

import (
	"time"

	"github.com/google/uuid"
)

// MinTitleLength applies to activity and link titles.
const MinTitleLength = 4

// Activity is a scheduled event inside a trip's date range.
type Activity struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	OccursAt  time.Time
	CreatedAt time.Time
}

// DayBucket holds the activities occurring on one calendar day (UTC) of a trip.
type DayBucket struct {
	Date       time.Time
	Activities []Activity
}

// AgendaLocation is the calendar convention used to group activities by day.
// Trip and activity timestamps are normalized to UTC calendar days.
var AgendaLocation = time.UTC

// CalendarDay truncates t to midnight of its calendar date in AgendaLocation.
func CalendarDay(t time.Time) time.Time {
	t = t.In(AgendaLocation)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, AgendaLocation)
}

// DaysBetween returns the number of calendar days from start to end.
// Two timestamps on the same calendar date are 0 days apart regardless of
// the hours between them.
func DaysBetween(start, end time.Time) int {
	// Both values are UTC midnights, so the difference is an exact multiple of 24h.
	return int(CalendarDay(end).Sub(CalendarDay(start)) / (24 * time.Hour))
}

// BucketByDay groups activities into one bucket per calendar day of the trip,
// from the day of StartsAt through the day of EndsAt inclusive.
// Empty days still get a bucket. Activities keep their input order within a
// bucket; callers pass them sorted by OccursAt. Activities outside the trip
// span are left out.
func BucketByDay(trip Trip, activities []Activity) []DayBucket {
	days := DaysBetween(trip.StartsAt, trip.EndsAt) + 1
	if days < 1 {
		days = 1
	}

	first := CalendarDay(trip.StartsAt)
	buckets := make([]DayBucket, days)
	for i := range buckets {
		buckets[i] = DayBucket{
			Date:       first.AddDate(0, 0, i),
			Activities: []Activity{},
		}
	}

	for _, a := range activities {
		idx := DaysBetween(first, a.OccursAt)
		if idx < 0 || idx >= days {
			continue
		}
		buckets[idx].Activities = append(buckets[idx].Activities, a)
	}
	return buckets
}
