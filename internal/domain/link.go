package domain

import (
	"time"

	"github.com/google/uuid"
)

// Link is a titled reference URL attached to a trip (bookings, maps, docs).
type Link struct {
	ID        uuid.UUID
	TripID    uuid.UUID
	Title     string
	URL       string
	CreatedAt time.Time
}
