package domain

import (
	"time"

	"github.com/google/uuid"
)

// Participant is a person attached to a trip: its owner or an invitee.
// Name is nil for invitees who have not told us their name.
type Participant struct {
	ID          uuid.UUID
	TripID      uuid.UUID
	Name        *string
	Email       string
	IsOwner     bool
	IsConfirmed bool
	CreatedAt   time.Time
}

// NewOwnerParticipant builds the confirmed owner record for a new trip.
func NewOwnerParticipant(o Owner) Participant {
	p := Participant{Email: o.Email, IsOwner: true, IsConfirmed: true}
	if o.Name != "" {
		name := o.Name
		p.Name = &name
	}
	return p
}

// NewInvitee builds an unconfirmed, non-owner participant for email.
func NewInvitee(tripID uuid.UUID, email string) Participant {
	return Participant{TripID: tripID, Email: email}
}
