package service

import (
	"context"

	"github.com/pkordes/planner/internal/domain"
)

// Mailer sends the emails the trip lifecycle calls for.
// Delivery is best effort: implementations log failures and never report
// them back, so a mail outage cannot fail a trip operation.
type Mailer interface {
	// SendTripConfirmation asks the owner to confirm a newly created trip.
	SendTripConfirmation(ctx context.Context, trip domain.Trip, owner domain.Participant)

	// SendInvitations asks each invitee to confirm attendance. Sends are
	// independent; the call returns once every send has finished or failed.
	SendInvitations(ctx context.Context, trip domain.Trip, invitees []domain.Participant)
}
