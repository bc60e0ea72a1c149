package notify

import (
	"context"
	"log/slog"

	"github.com/pkordes/planner/internal/domain"
)

// TripMailer turns trip lifecycle events into rendered emails with
// confirmation links pointing back at the API.
type TripMailer struct {
	dispatcher *Dispatcher
	renderer   *Renderer
	apiBaseURL string
	log        *slog.Logger
}

// NewTripMailer builds a TripMailer. apiBaseURL is the public root of the
// API, without a trailing slash; confirmation links are resolved against it.
func NewTripMailer(dispatcher *Dispatcher, renderer *Renderer, apiBaseURL string, log *slog.Logger) *TripMailer {
	return &TripMailer{dispatcher: dispatcher, renderer: renderer, apiBaseURL: apiBaseURL, log: log}
}

// TripConfirmURL is the link the owner follows to confirm a trip.
func (m *TripMailer) TripConfirmURL(trip domain.Trip) string {
	return m.apiBaseURL + "/trips/" + trip.ID.String() + "/confirm"
}

// ParticipantConfirmURL is the link an invitee follows to confirm attendance.
func (m *TripMailer) ParticipantConfirmURL(p domain.Participant) string {
	return m.apiBaseURL + "/participants/" + p.ID.String() + "/confirm"
}

func (m *TripMailer) SendTripConfirmation(ctx context.Context, trip domain.Trip, owner domain.Participant) {
	name := ""
	if owner.Name != nil {
		name = *owner.Name
	}
	msg := m.renderer.TripConfirmation(name, owner.Email, dates(trip), m.TripConfirmURL(trip))
	m.dispatcher.Send(ctx, msg)
}

func (m *TripMailer) SendInvitations(ctx context.Context, trip domain.Trip, invitees []domain.Participant) {
	msgs := make([]Message, len(invitees))
	for i, p := range invitees {
		msgs[i] = m.renderer.Invitation(p.Email, dates(trip), m.ParticipantConfirmURL(p))
	}
	if failed := m.dispatcher.FanOut(ctx, msgs); failed > 0 {
		m.log.WarnContext(ctx, "some invitations were not delivered",
			"trip_id", trip.ID,
			"failed", failed,
			"total", len(msgs),
		)
	}
}

func dates(trip domain.Trip) TripDates {
	return TripDates{Destination: trip.Destination, StartsAt: trip.StartsAt, EndsAt: trip.EndsAt}
}
