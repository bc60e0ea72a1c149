// Package handler implements the HTTP handlers for the Planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/service"
)

// TripServicer defines the trip lifecycle operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, in domain.NewTrip) (domain.Trip, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	Update(ctx context.Context, id uuid.UUID, changes domain.TripChanges) (domain.Trip, error)
	Confirm(ctx context.Context, id uuid.UUID) (service.ConfirmOutcome, error)
}

// ParticipantServicer defines the roster operations the handlers depend on.
type ParticipantServicer interface {
	Invite(ctx context.Context, tripID uuid.UUID, email string) (domain.Participant, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Participant, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
}

// ActivityServicer defines the scheduling operations the handlers depend on.
type ActivityServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title string, occursAt time.Time) (domain.Activity, error)
	ListByDay(ctx context.Context, tripID uuid.UUID) ([]domain.DayBucket, error)
}

// LinkServicer defines the link operations the handlers depend on.
type LinkServicer interface {
	Create(ctx context.Context, tripID uuid.UUID, title, rawURL string) (domain.Link, error)
	ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error)
}

// ExportServicer defines the export operation the handlers depend on.
type ExportServicer interface {
	Itinerary(ctx context.Context, tripID uuid.UUID) ([]domain.ItineraryRow, error)
}

// Services groups the business dependencies of Server. Tests set only the
// fields the endpoints under test need.
type Services struct {
	Trips        TripServicer
	Participants ParticipantServicer
	Activities   ActivityServicer
	Links        LinkServicer
	Export       ExportServicer
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via NewRouter.
type Server struct {
	trips        TripServicer
	participants ParticipantServicer
	activities   ActivityServicer
	links        LinkServicer
	export       ExportServicer

	// webBaseURL is where confirmation links land after they are followed.
	webBaseURL string
	log        *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svc Services, webBaseURL string, log *slog.Logger) *Server {
	return &Server{
		trips:        svc.Trips,
		participants: svc.Participants,
		activities:   svc.Activities,
		links:        svc.Links,
		export:       svc.Export,
		webBaseURL:   webBaseURL,
		log:          log,
	}
}

// tripPageURL is the web app page for a trip.
func (s *Server) tripPageURL(tripID uuid.UUID) string {
	return s.webBaseURL + "/trips/" + tripID.String()
}
