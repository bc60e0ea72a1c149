package handler

import (
	"context"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler/gen"
	"github.com/pkordes/planner/internal/service"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	body := req.Body
	created, err := s.trips.Create(ctx, domain.NewTrip{
		Destination:    body.Destination,
		StartsAt:       body.StartsAt,
		EndsAt:         body.EndsAt,
		Owner:          domain.Owner{Name: body.OwnerName, Email: body.OwnerEmail},
		EmailsToInvite: body.EmailsToInvite,
	})
	if err != nil {
		if isUnprocessable(err) {
			return gen.CreateTrip422JSONResponse{UnprocessableJSONResponse: unprocessable(err)}, nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse{TripId: created.ID}, nil
}

// GetTrip handles GET /trips/{tripId}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	trip, err := s.trips.GetByID(ctx, req.TripId)
	if err != nil {
		if isNotFound(err) {
			return gen.GetTrip404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse{Trip: tripToResponse(trip)}, nil
}

// UpdateTrip handles PUT /trips/{tripId}.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	updated, err := s.trips.Update(ctx, req.TripId, domain.TripChanges{
		Destination: req.Body.Destination,
		StartsAt:    req.Body.StartsAt,
		EndsAt:      req.Body.EndsAt,
	})
	if err != nil {
		if isNotFound(err) {
			return gen.UpdateTrip404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		if isUnprocessable(err) {
			return gen.UpdateTrip422JSONResponse{UnprocessableJSONResponse: unprocessable(err)}, nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse{TripId: updated.ID}, nil
}

// ConfirmTrip handles GET /trips/{tripId}/confirm, the link emailed to the
// owner. Both a fresh and a repeated confirmation redirect to the trip page.
func (s *Server) ConfirmTrip(ctx context.Context, req gen.ConfirmTripRequestObject) (gen.ConfirmTripResponseObject, error) {
	outcome, err := s.trips.Confirm(ctx, req.TripId)
	if err != nil {
		if isNotFound(err) {
			return gen.ConfirmTrip404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}
	if outcome == service.AlreadyConfirmed {
		s.log.DebugContext(ctx, "trip already confirmed", "trip_id", req.TripId)
	}

	return gen.ConfirmTrip302Response{
		Headers: gen.RedirectResponseHeaders{Location: s.tripPageURL(req.TripId)},
	}, nil
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type.
func tripToResponse(t domain.Trip) gen.Trip {
	return gen.Trip{
		Id:          t.ID,
		Destination: t.Destination,
		StartsAt:    t.StartsAt,
		EndsAt:      t.EndsAt,
		IsConfirmed: t.IsConfirmed,
	}
}
