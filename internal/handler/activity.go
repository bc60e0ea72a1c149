package handler

import (
	"context"

	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler/gen"
)

// CreateActivity handles POST /trips/{tripId}/activities.
// An activity outside the trip dates is a 422 with code out_of_range.
func (s *Server) CreateActivity(ctx context.Context, req gen.CreateActivityRequestObject) (gen.CreateActivityResponseObject, error) {
	a, err := s.activities.Create(ctx, req.TripId, req.Body.Title, req.Body.OccursAt)
	if err != nil {
		if isNotFound(err) {
			return gen.CreateActivity404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		if isUnprocessable(err) {
			return gen.CreateActivity422JSONResponse{UnprocessableJSONResponse: unprocessable(err)}, nil
		}
		return nil, err
	}

	return gen.CreateActivity201JSONResponse{ActivityId: a.ID}, nil
}

// ListActivities handles GET /trips/{tripId}/activities.
// Every day of the trip is present, including days with no activities.
func (s *Server) ListActivities(ctx context.Context, req gen.ListActivitiesRequestObject) (gen.ListActivitiesResponseObject, error) {
	days, err := s.activities.ListByDay(ctx, req.TripId)
	if err != nil {
		if isNotFound(err) {
			return gen.ListActivities404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	out := make([]gen.DayActivities, len(days))
	for i, d := range days {
		out[i] = dayToResponse(d)
	}
	return gen.ListActivities200JSONResponse{Activities: out}, nil
}

func dayToResponse(d domain.DayBucket) gen.DayActivities {
	activities := make([]gen.Activity, len(d.Activities))
	for i, a := range d.Activities {
		activities[i] = gen.Activity{Id: a.ID, Title: a.Title, OccursAt: a.OccursAt}
	}
	return gen.DayActivities{
		Date:       openapi_types.Date{Time: d.Date},
		Activities: activities,
	}
}
