package handler

import (
	"context"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/handler/gen"
)

// CreateLink handles POST /trips/{tripId}/links.
func (s *Server) CreateLink(ctx context.Context, req gen.CreateLinkRequestObject) (gen.CreateLinkResponseObject, error) {
	l, err := s.links.Create(ctx, req.TripId, req.Body.Title, req.Body.Url)
	if err != nil {
		if isNotFound(err) {
			return gen.CreateLink404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		if isUnprocessable(err) {
			return gen.CreateLink422JSONResponse{UnprocessableJSONResponse: unprocessable(err)}, nil
		}
		return nil, err
	}

	return gen.CreateLink201JSONResponse{LinkId: l.ID}, nil
}

// ListLinks handles GET /trips/{tripId}/links.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
func (s *Server) ListLinks(ctx context.Context, req gen.ListLinksRequestObject) (gen.ListLinksResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	page, err := s.links.ListByTrip(ctx, req.TripId, params)
	if err != nil {
		if isNotFound(err) {
			return gen.ListLinks404JSONResponse{NotFoundJSONResponse: notFound(err)}, nil
		}
		return nil, err
	}

	data := make([]gen.Link, len(page.Items))
	for i, l := range page.Items {
		data[i] = gen.Link{Id: l.ID, Title: l.Title, Url: l.URL, CreatedAt: l.CreatedAt}
	}
	return gen.ListLinks200JSONResponse{
		Data: data,
		Pagination: gen.Pagination{
			Page:  page.Params.Page,
			Limit: page.Params.Limit,
			Total: int(page.Total),
		},
	}, nil
}
