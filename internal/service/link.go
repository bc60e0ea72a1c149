package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/planner/internal/domain"
	"github.com/pkordes/planner/internal/repo"
)

// LinkService manages a trip's reference links.
type LinkService struct {
	trips repo.TripRepo
	links repo.LinkRepo
}

// NewLinkService constructs a LinkService.
func NewLinkService(trips repo.TripRepo, links repo.LinkRepo) *LinkService {
	return &LinkService{trips: trips, links: links}
}

// Create adds a link to a trip.
// Returns domain.ErrTripNotFound or domain.ErrValidation.
func (s *LinkService) Create(ctx context.Context, tripID uuid.UUID, title, rawURL string) (domain.Link, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}

	title, err := validateMinLength("title", title, domain.MinTitleLength)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	u, err := validateURL("url", rawURL)
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}

	created, err := s.links.Create(ctx, domain.Link{TripID: tripID, Title: title, URL: u})
	if err != nil {
		return domain.Link{}, fmt.Errorf("service.LinkService.Create: %w", err)
	}
	return created, nil
}

// ListByTrip returns one page of a trip's links in creation order.
// Returns domain.ErrTripNotFound if the trip does not exist.
func (s *LinkService) ListByTrip(ctx context.Context, tripID uuid.UUID, p domain.PaginationParams) (domain.Page[domain.Link], error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.Page[domain.Link]{}, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	items, total, err := s.links.ListByTripIDPaged(ctx, tripID, p)
	if err != nil {
		return domain.Page[domain.Link]{}, fmt.Errorf("service.LinkService.ListByTrip: %w", err)
	}
	return domain.Page[domain.Link]{Items: items, Total: total, Params: p}, nil
}
