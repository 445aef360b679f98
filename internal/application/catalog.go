package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

// CatalogService reads the public trip catalog.
type CatalogService struct {
	api ports.TripAPI

	mu         sync.Mutex
	categories []domain.Category
}

func NewCatalogService(api ports.TripAPI) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) ListTrips(ctx context.Context, query domain.TripQuery) (domain.TripPage, error) {
	if query.Page < 1 {
		query.Page = 1
	}

	page, err := s.api.ListTrips(ctx, query)
	if err != nil {
		return domain.TripPage{}, fmt.Errorf("list trips: %w", err)
	}

	return page, nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]domain.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.categories != nil {
		return s.categories, nil
	}

	categories, err := s.api.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	if categories == nil {
		categories = []domain.Category{}
	}
	s.categories = categories

	return categories, nil
}
