package ports

import (
	"context"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

type TripAPI interface {
	ListTrips(ctx context.Context, query domain.TripQuery) (domain.TripPage, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
