package ports

import (
	"context"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

type DraftRepository interface {
	Current(ctx context.Context) (domain.Draft, error)
	Save(ctx context.Context, draft domain.Draft) error
	Clear(ctx context.Context) error
}
