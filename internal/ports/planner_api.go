package ports

import (
	"context"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

type PlannerAPI interface {
	Regions(ctx context.Context) ([]domain.Region, error)
	Generate(ctx context.Context, token string, req domain.PlanRequest) (domain.GeneratedPlan, error)
	SaveCourse(ctx context.Context, token string, payload domain.CourseSavePayload) error
}
