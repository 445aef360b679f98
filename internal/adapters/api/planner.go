package api

import (
	"context"
	"net/http"

	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

const (
	regionsPath    = "/api/planner/locations/"
	generatePath   = "/api/planner/generate/"
	saveCoursePath = "/api/planner/save/"
)

var _ ports.PlannerAPI = (*Client)(nil)

func (c *Client) Regions(ctx context.Context) ([]domain.Region, error) {
	var regions []domain.Region
	if err := c.do(ctx, request{method: http.MethodGet, path: regionsPath, catalog: true}, &regions); err != nil {
		return nil, err
	}

	return regions, nil
}

func (c *Client) Generate(ctx context.Context, token string, req domain.PlanRequest) (domain.GeneratedPlan, error) {
	var plan domain.GeneratedPlan
	err := c.do(ctx, request{method: http.MethodPost, path: generatePath, token: token, body: req}, &plan)
	if err != nil {
		return domain.GeneratedPlan{}, err
	}

	return plan, nil
}

func (c *Client) SaveCourse(ctx context.Context, token string, payload domain.CourseSavePayload) error {
	return c.do(ctx, request{method: http.MethodPost, path: saveCoursePath, token: token, body: payload}, nil)
}
