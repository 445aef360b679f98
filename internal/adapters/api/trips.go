package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/winter3671/TakeMeTrip/internal/domain"
	"github.com/winter3671/TakeMeTrip/internal/ports"
)

const (
	tripsPath      = "/api/trips/"
	categoriesPath = "/api/trips/categories/"
)

var _ ports.TripAPI = (*Client)(nil)

// ListTrips accepts both the paginated envelope and a bare list.
func (c *Client) ListTrips(ctx context.Context, query domain.TripQuery) (domain.TripPage, error) {
	values := url.Values{}
	if search := strings.TrimSpace(query.Search); search != "" {
		values.Set("search", search)
	}
	if query.CategoryID > 0 {
		values.Set("category", strconv.FormatInt(query.CategoryID, 10))
	}
	if query.RegionID > 0 {
		values.Set("region", strconv.FormatInt(query.RegionID, 10))
	}
	if query.Page > 1 {
		values.Set("page", strconv.Itoa(query.Page))
	}

	var raw json.RawMessage
	if err := c.do(ctx, request{method: http.MethodGet, path: tripsPath, query: values}, &raw); err != nil {
		return domain.TripPage{}, err
	}

	return decodeTripPage(raw)
}

func decodeTripPage(raw json.RawMessage) (domain.TripPage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return domain.TripPage{Trips: []domain.Place{}}, nil
	}

	if trimmed[0] == '[' {
		var trips []domain.Place
		if err := json.Unmarshal(trimmed, &trips); err != nil {
			return domain.TripPage{}, fmt.Errorf("decode trip list: %w", err)
		}
		return domain.TripPage{Count: len(trips), Trips: trips}, nil
	}

	var page domain.TripPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return domain.TripPage{}, fmt.Errorf("decode trip page: %w", err)
	}
	if page.Trips == nil {
		page.Trips = []domain.Place{}
	}

	return page, nil
}

func (c *Client) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, request{method: http.MethodGet, path: categoriesPath, catalog: true}, &categories); err != nil {
		return nil, err
	}

	return categories, nil
}
