package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type TripID int64

type ScheduleItemType string

const (
	ItemSpot          ScheduleItemType = "spot"
	ItemMeal          ScheduleItemType = "meal"
	ItemAccommodation ScheduleItemType = "accommodation"
)

const dateLayout = "2006-01-02"

// ScheduleItem is one entry of a generated day. TripID is the referenced
// place and is nil when the planner attached no persistable place to it.
type ScheduleItem struct {
	Type   ScheduleItemType `json:"type"`
	Time   string           `json:"time"`
	Status string           `json:"status,omitempty"`
	TripID *TripID          `json:"-"`
	Data   json.RawMessage  `json:"data,omitempty"`
}

func (i *ScheduleItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		Type   ScheduleItemType `json:"type"`
		Time   string           `json:"time"`
		Status string           `json:"status"`
		Data   json.RawMessage  `json:"data"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return fmt.Errorf("decode schedule item: %w", err)
	}

	*i = ScheduleItem{Type: wire.Type, Time: wire.Time, Status: wire.Status}
	if len(wire.Data) == 0 || bytes.Equal(wire.Data, []byte("null")) {
		return nil
	}

	i.Data = wire.Data
	var ref struct {
		ID *TripID `json:"id"`
	}
	if err := json.Unmarshal(wire.Data, &ref); err == nil {
		i.TripID = ref.ID
	}

	return nil
}

// Place decodes the display payload of the item.
func (i ScheduleItem) Place() (Place, bool) {
	if len(i.Data) == 0 {
		return Place{}, false
	}

	var place Place
	if err := json.Unmarshal(i.Data, &place); err != nil {
		return Place{}, false
	}

	return place, true
}

type Place struct {
	ID                  *TripID `json:"id"`
	Title               string  `json:"title"`
	ThumbnailImage      string  `json:"thumbnail_image"`
	RegionName          string  `json:"region_name"`
	CityName            string  `json:"city_name"`
	CategoryName        string  `json:"category_name"`
	RecommendationScore int     `json:"recommendation_score"`
	MapX                float64 `json:"mapx"`
	MapY                float64 `json:"mapy"`
}

type DayPlan struct {
	Day      int            `json:"day"`
	Date     string         `json:"date"`
	Schedule []ScheduleItem `json:"schedule"`
}

type GeneratedPlan struct {
	Duration                 int             `json:"duration"`
	TravelTimeToDest         int             `json:"travel_time_to_dest"`
	RegionID                 int64           `json:"region_id"`
	RecommendedAccommodation json.RawMessage `json:"recommended_accommodation,omitempty"`
	Days                     []DayPlan       `json:"plan"`
}

func (p GeneratedPlan) ItemCount() int {
	count := 0
	for _, day := range p.Days {
		count += len(day.Schedule)
	}

	return count
}

// PlanRequest holds the generation form. Dates are YYYY-MM-DD.
type PlanRequest struct {
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	NumPeople int     `json:"num_people"`
	RegionID  int64   `json:"region_id"`
	CityID    int64   `json:"city_id"`
	MapX      float64 `json:"current_mapx"`
	MapY      float64 `json:"current_mapy"`
}

func (r PlanRequest) Validate() error {
	start, err := time.Parse(dateLayout, strings.TrimSpace(r.StartDate))
	if err != nil {
		return fmt.Errorf("%w: start date %q is not YYYY-MM-DD", ErrInvalidInput, r.StartDate)
	}
	end, err := time.Parse(dateLayout, strings.TrimSpace(r.EndDate))
	if err != nil {
		return fmt.Errorf("%w: end date %q is not YYYY-MM-DD", ErrInvalidInput, r.EndDate)
	}
	if end.Before(start) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}
	if r.NumPeople < 1 {
		return fmt.Errorf("%w: number of people must be at least 1", ErrInvalidInput)
	}
	if r.RegionID <= 0 || r.CityID <= 0 {
		return fmt.Errorf("%w: region and city are required", ErrInvalidInput)
	}

	return nil
}

// Draft is the most recent generated plan, kept between invocations.
type Draft struct {
	ID        string        `json:"id"`
	CreatedAt time.Time     `json:"created_at"`
	Request   PlanRequest   `json:"request"`
	Plan      GeneratedPlan `json:"plan"`
}
