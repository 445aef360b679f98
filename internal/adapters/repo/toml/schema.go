package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int          `toml:"version"`
	Draft   *draftSchema `toml:"draft,omitempty"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported draft schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type draftSchema struct {
	ID        string        `toml:"id"`
	CreatedAt string        `toml:"created_at"`
	Request   requestSchema `toml:"request"`
	Plan      planSchema    `toml:"plan"`
}

type requestSchema struct {
	StartDate string  `toml:"start_date"`
	EndDate   string  `toml:"end_date"`
	NumPeople int     `toml:"num_people"`
	RegionID  int64   `toml:"region_id"`
	CityID    int64   `toml:"city_id"`
	MapX      float64 `toml:"current_mapx"`
	MapY      float64 `toml:"current_mapy"`
}

type planSchema struct {
	Duration                 int         `toml:"duration"`
	TravelTimeToDest         int         `toml:"travel_time_to_dest"`
	RegionID                 int64       `toml:"region_id"`
	RecommendedAccommodation string      `toml:"recommended_accommodation,omitempty"`
	Days                     []daySchema `toml:"days"`
}

type daySchema struct {
	Day   int          `toml:"day"`
	Date  string       `toml:"date"`
	Items []itemSchema `toml:"items"`
}

// itemSchema keeps the place payload as raw JSON so fields the planner adds
// later survive a save and reload.
type itemSchema struct {
	Type   string `toml:"type"`
	Time   string `toml:"time"`
	Status string `toml:"status,omitempty"`
	TripID *int64 `toml:"trip_id,omitempty"`
	Data   string `toml:"data,omitempty"`
}
