package domain

const UnknownRegionName = "Unknown"

type City struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Region struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Cities []City `json:"cities"`
}

func (r Region) City(id int64) (City, bool) {
	for _, city := range r.Cities {
		if city.ID == id {
			return city, true
		}
	}

	return City{}, false
}

type CourseDetail struct {
	TripID TripID `json:"trip_id"`
	Day    int    `json:"day"`
	Order  int    `json:"order"`
}

type CourseSavePayload struct {
	Title     string         `json:"title"`
	Region    string         `json:"region"`
	StartDate string         `json:"start_date"`
	EndDate   string         `json:"end_date"`
	Details   []CourseDetail `json:"details"`
}

// ResolveRegionName looks regionID up in catalog and falls back to
// UnknownRegionName.
func ResolveRegionName(regionID int64, catalog []Region) string {
	for _, region := range catalog {
		if region.ID == regionID {
			return region.Name
		}
	}

	return UnknownRegionName
}

// FlattenPlan lists the persistable items of plan in day and schedule order.
// Order starts at 1 on every day and counts only emitted items.
func FlattenPlan(plan GeneratedPlan) []CourseDetail {
	details := make([]CourseDetail, 0, plan.ItemCount())
	for _, day := range plan.Days {
		order := 0
		for _, item := range day.Schedule {
			if item.TripID == nil {
				continue
			}

			order++
			details = append(details, CourseDetail{
				TripID: *item.TripID,
				Day:    day.Day,
				Order:  order,
			})
		}
	}

	return details
}
