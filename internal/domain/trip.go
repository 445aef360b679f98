package domain

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TripQuery struct {
	Search     string
	CategoryID int64
	RegionID   int64
	Page       int
}

type TripPage struct {
	Count int     `json:"count"`
	Next  string  `json:"next,omitempty"`
	Trips []Place `json:"results"`
}
