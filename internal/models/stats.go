package models

// IndexStats is the summary shown on the home page.
type IndexStats struct {
	NumDrivers       int64 `json:"num_drivers"`
	NumCars          int64 `json:"num_cars"`
	NumManufacturers int64 `json:"num_manufacturers"`
	NumVisits        int64 `json:"num_visits"`
}
