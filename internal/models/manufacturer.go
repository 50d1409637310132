package models

import "fmt"

// Manufacturer represents a car manufacturer record in the database
type Manufacturer struct {
	ID      int64  `json:"id" db:"id"`           // Primary key
	Name    string `json:"name" db:"name"`       // Unique manufacturer name
	Country string `json:"country" db:"country"` // Country of origin
}

// String returns "{name} {country}".
func (m Manufacturer) String() string {
	return fmt.Sprintf("%s %s", m.Name, m.Country)
}

// ManufacturerFilter narrows the manufacturer list by a case-insensitive
// substring of the name. An empty Name lists everything.
type ManufacturerFilter struct {
	Name string
}
