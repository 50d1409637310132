package forms

import (
	"strings"

	"github.com/sbilibin2017/taxi-service/internal/models"
)

// ManufacturerForm creates or updates a manufacturer.
type ManufacturerForm struct {
	Name    string `json:"name" validate:"required,max=255"`
	Country string `json:"country" validate:"required,max=255"`
}

func (ManufacturerForm) Fields() []Field {
	return []Field{
		{Name: "name", Label: "Name", Type: "text", Required: true},
		{Name: "country", Label: "Country", Type: "text", Required: true},
	}
}

func (f ManufacturerForm) Validate() (*models.Manufacturer, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Country = strings.TrimSpace(f.Country)

	if err := check(f).Err(); err != nil {
		return nil, err
	}
	return &models.Manufacturer{Name: f.Name, Country: f.Country}, nil
}
