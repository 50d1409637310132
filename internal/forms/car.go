package forms

import (
	"strings"

	"github.com/sbilibin2017/taxi-service/internal/models"
)

// CarForm creates or updates a car together with its driver set.
type CarForm struct {
	Model          string  `json:"model" validate:"required,max=255"`
	ManufacturerID int64   `json:"manufacturer" validate:"required,gt=0"`
	DriverIDs      []int64 `json:"drivers" validate:"dive,gt=0"`
}

func (CarForm) Fields() []Field {
	return []Field{
		{Name: "model", Label: "Model", Type: "text", Required: true},
		{Name: "manufacturer", Label: "Manufacturer", Type: "select", Required: true},
		{Name: "drivers", Label: "Drivers", Type: "checkbox"},
	}
}

// Validate returns the car and the de-duplicated driver ids.
func (f CarForm) Validate() (*models.Car, []int64, error) {
	f.Model = strings.TrimSpace(f.Model)

	if err := check(f).Err(); err != nil {
		return nil, nil, err
	}

	seen := make(map[int64]struct{}, len(f.DriverIDs))
	driverIDs := make([]int64, 0, len(f.DriverIDs))
	for _, id := range f.DriverIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		driverIDs = append(driverIDs, id)
	}

	return &models.Car{Model: f.Model, ManufacturerID: f.ManufacturerID}, driverIDs, nil
}
