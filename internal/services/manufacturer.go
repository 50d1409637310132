package services

import (
	"context"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=manufacturer.go -destination=mock_manufacturer.go -package=services

// ManufacturerStore persists manufacturers.
type ManufacturerStore interface {
	List(ctx context.Context, filter models.ManufacturerFilter) ([]models.Manufacturer, error)
	GetByID(ctx context.Context, id int64) (*models.Manufacturer, error)
	Save(ctx context.Context, m *models.Manufacturer) error
	Update(ctx context.Context, m *models.Manufacturer) error
	Delete(ctx context.Context, id int64) error
}

// ManufacturerService implements the manufacturer pages.
type ManufacturerService struct {
	store ManufacturerStore
}

// NewManufacturerService creates a new ManufacturerService.
func NewManufacturerService(store ManufacturerStore) *ManufacturerService {
	return &ManufacturerService{store: store}
}

// List returns manufacturers ordered by name whose name contains
// filter.Name, ignoring case.
func (svc *ManufacturerService) List(ctx context.Context, caller *models.Caller, filter models.ManufacturerFilter) ([]models.Manufacturer, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	manufacturers, err := svc.store.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list manufacturers", "name", filter.Name, "err", err)
		return nil, err
	}
	return manufacturers, nil
}

// Get returns ErrNotFound for an unknown id.
func (svc *ManufacturerService) Get(ctx context.Context, caller *models.Caller, id int64) (*models.Manufacturer, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	m, err := svc.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return m, nil
}

// Create requires the add_manufacturer permission.
func (svc *ManufacturerService) Create(ctx context.Context, caller *models.Caller, form forms.ManufacturerForm) (*models.Manufacturer, error) {
	if err := authorize(caller, models.PermAddManufacturer); err != nil {
		return nil, err
	}

	m, err := form.Validate()
	if err != nil {
		return nil, err
	}

	if err := svc.store.Save(ctx, m); err != nil {
		logger.Log.Errorw("failed to save manufacturer", "name", m.Name, "err", err)
		return nil, err
	}

	logger.Log.Infow("manufacturer created", "id", m.ID, "by", caller.Username)
	return m, nil
}

// Update replaces the name and country of the manufacturer.
func (svc *ManufacturerService) Update(ctx context.Context, caller *models.Caller, id int64, form forms.ManufacturerForm) (*models.Manufacturer, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	m, err := form.Validate()
	if err != nil {
		return nil, err
	}
	m.ID = id

	if err := svc.store.Update(ctx, m); err != nil {
		logger.Log.Errorw("failed to update manufacturer", "id", id, "err", err)
		return nil, notFound(err)
	}
	return m, nil
}

// Delete removes the manufacturer together with its cars.
func (svc *ManufacturerService) Delete(ctx context.Context, caller *models.Caller, id int64) error {
	if err := authorize(caller, ""); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete manufacturer", "id", id, "err", err)
		return notFound(err)
	}
	return nil
}
