package services

import (
	"context"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=car.go -destination=mock_car.go -package=services

// CarStore persists cars with their driver sets.
type CarStore interface {
	List(ctx context.Context, filter models.CarFilter) ([]models.CarListItem, error)
	GetByID(ctx context.Context, id int64) (*models.CarListItem, error)
	Save(ctx context.Context, car *models.Car, driverIDs []int64) error
	Update(ctx context.Context, car *models.Car, driverIDs []int64) error
	Delete(ctx context.Context, id int64) error
}

// CarDriversReader lists the drivers assigned to a car.
type CarDriversReader interface {
	ListDriversByCar(ctx context.Context, carID int64) ([]models.Driver, error)
}

// CarService implements the car pages.
type CarService struct {
	store   CarStore
	drivers CarDriversReader
}

// NewCarService creates a new CarService.
func NewCarService(store CarStore, drivers CarDriversReader) *CarService {
	return &CarService{store: store, drivers: drivers}
}

// List returns cars whose model contains filter.Model, ignoring case.
func (svc *CarService) List(ctx context.Context, caller *models.Caller, filter models.CarFilter) ([]models.CarListItem, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	cars, err := svc.store.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list cars", "model", filter.Model, "err", err)
		return nil, err
	}
	return cars, nil
}

// Get returns the car with its manufacturer and drivers.
func (svc *CarService) Get(ctx context.Context, caller *models.Caller, id int64) (*models.CarDetail, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	car, err := svc.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	drivers, err := svc.drivers.ListDriversByCar(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list car drivers", "car_id", id, "err", err)
		return nil, err
	}

	return &models.CarDetail{CarListItem: *car, Drivers: drivers}, nil
}

// Create saves a new car with its driver set.
func (svc *CarService) Create(ctx context.Context, caller *models.Caller, form forms.CarForm) (*models.Car, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	car, driverIDs, err := form.Validate()
	if err != nil {
		return nil, err
	}

	if err := svc.store.Save(ctx, car, driverIDs); err != nil {
		logger.Log.Errorw("failed to save car", "model", car.Model, "err", err)
		return nil, err
	}
	return car, nil
}

// Update replaces the car's fields and driver set.
func (svc *CarService) Update(ctx context.Context, caller *models.Caller, id int64, form forms.CarForm) (*models.Car, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	car, driverIDs, err := form.Validate()
	if err != nil {
		return nil, err
	}
	car.ID = id

	if err := svc.store.Update(ctx, car, driverIDs); err != nil {
		logger.Log.Errorw("failed to update car", "id", id, "err", err)
		return nil, notFound(err)
	}
	return car, nil
}

// Delete removes the car.
func (svc *CarService) Delete(ctx context.Context, caller *models.Caller, id int64) error {
	if err := authorize(caller, ""); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete car", "id", id, "err", err)
		return notFound(err)
	}
	return nil
}
