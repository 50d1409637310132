package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=driver.go -destination=mock_driver.go -package=services

// DriverStore persists drivers.
type DriverStore interface {
	List(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	GetByUsername(ctx context.Context, username string) (*models.Driver, error)
	Save(ctx context.Context, d *models.Driver, permissions []string) error
	UpdateLicenseNumber(ctx context.Context, id int64, licenseNumber string) error
	Delete(ctx context.Context, id int64) error
}

// DriverCarsReader lists the cars a driver is assigned to.
type DriverCarsReader interface {
	ListCarsByDriver(ctx context.Context, driverID int64) ([]models.CarListItem, error)
}

// DriverService implements the driver pages and the admin driver surface.
type DriverService struct {
	store              DriverStore
	cars               DriverCarsReader
	defaultPermissions []string
}

// NewDriverService creates a DriverService. Every driver it creates is
// granted defaultPermissions.
func NewDriverService(store DriverStore, cars DriverCarsReader, defaultPermissions []string) *DriverService {
	return &DriverService{
		store:              store,
		cars:               cars,
		defaultPermissions: defaultPermissions,
	}
}

// List returns drivers ordered by username whose username contains
// filter.Username, ignoring case.
func (svc *DriverService) List(ctx context.Context, caller *models.Caller, filter models.DriverFilter) ([]models.Driver, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	drivers, err := svc.store.List(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to list drivers", "username", filter.Username, "err", err)
		return nil, err
	}
	return drivers, nil
}

// Get returns the driver with the cars assigned to it.
func (svc *DriverService) Get(ctx context.Context, caller *models.Caller, id int64) (*models.DriverDetail, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	driver, err := svc.store.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}

	cars, err := svc.cars.ListCarsByDriver(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to list driver cars", "driver_id", id, "err", err)
		return nil, err
	}

	return &models.DriverDetail{Driver: *driver, Cars: cars}, nil
}

// Create registers a new driver with the default permissions.
func (svc *DriverService) Create(ctx context.Context, caller *models.Caller, form forms.DriverCreationForm) (*models.Driver, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	driver, err := form.Validate()
	if err != nil {
		return nil, err
	}

	if err := svc.store.Save(ctx, driver, svc.defaultPermissions); err != nil {
		logger.Log.Errorw("failed to save driver", "username", driver.Username, "err", err)
		return nil, err
	}
	return driver, nil
}

// UpdateLicense changes only the license number of the driver.
func (svc *DriverService) UpdateLicense(ctx context.Context, caller *models.Caller, id int64, form forms.DriverLicenseUpdateForm) error {
	if err := authorize(caller, ""); err != nil {
		return err
	}

	licenseNumber, err := form.Validate()
	if err != nil {
		return err
	}

	if err := svc.store.UpdateLicenseNumber(ctx, id, licenseNumber); err != nil {
		logger.Log.Errorw("failed to update license number", "id", id, "err", err)
		return notFound(err)
	}
	return nil
}

// Delete removes the driver and its car assignments.
func (svc *DriverService) Delete(ctx context.Context, caller *models.Caller, id int64) error {
	if err := authorize(caller, ""); err != nil {
		return err
	}

	if err := svc.store.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete driver", "id", id, "err", err)
		return notFound(err)
	}
	return nil
}

// AdminList returns every driver for the staff change list.
func (svc *DriverService) AdminList(ctx context.Context, caller *models.Caller, filter models.DriverFilter) ([]models.Driver, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}
	if !caller.IsStaff {
		return nil, ErrPermissionDenied
	}
	return svc.List(ctx, caller, filter)
}

// EnsureAdmin creates a staff driver from form unless a driver with that
// username already exists. It runs at startup, outside any request, so it
// takes no caller. The returned bool reports whether a driver was created.
func (svc *DriverService) EnsureAdmin(ctx context.Context, form forms.DriverCreationForm) (*models.Driver, bool, error) {
	driver, err := form.Validate()
	if err != nil {
		return nil, false, err
	}

	existing, err := svc.store.GetByUsername(ctx, driver.Username)
	if err == nil {
		return existing, false, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("failed to look up admin", "username", driver.Username, "err", err)
		return nil, false, err
	}

	driver.IsStaff = true
	if err := svc.store.Save(ctx, driver, svc.defaultPermissions); err != nil {
		var verrs models.ValidationErrors
		if errors.As(err, &verrs) && verrs.Has("username") {
			// Another instance created it first.
			existing, getErr := svc.store.GetByUsername(ctx, driver.Username)
			if getErr == nil {
				return existing, false, nil
			}
		}
		logger.Log.Errorw("failed to save admin", "username", driver.Username, "err", err)
		return nil, false, err
	}

	logger.Log.Infow("admin driver created", "id", driver.ID, "username", driver.Username)
	return driver, true, nil
}
