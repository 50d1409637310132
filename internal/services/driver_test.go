package services

import (
	"context"
	"database/sql"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestDriverService_Create(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockDriverStore(ctrl)
	svc := NewDriverService(store, NewMockDriverCarsReader(ctrl), []string{models.PermAddManufacturer})

	form := forms.DriverCreationForm{
		Username:      "new_user",
		Password1:     "user12test",
		Password2:     "user12test",
		FirstName:     "Test first",
		LastName:      "Test last",
		LicenseNumber: "TES12345",
	}

	store.EXPECT().
		Save(ctx, gomock.Any(), []string{models.PermAddManufacturer}).
		DoAndReturn(func(_ context.Context, d *models.Driver, _ []string) error {
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte("user12test")))
			d.ID = 11
			return nil
		})

	driver, err := svc.Create(ctx, plainCaller, form)
	require.NoError(t, err)
	assert.Equal(t, int64(11), driver.ID)
	assert.Equal(t, "new_user (Test first Test last)", driver.String())
	assert.Equal(t, "/drivers/11/", driver.AbsoluteURL())
}

func TestDriverService_Create_InvalidLicense(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := NewDriverService(NewMockDriverStore(ctrl), NewMockDriverCarsReader(ctrl), nil)

	form := forms.DriverCreationForm{
		Username:      "new_user",
		Password1:     "user12test",
		Password2:     "user12test",
		LicenseNumber: "asd12345",
	}

	_, err := svc.Create(context.Background(), plainCaller, form)
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, []string{forms.ErrLicenseNumberLetters.Error()}, verrs["license_number"])
}

func TestDriverService_Get(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockDriverStore(ctrl)
	cars := NewMockDriverCarsReader(ctrl)
	svc := NewDriverService(store, cars, nil)

	store.EXPECT().GetByID(ctx, int64(1)).Return(&models.Driver{ID: 1, Identity: models.Identity{Username: "test"}}, nil)
	cars.EXPECT().ListCarsByDriver(ctx, int64(1)).Return([]models.CarListItem{{Car: models.Car{ID: 5, Model: "310"}}}, nil)

	detail, err := svc.Get(ctx, plainCaller, 1)
	require.NoError(t, err)
	assert.Equal(t, "test", detail.Username)
	require.Len(t, detail.Cars, 1)
	assert.Equal(t, "310", detail.Cars[0].String())

	store.EXPECT().GetByID(ctx, int64(404)).Return(nil, sql.ErrNoRows)
	_, err = svc.Get(ctx, plainCaller, 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDriverService_UpdateLicense(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		license  string
		storeErr error
		stores   bool
		wantErr  bool
		notFound bool
	}{
		{name: "valid", license: "ASW23141", stores: true},
		{name: "too long", license: "ASW231412", wantErr: true},
		{name: "lowercase", license: "asw23141", wantErr: true},
		{name: "letters at the end", license: "ASW2314A", wantErr: true},
		{name: "missing driver", license: "ASW23141", stores: true, storeErr: sql.ErrNoRows, wantErr: true, notFound: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := NewMockDriverStore(ctrl)
			svc := NewDriverService(store, NewMockDriverCarsReader(ctrl), nil)

			if tt.stores {
				store.EXPECT().UpdateLicenseNumber(ctx, int64(1), tt.license).Return(tt.storeErr)
			}

			err := svc.UpdateLicense(ctx, plainCaller, 1, forms.DriverLicenseUpdateForm{LicenseNumber: tt.license})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			if tt.notFound {
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			var verrs models.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.True(t, verrs.Has("license_number"))
		})
	}
}

func TestDriverService_AdminList(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockDriverStore(ctrl)
	svc := NewDriverService(store, NewMockDriverCarsReader(ctrl), nil)

	_, err := svc.AdminList(ctx, plainCaller, models.DriverFilter{})
	assert.ErrorIs(t, err, ErrPermissionDenied)

	store.EXPECT().List(ctx, models.DriverFilter{}).Return([]models.Driver{}, nil)
	drivers, err := svc.AdminList(ctx, staffCaller, models.DriverFilter{})
	require.NoError(t, err)
	assert.Empty(t, drivers)

	store.EXPECT().Delete(ctx, int64(404)).Return(sql.ErrNoRows)
	assert.ErrorIs(t, svc.Delete(ctx, staffCaller, 404), ErrNotFound)
}

func TestDriverService_EnsureAdmin(t *testing.T) {
	ctx := context.Background()

	form := forms.DriverCreationForm{
		Username:      "admin.user",
		Password1:     "1qazcde3",
		Password2:     "1qazcde3",
		LicenseNumber: "ADM00001",
	}

	t.Run("creates a staff driver when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockDriverStore(ctrl)
		svc := NewDriverService(store, NewMockDriverCarsReader(ctrl), []string{models.PermAddManufacturer})

		store.EXPECT().GetByUsername(ctx, "admin.user").Return(nil, sql.ErrNoRows)
		store.EXPECT().
			Save(ctx, gomock.Any(), []string{models.PermAddManufacturer}).
			DoAndReturn(func(_ context.Context, d *models.Driver, _ []string) error {
				assert.True(t, d.IsStaff)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte("1qazcde3")))
				d.ID = 1
				return nil
			})

		driver, created, err := svc.EnsureAdmin(ctx, form)
		require.NoError(t, err)
		assert.True(t, created)
		assert.Equal(t, int64(1), driver.ID)
		assert.True(t, driver.IsStaff)
	})

	t.Run("keeps an existing driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockDriverStore(ctrl)
		svc := NewDriverService(store, NewMockDriverCarsReader(ctrl), nil)

		existing := &models.Driver{ID: 7, Identity: models.Identity{Username: "admin.user", IsStaff: true}}
		store.EXPECT().GetByUsername(ctx, "admin.user").Return(existing, nil)

		driver, created, err := svc.EnsureAdmin(ctx, form)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, driver)
	})

	t.Run("lost race to another instance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		store := NewMockDriverStore(ctrl)
		svc := NewDriverService(store, NewMockDriverCarsReader(ctrl), nil)

		existing := &models.Driver{ID: 3, Identity: models.Identity{Username: "admin.user", IsStaff: true}}
		gomock.InOrder(
			store.EXPECT().GetByUsername(ctx, "admin.user").Return(nil, sql.ErrNoRows),
			store.EXPECT().Save(ctx, gomock.Any(), nil).
				Return(models.ValidationErrors{"username": {"A user with that username already exists."}}),
			store.EXPECT().GetByUsername(ctx, "admin.user").Return(existing, nil),
		)

		driver, created, err := svc.EnsureAdmin(ctx, form)
		require.NoError(t, err)
		assert.False(t, created)
		assert.Equal(t, existing, driver)
	})

	t.Run("invalid form", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewDriverService(NewMockDriverStore(ctrl), NewMockDriverCarsReader(ctrl), nil)

		bad := form
		bad.LicenseNumber = "bad"
		_, created, err := svc.EnsureAdmin(ctx, bad)

		var verrs models.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.True(t, verrs.Has("license_number"))
		assert.False(t, created)
	})
}
