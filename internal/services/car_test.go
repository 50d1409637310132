package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/forms"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarService_List(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockCarStore(ctrl)
	svc := NewCarService(store, NewMockCarDriversReader(ctrl))

	want := []models.CarListItem{{Car: models.Car{ID: 1, Model: "Tesla"}}}
	store.EXPECT().List(ctx, models.CarFilter{Model: "tesla"}).Return(want, nil)

	got, err := svc.List(ctx, plainCaller, models.CarFilter{Model: "tesla"})
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = svc.List(ctx, nil, models.CarFilter{})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCarService_Get(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockCarStore(ctrl)
	drivers := NewMockCarDriversReader(ctrl)
	svc := NewCarService(store, drivers)

	car := &models.CarListItem{
		Car:          models.Car{ID: 5, Model: "310", ManufacturerID: 1},
		Manufacturer: models.Manufacturer{ID: 1, Name: "BMW", Country: "Ukraine"},
	}
	assigned := []models.Driver{{ID: 1, Identity: models.Identity{Username: "test"}}}

	store.EXPECT().GetByID(ctx, int64(5)).Return(car, nil)
	drivers.EXPECT().ListDriversByCar(ctx, int64(5)).Return(assigned, nil)

	detail, err := svc.Get(ctx, plainCaller, 5)
	require.NoError(t, err)
	assert.Equal(t, "310", detail.String())
	assert.Equal(t, "BMW", detail.Manufacturer.Name)
	assert.True(t, detail.HasDriver(plainCaller.DriverID))

	store.EXPECT().GetByID(ctx, int64(404)).Return(nil, sql.ErrNoRows)
	_, err = svc.Get(ctx, plainCaller, 404)
	assert.ErrorIs(t, err, ErrNotFound)

	store.EXPECT().GetByID(ctx, int64(5)).Return(car, nil)
	drivers.EXPECT().ListDriversByCar(ctx, int64(5)).Return(nil, errors.New("db error"))
	_, err = svc.Get(ctx, plainCaller, 5)
	assert.EqualError(t, err, "db error")
}

func TestCarService_CreateUpdateDelete(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := NewMockCarStore(ctrl)
	svc := NewCarService(store, NewMockCarDriversReader(ctrl))

	form := forms.CarForm{Model: " Golf ", ManufacturerID: 3, DriverIDs: []int64{1, 2, 1}}

	store.EXPECT().Save(ctx, &models.Car{Model: "Golf", ManufacturerID: 3}, []int64{1, 2}).Return(nil)
	car, err := svc.Create(ctx, plainCaller, form)
	require.NoError(t, err)
	assert.Equal(t, "Golf", car.Model)

	_, err = svc.Create(ctx, plainCaller, forms.CarForm{})
	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("model"))
	assert.True(t, verrs.Has("manufacturer"))

	store.EXPECT().Update(ctx, &models.Car{ID: 9, Model: "Golf", ManufacturerID: 3}, []int64{1, 2}).Return(nil)
	car, err = svc.Update(ctx, plainCaller, 9, form)
	require.NoError(t, err)
	assert.Equal(t, int64(9), car.ID)

	store.EXPECT().Update(ctx, gomock.Any(), gomock.Any()).Return(sql.ErrNoRows)
	_, err = svc.Update(ctx, plainCaller, 404, form)
	assert.ErrorIs(t, err, ErrNotFound)

	store.EXPECT().Delete(ctx, int64(9)).Return(nil)
	assert.NoError(t, svc.Delete(ctx, plainCaller, 9))

	assert.ErrorIs(t, svc.Delete(ctx, nil, 9), ErrUnauthenticated)
}
