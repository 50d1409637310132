package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexService_Stats(t *testing.T) {
	ctx := context.Background()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	drivers := NewMockCounter(ctrl)
	cars := NewMockCounter(ctrl)
	manufacturers := NewMockCounter(ctrl)
	visits := NewMockVisitCounter(ctrl)
	svc := NewIndexService(drivers, cars, manufacturers, visits, time.Hour)

	drivers.EXPECT().Count(ctx).Return(int64(3), nil)
	cars.EXPECT().Count(ctx).Return(int64(5), nil)
	manufacturers.EXPECT().Count(ctx).Return(int64(2), nil)
	visits.EXPECT().IncrementVisits(ctx, plainCaller.SessionID, time.Hour).Return(int64(4), nil)

	stats, err := svc.Stats(ctx, plainCaller)
	require.NoError(t, err)
	assert.Equal(t, &models.IndexStats{NumDrivers: 3, NumCars: 5, NumManufacturers: 2, NumVisits: 4}, stats)

	drivers.EXPECT().Count(ctx).Return(int64(0), errors.New("db error"))
	_, err = svc.Stats(ctx, plainCaller)
	assert.EqualError(t, err, "db error")

	_, err = svc.Stats(ctx, nil)
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
