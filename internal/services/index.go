package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

//go:generate mockgen -source=index.go -destination=mock_index.go -package=services

// Counter counts the rows of one entity.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// VisitCounter keeps per-session page visit counts.
type VisitCounter interface {
	IncrementVisits(ctx context.Context, sessionID string, exp time.Duration) (int64, error)
}

// IndexService builds the home page summary.
type IndexService struct {
	drivers       Counter
	cars          Counter
	manufacturers Counter
	visits        VisitCounter
	exp           time.Duration
}

// NewIndexService creates an IndexService. Visit counters live as long as
// the session, exp.
func NewIndexService(drivers, cars, manufacturers Counter, visits VisitCounter, exp time.Duration) *IndexService {
	return &IndexService{
		drivers:       drivers,
		cars:          cars,
		manufacturers: manufacturers,
		visits:        visits,
		exp:           exp,
	}
}

// Stats counts every entity and records one more visit for the caller's session.
func (svc *IndexService) Stats(ctx context.Context, caller *models.Caller) (*models.IndexStats, error) {
	if err := authorize(caller, ""); err != nil {
		return nil, err
	}

	var (
		stats models.IndexStats
		err   error
	)

	if stats.NumDrivers, err = svc.drivers.Count(ctx); err != nil {
		logger.Log.Errorw("failed to count drivers", "err", err)
		return nil, err
	}
	if stats.NumCars, err = svc.cars.Count(ctx); err != nil {
		logger.Log.Errorw("failed to count cars", "err", err)
		return nil, err
	}
	if stats.NumManufacturers, err = svc.manufacturers.Count(ctx); err != nil {
		logger.Log.Errorw("failed to count manufacturers", "err", err)
		return nil, err
	}
	if stats.NumVisits, err = svc.visits.IncrementVisits(ctx, caller.SessionID, svc.exp); err != nil {
		logger.Log.Errorw("failed to count visits", "err", err)
		return nil, err
	}

	return &stats, nil
}
