package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

const carSelect = `
	SELECT c.id, c.model, c.manufacturer_id,
	       m.id AS "manufacturer.id",
	       m.name AS "manufacturer.name",
	       m.country AS "manufacturer.country"
	FROM cars c
	JOIN manufacturers m ON m.id = c.manufacturer_id
`

// CarRepository persists cars and the driver set they are saved with.
type CarRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewCarRepository creates a new CarRepository.
func NewCarRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *CarRepository {
	return &CarRepository{db: db, txGetter: txGetter}
}

// List returns cars with their manufacturer, optionally narrowed to models
// containing filter.Model case-insensitively.
func (r *CarRepository) List(ctx context.Context, filter models.CarFilter) ([]models.CarListItem, error) {
	const query = carSelect + `
		WHERE ($1::TEXT = '' OR STRPOS(LOWER(c.model), LOWER($1::TEXT)) > 0)
		ORDER BY c.id
	`

	cars := []models.CarListItem{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &cars, query, filter.Model)

	logQuery(query, []any{filter.Model}, len(cars), err)

	return cars, err
}

// GetByID returns sql.ErrNoRows when the car does not exist.
func (r *CarRepository) GetByID(ctx context.Context, id int64) (*models.CarListItem, error) {
	const query = carSelect + `WHERE c.id = $1`

	var car models.CarListItem
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &car, query, id)

	logQuery(query, []any{id}, car, err)

	if err != nil {
		return nil, err
	}
	return &car, nil
}

// Save inserts the car, sets its ID and assigns driverIDs to it.
func (r *CarRepository) Save(ctx context.Context, car *models.Car, driverIDs []int64) error {
	const query = `
		INSERT INTO cars (model, manufacturer_id)
		VALUES ($1, $2)
		RETURNING id
	`

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{car.Model, car.ManufacturerID}
	err := sqlx.GetContext(ctx, ex, &car.ID, query, args...)

	logQuery(query, args, car.ID, err)

	if err != nil {
		return translateError(err)
	}
	return r.insertDrivers(ctx, ex, car.ID, driverIDs)
}

// Update overwrites the car and replaces its driver set.
func (r *CarRepository) Update(ctx context.Context, car *models.Car, driverIDs []int64) error {
	const query = `
		UPDATE cars
		SET model = $1, manufacturer_id = $2
		WHERE id = $3
		RETURNING id
	`
	const clear = `DELETE FROM cars_drivers WHERE car_id = $1`

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{car.Model, car.ManufacturerID, car.ID}
	var id int64
	err := sqlx.GetContext(ctx, ex, &id, query, args...)

	logQuery(query, args, id, err)

	if err != nil {
		return translateError(err)
	}

	_, err = ex.ExecContext(ctx, clear, car.ID)

	logQuery(clear, []any{car.ID}, nil, err)

	if err != nil {
		return err
	}
	return r.insertDrivers(ctx, ex, car.ID, driverIDs)
}

func (r *CarRepository) insertDrivers(ctx context.Context, ex sqlx.ExtContext, carID int64, driverIDs []int64) error {
	const query = `
		INSERT INTO cars_drivers (car_id, driver_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	for _, driverID := range driverIDs {
		_, err := ex.ExecContext(ctx, query, carID, driverID)

		logQuery(query, []any{carID, driverID}, nil, err)

		if err != nil {
			return translateError(err)
		}
	}
	return nil
}

// Delete returns sql.ErrNoRows if the car does not exist.
func (r *CarRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM cars WHERE id = $1 RETURNING id`

	var deleted int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deleted, query, id)

	logQuery(query, []any{id}, deleted, err)

	return err
}

// Count returns the number of cars.
func (r *CarRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM cars`

	var n int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)

	logQuery(query, nil, n, err)

	return n, err
}
