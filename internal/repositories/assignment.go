package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

// AssignmentRepository manages the car to driver join table.
type AssignmentRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewAssignmentRepository creates a new AssignmentRepository.
func NewAssignmentRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *AssignmentRepository {
	return &AssignmentRepository{db: db, txGetter: txGetter}
}

// LockCar takes a row lock on the car for the rest of the surrounding
// transaction. It returns sql.ErrNoRows when the car does not exist.
func (r *AssignmentRepository) LockCar(ctx context.Context, carID int64) error {
	const query = `SELECT id FROM cars WHERE id = $1 FOR UPDATE`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, carID)

	logQuery(query, []any{carID}, id, err)

	return err
}

// IsAssigned reports whether the driver is in the car's driver set.
func (r *AssignmentRepository) IsAssigned(ctx context.Context, carID, driverID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1 FROM cars_drivers WHERE car_id = $1 AND driver_id = $2
		)
	`

	var assigned bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &assigned, query, carID, driverID)

	logQuery(query, []any{carID, driverID}, assigned, err)

	return assigned, err
}

// Assign adds the driver to the car's driver set.
func (r *AssignmentRepository) Assign(ctx context.Context, carID, driverID int64) error {
	const query = `
		INSERT INTO cars_drivers (car_id, driver_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, carID, driverID)

	logQuery(query, []any{carID, driverID}, nil, err)

	return translateError(err)
}

// Unassign removes the driver from the car's driver set.
func (r *AssignmentRepository) Unassign(ctx context.Context, carID, driverID int64) error {
	const query = `DELETE FROM cars_drivers WHERE car_id = $1 AND driver_id = $2`

	_, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, carID, driverID)

	logQuery(query, []any{carID, driverID}, nil, err)

	return err
}

// ListDriversByCar returns the car's drivers ordered by username.
func (r *AssignmentRepository) ListDriversByCar(ctx context.Context, carID int64) ([]models.Driver, error) {
	const query = `
		SELECT d.id, d.username, d.password_hash, d.is_staff, d.first_name, d.last_name, d.license_number
		FROM drivers d
		JOIN cars_drivers cd ON cd.driver_id = d.id
		WHERE cd.car_id = $1
		ORDER BY d.username
	`

	drivers := []models.Driver{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &drivers, query, carID)

	logQuery(query, []any{carID}, len(drivers), err)

	return drivers, err
}

// ListCarsByDriver returns the cars a driver is assigned to.
func (r *AssignmentRepository) ListCarsByDriver(ctx context.Context, driverID int64) ([]models.CarListItem, error) {
	const query = carSelect + `
		JOIN cars_drivers cd ON cd.car_id = c.id
		WHERE cd.driver_id = $1
		ORDER BY c.id
	`

	cars := []models.CarListItem{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &cars, query, driverID)

	logQuery(query, []any{driverID}, len(cars), err)

	return cars, err
}
