package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

const driverColumns = `id, username, password_hash, is_staff, first_name, last_name, license_number`

// DriverRepository persists drivers and their permissions.
type DriverRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewDriverRepository creates a new DriverRepository.
func NewDriverRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *DriverRepository {
	return &DriverRepository{db: db, txGetter: txGetter}
}

// List returns drivers ordered by username, optionally narrowed to
// usernames containing filter.Username case-insensitively.
func (r *DriverRepository) List(ctx context.Context, filter models.DriverFilter) ([]models.Driver, error) {
	const query = `
		SELECT ` + driverColumns + `
		FROM drivers
		WHERE ($1::TEXT = '' OR STRPOS(LOWER(username), LOWER($1::TEXT)) > 0)
		ORDER BY username
	`

	drivers := []models.Driver{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &drivers, query, filter.Username)

	logQuery(query, []any{filter.Username}, len(drivers), err)

	return drivers, err
}

// GetByID returns sql.ErrNoRows when the driver does not exist.
func (r *DriverRepository) GetByID(ctx context.Context, id int64) (*models.Driver, error) {
	const query = `SELECT ` + driverColumns + ` FROM drivers WHERE id = $1`

	var d models.Driver
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &d, query, id)

	logQuery(query, []any{id}, d.Username, err)

	if err != nil {
		return nil, err
	}
	return &d, nil
}

// GetByUsername returns sql.ErrNoRows when no driver has that username.
func (r *DriverRepository) GetByUsername(ctx context.Context, username string) (*models.Driver, error) {
	const query = `SELECT ` + driverColumns + ` FROM drivers WHERE username = $1`

	var d models.Driver
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &d, query, username)

	logQuery(query, []any{username}, d.ID, err)

	if err != nil {
		return nil, err
	}
	return &d, nil
}

// Save inserts the driver with its permissions and sets its ID.
func (r *DriverRepository) Save(ctx context.Context, d *models.Driver, permissions []string) error {
	const query = `
		INSERT INTO drivers (username, password_hash, is_staff, first_name, last_name, license_number)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	const grant = `
		INSERT INTO driver_permissions (driver_id, codename)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`

	ex := executor(ctx, r.db, r.txGetter)
	args := []any{d.Username, d.PasswordHash, d.IsStaff, d.FirstName, d.LastName, d.LicenseNumber}
	err := sqlx.GetContext(ctx, ex, &d.ID, query, args...)

	// Never log the password hash
	logQuery(query, []any{d.Username, d.IsStaff, d.FirstName, d.LastName, d.LicenseNumber}, d.ID, err)

	if err != nil {
		return translateError(err)
	}

	for _, perm := range permissions {
		_, err := ex.ExecContext(ctx, grant, d.ID, perm)

		logQuery(grant, []any{d.ID, perm}, nil, err)

		if err != nil {
			return err
		}
	}
	return nil
}

// UpdateLicenseNumber returns sql.ErrNoRows if the driver does not exist.
func (r *DriverRepository) UpdateLicenseNumber(ctx context.Context, id int64, licenseNumber string) error {
	const query = `
		UPDATE drivers
		SET license_number = $1
		WHERE id = $2
		RETURNING id
	`

	args := []any{licenseNumber, id}
	var updated int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &updated, query, args...)

	logQuery(query, args, updated, err)

	return translateError(err)
}

// Delete returns sql.ErrNoRows if the driver does not exist.
func (r *DriverRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM drivers WHERE id = $1 RETURNING id`

	var deleted int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deleted, query, id)

	logQuery(query, []any{id}, deleted, err)

	return err
}

// Count returns the number of drivers.
func (r *DriverRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM drivers`

	var n int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)

	logQuery(query, nil, n, err)

	return n, err
}

// GetPermissions returns the permission codenames granted to the driver.
func (r *DriverRepository) GetPermissions(ctx context.Context, id int64) ([]string, error) {
	const query = `
		SELECT codename
		FROM driver_permissions
		WHERE driver_id = $1
		ORDER BY codename
	`

	perms := []string{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &perms, query, id)

	logQuery(query, []any{id}, perms, err)

	return perms, err
}
