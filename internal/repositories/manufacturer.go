package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

// ManufacturerRepository persists manufacturers.
type ManufacturerRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewManufacturerRepository creates a new ManufacturerRepository.
func NewManufacturerRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ManufacturerRepository {
	return &ManufacturerRepository{db: db, txGetter: txGetter}
}

// List returns manufacturers ordered by name, optionally narrowed to names
// containing filter.Name case-insensitively.
func (r *ManufacturerRepository) List(ctx context.Context, filter models.ManufacturerFilter) ([]models.Manufacturer, error) {
	const query = `
		SELECT id, name, country
		FROM manufacturers
		WHERE ($1::TEXT = '' OR STRPOS(LOWER(name), LOWER($1::TEXT)) > 0)
		ORDER BY name, id
	`

	manufacturers := []models.Manufacturer{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &manufacturers, query, filter.Name)

	logQuery(query, []any{filter.Name}, len(manufacturers), err)

	return manufacturers, err
}

// GetByID returns sql.ErrNoRows when the manufacturer does not exist.
func (r *ManufacturerRepository) GetByID(ctx context.Context, id int64) (*models.Manufacturer, error) {
	const query = `SELECT id, name, country FROM manufacturers WHERE id = $1`

	var m models.Manufacturer
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &m, query, id)

	logQuery(query, []any{id}, m, err)

	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Save inserts m and sets its ID.
func (r *ManufacturerRepository) Save(ctx context.Context, m *models.Manufacturer) error {
	const query = `
		INSERT INTO manufacturers (name, country)
		VALUES ($1, $2)
		RETURNING id
	`

	args := []any{m.Name, m.Country}
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &m.ID, query, args...)

	logQuery(query, args, m.ID, err)

	return translateError(err)
}

// Update overwrites name and country; sql.ErrNoRows if m.ID is unknown.
func (r *ManufacturerRepository) Update(ctx context.Context, m *models.Manufacturer) error {
	const query = `
		UPDATE manufacturers
		SET name = $1, country = $2
		WHERE id = $3
		RETURNING id
	`

	args := []any{m.Name, m.Country, m.ID}
	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &id, query, args...)

	logQuery(query, args, id, err)

	return translateError(err)
}

// Delete removes the manufacturer and, by cascade, its cars.
func (r *ManufacturerRepository) Delete(ctx context.Context, id int64) error {
	const query = `DELETE FROM manufacturers WHERE id = $1 RETURNING id`

	var deleted int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &deleted, query, id)

	logQuery(query, []any{id}, deleted, err)

	return err
}

// Count returns the number of manufacturers.
func (r *ManufacturerRepository) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM manufacturers`

	var n int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &n, query)

	logQuery(query, nil, n, err)

	return n, err
}
