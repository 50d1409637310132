package repositories

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestTranslateError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantField string
	}{
		{"manufacturer name", &pgconn.PgError{Code: "23505", ConstraintName: "manufacturers_name_key"}, "name"},
		{"username", &pgconn.PgError{Code: "23505", ConstraintName: "drivers_username_key"}, "username"},
		{"license number", &pgconn.PgError{Code: "23505", ConstraintName: "drivers_license_number_key"}, "license_number"},
		{"unknown manufacturer", &pgconn.PgError{Code: "23503", ConstraintName: "cars_manufacturer_id_fkey"}, "manufacturer"},
		{"unknown constraint", &pgconn.PgError{Code: "23505", ConstraintName: "other", Message: "dup"}, models.NonFieldErrors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var verrs models.ValidationErrors
			require.ErrorAs(t, translateError(tt.err), &verrs)
			assert.True(t, verrs.Has(tt.wantField))
		})
	}

	other := errors.New("boom")
	assert.Equal(t, other, translateError(other))
	assert.Nil(t, translateError(nil))
	assert.Equal(t, sql.ErrNoRows, translateError(sql.ErrNoRows))

	notNull := &pgconn.PgError{Code: "23502"}
	assert.Equal(t, error(notNull), translateError(notNull))
}

func TestManufacturerRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManufacturerRepository(db, nil)

	mock.ExpectQuery("FROM manufacturers").
		WithArgs("es").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}).
			AddRow(2, "Tesla", "USA").
			AddRow(5, "Mercedes", "Germany"))

	got, err := repo.List(context.Background(), models.ManufacturerFilter{Name: "es"})
	require.NoError(t, err)
	assert.Equal(t, []models.Manufacturer{
		{ID: 2, Name: "Tesla", Country: "USA"},
		{ID: 5, Name: "Mercedes", Country: "Germany"},
	}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManufacturerRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManufacturerRepository(db, nil)

	mock.ExpectQuery("FROM manufacturers").
		WithArgs("BMW").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "country"}))

	got, err := repo.List(context.Background(), models.ManufacturerFilter{Name: "BMW"})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestManufacturerRepository_SaveDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManufacturerRepository(db, nil)

	mock.ExpectQuery("INSERT INTO manufacturers").
		WithArgs("Tesla", "USA").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "manufacturers_name_key"})

	err := repo.Save(context.Background(), &models.Manufacturer{Name: "Tesla", Country: "USA"})

	var verrs models.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.True(t, verrs.Has("name"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestManufacturerRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManufacturerRepository(db, nil)

	mock.ExpectQuery("INSERT INTO manufacturers").
		WithArgs("Tesla", "USA").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(9))

	m := &models.Manufacturer{Name: "Tesla", Country: "USA"}
	require.NoError(t, repo.Save(context.Background(), m))
	assert.Equal(t, int64(9), m.ID)
}

func TestManufacturerRepository_UpdateMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewManufacturerRepository(db, nil)

	mock.ExpectQuery("UPDATE manufacturers").
		WithArgs("Tesla", "USA", int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.Update(context.Background(), &models.Manufacturer{ID: 404, Name: "Tesla", Country: "USA"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestCarRepository_SaveWithDriversUsesTx(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	tx, err := db.Beginx()
	require.NoError(t, err)

	repo := NewCarRepository(db, func(ctx context.Context) *sqlx.Tx { return tx })

	mock.ExpectQuery("INSERT INTO cars").
		WithArgs("Model S", int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectExec("INSERT INTO cars_drivers").
		WithArgs(int64(3), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO cars_drivers").
		WithArgs(int64(3), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	car := &models.Car{Model: "Model S", ManufacturerID: 1}
	require.NoError(t, repo.Save(context.Background(), car, []int64{7, 8}))
	require.NoError(t, tx.Commit())

	assert.Equal(t, int64(3), car.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCarRepository_ListScansManufacturer(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCarRepository(db, nil)

	mock.ExpectQuery("FROM cars c").
		WithArgs("").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "model", "manufacturer_id", "manufacturer.id", "manufacturer.name", "manufacturer.country",
		}).AddRow(1, "Model S", 2, 2, "Tesla", "USA"))

	got, err := repo.List(context.Background(), models.CarFilter{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Model S", got[0].Model)
	assert.Equal(t, models.Manufacturer{ID: 2, Name: "Tesla", Country: "USA"}, got[0].Manufacturer)
}

func TestAssignmentRepository_LockCarMissing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAssignmentRepository(db, nil)

	mock.ExpectQuery("FOR UPDATE").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := repo.LockCar(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDriverRepository_GetPermissions(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDriverRepository(db, nil)

	mock.ExpectQuery("FROM driver_permissions").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"codename"}).AddRow("add_manufacturer"))

	perms, err := repo.GetPermissions(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"add_manufacturer"}, perms)
}
