package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
)

// Postgres error codes.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// constraintErrors maps constraint names to the form field they guard and
// the message shown for a violation.
var constraintErrors = map[string]struct{ field, msg string }{
	"manufacturers_name_key":      {"name", "Manufacturer with this Name already exists."},
	"drivers_username_key":        {"username", "A user with that username already exists."},
	"drivers_license_number_key":  {"license_number", "Driver with this License number already exists."},
	"cars_manufacturer_id_fkey":   {"manufacturer", "Select a valid choice. That choice is not one of the available choices."},
	"cars_drivers_driver_id_fkey": {"drivers", "Select a valid choice. That choice is not one of the available choices."},
}

// translateError turns constraint violations into field errors and
// passes everything else through.
func translateError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	if pgErr.Code != pgUniqueViolation && pgErr.Code != pgForeignKeyViolation {
		return err
	}

	ce, ok := constraintErrors[pgErr.ConstraintName]
	if !ok {
		errs := models.ValidationErrors{}
		errs.Add(models.NonFieldErrors, pgErr.Message)
		return errs
	}
	errs := models.ValidationErrors{}
	errs.Add(ce.field, ce.msg)
	return errs
}

// executor returns the request transaction when one is attached to ctx,
// otherwise the database itself.
func executor(ctx context.Context, db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// logQuery logs a statement in a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
