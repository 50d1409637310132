package services

import (
	"database/sql"
	"errors"

	"github.com/sbilibin2017/taxi-service/internal/models"
)

// Error variables
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthenticated    = errors.New("authentication required")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrInvalidCredentials = errors.New("please enter a correct username and password")
)

// authorize rejects anonymous callers and, when perm is set, callers
// lacking it.
func authorize(caller *models.Caller, perm string) error {
	if caller == nil {
		return ErrUnauthenticated
	}
	if perm != "" && !caller.HasPermission(perm) {
		return ErrPermissionDenied
	}
	return nil
}

// notFound maps a missing row to ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
