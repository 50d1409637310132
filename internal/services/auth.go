package services

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/taxi-service/internal/jwt"
	"github.com/sbilibin2017/taxi-service/internal/logger"
	"github.com/sbilibin2017/taxi-service/internal/models"
	"github.com/sbilibin2017/taxi-service/internal/repositories"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// AccountReader looks up drivers for authentication.
type AccountReader interface {
	GetByUsername(ctx context.Context, username string) (*models.Driver, error)
	GetByID(ctx context.Context, id int64) (*models.Driver, error)
	GetPermissions(ctx context.Context, id int64) ([]string, error)
}

// SessionStore binds session ids to drivers.
type SessionStore interface {
	Save(ctx context.Context, sessionID string, driverID int64, exp time.Duration) error
	GetDriverID(ctx context.Context, sessionID string) (int64, error)
	Delete(ctx context.Context, sessionID string) error
}

// TokenManager signs and parses session tokens.
type TokenManager interface {
	Generate(ctx context.Context, driverID int64, sessionID string) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
	Expiration() time.Duration
}

// AuthService handles login, logout and session lookup.
type AuthService struct {
	accounts AccountReader
	sessions SessionStore
	tokens   TokenManager
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(accounts AccountReader, sessions SessionStore, tokens TokenManager) *AuthService {
	return &AuthService{
		accounts: accounts,
		sessions: sessions,
		tokens:   tokens,
	}
}

// Login checks the credentials, opens a session and returns its token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	driver, err := svc.accounts.GetByUsername(ctx, username)
	if errors.Is(err, sql.ErrNoRows) {
		logger.Log.Errorw("driver does not exist", "username", username)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get driver", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(driver.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	if err := svc.sessions.Save(ctx, sessionID, driver.ID, svc.tokens.Expiration()); err != nil {
		logger.Log.Errorw("failed to save session", "err", err)
		return "", err
	}

	token, err := svc.tokens.Generate(ctx, driver.ID, sessionID)
	if err != nil {
		logger.Log.Errorw("failed to generate token", "err", err)
		return "", err
	}

	return token, nil
}

// Authenticate resolves a session token to the caller it belongs to. Bad,
// expired or revoked tokens yield ErrUnauthenticated.
func (svc *AuthService) Authenticate(ctx context.Context, token string) (*models.Caller, error) {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		logger.Log.Infow("invalid session token", "err", err)
		return nil, ErrUnauthenticated
	}

	driverID, err := svc.sessions.GetDriverID(ctx, claims.SessionID)
	if errors.Is(err, repositories.ErrSessionNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		logger.Log.Errorw("failed to get session", "err", err)
		return nil, err
	}
	if driverID != claims.DriverID {
		logger.Log.Errorw("session driver mismatch", "session_id", claims.SessionID, "driver_id", claims.DriverID)
		return nil, ErrUnauthenticated
	}

	driver, err := svc.accounts.GetByID(ctx, driverID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		logger.Log.Errorw("failed to get driver", "err", err)
		return nil, err
	}

	perms, err := svc.accounts.GetPermissions(ctx, driverID)
	if err != nil {
		logger.Log.Errorw("failed to get permissions", "err", err)
		return nil, err
	}

	return &models.Caller{
		DriverID:    driver.ID,
		SessionID:   claims.SessionID,
		Username:    driver.Username,
		IsStaff:     driver.IsStaff,
		Permissions: perms,
	}, nil
}

// Logout ends the caller's session.
func (svc *AuthService) Logout(ctx context.Context, caller *models.Caller) error {
	if err := authorize(caller, ""); err != nil {
		return err
	}
	if err := svc.sessions.Delete(ctx, caller.SessionID); err != nil {
		logger.Log.Errorw("failed to delete session", "err", err)
		return err
	}
	return nil
}
