package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/taxi-service/internal/logger"
)

// ErrSessionNotFound is returned for unknown or expired sessions.
var ErrSessionNotFound = errors.New("session not found")

// SessionRepository keeps login sessions and their visit counters in Redis.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new SessionRepository.
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func visitsKey(sessionID string) string {
	return fmt.Sprintf("session:%s:visits", sessionID)
}

// Save binds the session to the driver for exp.
func (r *SessionRepository) Save(ctx context.Context, sessionID string, driverID int64, exp time.Duration) error {
	key := sessionKey(sessionID)
	err := r.client.Set(ctx, key, driverID, exp).Err()

	logger.Log.Infow("redis command",
		"key", key,
		"driver_id", driverID,
		"error", err,
	)

	return err
}

// GetDriverID returns the driver bound to the session.
func (r *SessionRepository) GetDriverID(ctx context.Context, sessionID string) (int64, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow("redis command",
			"key", key,
			"result", val,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return 0, ErrSessionNotFound
		}
		return 0, err
	}

	driverID, err := strconv.ParseInt(val, 10, 64)

	logger.Log.Infow("redis command",
		"key", key,
		"value", val,
		"result", driverID,
		"error", err,
	)

	return driverID, err
}

// Delete drops the session and its counters.
func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	err := r.client.Del(ctx, sessionKey(sessionID), visitsKey(sessionID)).Err()

	logger.Log.Infow("redis command",
		"key", sessionKey(sessionID),
		"result", "deleted",
		"error", err,
	)

	return err
}

// IncrementVisits bumps and returns the visit counter of the session.
func (r *SessionRepository) IncrementVisits(ctx context.Context, sessionID string, exp time.Duration) (int64, error) {
	key := visitsKey(sessionID)

	var incr *redis.IntCmd
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, key)
		pipe.Expire(ctx, key, exp)
		return nil
	})

	var visits int64
	if err == nil {
		visits = incr.Val()
	}

	logger.Log.Infow("redis command",
		"key", key,
		"result", visits,
		"error", err,
	)

	return visits, err
}
