package repositories

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-book-library/internal/logger"
)

// SessionRepository keeps the registry of live sessions in Redis.
// A session is live while session:{sid} exists; user_sessions:{uid} indexes
// the sids of one user so they can be revoked together.
type SessionRepository struct {
	client *redis.Client
}

// NewSessionRepository creates a new repository instance
func NewSessionRepository(client *redis.Client) *SessionRepository {
	return &SessionRepository{client: client}
}

func sessionKey(sessionID uuid.UUID) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func userSessionsKey(userID int64) string {
	return fmt.Sprintf("user_sessions:%d", userID)
}

// Save registers a session for ttl.
func (r *SessionRepository) Save(ctx context.Context, sessionID uuid.UUID, userID int64, ttl time.Duration) error {
	key := sessionKey(sessionID)
	setKey := userSessionsKey(userID)

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, userID, ttl)
		pipe.SAdd(ctx, setKey, sessionID.String())
		pipe.Expire(ctx, setKey, ttl)
		return nil
	})

	logger.Log.Infow("session saved",
		"key", key,
		"user_id", userID,
		"ttl", ttl,
		"error", err,
	)
	return err
}

// GetUserID returns the user a live session belongs to, or 0 when the
// session is unknown or expired.
func (r *SessionRepository) GetUserID(ctx context.Context, sessionID uuid.UUID) (int64, error) {
	key := sessionKey(sessionID)

	val, err := r.client.Get(ctx, key).Result()
	logger.Log.Infow("session looked up",
		"key", key,
		"result", val,
		"error", err,
	)
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value for %s: %w", key, err)
	}
	return userID, nil
}

// Delete removes one session. Deleting an unknown session is not an error.
func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	userID, err := r.GetUserID(ctx, sessionID)
	if err != nil {
		return err
	}

	key := sessionKey(sessionID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if userID != 0 {
			pipe.SRem(ctx, userSessionsKey(userID), sessionID.String())
		}
		return nil
	})

	logger.Log.Infow("session deleted",
		"key", key,
		"error", err,
	)
	return err
}

// DeleteByUserID removes every session of a user.
func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID int64) error {
	setKey := userSessionsKey(userID)

	ids, err := r.client.SMembers(ctx, setKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		logger.Log.Errorw("user sessions lookup failed", "key", setKey, "error", err)
		return err
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, "session:"+id)
	}
	keys = append(keys, setKey)

	removed, err := r.client.Del(ctx, keys...).Result()
	logger.Log.Infow("user sessions deleted",
		"key", setKey,
		"sessions", len(ids),
		"result", removed,
		"error", err,
	)
	return err
}
