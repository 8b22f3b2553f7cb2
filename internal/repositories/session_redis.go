package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

const sessionKeyPrefix = "session:"

// SessionRedisRepository stores server-side sessions in Redis
type SessionRedisRepository struct {
	client *redis.Client
}

// NewSessionRedisRepository creates a new repository instance
func NewSessionRedisRepository(client *redis.Client) *SessionRedisRepository {
	return &SessionRedisRepository{client: client}
}

// Get fetches a stored session. Returns nil when the session does not exist or expired.
func (r *SessionRedisRepository) Get(ctx context.Context, id string) (*models.Session, error) {
	key := sessionKeyPrefix + id

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal(val, &sess); err != nil {
		logger.Log.Errorw("corrupt session record", "key", key, "error", err)
		return nil, nil
	}

	logger.Log.Infow(
		"key", key,
		"result", sess.UserID,
		"error", nil,
	)

	return &sess, nil
}

// Save stores the session with the given time to live
func (r *SessionRedisRepository) Save(ctx context.Context, sess *models.Session, ttl time.Duration) error {
	key := sessionKeyPrefix + sess.ID

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, ttl).Err()

	logger.Log.Infow(
		"key", key,
		"ttl", ttl,
		"result", "ok",
		"error", err,
	)

	return err
}

// Delete removes the session. Deleting a missing session is not an error.
func (r *SessionRedisRepository) Delete(ctx context.Context, id string) error {
	key := sessionKeyPrefix + id
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
