package cache

import (
	"context"
	"strconv"
	"time"

	"bookshop/config"
	"bookshop/internal/domain/repository"
	"bookshop/internal/errors"

	"github.com/redis/go-redis/v9"
)

type sessionRepository struct {
	client *redis.Client
	prefix string
}

// NewSessionRepository returns a SessionRepository keeping one entry per user.
func NewSessionRepository(client *redis.Client, cfg *config.Config) repository.SessionRepository {
	return &sessionRepository{
		client: client,
		prefix: cfg.Redis.KeyPrefix,
	}
}

func (r *sessionRepository) key(userID int64) string {
	return r.prefix + ":refresh:" + strconv.FormatInt(userID, 10)
}

func (r *sessionRepository) Get(ctx context.Context, userID int64) (string, error) {
	value, err := r.client.Get(ctx, r.key(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", repository.ErrSessionNotFound
	}
	if err != nil {
		return "", errors.Wrap(err, "get session")
	}

	return value, nil
}

func (r *sessionRepository) Set(ctx context.Context, userID int64, tokenHash string, ttl time.Duration) error {
	if ttl <= 0 {
		return errors.Errorf("session ttl must be positive, got %s", ttl)
	}

	if err := r.client.Set(ctx, r.key(userID), tokenHash, ttl).Err(); err != nil {
		return errors.Wrap(err, "set session")
	}

	return nil
}

func (r *sessionRepository) Delete(ctx context.Context, userID int64) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		return errors.Wrap(err, "delete session")
	}

	return nil
}
