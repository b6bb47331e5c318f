package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// RedisStore persists sessions as JSON values with a TTL. The TTL is the
// external expiry policy: abandoned sessions age out of the store without
// the core ever garbage collecting them.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// NewRedisStore creates a Redis-backed session store
func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisStore {
	if client == nil {
		panic("redis client cannot be nil for RedisStore")
	}
	if keyPrefix == "" {
		keyPrefix = "amongus:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

func (r *RedisStore) sessionKey(code string) string {
	return r.keyPrefix + "session:" + code
}

// Get retrieves and decodes a session by room code
func (r *RedisStore) Get(ctx context.Context, code string) (*models.Session, error) {
	raw, err := r.client.Get(ctx, r.sessionKey(code)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session %s: %w", code, err)
	}
	var sess models.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		return nil, fmt.Errorf("decode session %s: %w", code, err)
	}
	return &sess, nil
}

// Save encodes and stores a session, refreshing its TTL
func (r *RedisStore) Save(ctx context.Context, sess *models.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", sess.RoomCode, err)
	}
	if err := r.client.Set(ctx, r.sessionKey(sess.RoomCode), raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis set session %s: %w", sess.RoomCode, err)
	}
	return nil
}

// Delete removes a session
func (r *RedisStore) Delete(ctx context.Context, code string) error {
	if err := r.client.Del(ctx, r.sessionKey(code)).Err(); err != nil {
		return fmt.Errorf("redis del session %s: %w", code, err)
	}
	return nil
}

// Exists checks if a room code is taken
func (r *RedisStore) Exists(ctx context.Context, code string) (bool, error) {
	n, err := r.client.Exists(ctx, r.sessionKey(code)).Result()
	if err != nil {
		return false, fmt.Errorf("redis exists session %s: %w", code, err)
	}
	return n > 0, nil
}
