package drafts

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRepository stores drafts as JSON under key "draft:<sessionID>" with
// TTL = expiresAt - now.
type RedisRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisRepository creates a Redis-based draft repository. Prefix may be empty.
func NewRedisRepository(client *redis.Client, prefix string) *RedisRepository {
	if prefix == "" {
		prefix = "draft:"
	}
	return &RedisRepository{client: client, prefix: prefix}
}

func (r *RedisRepository) key(sessionID string) string {
	return r.prefix + sessionID
}

func (r *RedisRepository) Save(ctx context.Context, d *Draft) error {
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	exp := time.Until(d.ExpiresAt)
	if exp <= 0 {
		// minimal TTL so Redis won't keep expired drafts
		exp = time.Second
	}
	return r.client.Set(ctx, r.key(d.SessionID), b, exp).Err()
}

func (r *RedisRepository) Get(ctx context.Context, sessionID string) (*Draft, error) {
	b, err := r.client.Get(ctx, r.key(sessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var d Draft
	if err := json.Unmarshal(b, &d); err != nil {
		return nil, err
	}
	if !d.ExpiresAt.IsZero() && time.Now().UTC().After(d.ExpiresAt) {
		_ = r.client.Del(ctx, r.key(sessionID)).Err()
		return nil, nil
	}
	return &d, nil
}

func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, r.key(sessionID)).Err()
}
