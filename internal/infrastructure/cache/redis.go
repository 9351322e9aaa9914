package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	apperrors "stackshop/internal/errors"

	goredis "github.com/redis/go-redis/v9"
)

// Redis is a Store shared between storefront instances.
type Redis struct {
	client *goredis.Client
	prefix string
	ttl    time.Duration
}

func NewRedis(client *goredis.Client, prefix string, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]string, bool, error) {
	raw, err := r.client.Get(ctx, r.prefix+key).Result()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("reading %s from redis: %w", key, err)
	}

	var values []string
	if err := json.Unmarshal([]byte(raw), &values); err != nil {
		return nil, false, apperrors.NewInternalError(fmt.Sprintf("decoding cached %s", key), err)
	}
	return values, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, values []string) error {
	raw, err := json.Marshal(values)
	if err != nil {
		return apperrors.NewInternalError(fmt.Sprintf("encoding %s", key), err)
	}
	if err := r.client.Set(ctx, r.prefix+key, raw, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing %s to redis: %w", key, err)
	}
	return nil
}
