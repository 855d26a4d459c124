package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisStore keeps a jar's cookie line under a single Redis key, for
// server-side simulated cookie jars shared across processes.
type RedisStore struct {
	client *redis.Client
	ctx    context.Context
	key    string
}

// NewRedisStore connects to Redis and binds to the jar with the given ID.
// An empty jarID starts a fresh jar under a generated ID.
func NewRedisStore(addr, jarID string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	if jarID == "" {
		jarID = uuid.NewString()
	}

	return &RedisStore{
		client: client,
		ctx:    ctx,
		key:    "cookiejar:" + jarID,
	}, nil
}

func (r *RedisStore) line() (string, error) {
	val, err := r.client.Get(r.ctx, r.key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Read fetches the jar's cookie line and splits it into entries.
func (r *RedisStore) Read() ([]string, error) {
	line, err := r.line()
	if err != nil {
		return nil, err
	}
	return splitLine(line), nil
}

// Write merges the entry into the jar's cookie line and stores it back.
func (r *RedisStore) Write(entry string, meta Metadata) (string, error) {
	line, err := r.line()
	if err != nil {
		return "", err
	}

	next := applyEntry(line, entry, meta)
	if err := r.client.Set(r.ctx, r.key, next, 0).Err(); err != nil {
		return "", err
	}
	return entry, nil
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
