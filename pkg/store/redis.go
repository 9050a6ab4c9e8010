package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/palletlab/warevis/pkg/observability"
)

// keyPrefix namespaces warehouse records in a shared Redis instance.
const keyPrefix = "warevis:warehouse:"

// RedisConfig holds connection settings for the Redis store.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// RedisStore is a Redis-backed store for multi-instance deployments.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Addr, err)
	}
	return &RedisStore{client: client}, nil
}

func redisKey(id string) string {
	return keyPrefix + id
}

// Get retrieves a record by warehouse ID.
func (s *RedisStore) Get(ctx context.Context, id string) (Record, error) {
	data, err := s.client.Get(ctx, redisKey(id)).Bytes()
	observability.Store().OnStoreGet(ctx, "redis", err == nil)
	if err == redis.Nil {
		return Record{}, notFound(id)
	}
	if err != nil {
		return Record{}, fmt.Errorf("redis get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, fmt.Errorf("parse record: %w", err)
	}
	return rec, nil
}

// Set stores a record, replacing any existing record with the same ID.
// Records do not expire; deletion is explicit.
func (s *RedisStore) Set(ctx context.Context, rec Record) error {
	if old, err := s.Get(ctx, rec.ID); err == nil {
		rec.CreatedAt = old.CreatedAt
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode record: %w", err)
	}
	if err := s.client.Set(ctx, redisKey(rec.ID), data, 0).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	observability.Store().OnStoreSet(ctx, "redis", len(data))
	return nil
}

// Delete removes a record.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	n, err := s.client.Del(ctx, redisKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	if n == 0 {
		return notFound(id)
	}
	observability.Store().OnStoreDelete(ctx, "redis")
	return nil
}

// List returns the IDs of all stored warehouses, sorted.
// Uses SCAN rather than KEYS so a large store never blocks the server.
func (s *RedisStore) List(ctx context.Context) ([]string, error) {
	var ids []string
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		ids = append(ids, strings.TrimPrefix(iter.Val(), keyPrefix))
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("redis scan: %w", err)
	}
	sort.Strings(ids)
	return ids, nil
}

// Close closes the underlying Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
