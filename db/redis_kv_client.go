package db

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// RedisKVClient struct holds the Redis client and context
type RedisKVClient struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedisKVClient wraps an initialised go-redis client.
func NewRedisKVClient(ctx context.Context, client *redis.Client) *RedisKVClient {
	return &RedisKVClient{
		client: client,
		ctx:    ctx,
	}
}

// Set sets a key-value pair in Redis
func (r *RedisKVClient) Set(key, value string) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *RedisKVClient) Get(key string) (string, error) {
	val, err := r.client.Get(r.ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return val, err
}

// Del removes a key from Redis. Missing keys are not an error.
func (r *RedisKVClient) Del(key string) error {
	return r.client.Del(r.ctx, key).Err()
}

func (r *RedisKVClient) Ping() error {
	_, err := r.client.Ping(r.ctx).Result()
	return err
}

func (r *RedisKVClient) Close() error {
	log.Println("[RedisKVClient] Closing redis connection")
	return r.client.Close()
}
