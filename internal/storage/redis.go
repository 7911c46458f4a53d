package storage

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps records in Redis under namespaced keys. Used on shared
// terminals where state must survive the process and the filesystem is not
// the right home. Records are durable: no TTL.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(key string, v any) (bool, error) {
	raw, err := s.client.Get(context.Background(), redisKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get %s: %w", key, err)
	}

	if !decode(raw, v) {
		log.Printf("[STORAGE] discarding unreadable record %q", key)
		return false, nil
	}
	return true, nil
}

func (s *RedisStore) Save(key string, v any) error {
	raw, err := encode(v)
	if err != nil {
		return err
	}
	if err := s.client.Set(context.Background(), redisKey(key), raw, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func redisKey(key string) string {
	return "storefront:" + key
}
