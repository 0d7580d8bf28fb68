package credential_service

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps every credential as a field of a single hash.
type RedisStore struct {
	client *redis.Client
	key    string
}

func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Register(ctx context.Context, lawyerIdentifier, apiKey string) error {
	if err := s.client.HSet(ctx, s.key, lawyerIdentifier, apiKey).Err(); err != nil {
		return fmt.Errorf("redis hset credential: %w", err)
	}
	return nil
}

func (s *RedisStore) Lookup(ctx context.Context, lawyerIdentifier string) (string, bool, error) {
	key, err := s.client.HGet(ctx, s.key, lawyerIdentifier).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis hget credential: %w", err)
	}
	return key, true, nil
}
