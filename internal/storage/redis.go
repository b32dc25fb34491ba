package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore is the session backend for deployments running more than
// one instance behind a balancer. Sessions expire after TTL instead of
// living for the whole process lifetime.
type RedisSessionStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{Client: client, TTL: ttl}
}

func (s *RedisSessionStore) sessionKey(token string) string {
	return "session:" + token
}

func (s *RedisSessionStore) Set(ctx context.Context, token string) error {
	return s.Client.Set(ctx, s.sessionKey(token), "1", s.TTL).Err()
}

func (s *RedisSessionStore) Exists(ctx context.Context, token string) (bool, error) {
	res, err := s.Client.Exists(ctx, s.sessionKey(token)).Result()
	if err != nil {
		return false, err
	}
	return res > 0, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, token string) error {
	return s.Client.Del(ctx, s.sessionKey(token)).Err()
}
