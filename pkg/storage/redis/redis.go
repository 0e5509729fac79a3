package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const noncePrefix = "oauth:nonce:"

// Connect parses a redis:// URL, opens a client and pings it.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

// NonceStore remembers issued OAuth nonces until they are consumed or expire.
type NonceStore struct {
	client redis.UniversalClient
}

func NewNonceStore(client redis.UniversalClient) *NonceStore {
	return &NonceStore{client: client}
}

func (s *NonceStore) Remember(ctx context.Context, nonce string, ttl time.Duration) error {
	ok, err := s.client.SetNX(ctx, noncePrefix+nonce, 1, ttl).Result()
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("nonce %q already issued", nonce)
	}
	return nil
}

// Consume reports whether the nonce was pending and removes it.
func (s *NonceStore) Consume(ctx context.Context, nonce string) (bool, error) {
	err := s.client.GetDel(ctx, noncePrefix+nonce).Err()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
