package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const (
	keyLoggedIn = "isLoggedIn"
	keyLastSync = "lastSync"
)

// SessionStore holds the transient session flags shared across contexts.
type SessionStore struct {
	client *redis.Client
}

func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

func (s *SessionStore) SetLoggedIn(ctx context.Context, v bool) error {
	val := "0"
	if v {
		val = "1"
	}
	return s.client.Set(ctx, keyLoggedIn, val, 0).Err()
}

// LoggedIn returns false when the flag has never been set.
func (s *SessionStore) LoggedIn(ctx context.Context) (bool, error) {
	val, err := s.client.Get(ctx, keyLoggedIn).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("get %s: %w", keyLoggedIn, err)
	}
	return val == "1", nil
}

func (s *SessionStore) SetLastSync(ctx context.Context, ms int64) error {
	return s.client.Set(ctx, keyLastSync, strconv.FormatInt(ms, 10), 0).Err()
}

// LastSync returns 0 when no sync has happened yet.
func (s *SessionStore) LastSync(ctx context.Context) (int64, error) {
	val, err := s.client.Get(ctx, keyLastSync).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("get %s: %w", keyLastSync, err)
	}
	ms, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", keyLastSync, err)
	}
	return ms, nil
}
