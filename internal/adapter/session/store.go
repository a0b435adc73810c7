package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Store defines the interface for session management.
// A session maps an opaque cookie token to an authenticated user ID.
type Store interface {
	// Create starts a session for the user and returns the token.
	Create(ctx context.Context, userID int64) (string, error)

	// Get resolves a token to a user ID.
	// Returns 0 when the token is unknown or expired.
	Get(ctx context.Context, token string) (int64, error)

	// Destroy terminates the session for the token.
	Destroy(ctx context.Context, token string) error
}

// RedisStore implements Store using Redis as the backing store.
// Expiry is handled by Redis key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

// NewRedisStore creates a new Redis-backed session store.
func NewRedisStore(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		ttl:    ttl,
		log:    log,
	}
}

func (s *RedisStore) sessionKey(token string) string {
	return "session:" + token
}

// Create starts a new session with a random token.
func (s *RedisStore) Create(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", fmt.Errorf("invalid user id: %d", userID)
	}

	token := uuid.NewString()
	key := s.sessionKey(token)

	if err := s.client.Set(ctx, key, userID, s.ttl).Err(); err != nil {
		s.log.Error("failed to create session", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}

	s.log.Debug("session created", zap.Int64("user_id", userID), zap.Duration("ttl", s.ttl))
	return token, nil
}

// Get resolves a session token to its user ID.
func (s *RedisStore) Get(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, nil
	}

	data, err := s.client.Get(ctx, s.sessionKey(token)).Result()
	if err == redis.Nil {
		// Unknown or expired session, not an error
		s.log.Debug("session not found")
		return 0, nil
	}
	if err != nil {
		s.log.Error("failed to read session", zap.Error(err))
		return 0, err
	}

	userID, err := strconv.ParseInt(data, 10, 64)
	if err != nil {
		s.log.Error("corrupt session value", zap.String("value", data), zap.Error(err))
		return 0, err
	}

	return userID, nil
}

// Destroy removes the session for the given token.
func (s *RedisStore) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	if err := s.client.Del(ctx, s.sessionKey(token)).Err(); err != nil {
		s.log.Error("failed to destroy session", zap.Error(err))
		return err
	}

	s.log.Debug("session destroyed")
	return nil
}
