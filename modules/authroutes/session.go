package authroutes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/commercekit/authbridge/pkg/auth"
)

var (
	// ErrStateNotFound marks a state token that expired or was already
	// consumed; the callback is treated as forged.
	ErrStateNotFound = errors.New("state token not found or expired")

	// ErrSessionNotFound marks an unknown or expired session id.
	ErrSessionNotFound = errors.New("session not found or expired")
)

// SessionStore keeps the short-lived state tokens of in-flight authorization
// attempts and the sessions issued after a successful callback in Redis.
type SessionStore struct {
	client *redis.Client
	prefix string
}

// NewSessionStore creates a Redis-backed session store. The prefix namespaces
// all keys so the store can share a Redis database with other services.
func NewSessionStore(client *redis.Client, prefix string) *SessionStore {
	if prefix == "" {
		prefix = "authbridge"
	}
	return &SessionStore{client: client, prefix: prefix}
}

func (s *SessionStore) stateKey(state string) string {
	return fmt.Sprintf("%s:state:%s", s.prefix, state)
}

func (s *SessionStore) sessionKey(surface auth.Surface, id string) string {
	return fmt.Sprintf("%s:session:%s:%s", s.prefix, surface, id)
}

// StoreState records a one-time state token for the given TTL.
func (s *SessionStore) StoreState(ctx context.Context, state string, ttl time.Duration) error {
	if err := s.client.Set(ctx, s.stateKey(state), 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store state: %w", err)
	}
	return nil
}

// ConsumeState atomically checks and removes a state token. One-time
// consumption keeps a captured callback URL from being replayed.
func (s *SessionStore) ConsumeState(ctx context.Context, state string) error {
	err := s.client.GetDel(ctx, s.stateKey(state)).Err()
	if errors.Is(err, redis.Nil) {
		return ErrStateNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to consume state: %w", err)
	}
	return nil
}

// CreateSession issues a new session id bound to the account for the given
// lifetime.
func (s *SessionStore) CreateSession(ctx context.Context, surface auth.Surface, accountID string, ttl time.Duration) (string, error) {
	id := uuid.NewString()
	if err := s.client.Set(ctx, s.sessionKey(surface, id), accountID, ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}
	return id, nil
}

// ResolveSession returns the account id a session belongs to.
func (s *SessionStore) ResolveSession(ctx context.Context, surface auth.Surface, id string) (string, error) {
	accountID, err := s.client.Get(ctx, s.sessionKey(surface, id)).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	return accountID, nil
}

// DeleteSession removes a session, logging the account out of the surface.
func (s *SessionStore) DeleteSession(ctx context.Context, surface auth.Surface, id string) error {
	if err := s.client.Del(ctx, s.sessionKey(surface, id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
