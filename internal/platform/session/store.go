// Package session implements server-side cookie sessions backed by Redis.
//
// A session is an opaque random token handed to the browser in an HttpOnly
// cookie; the token maps to a small Redis value holding the authenticated
// user's identity. Expiry is enforced by the Redis key TTL.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CookieName is the name of the browser cookie carrying the session token.
const CookieName = "session_token"

// DefaultTTL is how long a session stays valid after login.
const DefaultTTL = 24 * time.Hour

// ErrNotFound is returned when a token does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

// Data is the identity stored under a session token.
type Data struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
}

// Store persists sessions in Redis under prefixed keys.
type Store struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore creates a new Store instance.
func NewStore(client *redis.Client, prefix string, ttl time.Duration) *Store {
	return &Store{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// sessionKey returns the Redis key for a session token.
func (s *Store) sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", s.prefix, token)
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create stores a new session for the given user and returns its token.
func (s *Store) Create(ctx context.Context, userID uint, username string) (string, error) {
	data, err := json.Marshal(Data{UserID: userID, Username: username})
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	token := uuid.NewString()
	if err := s.client.Set(ctx, s.sessionKey(token), data, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to its session data.
// It returns ErrNotFound for unknown or expired tokens.
func (s *Store) Get(ctx context.Context, token string) (*Data, error) {
	raw, err := s.client.Get(ctx, s.sessionKey(token)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &data, nil
}

// Delete removes a session. Deleting an unknown token is not an error.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, s.sessionKey(token)).Err()
}
