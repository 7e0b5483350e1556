// Package session implements the opaque session store: a random token
// handed to the browser maps to the logged-in user in Redis until it
// expires or the user logs out.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// Identity is the resolved acting user attached to a session token.
type Identity struct {
	Username string `json:"username"`
	UID      string `json:"uid"`
}

// Store is a Redis-backed session store.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewStore creates a session store with the given token lifetime.
func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// Create issues a new opaque token for the identity.
func (s *Store) Create(ctx context.Context, identity Identity) (string, error) {
	token := uuid.NewString()
	payload, err := json.Marshal(identity)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolves a token to its identity. A missing or expired token returns
// the zero Identity and no error.
func (s *Store) Get(ctx context.Context, token string) (Identity, error) {
	if token == "" {
		return Identity{}, nil
	}
	payload, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return Identity{}, nil
	}
	if err != nil {
		return Identity{}, err
	}
	var identity Identity
	if err := json.Unmarshal(payload, &identity); err != nil {
		return Identity{}, err
	}
	return identity, nil
}

// Delete revokes a token. Deleting an unknown token is a no-op.
func (s *Store) Delete(ctx context.Context, token string) error {
	return s.rdb.Del(ctx, keyPrefix+token).Err()
}
