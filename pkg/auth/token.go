// Package auth provides bearer-token authentication.
//
// Tokens are opaque: 32 random bytes, base64url-encoded, with all state held
// server-side in Redis under "token:<value>" → user ID. Revocation is
// immediate (delete the key) and expiry is enforced by the Redis TTL, so no
// signing keys need to be rotated or distributed.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/redis/go-redis/v9"

	"github.com/ghuser/blooprint/pkg/cache"
)

const tokenKeyPrefix = "token:"

// ErrInvalidToken indicates the presented token is unknown, expired, or revoked.
var ErrInvalidToken = errors.New("invalid or expired token")

// TokenVerifier resolves a bearer token to a user ID.
// TokenStore is the production implementation; tests substitute fakes.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (int64, error)
}

// TokenStore issues and verifies opaque bearer tokens backed by Redis.
type TokenStore struct {
	client *cache.RedisClient
	ttl    time.Duration
}

// NewTokenStore returns a TokenStore with the given token lifetime.
func NewTokenStore(client *cache.RedisClient, ttl time.Duration) *TokenStore {
	return &TokenStore{client: client, ttl: ttl}
}

// Issue creates a new token for userID and stores it with the configured TTL.
func (s *TokenStore) Issue(ctx context.Context, userID int64) (string, error) {
	raw := securecookie.GenerateRandomKey(32)
	if raw == nil {
		return "", fmt.Errorf("generate token: no entropy available")
	}
	token := base64.RawURLEncoding.EncodeToString(raw)

	key := tokenKeyPrefix + token
	if err := s.client.Client().Set(ctx, key, userID, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}
	return token, nil
}

// Verify resolves token to the user ID it was issued for.
// Returns ErrInvalidToken for unknown or expired tokens.
func (s *TokenStore) Verify(ctx context.Context, token string) (int64, error) {
	if token == "" {
		return 0, ErrInvalidToken
	}
	val, err := s.client.Client().Get(ctx, tokenKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrInvalidToken
		}
		return 0, fmt.Errorf("verify token: %w", err)
	}
	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse token subject: %w", err)
	}
	return userID, nil
}

// Revoke deletes a token immediately. Revoking an unknown token is not an error.
func (s *TokenStore) Revoke(ctx context.Context, token string) error {
	if err := s.client.Client().Del(ctx, tokenKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("revoke token: %w", err)
	}
	return nil
}
