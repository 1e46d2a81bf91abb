package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"festivo/internal/cache"
)

// ErrTokenNotFound is returned when a refresh token is not in the store.
var ErrTokenNotFound = errors.New("refresh token not found")

// TokenStoreInterface abstracts refresh token storage for testing.
type TokenStoreInterface interface {
	StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error)
	DeleteRefreshToken(ctx context.Context, tokenID string) error
}

// TokenStore keeps issued refresh tokens in Redis so they can be revoked.
// Note: the cache client fails safe, so with Redis down refresh tokens
// cannot be redeemed until it returns.
type TokenStore struct {
	cache *cache.Client
}

// NewTokenStore creates a Redis-backed token store.
func NewTokenStore(cache *cache.Client) *TokenStore {
	return &TokenStore{cache: cache}
}

type refreshTokenRecord struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
}

func refreshTokenKey(tokenID string) string {
	return fmt.Sprintf("refresh_token:%s", tokenID)
}

// StoreRefreshToken records an issued refresh token with its TTL.
func (s *TokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, email string, ttl time.Duration) error {
	payload, err := json.Marshal(refreshTokenRecord{UserID: userID, Email: email})
	if err != nil {
		return fmt.Errorf("marshal refresh token record: %w", err)
	}
	return s.cache.Set(ctx, refreshTokenKey(tokenID), payload, ttl)
}

// GetRefreshToken returns the user bound to a stored refresh token.
func (s *TokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	data, err := s.cache.Get(ctx, refreshTokenKey(tokenID))
	if err != nil || data == nil {
		return 0, "", ErrTokenNotFound
	}
	var record refreshTokenRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return 0, "", fmt.Errorf("unmarshal refresh token record: %w", err)
	}
	return record.UserID, record.Email, nil
}

// DeleteRefreshToken revokes a refresh token.
func (s *TokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	return s.cache.Delete(ctx, refreshTokenKey(tokenID))
}
