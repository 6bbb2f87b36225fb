package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
)

// Store keeps refresh tokens server-side so sessions can be revoked and
// rotated. Tokens are hashed before storage; a leaked store cannot be
// replayed against the API.
type Store struct {
	client *redis.Client
}

func NewRedisClient(host, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:         host,
		Password:     password,
		DB:           db,
		PoolSize:     10,
		MinIdleConns: 5,
		MaxRetries:   3,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
}

func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func key(userID, tokenID string) string {
	return fmt.Sprintf("refresh:%s:%s", userID, tokenID)
}

// hashToken digests the token before bcrypt: bcrypt truncates input at
// 72 bytes and JWTs are longer than that.
func hashToken(token string) []byte {
	sum := sha256.Sum256([]byte(token))
	return []byte(hex.EncodeToString(sum[:]))
}

// Save stores a bcrypt hash of the refresh token under its jti, expiring
// with the token itself.
func (s *Store) Save(ctx context.Context, userID, tokenID, token string, ttl time.Duration) error {
	hash, err := bcrypt.GenerateFromPassword(hashToken(token), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash refresh token: %w", err)
	}

	if err := s.client.Set(ctx, key(userID, tokenID), hash, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// Verify reports whether the presented token matches the stored hash.
// An absent key means the session was revoked or rotated away.
func (s *Store) Verify(ctx context.Context, userID, tokenID, token string) (bool, error) {
	hash, err := s.client.Get(ctx, key(userID, tokenID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load refresh token: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword(hash, hashToken(token)); err != nil {
		return false, nil
	}

	return true, nil
}

// Revoke deletes a single session.
func (s *Store) Revoke(ctx context.Context, userID, tokenID string) error {
	if err := s.client.Del(ctx, key(userID, tokenID)).Err(); err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	return nil
}

// RevokeAll deletes every session belonging to the user.
func (s *Store) RevokeAll(ctx context.Context, userID string) error {
	iter := s.client.Scan(ctx, 0, fmt.Sprintf("refresh:%s:*", userID), 100).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to revoke refresh token: %w", err)
		}
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan refresh tokens: %w", err)
	}
	return nil
}

// Ping verifies connectivity; used by the health endpoint.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

func (s *Store) Close() error {
	return s.client.Close()
}
