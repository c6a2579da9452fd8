package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist provides token revocation backed by Redis, so revocations
// survive restarts and are shared across instances.
// Key format: revoked:<token>
type TokenDenylist struct {
	client *redis.Client
}

// NewTokenDenylist creates a TokenDenylist wrapping the given Redis client.
func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

// Revoke records the token permanently. Tokens carry no expiry by default,
// so the revocation entry gets none either.
func (d *TokenDenylist) Revoke(ctx context.Context, token string) error {
	return d.client.Set(ctx, d.key(token), "1", 0).Err()
}

// IsRevoked reports whether the token has been revoked.
func (d *TokenDenylist) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(token)).Result()
	if err != nil {
		return false, fmt.Errorf("revocation check: %w", err)
	}
	return n > 0, nil
}

func (d *TokenDenylist) key(token string) string {
	return "revoked:" + token
}
