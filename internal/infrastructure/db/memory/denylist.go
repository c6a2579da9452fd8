package memory

import (
	"context"
	"sync"
)

// TokenDenylist is the in-process revocation store used when Redis is not
// configured. Like the rest of the memory backend, revocations are lost on
// restart.
type TokenDenylist struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

func NewTokenDenylist() *TokenDenylist {
	return &TokenDenylist{revoked: make(map[string]struct{})}
}

func (d *TokenDenylist) Revoke(_ context.Context, token string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.revoked[token] = struct{}{}
	return nil
}

func (d *TokenDenylist) IsRevoked(_ context.Context, token string) (bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	_, ok := d.revoked[token]
	return ok, nil
}
