package memory

import (
	"context"
	"sync"

	"github.com/daybook/events-api/internal/core/domain"
)

// UserRepository is a mutex-guarded in-memory user store. State is volatile
// and lost on restart.
type UserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	byName map[string]*domain.User
	nextID int64
}

func NewUserRepository() *UserRepository {
	return &UserRepository{byName: make(map[string]*domain.User)}
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[user.Username]; exists {
		return nil, domain.ErrUserExists
	}

	// Monotonic counter rather than len+1: stays collision-free even if
	// deletion is ever introduced.
	r.nextID++
	stored := cloneUser(user)
	stored.ID = r.nextID

	r.users = append(r.users, stored)
	r.byName[stored.Username] = stored

	return cloneUser(stored), nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byName[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}
