package ports

import (
	"context"

	"github.com/daybook/events-api/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	// FindByUsername retrieves a user by exact (case-sensitive) username.
	// Returns domain.ErrUserNotFound when no such user exists.
	FindByUsername(ctx context.Context, username string) (*domain.User, error)

	// Create persists a new user, assigning the next sequential id.
	// Returns domain.ErrUserExists when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
