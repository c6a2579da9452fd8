package ports

import (
	"context"

	"github.com/daybook/events-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
	// Logout revokes the given token; subsequent verification rejects it.
	Logout(ctx context.Context, token string) error
}
