package ports

import (
	"context"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
)

// AuthService implements registration, login, and the admin user listing.
type AuthService interface {
	// Register creates an account and returns it with a signed token, so a
	// fresh registration is immediately authenticated.
	Register(ctx context.Context, name, email, password string) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// ListUsers returns every account. Callers must gate this behind the
	// admin check; the service itself performs none.
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
