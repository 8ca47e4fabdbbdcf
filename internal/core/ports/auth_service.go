package ports

import (
	"context"

	"github.com/quotify/quotify-api/internal/core/domain"
)

// AuthService handles registration, login, and token issuance.
type AuthService interface {
	// Register creates an account with the User role and returns it along
	// with a signed token.
	Register(ctx context.Context, email, password string) (*domain.User, string, error)
	// Login verifies credentials and returns a signed token and the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
