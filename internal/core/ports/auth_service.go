package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// RegisterInput carries the fields of a landlord signup.
type RegisterInput struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthService implements landlord signup/login and the configured admin login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, error)
	// Login returns a signed token and the account. Banned accounts fail
	// with domain.ErrAccountBanned so the caller can offer the appeal flow.
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	// AdminLogin authenticates against the configured admin credentials.
	AdminLogin(ctx context.Context, username, password string) (string, error)
}
