package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// AccountRepository defines persistence operations for landlord accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// List returns every account, newest first. Password hashes are
	// stripped by the caller before leaving the service layer.
	List(ctx context.Context) ([]*domain.Account, error)
	// SetStatus atomically updates the moderation flags and returns the
	// updated account.
	SetStatus(ctx context.Context, id string, banned, active bool) (*domain.Account, error)
	DeleteByID(ctx context.Context, id string) error
}
