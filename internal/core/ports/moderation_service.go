package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// ModerateInput carries an administrative action request. ActorRole is the
// role claim of the caller; anything other than admin is rejected.
type ModerateInput struct {
	ActorRole string
	AccountID string
	Action    domain.ModerationAction
}

// ModerationService applies ban/unban/delete transitions to accounts.
type ModerationService interface {
	// ListAccounts returns all accounts without password hashes.
	ListAccounts(ctx context.Context, actorRole string) ([]*domain.Account, error)
	// Moderate applies the action. For ban/unban the updated account is
	// returned; for delete the account no longer exists and the returned
	// account is nil.
	Moderate(ctx context.Context, input ModerateInput) (*domain.Account, error)
}
