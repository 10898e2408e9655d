package ports

import "context"

// CascadeResult reports how many owned entities a cascade delete removed.
type CascadeResult struct {
	TenanciesDeleted  int64
	PropertiesDeleted int64
}

// CascadeManager irreversibly removes an account together with every
// property and tenancy it owns. A failed sub-deletion aborts the operation
// before the account row itself is touched, so a reported failure never
// leaves the account gone while owned entities survive.
type CascadeManager interface {
	DeleteAccount(ctx context.Context, accountID string) (*CascadeResult, error)
}
