package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// AppealReceipt correlates a submitted appeal with the admin-facing
// notification. The receipt ID is derived from the submission time and is
// not guaranteed globally unique across processes.
type AppealReceipt struct {
	ReceiptID               string
	EstimatedResponseWindow string
}

// AppealService handles appeal intake from banned or deleted accounts.
type AppealService interface {
	Submit(ctx context.Context, appeal domain.Appeal) (*AppealReceipt, error)
}
