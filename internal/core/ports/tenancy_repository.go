package ports

import (
	"context"
	"time"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// TenancyRepository defines persistence operations for tenancies.
type TenancyRepository interface {
	Create(ctx context.Context, t *domain.Tenancy) (*domain.Tenancy, error)
	FindByID(ctx context.Context, id, landlordID string) (*domain.Tenancy, error)
	// FindByLandlord returns the landlord's tenancies; activeOnly restricts
	// the result to active leases (calendar and reminder queries).
	FindByLandlord(ctx context.Context, landlordID string, activeOnly bool) ([]*domain.Tenancy, error)
	// SetPaymentDates atomically records a payment and the derived next
	// due date.
	SetPaymentDates(ctx context.Context, id string, lastPayment, nextPayment time.Time) error
	DeleteByLandlord(ctx context.Context, landlordID string) (int64, error)
	DeleteByProperty(ctx context.Context, propertyID string) (int64, error)
}
