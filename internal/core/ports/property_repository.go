package ports

import (
	"context"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// PropertyRepository defines persistence operations for properties.
// Methods taking a landlordID apply it as an ownership filter; an empty
// landlordID skips the filter (used by the cascade manager).
type PropertyRepository interface {
	Create(ctx context.Context, p *domain.Property) (*domain.Property, error)
	FindByID(ctx context.Context, id, landlordID string) (*domain.Property, error)
	FindByLandlord(ctx context.Context, landlordID string) ([]*domain.Property, error)
	// ReplaceRenovations persists a changed renovation list together with
	// its recomputed total in one write.
	ReplaceRenovations(ctx context.Context, id string, renovations []domain.Renovation, total float64) error
	DeleteByID(ctx context.Context, id, landlordID string) error
	// DeleteByLandlord removes every property owned by the account and
	// returns the number removed.
	DeleteByLandlord(ctx context.Context, landlordID string) (int64, error)
}
