package ports

import (
	"context"
	"time"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// CreatePropertyInput carries the data needed to register a property.
type CreatePropertyInput struct {
	LandlordID     string
	Title          string
	Description    string
	Address        string
	Coordinates    domain.Coordinates
	LandDocuments  []string
	PropertyImages []string
	PopularPlaces  []domain.PopularPlace
	PurchasePrice  float64
	EstimatedValue float64
}

// RenovationInput carries a single renovation expense entry.
type RenovationInput struct {
	Type        string
	Description string
	Cost        float64
	Date        time.Time
	Documents   []string
}

// PropertyService defines use-case operations for properties.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	List(ctx context.Context, landlordID string) ([]*domain.Property, error)
	Get(ctx context.Context, landlordID, propertyID string) (*domain.Property, error)
	// AddRenovation appends an expense entry and recomputes the derived
	// renovation total before persisting.
	AddRenovation(ctx context.Context, landlordID, propertyID string, input RenovationInput) (*domain.Property, error)
	// Delete removes the property and every tenancy attached to it.
	Delete(ctx context.Context, landlordID, propertyID string) error
}
