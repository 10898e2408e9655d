package ports

import (
	"context"
	"time"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

// CreateTenancyInput carries the data needed to register a tenant on one of
// the landlord's properties. RentEnd is derived, never supplied.
type CreateTenancyInput struct {
	LandlordID      string
	PropertyID      string
	Name            string
	Email           string
	Phone           string
	RentAmount      float64
	RentStart       time.Time
	Duration        domain.LeaseDuration
	LastPaymentDate *time.Time
	Documents       []string
	Notes           string
}

// TenancyView is a tenancy joined with its property and classified against
// a single point in time.
type TenancyView struct {
	Tenancy         domain.Tenancy
	PropertyTitle   string
	PropertyAddress string
	Status          domain.LeaseStatus
	DaysUntilExpiry int
}

// DashboardSummary is the landlord's aggregate view.
type DashboardSummary struct {
	Properties int
	Leases     domain.LeaseSummary
}

// TenancyService defines use-case operations for tenancies.
type TenancyService interface {
	Create(ctx context.Context, input CreateTenancyInput) (*domain.Tenancy, error)
	// List returns all tenancies with their lifecycle classification.
	List(ctx context.Context, landlordID string) ([]TenancyView, error)
	// Calendar returns only active tenancies, classified, for the expiry
	// calendar.
	Calendar(ctx context.Context, landlordID string) ([]TenancyView, error)
	// RecordPayment stores the payment date and the derived next due date.
	RecordPayment(ctx context.Context, landlordID, tenancyID string, paidOn time.Time) (*domain.Tenancy, error)
	Dashboard(ctx context.Context, landlordID string) (*DashboardSummary, error)
}
