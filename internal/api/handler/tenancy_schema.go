package handler

import (
	"time"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

type leaseDurationRequest struct {
	Amount int    `json:"amount" validate:"required,gt=0"`
	Unit   string `json:"unit"   validate:"required,oneof=month year"`
}

type createTenancyRequest struct {
	PropertyID      string               `json:"property_id"       validate:"required"`
	Name            string               `json:"name"              validate:"required"`
	Email           string               `json:"email"             validate:"required,email"`
	Phone           string               `json:"phone"`
	RentAmount      float64              `json:"rent_amount"       validate:"required,gt=0"`
	RentStart       time.Time            `json:"rent_start"        validate:"required"`
	RentDuration    leaseDurationRequest `json:"rent_duration"     validate:"required"`
	LastPaymentDate *time.Time           `json:"last_payment_date"`
	Documents       []string             `json:"documents"`
	Notes           string               `json:"notes"`
}

type recordPaymentRequest struct {
	PaidOn time.Time `json:"paid_on" validate:"required"`
}

// Response-only types owned by the transport layer.
// These are intentionally separate from ports/domain types so the JSON
// contract is not coupled to internal service changes.

type tenancyViewResponse struct {
	domain.Tenancy
	PropertyTitle   string `json:"property_title"`
	PropertyAddress string `json:"property_address"`
	Status          string `json:"status"`
	DaysUntilExpiry int    `json:"days_until_expiry"`
}

type dashboardResponse struct {
	Properties int                 `json:"properties"`
	Leases     domain.LeaseSummary `json:"leases"`
}

func toTenancyViewResponses(views []ports.TenancyView) []tenancyViewResponse {
	out := make([]tenancyViewResponse, 0, len(views))
	for _, v := range views {
		out = append(out, tenancyViewResponse{
			Tenancy:         v.Tenancy,
			PropertyTitle:   v.PropertyTitle,
			PropertyAddress: v.PropertyAddress,
			Status:          string(v.Status),
			DaysUntilExpiry: v.DaysUntilExpiry,
		})
	}
	return out
}
