package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// TenancyService implements tenancy use cases: registration with derived
// dates, lifecycle classification for lists and the calendar, payment
// recording, and the dashboard aggregates.
type TenancyService struct {
	tenancies  ports.TenancyRepository
	properties ports.PropertyRepository
	logger     zerolog.Logger
}

func NewTenancyService(tenancies ports.TenancyRepository, properties ports.PropertyRepository, logger zerolog.Logger) *TenancyService {
	return &TenancyService{tenancies: tenancies, properties: properties, logger: logger}
}

// Create registers a tenant on one of the landlord's own properties.
// RentEnd is computed here, once; NextPaymentDate is derived when a last
// payment date is supplied.
func (s *TenancyService) Create(ctx context.Context, input ports.CreateTenancyInput) (*domain.Tenancy, error) {
	if input.Name == "" || input.Email == "" {
		return nil, fmt.Errorf("%w: tenant name and email are required", domain.ErrValidation)
	}
	if input.RentAmount <= 0 {
		return nil, fmt.Errorf("%w: rent amount must be positive", domain.ErrValidation)
	}

	// Ownership check doubles as the property existence check.
	property, err := s.properties.FindByID(ctx, input.PropertyID, input.LandlordID)
	if err != nil {
		return nil, err
	}

	rentEnd, err := domain.ComputeLeaseEnd(input.RentStart, input.Duration)
	if err != nil {
		return nil, err
	}

	tenancy := &domain.Tenancy{
		LandlordID:      input.LandlordID,
		PropertyID:      property.ID,
		Name:            input.Name,
		Email:           input.Email,
		Phone:           input.Phone,
		RentAmount:      input.RentAmount,
		RentStart:       input.RentStart,
		RentDuration:    input.Duration,
		RentEnd:         rentEnd,
		LastPaymentDate: input.LastPaymentDate,
		Active:          true,
		Documents:       input.Documents,
		Notes:           input.Notes,
		CreatedAt:       time.Now().UTC(),
	}
	if input.LastPaymentDate != nil {
		next := domain.ComputeNextPayment(*input.LastPaymentDate)
		tenancy.NextPaymentDate = &next
	}

	created, err := s.tenancies.Create(ctx, tenancy)
	if err != nil {
		s.logger.Error().Err(err).Str("landlord_id", input.LandlordID).Msg("failed to create tenancy")
		return nil, err
	}

	s.logger.Info().
		Str("tenancy_id", created.ID).
		Str("property_id", created.PropertyID).
		Time("rent_end", created.RentEnd).
		Msg("tenancy created")
	return created, nil
}

// List returns every tenancy of the landlord, classified against a single
// now snapshot and joined with its property.
func (s *TenancyService) List(ctx context.Context, landlordID string) ([]ports.TenancyView, error) {
	return s.views(ctx, landlordID, false)
}

// Calendar returns only active tenancies for the expiry calendar.
func (s *TenancyService) Calendar(ctx context.Context, landlordID string) ([]ports.TenancyView, error) {
	return s.views(ctx, landlordID, true)
}

func (s *TenancyService) views(ctx context.Context, landlordID string, activeOnly bool) ([]ports.TenancyView, error) {
	tenancies, err := s.tenancies.FindByLandlord(ctx, landlordID, activeOnly)
	if err != nil {
		return nil, err
	}

	properties, err := s.properties.FindByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*domain.Property, len(properties))
	for _, p := range properties {
		byID[p.ID] = p
	}

	now := time.Now().UTC()
	views := make([]ports.TenancyView, 0, len(tenancies))
	for _, t := range tenancies {
		status, days := domain.Classify(now, t.RentEnd)
		view := ports.TenancyView{
			Tenancy:         *t,
			Status:          status,
			DaysUntilExpiry: days,
		}
		if p, ok := byID[t.PropertyID]; ok {
			view.PropertyTitle = p.Title
			view.PropertyAddress = p.Address
		}
		views = append(views, view)
	}
	return views, nil
}

// RecordPayment stores the payment date and the derived next due date.
func (s *TenancyService) RecordPayment(ctx context.Context, landlordID, tenancyID string, paidOn time.Time) (*domain.Tenancy, error) {
	if paidOn.IsZero() {
		return nil, fmt.Errorf("%w: payment date is required", domain.ErrValidation)
	}

	tenancy, err := s.tenancies.FindByID(ctx, tenancyID, landlordID)
	if err != nil {
		return nil, err
	}

	next := domain.ComputeNextPayment(paidOn)
	if err := s.tenancies.SetPaymentDates(ctx, tenancy.ID, paidOn, next); err != nil {
		return nil, err
	}

	tenancy.LastPaymentDate = &paidOn
	tenancy.NextPaymentDate = &next

	s.logger.Info().
		Str("tenancy_id", tenancy.ID).
		Time("next_payment", next).
		Msg("payment recorded")
	return tenancy, nil
}

// Dashboard aggregates the landlord's tenancies and property count with
// one now snapshot so the counts cannot skew between instants.
func (s *TenancyService) Dashboard(ctx context.Context, landlordID string) (*ports.DashboardSummary, error) {
	tenancies, err := s.tenancies.FindByLandlord(ctx, landlordID, false)
	if err != nil {
		return nil, err
	}

	properties, err := s.properties.FindByLandlord(ctx, landlordID)
	if err != nil {
		return nil, err
	}

	all := make([]domain.Tenancy, len(tenancies))
	for i, t := range tenancies {
		all[i] = *t
	}

	return &ports.DashboardSummary{
		Properties: len(properties),
		Leases:     domain.Summarize(all, time.Now().UTC()),
	}, nil
}
