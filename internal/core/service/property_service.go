package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// PropertyService implements property use cases for landlords.
type PropertyService struct {
	properties ports.PropertyRepository
	tenancies  ports.TenancyRepository
	logger     zerolog.Logger
}

func NewPropertyService(properties ports.PropertyRepository, tenancies ports.TenancyRepository, logger zerolog.Logger) *PropertyService {
	return &PropertyService{properties: properties, tenancies: tenancies, logger: logger}
}

func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}

	property := &domain.Property{
		LandlordID:     input.LandlordID,
		Title:          input.Title,
		Description:    input.Description,
		Address:        input.Address,
		Coordinates:    input.Coordinates,
		LandDocuments:  input.LandDocuments,
		PropertyImages: input.PropertyImages,
		PopularPlaces:  input.PopularPlaces,
		PurchasePrice:  input.PurchasePrice,
		EstimatedValue: input.EstimatedValue,
		CreatedAt:      time.Now().UTC(),
	}
	domain.RecomputeRenovationTotal(property)

	created, err := s.properties.Create(ctx, property)
	if err != nil {
		s.logger.Error().Err(err).Str("landlord_id", input.LandlordID).Msg("failed to create property")
		return nil, err
	}

	s.logger.Info().Str("property_id", created.ID).Str("landlord_id", created.LandlordID).Msg("property created")
	return created, nil
}

func (s *PropertyService) List(ctx context.Context, landlordID string) ([]*domain.Property, error) {
	return s.properties.FindByLandlord(ctx, landlordID)
}

func (s *PropertyService) Get(ctx context.Context, landlordID, propertyID string) (*domain.Property, error) {
	return s.properties.FindByID(ctx, propertyID, landlordID)
}

// AddRenovation appends an expense entry and recomputes the derived total
// immediately before persisting. The total is never updated implicitly.
func (s *PropertyService) AddRenovation(ctx context.Context, landlordID, propertyID string, input ports.RenovationInput) (*domain.Property, error) {
	if input.Type == "" {
		return nil, fmt.Errorf("%w: renovation type is required", domain.ErrValidation)
	}
	if input.Cost <= 0 {
		return nil, fmt.Errorf("%w: renovation cost must be positive", domain.ErrValidation)
	}

	property, err := s.properties.FindByID(ctx, propertyID, landlordID)
	if err != nil {
		return nil, err
	}

	date := input.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}
	property.Renovations = append(property.Renovations, domain.Renovation{
		Type:        input.Type,
		Description: input.Description,
		Cost:        input.Cost,
		Date:        date,
		Documents:   input.Documents,
	})
	domain.RecomputeRenovationTotal(property)

	if err := s.properties.ReplaceRenovations(ctx, property.ID, property.Renovations, property.TotalRenovationCost); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("property_id", property.ID).
		Float64("total_renovation_cost", property.TotalRenovationCost).
		Msg("renovation recorded")

	return property, nil
}

// Delete removes the property and, first, every tenancy referencing it so
// no tenancy is left dangling if the second step fails.
func (s *PropertyService) Delete(ctx context.Context, landlordID, propertyID string) error {
	property, err := s.properties.FindByID(ctx, propertyID, landlordID)
	if err != nil {
		return err
	}

	removed, err := s.tenancies.DeleteByProperty(ctx, property.ID)
	if err != nil {
		return fmt.Errorf("delete property tenancies: %w", err)
	}

	if err := s.properties.DeleteByID(ctx, property.ID, landlordID); err != nil {
		return err
	}

	s.logger.Info().
		Str("property_id", property.ID).
		Int64("tenancies_deleted", removed).
		Msg("property deleted")
	return nil
}
