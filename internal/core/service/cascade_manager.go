package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/api/metrics"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// CascadeManager removes an account together with every property and
// tenancy it owns. The storage layer enforces no referential integrity,
// so this is the sole mechanism keeping owned entities from going orphan.
type CascadeManager struct {
	accounts   ports.AccountRepository
	properties ports.PropertyRepository
	tenancies  ports.TenancyRepository
	logger     zerolog.Logger
}

func NewCascadeManager(
	accounts ports.AccountRepository,
	properties ports.PropertyRepository,
	tenancies ports.TenancyRepository,
	logger zerolog.Logger,
) *CascadeManager {
	return &CascadeManager{
		accounts:   accounts,
		properties: properties,
		tenancies:  tenancies,
		logger:     logger,
	}
}

// DeleteAccount removes owned entities referencing the account first
// (tenancies, then properties) and the account row last. Every sweep is
// idempotent, so a cascade that fails partway can simply be retried: the
// account stays retrievable until both sweeps have succeeded, and no
// tenancy or property survives a successful call.
func (m *CascadeManager) DeleteAccount(ctx context.Context, accountID string) (*ports.CascadeResult, error) {
	start := time.Now()

	tenancies, err := m.tenancies.DeleteByLandlord(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("cascade delete: tenancies: %w", err)
	}

	properties, err := m.properties.DeleteByLandlord(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("cascade delete: properties: %w", err)
	}

	if err := m.accounts.DeleteByID(ctx, accountID); err != nil {
		return nil, fmt.Errorf("cascade delete: account: %w", err)
	}

	metrics.CascadeDeletedEntitiesTotal.WithLabelValues("tenancy").Add(float64(tenancies))
	metrics.CascadeDeletedEntitiesTotal.WithLabelValues("property").Add(float64(properties))
	metrics.CascadeDeletedEntitiesTotal.WithLabelValues("account").Inc()
	metrics.CascadeDeleteDuration.Observe(time.Since(start).Seconds())

	m.logger.Info().
		Str("account_id", accountID).
		Int64("tenancies_deleted", tenancies).
		Int64("properties_deleted", properties).
		Msg("account cascade deleted")

	return &ports.CascadeResult{
		TenanciesDeleted:  tenancies,
		PropertiesDeleted: properties,
	}, nil
}
