package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/propertymanager/landlord-api/internal/api/metrics"
	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

// ModerationService applies administrative actions to accounts. Every
// mutation on one account runs under the per-account lock so a ban cannot
// race a concurrent delete and resurrect a half-removed row.
type ModerationService struct {
	accounts ports.AccountRepository
	cascade  ports.CascadeManager
	locker   ports.AccountLocker
	logger   zerolog.Logger
}

func NewModerationService(
	accounts ports.AccountRepository,
	cascade ports.CascadeManager,
	locker ports.AccountLocker,
	logger zerolog.Logger,
) *ModerationService {
	return &ModerationService{
		accounts: accounts,
		cascade:  cascade,
		locker:   locker,
		logger:   logger,
	}
}

// ListAccounts returns every account, newest first, with password hashes
// stripped.
func (s *ModerationService) ListAccounts(ctx context.Context, actorRole string) ([]*domain.Account, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}

	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		a.PasswordHash = ""
	}
	return accounts, nil
}

// Moderate applies a ban, unban, or delete. Ban and unban are idempotent
// flag flips; delete runs the cascade manager and is terminal. The actor
// must hold the admin role and no state changes otherwise.
func (s *ModerationService) Moderate(ctx context.Context, input ports.ModerateInput) (*domain.Account, error) {
	if input.ActorRole != domain.RoleAdmin {
		return nil, domain.ErrUnauthorized
	}
	if !input.Action.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAction, input.Action)
	}

	acquired, err := s.locker.Acquire(ctx, input.AccountID)
	if err != nil {
		return nil, fmt.Errorf("moderation lock: %w", err)
	}
	if !acquired {
		return nil, domain.ErrAccountLocked
	}
	defer func() {
		if err := s.locker.Release(ctx, input.AccountID); err != nil {
			s.logger.Warn().Err(err).Str("account_id", input.AccountID).Msg("failed to release moderation lock")
		}
	}()

	account, err := s.accounts.FindByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	updated, err := s.apply(ctx, account, input.Action)
	if err != nil {
		metrics.ModerationActionsTotal.WithLabelValues(string(input.Action), "error").Inc()
		return nil, err
	}

	metrics.ModerationActionsTotal.WithLabelValues(string(input.Action), "ok").Inc()
	s.logger.Info().
		Str("account_id", input.AccountID).
		Str("action", string(input.Action)).
		Msg("moderation action applied")

	return updated, nil
}

func (s *ModerationService) apply(ctx context.Context, account *domain.Account, action domain.ModerationAction) (*domain.Account, error) {
	switch action {
	case domain.ActionBan:
		account.Ban()
	case domain.ActionUnban:
		account.Unban()
	case domain.ActionDelete:
		if _, err := s.cascade.DeleteAccount(ctx, account.ID); err != nil {
			return nil, err
		}
		return nil, nil
	}

	return s.accounts.SetStatus(ctx, account.ID, account.Banned, account.Active)
}
