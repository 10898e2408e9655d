package service

import (
	"context"
	"errors"
	"testing"

	"github.com/propertymanager/landlord-api/internal/core/domain"
)

func seedOwnedEntities(accounts *memAccountRepo, properties *memPropertyRepo, tenancies *memTenancyRepo, nProps, nTenancies int) string {
	owner, _ := accounts.Create(context.Background(), &domain.Account{Email: "owner@example.com", Active: true})
	for i := 0; i < nProps; i++ {
		properties.Create(context.Background(), &domain.Property{LandlordID: owner.ID, Title: "P"})
	}
	for i := 0; i < nTenancies; i++ {
		tenancies.Create(context.Background(), &domain.Tenancy{LandlordID: owner.ID, Active: true})
	}
	return owner.ID
}

func TestCascade_DeletesEverythingOwned(t *testing.T) {
	accounts := newMemAccountRepo()
	properties := newMemPropertyRepo()
	tenancies := newMemTenancyRepo()
	ownerID := seedOwnedEntities(accounts, properties, tenancies, 3, 5)

	// Entities owned by someone else must survive.
	other, _ := accounts.Create(context.Background(), &domain.Account{Email: "other@example.com", Active: true})
	properties.Create(context.Background(), &domain.Property{LandlordID: other.ID})
	tenancies.Create(context.Background(), &domain.Tenancy{LandlordID: other.ID})

	m := NewCascadeManager(accounts, properties, tenancies, discardLogger)
	result, err := m.DeleteAccount(context.Background(), ownerID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PropertiesDeleted != 3 || result.TenanciesDeleted != 5 {
		t.Errorf("expected 3/5 deleted, got %d/%d", result.PropertiesDeleted, result.TenanciesDeleted)
	}

	if _, err := accounts.FindByID(context.Background(), ownerID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Error("account must be unretrievable after cascade")
	}
	if left, _ := properties.FindByLandlord(context.Background(), ownerID); len(left) != 0 {
		t.Errorf("expected 0 surviving properties, got %d", len(left))
	}
	if left, _ := tenancies.FindByLandlord(context.Background(), ownerID, false); len(left) != 0 {
		t.Errorf("expected 0 surviving tenancies, got %d", len(left))
	}

	if otherProps, _ := properties.FindByLandlord(context.Background(), other.ID); len(otherProps) != 1 {
		t.Error("other landlord's property must survive")
	}
}

func TestCascade_AbortsBeforeAccountOnPropertyFailure(t *testing.T) {
	accounts := newMemAccountRepo()
	properties := newMemPropertyRepo()
	tenancies := newMemTenancyRepo()
	ownerID := seedOwnedEntities(accounts, properties, tenancies, 2, 2)

	properties.deleteAllErr = errors.New("db unavailable")

	m := NewCascadeManager(accounts, properties, tenancies, discardLogger)
	if _, err := m.DeleteAccount(context.Background(), ownerID); err == nil {
		t.Fatal("expected error when property sweep fails")
	}

	// The account row must only go once both sweeps succeeded, so a
	// failed cascade stays retryable.
	if _, err := accounts.FindByID(context.Background(), ownerID); err != nil {
		t.Error("account must remain retrievable after failed cascade")
	}

	properties.deleteAllErr = nil
	if _, err := m.DeleteAccount(context.Background(), ownerID); err != nil {
		t.Fatalf("retry must succeed: %v", err)
	}
	if _, err := accounts.FindByID(context.Background(), ownerID); !errors.Is(err, domain.ErrAccountNotFound) {
		t.Error("account must be gone after successful retry")
	}
}

func TestCascade_TenancyFailureLeavesAccount(t *testing.T) {
	accounts := newMemAccountRepo()
	properties := newMemPropertyRepo()
	tenancies := newMemTenancyRepo()
	ownerID := seedOwnedEntities(accounts, properties, tenancies, 1, 1)

	tenancies.deleteAllErr = errors.New("db unavailable")

	m := NewCascadeManager(accounts, properties, tenancies, discardLogger)
	if _, err := m.DeleteAccount(context.Background(), ownerID); err == nil {
		t.Fatal("expected error when tenancy sweep fails")
	}
	if _, err := accounts.FindByID(context.Background(), ownerID); err != nil {
		t.Error("account must survive a failed tenancy sweep")
	}
	if props, _ := properties.FindByLandlord(context.Background(), ownerID); len(props) != 1 {
		t.Error("properties must not be touched before the tenancy sweep succeeds")
	}
}
