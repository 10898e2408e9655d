package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/propertymanager/landlord-api/internal/core/domain"
	"github.com/propertymanager/landlord-api/internal/core/ports"
)

func newTenancyFixture() (*TenancyService, *memTenancyRepo, *memPropertyRepo, *domain.Property) {
	tenancies := newMemTenancyRepo()
	properties := newMemPropertyRepo()
	property, _ := properties.Create(context.Background(), &domain.Property{
		LandlordID: "acc_1", Title: "Flat 2", Address: "1 Main St",
	})
	return NewTenancyService(tenancies, properties, discardLogger), tenancies, properties, property
}

func validTenancyInput(propertyID string) ports.CreateTenancyInput {
	return ports.CreateTenancyInput{
		LandlordID: "acc_1",
		PropertyID: propertyID,
		Name:       "Sam Doe",
		Email:      "sam@example.com",
		RentAmount: 1200,
		RentStart:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:   domain.LeaseDuration{Amount: 12, Unit: domain.UnitMonth},
	}
}

func TestTenancyCreate_DerivesRentEnd(t *testing.T) {
	svc, _, _, property := newTenancyFixture()

	created, err := svc.Create(context.Background(), validTenancyInput(property.ID))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	if !created.RentEnd.Equal(want) {
		t.Errorf("expected rent end %v, got %v", want, created.RentEnd)
	}
	if !created.Active {
		t.Error("new tenancy must start active")
	}
	if created.NextPaymentDate != nil {
		t.Error("no next payment without a last payment")
	}
}

func TestTenancyCreate_DerivesNextPaymentFromLastPayment(t *testing.T) {
	svc, _, _, property := newTenancyFixture()

	paid := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	input := validTenancyInput(property.ID)
	input.LastPaymentDate = &paid

	created, err := svc.Create(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.NextPaymentDate == nil {
		t.Fatal("expected a derived next payment date")
	}
	want := time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)
	if !created.NextPaymentDate.Equal(want) {
		t.Errorf("expected next payment %v, got %v", want, *created.NextPaymentDate)
	}
}

func TestTenancyCreate_Validation(t *testing.T) {
	svc, _, _, property := newTenancyFixture()

	input := validTenancyInput(property.ID)
	input.Name = ""
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("missing name: expected ErrValidation, got %v", err)
	}

	input = validTenancyInput(property.ID)
	input.RentAmount = 0
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero rent: expected ErrValidation, got %v", err)
	}

	input = validTenancyInput(property.ID)
	input.Duration = domain.LeaseDuration{Amount: 0, Unit: domain.UnitMonth}
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("zero duration: expected ErrInvalidDuration, got %v", err)
	}
}

func TestTenancyCreate_RejectsForeignProperty(t *testing.T) {
	svc, _, properties, _ := newTenancyFixture()
	foreign, _ := properties.Create(context.Background(), &domain.Property{LandlordID: "acc_2", Title: "Other"})

	input := validTenancyInput(foreign.ID)
	if _, err := svc.Create(context.Background(), input); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Errorf("expected ErrPropertyNotFound, got %v", err)
	}
}

func TestTenancyList_ClassifiesAndJoinsProperty(t *testing.T) {
	svc, tenancies, _, property := newTenancyFixture()

	now := time.Now().UTC()
	tenancies.Create(context.Background(), &domain.Tenancy{
		LandlordID: "acc_1", PropertyID: property.ID, Name: "Near", Active: true,
		RentEnd: now.AddDate(0, 0, 10),
	})
	tenancies.Create(context.Background(), &domain.Tenancy{
		LandlordID: "acc_1", PropertyID: property.ID, Name: "Gone", Active: false,
		RentEnd: now.AddDate(0, 0, -40),
	})

	views, err := svc.List(context.Background(), "acc_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(views) != 2 {
		t.Fatalf("list must include inactive tenancies, got %d", len(views))
	}

	byName := map[string]ports.TenancyView{}
	for _, v := range views {
		byName[v.Tenancy.Name] = v
	}
	near := byName["Near"]
	if near.Status != domain.LeaseExpiring {
		t.Errorf("expected expiring, got %s", near.Status)
	}
	if near.PropertyTitle != "Flat 2" || near.PropertyAddress != "1 Main St" {
		t.Errorf("property join missing: %q / %q", near.PropertyTitle, near.PropertyAddress)
	}
	if byName["Gone"].Status != domain.LeaseExpired {
		t.Errorf("expected expired, got %s", byName["Gone"].Status)
	}

	calendar, err := svc.Calendar(context.Background(), "acc_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(calendar) != 1 || calendar[0].Tenancy.Name != "Near" {
		t.Errorf("calendar must contain only active tenancies, got %d", len(calendar))
	}
}

func TestRecordPayment_StoresDerivedDates(t *testing.T) {
	svc, tenancies, _, property := newTenancyFixture()
	created, _ := tenancies.Create(context.Background(), &domain.Tenancy{
		LandlordID: "acc_1", PropertyID: property.ID, Active: true,
	})

	paid := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	updated, err := svc.RecordPayment(context.Background(), "acc_1", created.ID, paid)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// AddDate normalizes Jan 31 + 1 month to Mar 3 (2026 is not a leap year).
	want := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)
	if !updated.NextPaymentDate.Equal(want) {
		t.Errorf("expected next payment %v, got %v", want, *updated.NextPaymentDate)
	}

	stored, _ := tenancies.FindByID(context.Background(), created.ID, "acc_1")
	if stored.LastPaymentDate == nil || !stored.LastPaymentDate.Equal(paid) {
		t.Error("last payment date must be persisted")
	}

	if _, err := svc.RecordPayment(context.Background(), "acc_1", created.ID, time.Time{}); !errors.Is(err, domain.ErrValidation) {
		t.Errorf("zero payment date: expected ErrValidation, got %v", err)
	}
	if _, err := svc.RecordPayment(context.Background(), "acc_2", created.ID, paid); !errors.Is(err, domain.ErrTenancyNotFound) {
		t.Errorf("foreign landlord: expected ErrTenancyNotFound, got %v", err)
	}
}

func TestDashboard_Aggregates(t *testing.T) {
	svc, tenancies, properties, property := newTenancyFixture()
	properties.Create(context.Background(), &domain.Property{LandlordID: "acc_1", Title: "Flat 3"})

	now := time.Now().UTC()
	tenancies.Create(context.Background(), &domain.Tenancy{
		LandlordID: "acc_1", PropertyID: property.ID, RentAmount: 1200, Active: true,
		RentEnd: now.AddDate(0, 6, 0),
	})
	tenancies.Create(context.Background(), &domain.Tenancy{
		LandlordID: "acc_1", PropertyID: property.ID, RentAmount: 900, Active: true,
		RentEnd: now.AddDate(0, 0, 5),
	})
	// Inactive: counted in total only, no income.
	tenancies.Create(context.Background(), &domain.Tenancy{
		LandlordID: "acc_1", PropertyID: property.ID, RentAmount: 800, Active: false,
		RentEnd: now.AddDate(0, 0, -40),
	})

	summary, err := svc.Dashboard(context.Background(), "acc_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summary.Properties != 2 {
		t.Errorf("expected 2 properties, got %d", summary.Properties)
	}
	if summary.Leases.Total != 3 || summary.Leases.Active != 2 {
		t.Errorf("expected total 3 active 2, got %+v", summary.Leases)
	}
	if summary.Leases.ExpiringSoon != 1 || summary.Leases.Expired != 0 {
		t.Errorf("expected 1 expiring and 0 expired, got %+v", summary.Leases)
	}
	if summary.Leases.MonthlyIncome != 2100 {
		t.Errorf("expected income 2100, got %v", summary.Leases.MonthlyIncome)
	}
}
