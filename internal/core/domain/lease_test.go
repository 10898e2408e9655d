package domain

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ---------------------------------------------------------------------------
// ComputeLeaseEnd
// ---------------------------------------------------------------------------

func TestComputeLeaseEnd_Months(t *testing.T) {
	end, err := ComputeLeaseEnd(date(2024, 1, 1), LeaseDuration{Amount: 12, Unit: UnitMonth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := date(2025, 1, 1); !end.Equal(want) {
		t.Errorf("expected %v, got %v", want, end)
	}
}

func TestComputeLeaseEnd_YearEqualsTwelveMonths(t *testing.T) {
	start := date(2024, 3, 15)
	byMonths, err := ComputeLeaseEnd(start, LeaseDuration{Amount: 12, Unit: UnitMonth})
	if err != nil {
		t.Fatalf("months: %v", err)
	}
	byYear, err := ComputeLeaseEnd(start, LeaseDuration{Amount: 1, Unit: UnitYear})
	if err != nil {
		t.Fatalf("year: %v", err)
	}
	if !byMonths.Equal(byYear) {
		t.Errorf("12 months (%v) must equal 1 year (%v)", byMonths, byYear)
	}
}

func TestComputeLeaseEnd_AlwaysAfterStart(t *testing.T) {
	start := date(2024, 6, 1)
	durations := []LeaseDuration{
		{Amount: 1, Unit: UnitMonth},
		{Amount: 6, Unit: UnitMonth},
		{Amount: 24, Unit: UnitMonth},
		{Amount: 1, Unit: UnitYear},
		{Amount: 5, Unit: UnitYear},
	}
	for _, d := range durations {
		end, err := ComputeLeaseEnd(start, d)
		if err != nil {
			t.Fatalf("duration %+v: %v", d, err)
		}
		if !end.After(start) {
			t.Errorf("duration %+v: end %v not after start %v", d, end, start)
		}
	}
}

func TestComputeLeaseEnd_InvalidDuration(t *testing.T) {
	cases := []LeaseDuration{
		{Amount: 0, Unit: UnitMonth},
		{Amount: -3, Unit: UnitYear},
		{Amount: 12, Unit: "week"},
		{Amount: 12, Unit: ""},
	}
	for _, d := range cases {
		if _, err := ComputeLeaseEnd(date(2024, 1, 1), d); !errors.Is(err, ErrInvalidDuration) {
			t.Errorf("duration %+v: expected ErrInvalidDuration, got %v", d, err)
		}
	}
}

// ---------------------------------------------------------------------------
// ComputeNextPayment
// ---------------------------------------------------------------------------

func TestComputeNextPayment_AddsOneCalendarMonth(t *testing.T) {
	got := ComputeNextPayment(date(2024, 1, 15))
	if want := date(2024, 2, 15); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

// ---------------------------------------------------------------------------
// Classify
// ---------------------------------------------------------------------------

func TestClassify_Boundaries(t *testing.T) {
	now := date(2024, 6, 1)

	cases := []struct {
		name       string
		rentEnd    time.Time
		wantStatus LeaseStatus
		wantDays   int
	}{
		{"expires today", now, LeaseExpiring, 0},
		{"expired yesterday", now.AddDate(0, 0, -1), LeaseExpired, -1},
		{"exactly 30 days", now.AddDate(0, 0, 30), LeaseExpiring, 30},
		{"31 days", now.AddDate(0, 0, 31), LeaseActive, 31},
		{"far future", now.AddDate(1, 0, 0), LeaseActive, 365},
		{"long expired", now.AddDate(0, -2, 0), LeaseExpired, -61},
	}

	for _, tc := range cases {
		status, days := Classify(now, tc.rentEnd)
		if status != tc.wantStatus {
			t.Errorf("%s: expected status %q, got %q", tc.name, tc.wantStatus, status)
		}
		if days != tc.wantDays {
			t.Errorf("%s: expected %d days, got %d", tc.name, tc.wantDays, days)
		}
	}
}

func TestClassify_PartialDayRoundsUp(t *testing.T) {
	now := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)
	rentEnd := time.Date(2024, 6, 2, 0, 0, 0, 0, time.UTC) // 6 hours away

	status, days := Classify(now, rentEnd)
	if days != 1 {
		t.Errorf("expected ceil to 1 day, got %d", days)
	}
	if status != LeaseExpiring {
		t.Errorf("expected expiring, got %q", status)
	}
}

// Decreasing rentEnd relative to now must never move the status backwards
// towards active.
func TestClassify_MonotonicInRentEnd(t *testing.T) {
	now := date(2024, 6, 1)
	rank := map[LeaseStatus]int{LeaseActive: 0, LeaseExpiring: 1, LeaseExpired: 2}

	prev := -1
	for offset := 60; offset >= -60; offset-- {
		status, _ := Classify(now, now.AddDate(0, 0, offset))
		if rank[status] < prev {
			t.Fatalf("status regressed to %q at offset %d", status, offset)
		}
		prev = rank[status]
	}
}

func TestClassify_TwelveMonthLeaseEndToEnd(t *testing.T) {
	rentEnd, err := ComputeLeaseEnd(date(2024, 1, 1), LeaseDuration{Amount: 12, Unit: UnitMonth})
	if err != nil {
		t.Fatalf("compute lease end: %v", err)
	}
	if want := date(2025, 1, 1); !rentEnd.Equal(want) {
		t.Fatalf("expected rent end %v, got %v", want, rentEnd)
	}

	status, days := Classify(date(2024, 12, 15), rentEnd)
	if status != LeaseExpiring {
		t.Errorf("expected expiring, got %q", status)
	}
	if days != 17 {
		t.Errorf("expected 17 days until expiry, got %d", days)
	}
}

// ---------------------------------------------------------------------------
// Summarize
// ---------------------------------------------------------------------------

func TestSummarize_ExcludesInactiveFromAggregates(t *testing.T) {
	now := date(2024, 6, 1)
	tenancies := []Tenancy{
		{Active: true, RentAmount: 1000, RentEnd: now.AddDate(0, 6, 0)},  // active
		{Active: true, RentAmount: 800, RentEnd: now.AddDate(0, 0, 10)},  // expiring
		{Active: true, RentAmount: 600, RentEnd: now.AddDate(0, 0, -5)},  // expired
		{Active: false, RentAmount: 900, RentEnd: now.AddDate(0, 0, 10)}, // inactive: ignored
	}

	s := Summarize(tenancies, now)
	if s.Total != 4 {
		t.Errorf("total: expected 4, got %d", s.Total)
	}
	if s.Active != 3 {
		t.Errorf("active: expected 3, got %d", s.Active)
	}
	if s.ExpiringSoon != 1 {
		t.Errorf("expiring: expected 1, got %d", s.ExpiringSoon)
	}
	if s.Expired != 1 {
		t.Errorf("expired: expected 1, got %d", s.Expired)
	}
	if s.MonthlyIncome != 2400 {
		t.Errorf("income: expected 2400, got %v", s.MonthlyIncome)
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, date(2024, 6, 1))
	if s.Total != 0 || s.Active != 0 || s.MonthlyIncome != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

// ---------------------------------------------------------------------------
// RecomputeRenovationTotal
// ---------------------------------------------------------------------------

func TestRecomputeRenovationTotal(t *testing.T) {
	p := &Property{
		TotalRenovationCost: 99, // stale
		Renovations: []Renovation{
			{Type: "fencing", Cost: 1200},
			{Type: "repainting", Cost: 450.50},
			{Type: "roofing", Cost: 3000},
		},
	}
	RecomputeRenovationTotal(p)
	if p.TotalRenovationCost != 4650.50 {
		t.Errorf("expected 4650.50, got %v", p.TotalRenovationCost)
	}
}

func TestRecomputeRenovationTotal_EmptyListResetsToZero(t *testing.T) {
	p := &Property{TotalRenovationCost: 500}
	RecomputeRenovationTotal(p)
	if p.TotalRenovationCost != 0 {
		t.Errorf("expected 0, got %v", p.TotalRenovationCost)
	}
}

// ---------------------------------------------------------------------------
// Account flags
// ---------------------------------------------------------------------------

func TestAccount_BanUnbanKeepFlagsConsistent(t *testing.T) {
	a := &Account{Active: true}

	a.Ban()
	if !a.Banned || a.Active {
		t.Errorf("after ban: expected banned+inactive, got banned=%v active=%v", a.Banned, a.Active)
	}

	a.Unban()
	if a.Banned || !a.Active {
		t.Errorf("after unban: expected active, got banned=%v active=%v", a.Banned, a.Active)
	}

	// idempotent on an already-active account
	a.Unban()
	if a.Banned || !a.Active {
		t.Errorf("repeat unban changed state: banned=%v active=%v", a.Banned, a.Active)
	}
}

func TestAppeal_Validate(t *testing.T) {
	valid := Appeal{Name: "Jane", Email: "jane@example.com", Message: "please review"}
	if err := valid.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cases := []Appeal{
		{Email: "jane@example.com", Message: "m"},
		{Name: "Jane", Message: "m"},
		{Name: "Jane", Email: "jane@example.com"},
	}
	for i, a := range cases {
		if err := a.Validate(); !errors.Is(err, ErrValidation) {
			t.Errorf("case %d: expected ErrValidation, got %v", i, err)
		}
	}
}
