package domain

import (
	"errors"
	"math"
	"time"
)

// LeaseStatus is the temporal state of a tenancy relative to its rent end date.
type LeaseStatus string

const (
	LeaseActive   LeaseStatus = "active"
	LeaseExpiring LeaseStatus = "expiring"
	LeaseExpired  LeaseStatus = "expired"
)

// ExpiryWindowDays is the lookahead window for the "expiring soon" state.
const ExpiryWindowDays = 30

var ErrInvalidDuration = errors.New("invalid lease duration")

// ComputeLeaseEnd adds the lease duration to the start date. A year counts
// as twelve months.
func ComputeLeaseEnd(start time.Time, d LeaseDuration) (time.Time, error) {
	if d.Amount <= 0 {
		return time.Time{}, ErrInvalidDuration
	}

	months := d.Amount
	switch d.Unit {
	case UnitMonth:
	case UnitYear:
		months *= 12
	default:
		return time.Time{}, ErrInvalidDuration
	}

	return start.AddDate(0, months, 0), nil
}

// ComputeNextPayment returns the payment due date one calendar month after
// the last recorded payment.
func ComputeNextPayment(lastPayment time.Time) time.Time {
	return lastPayment.AddDate(0, 1, 0)
}

// Classify derives the lease status at the given instant.
//
// daysUntilExpiry is the ceiling of the remaining time in days, so a lease
// ending later today classifies as expiring (day 0 is inclusive on the
// "soon" side), and only a rent end strictly in the past is expired.
// Exactly ExpiryWindowDays remaining is still expiring.
func Classify(now, rentEnd time.Time) (LeaseStatus, int) {
	days := int(math.Ceil(rentEnd.Sub(now).Hours() / 24))

	switch {
	case days < 0:
		return LeaseExpired, days
	case days <= ExpiryWindowDays:
		return LeaseExpiring, days
	default:
		return LeaseActive, days
	}
}

// LeaseSummary aggregates a landlord's tenancies at a single instant.
// Only active tenancies contribute to the ExpiringSoon/Expired counts and
// to MonthlyIncome; Total counts every tenancy.
type LeaseSummary struct {
	Total         int     `json:"total"`
	Active        int     `json:"active"`
	ExpiringSoon  int     `json:"expiring_soon"`
	Expired       int     `json:"expired"`
	MonthlyIncome float64 `json:"monthly_income"`
}

// Summarize classifies every tenancy against the same now snapshot so the
// counts cannot skew between instants.
func Summarize(tenancies []Tenancy, now time.Time) LeaseSummary {
	var s LeaseSummary
	s.Total = len(tenancies)

	for _, t := range tenancies {
		if !t.Active {
			continue
		}
		s.Active++
		s.MonthlyIncome += t.RentAmount

		status, _ := Classify(now, t.RentEnd)
		switch status {
		case LeaseExpiring:
			s.ExpiringSoon++
		case LeaseExpired:
			s.Expired++
		}
	}
	return s
}
