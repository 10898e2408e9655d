package domain

import (
	"errors"
	"time"
)

var ErrTenancyNotFound = errors.New("tenancy not found")

// DurationUnit is the unit of a lease duration.
type DurationUnit string

const (
	UnitMonth DurationUnit = "month"
	UnitYear  DurationUnit = "year"
)

// LeaseDuration is a lease length as entered by the landlord, e.g. 12 months.
type LeaseDuration struct {
	Amount int          `json:"amount" bson:"amount"`
	Unit   DurationUnit `json:"unit" bson:"unit"`
}

// Tenancy is a lease agreement linking a landlord account, one of its
// properties, and a tenant's contact and payment details.
//
// RentEnd is computed once from RentStart and RentDuration when the
// tenancy is created and only changes on an explicit amendment.
// NextPaymentDate is derived from LastPaymentDate (+1 calendar month)
// whenever a payment is recorded.
type Tenancy struct {
	ID              string        `json:"id" bson:"_id,omitempty"`
	LandlordID      string        `json:"landlord_id" bson:"landlord_id"`
	PropertyID      string        `json:"property_id" bson:"property_id"`
	Name            string        `json:"name" bson:"name"`
	Email           string        `json:"email" bson:"email"`
	Phone           string        `json:"phone" bson:"phone"`
	RentAmount      float64       `json:"rent_amount" bson:"rent_amount"`
	RentStart       time.Time     `json:"rent_start" bson:"rent_start"`
	RentDuration    LeaseDuration `json:"rent_duration" bson:"rent_duration"`
	RentEnd         time.Time     `json:"rent_end" bson:"rent_end"`
	LastPaymentDate *time.Time    `json:"last_payment_date,omitempty" bson:"last_payment_date,omitempty"`
	NextPaymentDate *time.Time    `json:"next_payment_date,omitempty" bson:"next_payment_date,omitempty"`
	Active          bool          `json:"is_active" bson:"is_active"`
	Documents       []string      `json:"documents,omitempty" bson:"documents,omitempty"`
	Notes           string        `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at"`
}
