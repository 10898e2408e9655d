package domain

import (
	"errors"
	"time"
)

var ErrPropertyNotFound = errors.New("property not found")

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// PopularPlace is a nearby point of interest attached to a property listing.
type PopularPlace struct {
	Name     string `json:"name" bson:"name"`
	Type     string `json:"type" bson:"type"`
	Distance string `json:"distance" bson:"distance"`
}

// Renovation records a single maintenance or improvement expense.
type Renovation struct {
	Type        string    `json:"type" bson:"type"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Cost        float64   `json:"cost" bson:"cost"`
	Date        time.Time `json:"date" bson:"date"`
	Documents   []string  `json:"documents,omitempty" bson:"documents,omitempty"`
}

// Property is a rental property owned by exactly one landlord account.
// TotalRenovationCost is derived from Renovations; writers must call
// RecomputeRenovationTotal before persisting a changed renovation list.
type Property struct {
	ID                  string         `json:"id" bson:"_id,omitempty"`
	LandlordID          string         `json:"landlord_id" bson:"landlord_id"`
	Title               string         `json:"title" bson:"title"`
	Description         string         `json:"description,omitempty" bson:"description,omitempty"`
	Address             string         `json:"address" bson:"address"`
	Coordinates         Coordinates    `json:"coordinates" bson:"coordinates"`
	LandDocuments       []string       `json:"land_documents,omitempty" bson:"land_documents,omitempty"`
	PropertyImages      []string       `json:"property_images,omitempty" bson:"property_images,omitempty"`
	PopularPlaces       []PopularPlace `json:"popular_places,omitempty" bson:"popular_places,omitempty"`
	Renovations         []Renovation   `json:"renovations" bson:"renovations"`
	TotalRenovationCost float64        `json:"total_renovation_cost" bson:"total_renovation_cost"`
	PurchasePrice       float64        `json:"purchase_price,omitempty" bson:"purchase_price,omitempty"`
	EstimatedValue      float64        `json:"estimated_value,omitempty" bson:"estimated_value,omitempty"`
	CreatedAt           time.Time      `json:"created_at" bson:"created_at"`
}

// RecomputeRenovationTotal sets TotalRenovationCost to the sum of all
// renovation costs.
func RecomputeRenovationTotal(p *Property) {
	var total float64
	for _, r := range p.Renovations {
		total += r.Cost
	}
	p.TotalRenovationCost = total
}
