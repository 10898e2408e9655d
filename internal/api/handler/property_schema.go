package handler

import "time"

type coordinatesRequest struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type popularPlaceRequest struct {
	Name     string `json:"name"     validate:"required"`
	Type     string `json:"type"`
	Distance string `json:"distance"`
}

type createPropertyRequest struct {
	Title          string                `json:"title"           validate:"required"`
	Description    string                `json:"description"`
	Address        string                `json:"address"         validate:"required"`
	Coordinates    coordinatesRequest    `json:"coordinates"`
	LandDocuments  []string              `json:"land_documents"`
	PropertyImages []string              `json:"property_images"`
	PopularPlaces  []popularPlaceRequest `json:"popular_places"  validate:"dive"`
	PurchasePrice  float64               `json:"purchase_price"  validate:"omitempty,gt=0"`
	EstimatedValue float64               `json:"estimated_value" validate:"omitempty,gt=0"`
}

type renovationRequest struct {
	Type        string    `json:"type"        validate:"required"`
	Description string    `json:"description"`
	Cost        float64   `json:"cost"        validate:"required,gt=0"`
	Date        time.Time `json:"date"`
	Documents   []string  `json:"documents"`
}
