package domain

import (
	"math"
	"time"
)

// DefaultMinDropPercent is the drop threshold of the "today's price drops" list.
const DefaultMinDropPercent = 30.0

// PriceAlert watches the fare of one route and reports when it drops.
type PriceAlert struct {
	// ID is a unique identifier generated when the alert is created
	ID string `json:"id"`

	// Origin is the departure airport
	Origin Airport `json:"origin"`

	// Destination is the arrival airport
	Destination Airport `json:"destination"`

	// DepartureDate is the watched travel date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// OriginalPrice is the fare when the alert was created
	OriginalPrice float64 `json:"originalPrice"`

	// CurrentPrice is the latest observed fare
	CurrentPrice float64 `json:"currentPrice"`

	// Currency is the ISO 4217 currency code (e.g., "USD")
	Currency string `json:"currency"`

	// CreatedAt is when the alert was created
	CreatedAt time.Time `json:"createdAt"`
}

// Priced reports whether a fare has been observed for the route yet.
func (a PriceAlert) Priced() bool {
	return a.OriginalPrice > 0
}

// DropAmount returns how much the fare has fallen. It is never negative.
func (a PriceAlert) DropAmount() float64 {
	if a.CurrentPrice >= a.OriginalPrice {
		return 0
	}
	return a.OriginalPrice - a.CurrentPrice
}

// DropPercent returns the fall as a percentage of the original price, rounded to one decimal.
func (a PriceAlert) DropPercent() float64 {
	if a.OriginalPrice <= 0 {
		return 0
	}
	return math.Round(a.DropAmount()/a.OriginalPrice*1000) / 10
}

// Validate checks that the alert has a complete route.
func (a PriceAlert) Validate() error {
	if a.Origin.IATACode == "" {
		return NewValidationError("origin", "is required")
	}
	if a.Destination.IATACode == "" {
		return NewValidationError("destination", "is required")
	}
	if a.OriginalPrice < 0 || a.CurrentPrice < 0 {
		return NewValidationError("price", "must not be negative")
	}
	return nil
}
