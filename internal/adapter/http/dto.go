package http

import (
	"time"

	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// AirportDTO is the API representation of an airport.
type AirportDTO struct {
	IATACode    string   `json:"iataCode" example:"JFK"`
	ICAOCode    *string  `json:"icaoCode,omitempty" example:"KJFK"`
	Name        string   `json:"name" example:"John F. Kennedy International Airport"`
	CityName    string   `json:"cityName" example:"New York"`
	CountryName string   `json:"countryName" example:"United States"`
	CountryCode *string  `json:"countryCode,omitempty" example:"US"`
	Latitude    *float64 `json:"latitude,omitempty" example:"40.6413"`
	Longitude   *float64 `json:"longitude,omitempty" example:"-73.7781"`

	// DisplayName is "<city>, <country>", the text echoed into a field on selection
	DisplayName string `json:"displayName" example:"New York, United States"`
}

// AirportsResponse is returned by GET /api/v1/airports.
type AirportsResponse struct {
	Query    string       `json:"query" example:"new york"`
	Count    int          `json:"count" example:"1"`
	Popular  bool         `json:"popular" example:"false"`
	Airports []AirportDTO `json:"airports"`
}

// SessionStateDTO is the API representation of a search session.
type SessionStateDTO struct {
	OriginText          string       `json:"originText" example:"New York, United States"`
	DestinationText     string       `json:"destinationText" example:"lon"`
	ActiveField         string       `json:"activeField" example:"destination"`
	IsLoading           bool         `json:"isLoading" example:"false"`
	ErrorMessage        string       `json:"errorMessage,omitempty" example:""`
	Results             []AirportDTO `json:"results"`
	SelectedOrigin      *AirportDTO  `json:"selectedOrigin,omitempty"`
	SelectedDestination *AirportDTO  `json:"selectedDestination,omitempty"`
	CanCreateAlert      bool         `json:"canCreateAlert" example:"false"`
}

// SessionResponse wraps a session id and its state.
type SessionResponse struct {
	ID    string          `json:"id" example:"0b6f3c1e-3f7a-4b58-9d1e-2f0c7a9b1d11"`
	State SessionStateDTO `json:"state"`
}

// AlertDTO is the API representation of a price alert. Priced is false
// until a fare has been observed for the route.
type AlertDTO struct {
	ID            string     `json:"id" example:"7c1d2e9a-5b0f-4c3e-8a6d-1e2f3a4b5c6d"`
	Origin        AirportDTO `json:"origin"`
	Destination   AirportDTO `json:"destination"`
	DepartureDate string     `json:"departureDate,omitempty" example:"2025-06-13"`
	OriginalPrice float64    `json:"originalPrice" example:"110"`
	CurrentPrice  float64    `json:"currentPrice" example:"55"`
	Currency      string     `json:"currency" example:"USD"`
	DropAmount    float64    `json:"dropAmount" example:"55"`
	DropPercent   float64    `json:"dropPercent" example:"50"`
	Priced        bool       `json:"priced" example:"true"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// AlertsResponse is returned by GET /api/v1/alerts.
type AlertsResponse struct {
	MinDropPercent float64    `json:"minDropPercent" example:"30"`
	Count          int        `json:"count" example:"1"`
	Alerts         []AlertDTO `json:"alerts"`
}

// ToAirportDTO converts a domain airport.
func ToAirportDTO(a domain.Airport) AirportDTO {
	return AirportDTO{
		IATACode:    a.IATACode,
		ICAOCode:    a.ICAOCode,
		Name:        a.Name,
		CityName:    a.CityName,
		CountryName: a.CountryName,
		CountryCode: a.CountryCode,
		Latitude:    a.Latitude,
		Longitude:   a.Longitude,
		DisplayName: a.DisplayName(),
	}
}

// ToAirportDTOs converts a list of airports. The result is never nil.
func ToAirportDTOs(airports []domain.Airport) []AirportDTO {
	result := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		result = append(result, ToAirportDTO(a))
	}
	return result
}

func toAirportDTOPtr(a *domain.Airport) *AirportDTO {
	if a == nil {
		return nil
	}
	dto := ToAirportDTO(*a)
	return &dto
}

// ToAlertDTO converts a domain price alert.
func ToAlertDTO(a domain.PriceAlert) AlertDTO {
	return AlertDTO{
		ID:            a.ID,
		Origin:        ToAirportDTO(a.Origin),
		Destination:   ToAirportDTO(a.Destination),
		DepartureDate: a.DepartureDate,
		OriginalPrice: a.OriginalPrice,
		CurrentPrice:  a.CurrentPrice,
		Currency:      a.Currency,
		DropAmount:    a.DropAmount(),
		DropPercent:   a.DropPercent(),
		Priced:        a.Priced(),
		CreatedAt:     a.CreatedAt,
	}
}
