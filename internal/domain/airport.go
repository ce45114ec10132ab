// Package domain contains the core entities and rules of the flight alert service.
// These types are independent of the airport search API and of the HTTP surface.
package domain

import "strings"

// Placeholder values used when an upstream airport record omits a descriptive field.
const (
	UnknownAirportName = "Unknown Airport"
	UnknownCityName    = "Unknown City"
	UnknownCountryName = "Unknown Country"
)

// Airport represents one searchable location.
// Two airports are the same airport when their IATA codes match; use Equal
// rather than == since the optional fields are pointers.
type Airport struct {
	// IATACode is the 3-letter IATA code (e.g., "JFK")
	IATACode string `json:"iataCode"`

	// ICAOCode is the 4-letter ICAO code (e.g., "KJFK"), if known
	ICAOCode *string `json:"icaoCode,omitempty"`

	// Name is the airport name (e.g., "John F. Kennedy International Airport")
	Name string `json:"name"`

	// CityName is the served city (e.g., "New York")
	CityName string `json:"cityName"`

	// CountryName is the country name (e.g., "United States")
	CountryName string `json:"countryName"`

	// CountryCode is the ISO country code (e.g., "US"), if known
	CountryCode *string `json:"countryCode,omitempty"`

	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// Equal reports whether a and other share the same IATA code.
func (a Airport) Equal(other Airport) bool {
	return SameAirportCode(a.IATACode, other.IATACode)
}

// SameAirportCode compares airport codes ignoring case and surrounding space.
// Upstream records reached through the looser key aliases are not always uppercase.
func SameAirportCode(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// DisplayName returns the "City, Country" label shown in a search field.
func (a Airport) DisplayName() string {
	return a.CityName + ", " + a.CountryName
}

// FullName returns the airport name.
func (a Airport) FullName() string {
	return a.Name
}

// ContainsAirport reports whether airports holds an airport with the given IATA code.
func ContainsAirport(airports []Airport, iataCode string) bool {
	_, ok := FindAirport(airports, iataCode)
	return ok
}

// FindAirport returns the first airport in airports with the given IATA code.
func FindAirport(airports []Airport, iataCode string) (Airport, bool) {
	for _, a := range airports {
		if SameAirportCode(a.IATACode, iataCode) {
			return a, true
		}
	}
	return Airport{}, false
}

// PopularAirports returns the built-in fallback list shown before the user types.
// A fresh slice is returned on every call.
func PopularAirports() []Airport {
	return []Airport{
		{IATACode: "JFK", Name: "John F. Kennedy International Airport", CityName: "New York", CountryName: "United States"},
		{IATACode: "LAX", Name: "Los Angeles International Airport", CityName: "Los Angeles", CountryName: "United States"},
		{IATACode: "LHR", Name: "Heathrow Airport", CityName: "London", CountryName: "United Kingdom"},
		{IATACode: "CDG", Name: "Charles de Gaulle Airport", CityName: "Paris", CountryName: "France"},
		{IATACode: "NRT", Name: "Narita International Airport", CityName: "Tokyo", CountryName: "Japan"},
	}
}
