// Package http provides the HTTP handler layer for the flight alert API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// Paging bounds of the airport search endpoint.
const (
	maxSearchLimit = 100
	maxQueryLength = 100
)

// AirportSearchRequest holds the query parameters of GET /api/v1/airports.
type AirportSearchRequest struct {
	// Query is the free-text search; empty returns the popular airports
	Query string `query:"q"`

	// Limit is the page size (1-100, default 10)
	Limit int `query:"limit"`

	// Page is the 1-based page number (default 1)
	Page int `query:"page"`
}

// UpdateTextRequest is the body of PUT /api/v1/sessions/{id}/fields/{field}.
type UpdateTextRequest struct {
	// Text is the raw content of the text field; it may be empty
	Text string `json:"text" example:"new york"`
}

// SetActiveFieldRequest is the body of PUT /api/v1/sessions/{id}/active.
type SetActiveFieldRequest struct {
	// Field is "origin" or "destination"
	Field string `json:"field" example:"destination"`
}

// SelectAirportRequest is the body of POST /api/v1/sessions/{id}/selection.
type SelectAirportRequest struct {
	// IATACode is the code of an airport in the session's results or the popular list
	IATACode string `json:"iataCode" example:"JFK"`
}

var airportCodePattern = regexp.MustCompile(`^[A-Z0-9]{2,8}$`)

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// Validate checks paging values and normalizes the query.
func (r *AirportSearchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Query = strings.TrimSpace(r.Query)
	if len(r.Query) > maxQueryLength {
		errs.Add("q", "q must be at most "+strconv.Itoa(maxQueryLength)+" characters")
	}

	switch {
	case r.Limit == 0:
		r.Limit = domain.DefaultSearchLimit
	case r.Limit < 0 || r.Limit > maxSearchLimit:
		errs.Add("limit", "limit must be between 1 and "+strconv.Itoa(maxSearchLimit))
	}

	switch {
	case r.Page == 0:
		r.Page = domain.DefaultSearchPage
	case r.Page < 0:
		errs.Add("page", "page must be at least 1")
	}

	if errs.HasErrors() {
		return errs
	}
	return nil
}

// ToParams converts the request to search parameters.
func (r *AirportSearchRequest) ToParams() domain.SearchParams {
	return domain.SearchParams{
		Query: r.Query,
		Limit: r.Limit,
		Page:  r.Page,
	}
}

// Validate parses the field name.
func (r *SetActiveFieldRequest) Validate() (domain.SearchField, error) {
	if strings.TrimSpace(r.Field) == "" {
		errs := &ValidationErrors{}
		errs.Add("field", "field is required")
		return 0, errs
	}
	field, err := domain.ParseSearchField(r.Field)
	if err != nil {
		errs := &ValidationErrors{}
		errs.Add("field", "field must be one of: origin, destination")
		return 0, errs
	}
	return field, nil
}

// Validate normalizes the airport code to uppercase.
func (r *SelectAirportRequest) Validate() error {
	errs := &ValidationErrors{}

	if r.IATACode == "" {
		errs.Add("iataCode", "iataCode is required")
		return errs
	}

	code := strings.ToUpper(strings.TrimSpace(r.IATACode))
	if !airportCodePattern.MatchString(code) {
		errs.Add("iataCode", "iataCode must be 2 to 8 letters or digits")
		return errs
	}
	r.IATACode = code
	return nil
}

// parseFieldParam parses the {field} path parameter.
func parseFieldParam(raw string) (domain.SearchField, error) {
	req := SetActiveFieldRequest{Field: raw}
	return req.Validate()
}

// parseMinDropPercent parses the minDropPercent query parameter.
// An empty value yields def.
func parseMinDropPercent(raw string, def float64) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || v < 0 || v > 100 {
		errs := &ValidationErrors{}
		errs.Add("minDropPercent", "minDropPercent must be a number between 0 and 100")
		return 0, errs
	}
	return v, nil
}
