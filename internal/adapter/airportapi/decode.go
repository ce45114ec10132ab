package airportapi

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// Shape identifies which response envelope a body was decoded from.
type Shape int

const (
	// ShapeNone means no known envelope matched.
	ShapeNone Shape = iota
	// ShapeBareArray is a top-level JSON array of airports.
	ShapeBareArray
	// ShapeData is an object with a "data" array.
	ShapeData
	// ShapeResults is an object with a "results" array.
	ShapeResults
	// ShapeAirports is an object with an "airports" array.
	ShapeAirports
)

// String returns the name of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeBareArray:
		return "bare_array"
	case ShapeData:
		return "data"
	case ShapeResults:
		return "results"
	case ShapeAirports:
		return "airports"
	default:
		return "none"
	}
}

// Alternate key spellings, in priority order.
var (
	iataKeys        = []string{"iata_code", "iata", "code", "airport_code"}
	icaoKeys        = []string{"icao_code", "icao"}
	nameKeys        = []string{"name", "airport_name"}
	cityKeys        = []string{"city_name", "city", "municipality"}
	countryKeys     = []string{"country_name", "country"}
	countryCodeKeys = []string{"country_code", "iso_country"}
	latitudeKeys    = []string{"latitude", "lat"}
	longitudeKeys   = []string{"longitude", "lng", "lon"}
)

// decodeResult is the outcome of one envelope decoder.
type decodeResult struct {
	shape    Shape
	airports []domain.Airport
	ok       bool
}

var noMatch = decodeResult{}

// envelopeDecoders are tried in order; the first match wins.
var envelopeDecoders = []func([]byte) decodeResult{
	decodeBareArray,
	keyedEnvelope(ShapeData, "data"),
	keyedEnvelope(ShapeResults, "results"),
	keyedEnvelope(ShapeAirports, "airports"),
}

// decodeAirports normalizes a response body into airports.
// Returns domain.ErrDecoding when no envelope matches.
func decodeAirports(body []byte) ([]domain.Airport, Shape, error) {
	for _, decode := range envelopeDecoders {
		if r := decode(body); r.ok {
			return r.airports, r.shape, nil
		}
	}
	return nil, ShapeNone, domain.ErrDecoding
}

func decodeBareArray(body []byte) decodeResult {
	elems, ok := rawArray(body)
	if !ok {
		return noMatch
	}
	return decodeElements(ShapeBareArray, elems)
}

func keyedEnvelope(shape Shape, key string) func([]byte) decodeResult {
	return func(body []byte) decodeResult {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
			return noMatch
		}
		raw, ok := obj[key]
		if !ok {
			return noMatch
		}
		elems, ok := rawArray(raw)
		if !ok {
			return noMatch
		}
		return decodeElements(shape, elems)
	}
}

// rawArray splits a JSON array into its elements. A null value is not an array.
func rawArray(raw []byte) ([]json.RawMessage, bool) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, false
	}
	var elems []json.RawMessage
	if err := json.Unmarshal(trimmed, &elems); err != nil {
		return nil, false
	}
	return elems, true
}

// decodeElements decodes every element; one bad element fails the whole shape.
func decodeElements(shape Shape, elems []json.RawMessage) decodeResult {
	airports := make([]domain.Airport, 0, len(elems))
	for _, elem := range elems {
		a, ok := decodeAirport(elem)
		if !ok {
			return noMatch
		}
		airports = append(airports, a)
	}
	return decodeResult{shape: shape, airports: airports, ok: true}
}

// record is one airport object keyed by its raw field names.
type record map[string]json.RawMessage

func decodeAirport(raw json.RawMessage) (domain.Airport, bool) {
	var r record
	if err := json.Unmarshal(raw, &r); err != nil || r == nil {
		return domain.Airport{}, false
	}

	iata, ok := r.firstString(iataKeys)
	if !ok {
		return domain.Airport{}, false
	}

	return domain.Airport{
		IATACode:    iata,
		ICAOCode:    r.optionalString(icaoKeys),
		Name:        r.stringOr(nameKeys, domain.UnknownAirportName),
		CityName:    r.stringOr(cityKeys, domain.UnknownCityName),
		CountryName: r.stringOr(countryKeys, domain.UnknownCountryName),
		CountryCode: r.optionalString(countryCodeKeys),
		Latitude:    r.optionalFloat(latitudeKeys),
		Longitude:   r.optionalFloat(longitudeKeys),
	}, true
}

// firstString returns the first key holding a non-blank JSON string.
// Keys holding null or another JSON type are skipped.
func (r record) firstString(keys []string) (string, bool) {
	for _, key := range keys {
		raw, ok := r[key]
		if !ok {
			continue
		}
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			return s, true
		}
	}
	return "", false
}

func (r record) stringOr(keys []string, fallback string) string {
	if s, ok := r.firstString(keys); ok {
		return s
	}
	return fallback
}

func (r record) optionalString(keys []string) *string {
	if s, ok := r.firstString(keys); ok {
		return &s
	}
	return nil
}

// optionalFloat accepts a JSON number or a numeric string.
func (r record) optionalFloat(keys []string) *float64 {
	for _, key := range keys {
		raw, ok := r[key]
		if !ok || string(bytes.TrimSpace(raw)) == "null" {
			continue
		}
		var f float64
		if err := json.Unmarshal(raw, &f); err == nil {
			return &f
		}
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
				return &parsed
			}
		}
	}
	return nil
}
