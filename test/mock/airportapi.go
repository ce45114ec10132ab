// Package mock provides test doubles for the flight alert service.
// These mocks are designed for integration testing where we need
// configurable upstream behavior (delays, errors, specific bodies).
package mock

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// AirportRecord is one airport in the upstream's wire format.
type AirportRecord struct {
	IATACode    string   `json:"iata_code"`
	ICAOCode    string   `json:"icao_code,omitempty"`
	Name        string   `json:"name,omitempty"`
	CityName    string   `json:"city_name,omitempty"`
	CountryName string   `json:"country_name,omitempty"`
	CountryCode string   `json:"country_code,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Envelope names the JSON layout the mock replies with.
type Envelope string

// Envelopes the airport endpoint has been seen to return.
const (
	EnvelopeBareArray Envelope = ""
	EnvelopeData      Envelope = "data"
	EnvelopeResults   Envelope = "results"
	EnvelopeAirports  Envelope = "airports"
)

// AirportAPI is a configurable stand-in for the remote airport search endpoint.
// Records are filtered by a case-insensitive substring match of the q
// parameter against code, name, and city, unless a raw body is configured.
type AirportAPI struct {
	mu       sync.Mutex
	records  []AirportRecord
	envelope Envelope
	status   int
	rawBody  string
	delay    time.Duration
	queries  []string

	server *httptest.Server
}

// NewAirportAPI creates a mock that replies 200 with a bare array.
func NewAirportAPI() *AirportAPI {
	return &AirportAPI{status: http.StatusOK}
}

// WithAirports configures the records served.
func (a *AirportAPI) WithAirports(records ...AirportRecord) *AirportAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.records = records
	return a
}

// WithEnvelope configures the response layout.
func (a *AirportAPI) WithEnvelope(e Envelope) *AirportAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.envelope = e
	return a
}

// WithStatus configures the HTTP status code.
func (a *AirportAPI) WithStatus(code int) *AirportAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status = code
	return a
}

// WithRawBody replies with body verbatim instead of encoding the records.
func (a *AirportAPI) WithRawBody(body string) *AirportAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.rawBody = body
	return a
}

// WithDelay configures the mock to wait the given duration before responding.
// This is useful for testing timeout and supersede behavior.
func (a *AirportAPI) WithDelay(d time.Duration) *AirportAPI {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.delay = d
	return a
}

// Start starts the HTTP server and returns its base URL.
func (a *AirportAPI) Start() string {
	a.server = httptest.NewServer(http.HandlerFunc(a.serve))
	return a.server.URL
}

// Close stops the server.
func (a *AirportAPI) Close() {
	if a.server != nil {
		a.server.Close()
	}
}

// Queries returns the q parameter of every request received, in order.
func (a *AirportAPI) Queries() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]string, len(a.queries))
	copy(out, a.queries)
	return out
}

// CallCount returns the number of requests received.
func (a *AirportAPI) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queries)
}

func (a *AirportAPI) serve(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	a.mu.Lock()
	a.queries = append(a.queries, query)
	delay := a.delay
	status := a.status
	body := a.rawBody
	if body == "" {
		body = a.encodeLocked(query)
	}
	a.mu.Unlock()

	if delay > 0 {
		select {
		case <-r.Context().Done():
			return
		case <-time.After(delay):
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (a *AirportAPI) encodeLocked(query string) string {
	matches := make([]AirportRecord, 0, len(a.records))
	q := strings.ToLower(query)
	for _, rec := range a.records {
		if strings.Contains(strings.ToLower(rec.IATACode), q) ||
			strings.Contains(strings.ToLower(rec.Name), q) ||
			strings.Contains(strings.ToLower(rec.CityName), q) {
			matches = append(matches, rec)
		}
	}

	var payload interface{} = matches
	if a.envelope != EnvelopeBareArray {
		payload = map[string]interface{}{string(a.envelope): matches}
	}

	data, _ := json.Marshal(payload)
	return string(data)
}

// SampleAirports returns a small set of airports in the upstream's wire format.
func SampleAirports() []AirportRecord {
	lat, lon := 40.6413, -73.7781
	return []AirportRecord{
		{IATACode: "JFK", ICAOCode: "KJFK", Name: "John F. Kennedy International Airport", CityName: "New York", CountryName: "United States", CountryCode: "US", Latitude: &lat, Longitude: &lon},
		{IATACode: "LGA", ICAOCode: "KLGA", Name: "LaGuardia Airport", CityName: "New York", CountryName: "United States", CountryCode: "US"},
		{IATACode: "EWR", ICAOCode: "KEWR", Name: "Newark Liberty International Airport", CityName: "Newark", CountryName: "United States", CountryCode: "US"},
		{IATACode: "LHR", ICAOCode: "EGLL", Name: "Heathrow Airport", CityName: "London", CountryName: "United Kingdom", CountryCode: "GB"},
		{IATACode: "LGW", ICAOCode: "EGKK", Name: "Gatwick Airport", CityName: "London", CountryName: "United Kingdom", CountryCode: "GB"},
		{IATACode: "COK", ICAOCode: "VOCI", Name: "Cochin International Airport", CityName: "Kochi", CountryName: "India", CountryCode: "IN"},
	}
}
