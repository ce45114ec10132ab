package airportapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// ProbeResult describes one raw exchange with the search endpoint.
type ProbeResult struct {
	URL        string
	StatusCode int
	Header     http.Header
	Body       []byte

	// Shape is the envelope that matched, or ShapeNone
	Shape Shape

	// Airports is the number of decoded airports
	Airports int

	// DecodeErr is set when no envelope matched
	DecodeErr error
}

// Probe performs the same request as Search but returns the raw exchange.
// Only request-level failures (bad URL, transport) are returned as errors;
// a body that does not decode is reported in ProbeResult.DecodeErr.
func (c *Client) Probe(ctx context.Context, params domain.SearchParams) (*ProbeResult, error) {
	params = params.WithDefaults()
	params.Query = strings.TrimSpace(params.Query)

	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	result := &ProbeResult{
		URL:        resp.url,
		StatusCode: resp.statusCode,
		Header:     resp.header,
		Body:       resp.body,
	}

	airports, shape, err := decodeAirports(resp.body)
	result.Shape = shape
	result.Airports = len(airports)
	result.DecodeErr = err

	return result, nil
}
