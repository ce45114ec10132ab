// Package airportapi is the client of the remote airport search endpoint.
// It issues one GET per search and normalizes the several response shapes
// the endpoint is known to return into domain airports.
package airportapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
)

// Default client settings.
const (
	DefaultBaseURL = "https://staging.flight.lascade.com"
	DefaultTimeout = 10 * time.Second

	searchPath   = "v1/airports/"
	maxBodyBytes = 1 << 20
)

// Config holds the client settings.
type Config struct {
	// BaseURL is the scheme and host of the search API
	BaseURL string

	// Timeout bounds a whole request, including reading the body
	Timeout time.Duration
}

// Client searches airports over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient uses a copy of hc for requests. The configured timeout is
// applied to the copy, so the caller's client is left untouched.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc == nil {
			return
		}
		cp := *hc
		cp.Timeout = c.httpClient.Timeout
		c.httpClient = &cp
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) {
		c.log = logger.OrNop(l).WithComponent("airportapi")
	}
}

// NewClient creates a Client. Empty config values fall back to the defaults.
func NewClient(cfg Config, opts ...Option) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search queries the endpoint and returns the decoded airports.
// Errors are domain.ErrInvalidURL, *domain.NetworkError, domain.ErrDecoding,
// a validation error for a blank query, or the context error when canceled.
func (c *Client) Search(ctx context.Context, params domain.SearchParams) ([]domain.Airport, error) {
	params = params.WithDefaults()
	params.Query = strings.TrimSpace(params.Query)
	if params.Query == "" {
		return nil, domain.NewValidationError("q", "must not be empty")
	}

	start := time.Now()
	resp, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	airports, shape, err := decodeAirports(resp.body)
	if err != nil {
		c.log.Warn().
			Str("query", params.Query).
			Int("status", resp.statusCode).
			Int("bytes", len(resp.body)).
			Msg("No known response shape matched")
		return nil, fmt.Errorf("search airports %q: %w", params.Query, err)
	}

	c.log.Debug().
		Str("query", params.Query).
		Str("shape", shape.String()).
		Int("results", len(airports)).
		Int64("duration_ms", time.Since(start).Milliseconds()).
		Msg("Airport search completed")

	return airports, nil
}

// rawResponse is an undecoded upstream response.
type rawResponse struct {
	url        string
	statusCode int
	header     http.Header
	body       []byte
}

// get performs the GET request. Non-200 statuses are logged, not treated as errors.
func (c *Client) get(ctx context.Context, params domain.SearchParams) (*rawResponse, error) {
	endpoint, err := c.endpointURL(params)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, wrapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, wrapTransportError(ctx, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().
			Str("url", endpoint).
			Int("status", resp.StatusCode).
			Msg("Airport search returned non-200 status")
	}

	return &rawResponse{
		url:        endpoint,
		statusCode: resp.StatusCode,
		header:     resp.Header,
		body:       body,
	}, nil
}

// endpointURL builds <base>/v1/airports/?q=&limit=&page=.
func (c *Client) endpointURL(params domain.SearchParams) (string, error) {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return "", fmt.Errorf("%w: %q has no scheme or host", domain.ErrInvalidURL, c.baseURL)
	}

	u := base.JoinPath(searchPath)
	q := url.Values{}
	q.Set("q", params.Query)
	q.Set("limit", strconv.Itoa(params.Limit))
	q.Set("page", strconv.Itoa(params.Page))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// Ensure Client implements domain.AirportSearcher at compile time.
var _ domain.AirportSearcher = (*Client)(nil)
