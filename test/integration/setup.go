// Package integration provides helpers and integration tests for the flight alert service.
// Integration tests run the full HTTP stack against a mock upstream airport API,
// including the real search client, the search cache, and search sessions.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-alert/flight-alert-service/internal/adapter/airportapi"
	"github.com/flight-alert/flight-alert-service/internal/adapter/cache"
	httpAdapter "github.com/flight-alert/flight-alert-service/internal/adapter/http"
	"github.com/flight-alert/flight-alert-service/internal/adapter/http/middleware"
	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
	"github.com/flight-alert/flight-alert-service/internal/usecase/alert"
	"github.com/flight-alert/flight-alert-service/internal/usecase/locationsearch"
	"github.com/flight-alert/flight-alert-service/test/mock"
	"github.com/flight-alert/flight-alert-service/test/testutil"
)

// Default timings of the test server. The debounce is short so tests run
// quickly but long enough to coalesce back-to-back requests.
const (
	testDebounce        = 50 * time.Millisecond
	testUpstreamTimeout = 500 * time.Millisecond
	settleTimeout       = 2 * time.Second
)

// ServerOptions configures a TestServer.
type ServerOptions struct {
	// Cache enables the search cache with an in-memory store
	Cache bool

	// Debounce overrides testDebounce
	Debounce time.Duration

	// UpstreamTimeout overrides testUpstreamTimeout
	UpstreamTimeout time.Duration
}

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo     *echo.Echo
	Upstream *mock.AirportAPI
	Sessions *httpAdapter.SessionRegistry
	Cache    *testutil.MemoryCache
}

// NewTestServer creates a test server backed by upstream. The upstream is
// started here and stopped on test cleanup.
func NewTestServer(t *testing.T, upstream *mock.AirportAPI, opts ServerOptions) *TestServer {
	t.Helper()

	if opts.Debounce == 0 {
		opts.Debounce = testDebounce
	}
	if opts.UpstreamTimeout == 0 {
		opts.UpstreamTimeout = testUpstreamTimeout
	}

	baseURL := upstream.Start()
	t.Cleanup(upstream.Close)

	log := logger.Nop()

	var searcher domain.AirportSearcher = airportapi.NewClient(airportapi.Config{
		BaseURL: baseURL,
		Timeout: opts.UpstreamTimeout,
	}, airportapi.WithLogger(log))

	ts := &TestServer{Upstream: upstream}
	if opts.Cache {
		ts.Cache = testutil.NewMemoryCache()
		searcher = cache.NewSearcher(searcher, ts.Cache, time.Minute, log)
	}

	searchConfig := &locationsearch.Config{Debounce: opts.Debounce}
	ts.Sessions = httpAdapter.NewSessionRegistry(func(sessionID string) *locationsearch.Controller {
		return locationsearch.NewController(searcher, searchConfig, locationsearch.WithLogger(log.WithSession(sessionID)))
	}, log)
	t.Cleanup(ts.Sessions.CloseAll)

	alerts := alert.NewService(alert.WithLogger(log))
	handler := httpAdapter.NewHandler(searcher, ts.Sessions, alerts, httpAdapter.WithHandlerLogger(log))

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	middleware.Setup(e, log)
	httpAdapter.RegisterRoutes(e, handler)

	ts.Echo = e
	return ts
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchAirports calls GET /api/v1/airports with the raw query string.
func (ts *TestServer) SearchAirports(rawQuery string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/airports?" + rawQuery})
}

// CreateSession starts a session and returns its id.
func (ts *TestServer) CreateSession(t *testing.T) string {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/sessions"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create session: status %d: %s", resp.Code, resp.Body)
	}
	return Decode[httpAdapter.SessionResponse](t, resp).ID
}

// Type sends new text for a session field.
func (ts *TestServer) Type(t *testing.T, sessionID, field, text string) {
	t.Helper()
	resp := ts.Do(Request{
		Method: http.MethodPut,
		Path:   "/api/v1/sessions/" + sessionID + "/fields/" + field,
		Body:   httpAdapter.UpdateTextRequest{Text: text},
	})
	if resp.Code != http.StatusAccepted {
		t.Fatalf("type into %s: status %d: %s", field, resp.Code, resp.Body)
	}
}

// Session fetches the state of a session.
func (ts *TestServer) Session(t *testing.T, sessionID string) httpAdapter.SessionStateDTO {
	t.Helper()
	resp := ts.Do(Request{Method: http.MethodGet, Path: "/api/v1/sessions/" + sessionID})
	if resp.Code != http.StatusOK {
		t.Fatalf("get session: status %d: %s", resp.Code, resp.Body)
	}
	return Decode[httpAdapter.SessionResponse](t, resp).State
}

// WaitSettled polls the session until it is not loading and cond holds.
func (ts *TestServer) WaitSettled(t *testing.T, sessionID string, cond func(httpAdapter.SessionStateDTO) bool) httpAdapter.SessionStateDTO {
	t.Helper()
	var state httpAdapter.SessionStateDTO
	testutil.Eventually(t, settleTimeout, func() bool {
		state = ts.Session(t, sessionID)
		return !state.IsLoading && cond(state)
	}, "session "+sessionID+" did not settle")
	return state
}

// Decode parses the response body as T.
func Decode[T any](t *testing.T, r Response) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(r.Body, &v); err != nil {
		t.Fatalf("decode %T: %v: %s", v, err, r.Body)
	}
	return v
}

// HasResults reports whether the state holds at least one result.
func HasResults(s httpAdapter.SessionStateDTO) bool {
	return len(s.Results) > 0
}
