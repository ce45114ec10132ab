package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-alert/flight-alert-service/internal/adapter/http/response"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.NewWithOutput(logger.Config{Level: "debug", Format: "json", ServiceName: "test"}, buf)
}

// =====================================================
// Request ID Middleware Tests
// =====================================================

func TestRequestID_GeneratesNewID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)

	// Check response header contains request ID
	reqID := rec.Header().Get(RequestIDHeader)
	assert.NotEmpty(t, reqID, "should generate request ID")
	assert.Len(t, reqID, 36, "should be UUID format (36 chars)")

	// Check context has the same request ID
	ctxID := GetRequestID(c)
	assert.Equal(t, reqID, ctxID, "context ID should match header ID")
}

func TestRequestID_PropagatesExistingID(t *testing.T) {
	e := echo.New()
	existingID := "existing-request-id-12345"

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, existingID)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequestID()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)

	// Check response header contains the original ID
	respID := rec.Header().Get(RequestIDHeader)
	assert.Equal(t, existingID, respID, "should propagate existing request ID")

	// Check context has the same ID
	ctxID := GetRequestID(c)
	assert.Equal(t, existingID, ctxID)
}

func TestGetRequestID_ReturnsEmptyWhenNotSet(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Don't run middleware, just check GetRequestID
	reqID := GetRequestID(c)
	assert.Empty(t, reqID, "should return empty string when not set")
}

// =====================================================
// Request Logging Middleware Tests
// =====================================================

func TestRequestLogger_LogsRequestDetails(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/test?foo=bar", nil)
	req.Header.Set("User-Agent", "TestAgent/1.0")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	// Set request ID first (simulating middleware chain)
	c.Set("request_id", "test-req-id-123")

	handler := RequestLogger(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	err := handler(c)
	require.NoError(t, err)

	// Parse log output
	logOutput := logBuf.String()
	assert.NotEmpty(t, logOutput)

	var logEntry map[string]interface{}
	err = json.Unmarshal([]byte(logOutput), &logEntry)
	require.NoError(t, err, "log output should be valid JSON")

	// Verify logged fields
	assert.Equal(t, "test-req-id-123", logEntry["request_id"])
	assert.Equal(t, "POST", logEntry["method"])
	assert.Equal(t, "/api/v1/test", logEntry["path"])
	assert.Equal(t, "foo=bar", logEntry["query"])
	assert.Equal(t, float64(200), logEntry["status"])
	assert.Contains(t, logEntry, "duration_ms")
	assert.Equal(t, "TestAgent/1.0", logEntry["user_agent"])
	assert.Equal(t, "HTTP request", logEntry["message"])
}
func TestRequestLogger_LevelByStatus(t *testing.T) {
	tests := []struct {
		name          string
		method        string
		path          string
		handler       echo.HandlerFunc
		expectedCode  int
		expectedLevel string
		expectedID    string
	}{
		{
			name:   "accepted keystroke",
			method: http.MethodPut,
			path:   "/api/v1/sessions/sess-1/fields/origin",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusAccepted)
			},
			expectedCode:  http.StatusAccepted,
			expectedLevel: "info",
			expectedID:    "sess-1",
		},
		{
			name:   "unknown session",
			method: http.MethodGet,
			path:   "/api/v1/sessions/gone",
			handler: func(c echo.Context) error {
				return response.NotFound(c, "Search session not found")
			},
			expectedCode:  http.StatusNotFound,
			expectedLevel: "warn",
			expectedID:    "gone",
		},
		{
			name:   "incomplete selection via echo error",
			method: http.MethodPost,
			path:   "/api/v1/sessions/sess-2/alerts",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusConflict, "select both airports")
			},
			expectedCode:  http.StatusConflict,
			expectedLevel: "warn",
			expectedID:    "sess-2",
		},
		{
			name:   "upstream down",
			method: http.MethodGet,
			path:   "/api/v1/airports",
			handler: func(c echo.Context) error {
				return response.BadGateway(c, "Cannot connect to server. Please try again later.")
			},
			expectedCode:  http.StatusBadGateway,
			expectedLevel: "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			e.Use(RequestLogger(newTestLogger(&logBuf)))
			e.Add(tt.method, "/api/v1/airports", tt.handler)
			e.Add(tt.method, "/api/v1/sessions/:id", tt.handler)
			e.Add(tt.method, "/api/v1/sessions/:id/fields/:field", tt.handler)
			e.Add(tt.method, "/api/v1/sessions/:id/alerts", tt.handler)

			req := httptest.NewRequest(tt.method, tt.path, nil)
			req.Header.Set("X-Real-IP", "10.0.0.7")
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			var logEntry map[string]interface{}
			require.NoError(t, json.Unmarshal(logBuf.Bytes(), &logEntry))
			assert.Equal(t, float64(tt.expectedCode), logEntry["status"])
			assert.Equal(t, tt.expectedLevel, logEntry["level"])
			assert.Equal(t, "10.0.0.7", logEntry["client_ip"])
			assert.GreaterOrEqual(t, logEntry["duration_ms"], float64(0))
			if tt.expectedID == "" {
				assert.NotContains(t, logEntry, "session_id")
			} else {
				assert.Equal(t, tt.expectedID, logEntry["session_id"])
			}
		})
	}
}

// =====================================================
// Recovery Middleware Tests
// =====================================================

func TestRecover_WritesGenericErrorDetail(t *testing.T) {
	tests := []struct {
		name    string
		handler echo.HandlerFunc
	}{
		{
			name: "string panic",
			handler: func(c echo.Context) error {
				panic("session sess-9: nil controller")
			},
		},
		{
			name: "runtime error",
			handler: func(c echo.Context) error {
				var results []string
				_ = results[3]
				return nil
			},
		},
		{
			name: "error value",
			handler: func(c echo.Context) error {
				panic(fmt.Errorf("decode airport %q: %w", "JFK", errors.New("boom")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-9/selection", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			handler := Recover(newTestLogger(&logBuf))(tt.handler)
			assert.NotPanics(t, func() {
				_ = handler(c)
			})

			assert.Equal(t, http.StatusInternalServerError, rec.Code)

			var body response.ErrorDetail
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, response.CodeInternalError, body.Code)
			assert.Equal(t, response.MsgInternalError, body.Message)
			assert.Empty(t, body.Details)
			assert.NotContains(t, rec.Body.String(), "sess-9")
			assert.NotContains(t, rec.Body.String(), "JFK")
			assert.NotEmpty(t, logBuf.String())
		})
	}
}

func TestRecover_KeepsCommittedResponse(t *testing.T) {
	var logBuf bytes.Buffer
	e := echo.New()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/sessions/sess-3/fields/origin", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recover(newTestLogger(&logBuf))(func(c echo.Context) error {
		if err := c.NoContent(http.StatusAccepted); err != nil {
			return err
		}
		panic("late panic")
	})

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Contains(t, logBuf.String(), "late panic")
}

func TestRecover_LogsPanicWithStackTrace(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	c.Set("request_id", "stack-test-id")

	handler := Recover(log)(func(c echo.Context) error {
		panic("stack trace test panic")
	})

	_ = handler(c)

	var logEntry map[string]interface{}
	err := json.Unmarshal(logBuf.Bytes(), &logEntry)
	require.NoError(t, err)

	assert.Equal(t, "error", logEntry["level"])
	assert.Equal(t, "stack-test-id", logEntry["request_id"])
	assert.Equal(t, "stack trace test panic", logEntry["panic"])
	assert.Contains(t, logEntry, "stack")
	stack, ok := logEntry["stack"].(string)
	assert.True(t, ok)
	assert.True(t, strings.Contains(stack, "goroutine"), "stack should contain goroutine info")
	assert.Equal(t, "Panic recovered", logEntry["message"])
}

func TestRecover_PassesThroughNormalRequests(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/normal", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Recover(log)(func(c echo.Context) error {
		return c.String(http.StatusOK, "normal response")
	})

	err := handler(c)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "normal response", rec.Body.String())
	assert.Empty(t, logBuf.String(), "should not log anything for normal requests")
}

func TestRecoverWithConfig_DisableStackPrint(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	config := RecoveryConfig{
		DisablePrintStack: true,
	}

	handler := RecoverWithConfig(log, config)(func(c echo.Context) error {
		panic("no stack test")
	})

	_ = handler(c)

	var logEntry map[string]interface{}
	err := json.Unmarshal(logBuf.Bytes(), &logEntry)
	require.NoError(t, err)

	assert.NotContains(t, logEntry, "stack", "stack should not be logged when disabled")
}

// =====================================================
// Integration Tests - Middleware Chain
// =====================================================

func TestMiddlewareChain_IntegrationOrder(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()

	// Apply middleware in correct order
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	// Verify log contains request ID
	var logEntry map[string]interface{}
	err := json.Unmarshal(logBuf.Bytes(), &logEntry)
	require.NoError(t, err)
	assert.NotEmpty(t, logEntry["request_id"])
}

func TestMiddlewareChain_PanicRecoveryWithLogging(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()

	e.Use(RequestID())
	e.Use(RequestLogger(log))
	e.Use(Recover(log))

	e.GET("/panic", func(c echo.Context) error {
		panic("integration test panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	// Should not panic
	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))
}

// =====================================================
// Setup Helper Tests
// =====================================================

func TestSetup_AppliesAllMiddleware(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	Setup(e, log)

	e.GET("/test", func(c echo.Context) error {
		return c.String(http.StatusOK, "setup test")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader), "RequestID middleware should set header")
	assert.NotEmpty(t, logBuf.String(), "RequestLogger middleware should log")
}

func TestSetup_RecoversPanic(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	Setup(e, log)

	e.GET("/panic", func(c echo.Context) error {
		panic("setup panic test")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		e.ServeHTTP(rec, req)
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestSetupWithConfig_AppliesCustomConfig(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	config := RecoveryConfig{DisablePrintStack: true}
	SetupWithConfig(e, log, config)

	e.GET("/panic", func(c echo.Context) error {
		panic("config panic test")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	// Parse log output - there may be multiple JSON entries, find the panic one
	logLines := strings.Split(strings.TrimSpace(logBuf.String()), "\n")
	var panicLogEntry map[string]interface{}
	for _, line := range logLines {
		var entry map[string]interface{}
		if err := json.Unmarshal([]byte(line), &entry); err == nil {
			if msg, ok := entry["message"].(string); ok && msg == "Panic recovered" {
				panicLogEntry = entry
				break
			}
		}
	}
	require.NotNil(t, panicLogEntry, "should have panic log entry")
	assert.NotContains(t, panicLogEntry, "stack", "stack should be disabled via config")
}

func TestRequestID_StoresIDInRequestContext(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(RequestIDHeader, "ctx-request-id")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var fromCtx string
	handler := RequestID()(func(c echo.Context) error {
		fromCtx = RequestIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, handler(c))
	assert.Equal(t, "ctx-request-id", fromCtx)
	assert.Empty(t, RequestIDFromContext(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRequestLogger_LogsSessionID(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	e.Use(RequestLogger(log))
	e.GET("/api/v1/sessions/:id", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sessions/abc-123", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &logEntry))

	assert.Equal(t, "abc-123", logEntry["session_id"])
	assert.Equal(t, "/api/v1/sessions/:id", logEntry["route"])
	assert.Equal(t, "test", logEntry["service"])
}

func TestSetup_TagsHTTPComponent(t *testing.T) {
	var logBuf bytes.Buffer
	log := newTestLogger(&logBuf)

	e := echo.New()
	Setup(e, log)
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &logEntry))
	assert.Equal(t, "http", logEntry["component"])
	assert.NotContains(t, logEntry, "session_id")
}
