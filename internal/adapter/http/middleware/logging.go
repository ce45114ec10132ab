package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
)

// sessionParam is the route parameter carrying a search session id.
const sessionParam = "id"

// RequestLogger returns middleware that logs HTTP requests.
// It logs on request completion with method, route, status, duration, and client info.
// Requests under /sessions/:id also carry the session id.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	log = logger.OrNop(log)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			duration := time.Since(start)
			req := c.Request()
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = log.Error()
			case status >= 400:
				event = log.Warn()
			default:
				event = log.Info()
			}

			event = event.
				Str("request_id", GetRequestID(c)).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent())

			if sessionID := sessionIDParam(c); sessionID != "" {
				event = event.Str("session_id", sessionID)
			}

			event.Msg("HTTP request")

			// The error was already handled via c.Error()
			return nil
		}
	}
}

func sessionIDParam(c echo.Context) string {
	for i, name := range c.ParamNames() {
		if name == sessionParam && i < len(c.ParamValues()) {
			return c.ParamValues()[i]
		}
	}
	return ""
}
