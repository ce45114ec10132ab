package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/flight-alert/flight-alert-service/internal/adapter/http/response"
	"github.com/flight-alert/flight-alert-service/internal/domain"
	"github.com/flight-alert/flight-alert-service/internal/infrastructure/logger"
	"github.com/flight-alert/flight-alert-service/internal/usecase/locationsearch"
)

// Messages of the session and alert endpoints.
const (
	MsgSessionNotFound     = "Search session not found"
	MsgAlertNotFound       = "Price alert not found"
	MsgAirportNotInResults = "Airport is not in the current results"
	MsgIncompleteSelection = "Select both an origin and a destination airport first"
)

// AlertService manages price alerts.
type AlertService interface {
	List(ctx context.Context, minDropPercent float64) ([]domain.PriceAlert, error)
	Create(ctx context.Context, origin, destination domain.Airport) (domain.PriceAlert, error)
	Get(ctx context.Context, id string) (domain.PriceAlert, error)
	Delete(ctx context.Context, id string) error
}

// Handler handles HTTP requests for airport, session, and alert endpoints.
type Handler struct {
	searcher       domain.AirportSearcher
	sessions       *SessionRegistry
	alerts         AlertService
	minDropPercent float64
	log            *logger.Logger
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMinDropPercent sets the default threshold of the alert list.
func WithMinDropPercent(p float64) HandlerOption {
	return func(h *Handler) {
		h.minDropPercent = p
	}
}

// WithHandlerLogger sets the logger.
func WithHandlerLogger(log *logger.Logger) HandlerOption {
	return func(h *Handler) {
		h.log = logger.OrNop(log).WithComponent("handler")
	}
}

// NewHandler creates a new Handler.
func NewHandler(searcher domain.AirportSearcher, sessions *SessionRegistry, alerts AlertService, opts ...HandlerOption) *Handler {
	h := &Handler{
		searcher:       searcher,
		sessions:       sessions,
		alerts:         alerts,
		minDropPercent: domain.DefaultMinDropPercent,
		log:            logger.Nop(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Health handles GET /health
// Simple health check endpoint.
func (h *Handler) Health(c echo.Context) error {
	return response.Health(c)
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *Handler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	var fieldErr *domain.ValidationError
	if errors.As(err, &fieldErr) {
		return response.ValidationError(c, map[string]string{fieldErr.Field: fieldErr.Message})
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	// Upstream timeout
	if domain.IsTimeout(err) {
		return response.GatewayTimeoutWithMessage(c, locationsearch.ErrorMessage(err))
	}

	// Other upstream failures carry the same message a session would show
	if _, ok := domain.AsNetworkError(err); ok {
		return response.BadGateway(c, locationsearch.ErrorMessage(err))
	}
	if errors.Is(err, domain.ErrDecoding) || errors.Is(err, domain.ErrInvalidURL) {
		return response.BadGateway(c, locationsearch.ErrorMessage(err))
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return response.GatewayTimeout(c)
	}
	if errors.Is(err, context.Canceled) {
		return response.RequestCancelled(c)
	}

	if errors.Is(err, domain.ErrInvalidRequest) {
		return h.handleValidationError(c, err)
	}

	if errors.Is(err, domain.ErrSessionNotFound) || errors.Is(err, locationsearch.ErrClosed) {
		return response.NotFound(c, MsgSessionNotFound)
	}
	if errors.Is(err, domain.ErrAlertNotFound) {
		return response.NotFound(c, MsgAlertNotFound)
	}
	if errors.Is(err, domain.ErrIncompleteSelection) {
		return response.Conflict(c, MsgIncompleteSelection)
	}

	h.log.Error().
		Err(err).
		Str("path", c.Path()).
		Msg("Unhandled error")
	return response.InternalServerError(c)
}
