package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the airport search client.
var (
	// ErrInvalidURL means the search endpoint URL could not be built.
	ErrInvalidURL = errors.New("invalid url")

	// ErrDecoding means no known response shape matched the body.
	ErrDecoding = errors.New("failed to decode response")

	// ErrEncoding means the request body could not be encoded.
	ErrEncoding = errors.New("failed to encode request")

	// ErrNoData means the server returned no body at all.
	ErrNoData = errors.New("no data received")
)

// Sentinel errors returned by the service layers.
var (
	// ErrInvalidRequest indicates the caller supplied invalid input.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrSessionNotFound indicates the search session id is unknown or closed.
	ErrSessionNotFound = errors.New("search session not found")

	// ErrAlertNotFound indicates the price alert id is unknown.
	ErrAlertNotFound = errors.New("price alert not found")

	// ErrIncompleteSelection indicates an alert was requested before both airports were chosen.
	ErrIncompleteSelection = errors.New("origin and destination must both be selected")
)

// NetworkReason classifies a transport failure for messaging purposes.
type NetworkReason int

const (
	// ReasonOther covers every transport failure without a more specific reason.
	ReasonOther NetworkReason = iota
	// ReasonNotConnected means the device has no usable network.
	ReasonNotConnected
	// ReasonTimedOut means the request exceeded its deadline.
	ReasonTimedOut
	// ReasonCannotConnect means the host could not be resolved or refused the connection.
	ReasonCannotConnect
)

// String returns a short name of the reason.
func (r NetworkReason) String() string {
	switch r {
	case ReasonNotConnected:
		return "not_connected"
	case ReasonTimedOut:
		return "timed_out"
	case ReasonCannotConnect:
		return "cannot_connect"
	default:
		return "other"
	}
}

// NetworkError wraps a transport-level failure of an upstream call.
type NetworkError struct {
	Reason NetworkReason
	Err    error
}

// Error implements the error interface.
func (e *NetworkError) Error() string {
	if e.Err == nil {
		return "network error"
	}
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying transport error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError creates a NetworkError with the given reason.
func NewNetworkError(reason NetworkReason, err error) *NetworkError {
	return &NetworkError{Reason: reason, Err: err}
}

// ValidationError describes a single invalid input field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap lets errors.Is match ErrInvalidRequest.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidRequest
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// WrapInvalidRequest formats a message and wraps it with ErrInvalidRequest.
func WrapInvalidRequest(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalidRequest, fmt.Sprintf(format, args...))
}

// IsInvalidRequest reports whether err is or wraps ErrInvalidRequest.
func IsInvalidRequest(err error) bool {
	return errors.Is(err, ErrInvalidRequest)
}

// IsDecoding reports whether err is or wraps ErrDecoding.
func IsDecoding(err error) bool {
	return errors.Is(err, ErrDecoding)
}

// AsNetworkError returns the NetworkError in err's chain, if any.
func AsNetworkError(err error) (*NetworkError, bool) {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return netErr, true
	}
	return nil, false
}

// IsTimeout reports whether err is a network error caused by a timeout.
func IsTimeout(err error) bool {
	netErr, ok := AsNetworkError(err)
	return ok && netErr.Reason == ReasonTimedOut
}
