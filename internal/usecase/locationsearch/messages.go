package locationsearch

import (
	"errors"

	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// User-facing messages shown when a search fails.
const (
	MessageNotConnected  = "No internet connection. Please check your network settings."
	MessageTimedOut      = "The request timed out. Please try again."
	MessageCannotConnect = "Cannot connect to server. Please try again later."
	MessageNetwork       = "Network connection error. Please check your internet connection."
	MessageDecoding      = "Server response format error. Please try again later."
	MessageInvalidURL    = "Invalid search request."
	MessageGeneric       = "Search failed. Please try again."
)

// ErrorMessage maps a search error to the message shown to the user.
func ErrorMessage(err error) string {
	if netErr, ok := domain.AsNetworkError(err); ok {
		switch netErr.Reason {
		case domain.ReasonNotConnected:
			return MessageNotConnected
		case domain.ReasonTimedOut:
			return MessageTimedOut
		case domain.ReasonCannotConnect:
			return MessageCannotConnect
		default:
			return MessageNetwork
		}
	}

	switch {
	case errors.Is(err, domain.ErrDecoding):
		return MessageDecoding
	case errors.Is(err, domain.ErrInvalidURL):
		return MessageInvalidURL
	default:
		return MessageGeneric
	}
}
