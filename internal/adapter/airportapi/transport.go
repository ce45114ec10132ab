package airportapi

import (
	"context"
	"errors"
	"net"
	"syscall"

	"github.com/flight-alert/flight-alert-service/internal/domain"
)

// classifyTransportError maps a transport failure to a messaging reason.
func classifyTransportError(err error) domain.NetworkReason {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return domain.ReasonTimedOut
	}

	if errors.Is(err, syscall.ENETUNREACH) || errors.Is(err, syscall.ENETDOWN) {
		return domain.ReasonNotConnected
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return domain.ReasonCannotConnect
	}
	if errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.EHOSTUNREACH) {
		return domain.ReasonCannotConnect
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return domain.ReasonCannotConnect
	}

	return domain.ReasonOther
}

// wrapTransportError converts a transport failure into a domain.NetworkError.
// Cancellation by the caller is returned unchanged.
func wrapTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		return ctx.Err()
	}
	return domain.NewNetworkError(classifyTransportError(err), err)
}
