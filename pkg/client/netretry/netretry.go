// Package netretry decides which backend errors are transient and retries them with
// exponential backoff. It is used only to wait for a backend that is still starting.
package netretry

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"strings"
	"syscall"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/client/backend"
)

// IsRetryable reports whether err is a transient network or server error.
// Context cancellation is never retryable.
func IsRetryable(err error) bool {
	if err == nil || errors.Is(err, context.Canceled) {
		return false
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Temporary()
	}

	if errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrUnexpectedEOF) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return true
	}

	errMsg := err.Error()

	for _, pattern := range []string{
		"connection reset by peer", "connection refused",
		"i/o timeout", "TLS handshake timeout", "unexpected EOF",
	} {
		if strings.Contains(errMsg, pattern) {
			return true
		}
	}

	return false
}

// ExponentialDelay returns min(baseWait * 2^(attempt-1), maxWait) for attempt >= 1.
func ExponentialDelay(attempt int, baseWait, maxWait time.Duration) time.Duration {
	if attempt < 1 {
		attempt = 1
	}

	const maxShift = 30
	if attempt-1 > maxShift {
		return maxWait
	}

	return min(baseWait*time.Duration(1<<(attempt-1)), maxWait)
}

// Policy bounds a retry loop.
type Policy struct {
	BaseWait time.Duration
	MaxWait  time.Duration
	// OnRetry is called before each wait with the attempt that failed.
	OnRetry func(attempt int, err error, wait time.Duration)
}

// Do calls fn until it succeeds, returns a non-retryable error, or ctx is done.
// When ctx expires, the last error from fn is returned wrapped with the context error.
func Do(ctx context.Context, policy Policy, fn func(context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if !IsRetryable(err) {
			return err
		}

		wait := ExponentialDelay(attempt, policy.BaseWait, policy.MaxWait)
		if policy.OnRetry != nil {
			policy.OnRetry(attempt, err, wait)
		}

		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()

			return fmt.Errorf("%w: %w", ctx.Err(), err)
		case <-timer.C:
		}
	}
}
