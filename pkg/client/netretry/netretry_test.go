package netretry_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"syscall"
	"testing"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/devantler-tech/kubeassist/pkg/client/netretry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	errGeneric     = errors.New("something went wrong")
	errConnReset   = errors.New("read tcp 10.1.0.115:37414->10.0.0.1:8000: read: connection reset by peer")
	errIOTimeout   = errors.New("net/http: request canceled (Client.Timeout exceeded): i/o timeout")
	errTLSTimeout  = errors.New("net/http: TLS handshake timeout")
	errPortInValue = errors.New("connect to :5000")
)

func TestIsRetryable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "generic", err: errGeneric, want: false},
		{name: "port number is not a status", err: errPortInValue, want: false},
		{name: "connection reset text", err: errConnReset, want: true},
		{name: "io timeout text", err: errIOTimeout, want: true},
		{name: "tls timeout text", err: errTLSTimeout, want: true},
		{name: "connection refused", err: fmt.Errorf("GET /: %w", syscall.ECONNREFUSED), want: true},
		{name: "unexpected eof", err: fmt.Errorf("decode: %w", io.ErrUnexpectedEOF), want: true},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "backend"}, want: true},
		{name: "canceled", err: fmt.Errorf("GET /: %w", context.Canceled), want: false},
		{
			name: "server error",
			err:  &backend.APIError{Method: "GET", Path: "/", StatusCode: 503},
			want: true,
		},
		{
			name: "too many requests",
			err:  &backend.APIError{Method: "GET", Path: "/", StatusCode: 429},
			want: true,
		},
		{
			name: "client error",
			err:  &backend.APIError{Method: "GET", Path: "/", StatusCode: 404},
			want: false,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, testCase.want, netretry.IsRetryable(testCase.err))
		})
	}
}

func TestExponentialDelay(t *testing.T) {
	t.Parallel()

	base, limit := 100*time.Millisecond, time.Second

	assert.Equal(t, 100*time.Millisecond, netretry.ExponentialDelay(0, base, limit))
	assert.Equal(t, 100*time.Millisecond, netretry.ExponentialDelay(1, base, limit))
	assert.Equal(t, 200*time.Millisecond, netretry.ExponentialDelay(2, base, limit))
	assert.Equal(t, 800*time.Millisecond, netretry.ExponentialDelay(4, base, limit))
	assert.Equal(t, time.Second, netretry.ExponentialDelay(5, base, limit))
	assert.Equal(t, time.Second, netretry.ExponentialDelay(64, base, limit))
}

func TestDo_RetriesUntilSuccess(t *testing.T) {
	t.Parallel()

	var attempts []int

	calls := 0
	err := netretry.Do(context.Background(), netretry.Policy{
		BaseWait: time.Millisecond,
		MaxWait:  2 * time.Millisecond,
		OnRetry: func(attempt int, _ error, _ time.Duration) {
			attempts = append(attempts, attempt)
		},
	}, func(context.Context) error {
		calls++
		if calls < 3 {
			return syscall.ECONNREFUSED
		}

		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Equal(t, []int{1, 2}, attempts)
}

func TestDo_StopsOnPermanentError(t *testing.T) {
	t.Parallel()

	calls := 0
	err := netretry.Do(context.Background(), netretry.Policy{BaseWait: time.Millisecond, MaxWait: time.Millisecond},
		func(context.Context) error {
			calls++

			return errGeneric
		})

	require.ErrorIs(t, err, errGeneric)
	assert.Equal(t, 1, calls)
}

func TestDo_Deadline(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := netretry.Do(ctx, netretry.Policy{BaseWait: 5 * time.Millisecond, MaxWait: 5 * time.Millisecond},
		func(context.Context) error {
			return syscall.ECONNREFUSED
		})

	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, err, syscall.ECONNREFUSED)
}
