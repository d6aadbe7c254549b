package v1alpha1

import "errors"

// ErrInvalidMetricKind is returned when an unknown metric kind is configured.
var ErrInvalidMetricKind = errors.New("invalid metric kind")

// ErrInvalidLogLevel is returned when an unknown log level is configured.
var ErrInvalidLogLevel = errors.New("invalid log level")

// ErrInvalidBackendURL is returned when the backend URL is not an absolute http(s) URL.
var ErrInvalidBackendURL = errors.New("invalid backend URL")

// ErrNonPositiveDuration is returned when a duration that must be positive is zero or negative.
var ErrNonPositiveDuration = errors.New("duration must be positive")
