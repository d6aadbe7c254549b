package v1alpha1

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"
)

// Validate reports every problem with the configuration joined into one error.
func (c *Config) Validate() error {
	var errs []error

	parsed, err := url.Parse(c.Backend.URL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidBackendURL, c.Backend.URL))
	}

	errs = append(errs,
		positive("backend.timeout", c.Backend.Timeout.Duration),
		positive("metrics.interval", c.Metrics.Interval.Duration),
		positive("ui.notificationDuration", c.UI.NotificationDuration.Duration),
	)

	if !slices.Contains(c.Metrics.DefaultKind.ValidValues(), string(c.Metrics.DefaultKind)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidMetricKind, c.Metrics.DefaultKind))
	}

	if !slices.Contains(c.Log.Level.ValidValues(), string(c.Log.Level)) {
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Log.Level))
	}

	return errors.Join(errs...)
}

func positive(field string, d time.Duration) error {
	if d > 0 {
		return nil
	}

	return fmt.Errorf("%s: %w (got %s)", field, ErrNonPositiveDuration, d)
}
