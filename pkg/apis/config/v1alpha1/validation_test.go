package v1alpha1_test

import (
	"testing"
	"time"

	v1alpha1 "github.com/devantler-tech/kubeassist/pkg/apis/config/v1alpha1"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	t.Parallel()

	cfg := v1alpha1.NewConfig()

	assert.Equal(t, v1alpha1.APIVersion, cfg.APIVersion)
	assert.Equal(t, v1alpha1.Kind, cfg.Kind)
	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, 30*time.Second, cfg.Backend.Timeout.Duration)
	assert.Equal(t, "Hello! How can I help you with Kubernetes today?", cfg.Chat.Greeting)
	assert.Equal(t, 10*time.Second, cfg.Metrics.Interval.Duration)
	assert.Equal(t, v1alpha1.MetricKindCPU, cfg.Metrics.DefaultKind)
	assert.Equal(t, 4*time.Second, cfg.UI.NotificationDuration.Duration)
	assert.Equal(t, v1alpha1.LogLevelWarn, cfg.Log.Level)
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*v1alpha1.Config)
		wantErr error
	}{
		{
			name:    "relative url",
			mutate:  func(c *v1alpha1.Config) { c.Backend.URL = "localhost:8000" },
			wantErr: v1alpha1.ErrInvalidBackendURL,
		},
		{
			name:    "unsupported scheme",
			mutate:  func(c *v1alpha1.Config) { c.Backend.URL = "ftp://example.com" },
			wantErr: v1alpha1.ErrInvalidBackendURL,
		},
		{
			name:    "zero interval",
			mutate:  func(c *v1alpha1.Config) { c.Metrics.Interval.Duration = 0 },
			wantErr: v1alpha1.ErrNonPositiveDuration,
		},
		{
			name:    "negative timeout",
			mutate:  func(c *v1alpha1.Config) { c.Backend.Timeout.Duration = -time.Second },
			wantErr: v1alpha1.ErrNonPositiveDuration,
		},
		{
			name:    "unknown metric",
			mutate:  func(c *v1alpha1.Config) { c.Metrics.DefaultKind = "gpu" },
			wantErr: v1alpha1.ErrInvalidMetricKind,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *v1alpha1.Config) { c.Log.Level = "verbose" },
			wantErr: v1alpha1.ErrInvalidLogLevel,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := v1alpha1.NewConfig()
			testCase.mutate(cfg)

			require.ErrorIs(t, cfg.Validate(), testCase.wantErr)
		})
	}
}
