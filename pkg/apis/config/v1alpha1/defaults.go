package v1alpha1

import "time"

const (
	// DefaultBackendURL is where the assistant backend listens when run locally.
	DefaultBackendURL = "http://localhost:8000"
	// DefaultBackendTimeout bounds a single backend request.
	DefaultBackendTimeout = 30 * time.Second
	// DefaultGreeting is the assistant message every conversation starts with.
	DefaultGreeting = "Hello! How can I help you with Kubernetes today?"
	// DefaultMetricsInterval is the metrics polling period.
	DefaultMetricsInterval = 10 * time.Second
	// DefaultMetricKind is the series shown when the metrics panel opens.
	DefaultMetricKind = MetricKindCPU
	// DefaultNotificationDuration is how long a toast stays visible.
	DefaultNotificationDuration = 4 * time.Second
	// DefaultLogLevel keeps the CLI quiet unless something goes wrong.
	DefaultLogLevel = LogLevelWarn
	// DefaultConfigFileName is the file name searched for in the config paths.
	DefaultConfigFileName = "kubeassist.yaml"
	// EnvPrefix prefixes every environment variable override.
	EnvPrefix = "KUBEASSIST"
)
