package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// NewConfig creates a Config populated with default values.
func NewConfig() *Config {
	return &Config{
		TypeMeta: metav1.TypeMeta{
			Kind:       Kind,
			APIVersion: APIVersion,
		},
		Backend: NewBackendSpec(),
		Chat:    ChatSpec{Greeting: DefaultGreeting},
		Metrics: NewMetricsSpec(),
		UI: UISpec{
			NotificationDuration: metav1.Duration{Duration: DefaultNotificationDuration},
		},
		Log: LogSpec{Level: DefaultLogLevel},
	}
}

// NewBackendSpec creates a BackendSpec with default values.
func NewBackendSpec() BackendSpec {
	return BackendSpec{
		URL:     DefaultBackendURL,
		Timeout: metav1.Duration{Duration: DefaultBackendTimeout},
	}
}

// NewMetricsSpec creates a MetricsSpec with default values.
func NewMetricsSpec() MetricsSpec {
	return MetricsSpec{
		Interval:    metav1.Duration{Duration: DefaultMetricsInterval},
		DefaultKind: DefaultMetricKind,
	}
}
