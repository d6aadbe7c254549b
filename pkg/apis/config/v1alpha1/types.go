package v1alpha1

import metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

const (
	// Group is the API group for kubeassist.
	Group = "kubeassist.io"
	// Version is the API version for kubeassist.
	Version = "v1alpha1"
	// Kind is the kind for the kubeassist client configuration.
	Kind = "Config"
	// APIVersion is the full API version for kubeassist.
	APIVersion = Group + "/" + Version
)

// --- Core Types ---

// Config is the client configuration read from kubeassist.yaml, the environment, and flags.
type Config struct {
	metav1.TypeMeta `json:",inline" mapstructure:",squash"`

	Backend BackendSpec `json:"backend,omitzero" mapstructure:"backend"`
	Chat    ChatSpec    `json:"chat,omitzero"    mapstructure:"chat"`
	Metrics MetricsSpec `json:"metrics,omitzero" mapstructure:"metrics"`
	UI      UISpec      `json:"ui,omitzero"      mapstructure:"ui"`
	Log     LogSpec     `json:"log,omitzero"     mapstructure:"log"`
}

// BackendSpec configures the assistant backend connection.
type BackendSpec struct {
	URL     string          `json:"url,omitzero"     mapstructure:"url"     jsonschema:"description=Base URL of the assistant backend"`       //nolint:lll
	Timeout metav1.Duration `json:"timeout,omitzero" mapstructure:"timeout" jsonschema:"description=Per-request timeout (e.g. 30s)"` //nolint:lll
}

// ChatSpec configures the conversation.
type ChatSpec struct {
	Greeting string `json:"greeting,omitzero" mapstructure:"greeting"`
}

// MetricsSpec configures the metrics poller.
type MetricsSpec struct {
	Interval    metav1.Duration `json:"interval,omitzero"    mapstructure:"interval"`
	DefaultKind MetricKind      `json:"defaultKind,omitzero" mapstructure:"defaultKind"`
}

// UISpec configures the terminal UI.
type UISpec struct {
	NotificationDuration metav1.Duration `json:"notificationDuration,omitzero" mapstructure:"notificationDuration"`
}

// LogSpec configures diagnostic logging.
type LogSpec struct {
	Level LogLevel `json:"level,omitzero" mapstructure:"level"`
	File  string   `json:"file,omitzero"  mapstructure:"file"  jsonschema:"description=Write logs to this file instead of stderr"` //nolint:lll
}
