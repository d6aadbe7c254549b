package v1alpha1

import (
	"fmt"
	"slices"
	"strings"
)

// --- Enum Interface ---

// EnumValuer is implemented by string-based enum types to provide their valid values.
// The schema generator uses this interface to discover enum constraints.
type EnumValuer interface {
	// ValidValues returns all valid string values for this enum type.
	ValidValues() []string
}

// --- Metric Kind ---

// MetricKind selects the time series shown by default.
type MetricKind string

const (
	// MetricKindCPU is CPU utilisation in percent.
	MetricKindCPU MetricKind = "cpu"
	// MetricKindMemory is memory utilisation in percent.
	MetricKindMemory MetricKind = "memory"
	// MetricKindDisk is filesystem utilisation in percent.
	MetricKindDisk MetricKind = "disk"
	// MetricKindNetRX is received bytes per second.
	MetricKindNetRX MetricKind = "net_rx"
	// MetricKindNetTX is transmitted bytes per second.
	MetricKindNetTX MetricKind = "net_tx"
)

// ValidValues returns all valid metric kinds.
func (m *MetricKind) ValidValues() []string {
	return []string{
		string(MetricKindCPU),
		string(MetricKindMemory),
		string(MetricKindDisk),
		string(MetricKindNetRX),
		string(MetricKindNetTX),
	}
}

// Set implements pflag.Value.
func (m *MetricKind) Set(value string) error {
	return setEnum(m, value, ErrInvalidMetricKind)
}

// String implements pflag.Value.
func (m *MetricKind) String() string { return string(*m) }

// Type implements pflag.Value.
func (m *MetricKind) Type() string { return "MetricKind" }

// --- Log Level ---

// LogLevel is the minimum severity written to the log.
type LogLevel string

const (
	// LogLevelDebug logs every backend request.
	LogLevelDebug LogLevel = "debug"
	// LogLevelInfo logs lifecycle events.
	LogLevelInfo LogLevel = "info"
	// LogLevelWarn logs recoverable problems.
	LogLevelWarn LogLevel = "warn"
	// LogLevelError logs failures only.
	LogLevelError LogLevel = "error"
)

// ValidValues returns all valid log levels.
func (l *LogLevel) ValidValues() []string {
	return []string{
		string(LogLevelDebug),
		string(LogLevelInfo),
		string(LogLevelWarn),
		string(LogLevelError),
	}
}

// Set implements pflag.Value.
func (l *LogLevel) Set(value string) error {
	return setEnum(l, value, ErrInvalidLogLevel)
}

// String implements pflag.Value.
func (l *LogLevel) String() string { return string(*l) }

// Type implements pflag.Value.
func (l *LogLevel) Type() string { return "LogLevel" }

type stringEnum interface {
	~string
}

type enumPointer[T stringEnum] interface {
	*T
	EnumValuer
}

func setEnum[T stringEnum, P enumPointer[T]](target P, value string, sentinel error) error {
	valid := target.ValidValues()

	idx := slices.IndexFunc(valid, func(v string) bool {
		return strings.EqualFold(v, value)
	})
	if idx < 0 {
		return fmt.Errorf("%w: %s (valid options: %s)", sentinel, value, strings.Join(valid, ", "))
	}

	*target = T(valid[idx])

	return nil
}
