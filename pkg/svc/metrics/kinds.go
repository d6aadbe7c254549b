// Package metrics polls the backend for node metric time series.
package metrics

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Kind is a metric type understood by GET /metrics/time-series.
type Kind string

// Supported kinds, in display order.
const (
	CPU    Kind = "cpu"
	Memory Kind = "memory"
	Disk   Kind = "disk"
	NetRX  Kind = "net_rx"
	NetTX  Kind = "net_tx"
)

// ErrUnknownMetric is returned for an unsupported metric kind.
var ErrUnknownMetric = errors.New("unknown metric")

// Kinds returns every supported kind in display order.
func Kinds() []Kind {
	return []Kind{CPU, Memory, Disk, NetRX, NetTX}
}

// ParseKind validates a metric name.
func ParseKind(name string) (Kind, error) {
	kind := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}

	return kind, nil
}

// Valid reports whether k is supported.
func (k Kind) Valid() bool {
	return slices.Contains(Kinds(), k)
}

// Label is the chart title for k.
func (k Kind) Label() string {
	switch k {
	case CPU:
		return "CPU Usage"
	case Memory:
		return "Memory Usage"
	case Disk:
		return "Disk Usage"
	case NetRX:
		return "Network RX"
	case NetTX:
		return "Network TX"
	default:
		return string(k)
	}
}

// Throughput reports whether values are bytes per second rather than percentages.
func (k Kind) Throughput() bool {
	return k == NetRX || k == NetTX
}

// Next returns the kind after k, wrapping around.
func (k Kind) Next() Kind {
	return k.step(1)
}

// Prev returns the kind before k, wrapping around.
func (k Kind) Prev() Kind {
	return k.step(-1)
}

func (k Kind) step(delta int) Kind {
	kinds := Kinds()

	idx := slices.Index(kinds, k)
	if idx < 0 {
		return CPU
	}

	return kinds[(idx+delta+len(kinds))%len(kinds)]
}

// Point is one sample.
type Point struct {
	Timestamp int64   `json:"timestamp"`
	Instance  string  `json:"instance,omitempty"`
	Value     float64 `json:"value"`
}

// Time returns the sample time.
func (p Point) Time() time.Time {
	return time.Unix(p.Timestamp, 0)
}
