// Package chart draws metric samples as terminal line charts, one line per instance.
package chart

import (
	"strings"

	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/guptarohit/asciigraph"
)

const (
	// DefaultHeight is the number of plot rows.
	DefaultHeight = 10
	// DefaultWidth is the number of plot columns, excluding the axis.
	DefaultWidth = 60
	// AxisWidth is the room taken by the value labels left of the plot.
	AxisWidth = 12

	timeFormat = "15:04:05"
)

var palette = []asciigraph.AnsiColor{ //nolint:gochecknoglobals // fixed series palette
	asciigraph.Cyan,
	asciigraph.Magenta,
	asciigraph.Yellow,
	asciigraph.Green,
	asciigraph.Blue,
}

type options struct {
	height int
	width  int
}

// Option configures Render.
type Option func(*options)

// WithHeight sets the number of plot rows.
func WithHeight(height int) Option {
	return func(o *options) {
		if height > 0 {
			o.height = height
		}
	}
}

// WithWidth sets the number of plot columns.
func WithWidth(width int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
	}
}

// Render plots points grouped by instance with a caption naming the time window
// and the latest value of every instance. It returns "" when there are no points.
func Render(kind metrics.Kind, points []metrics.Point, opts ...Option) string {
	cfg := options{height: DefaultHeight, width: DefaultWidth}
	for _, opt := range opts {
		opt(&cfg)
	}

	series := metrics.GroupByInstance(points)
	if len(series) == 0 {
		return ""
	}

	data := make([][]float64, 0, len(series))
	colors := make([]asciigraph.AnsiColor, 0, len(series))

	for idx, s := range series {
		data = append(data, s.Values())
		colors = append(colors, palette[idx%len(palette)])
	}

	return asciigraph.PlotMany(
		data,
		asciigraph.Height(cfg.height),
		asciigraph.Width(cfg.width),
		asciigraph.SeriesColors(colors...),
		asciigraph.Caption(Caption(kind, series)),
	)
}

// Caption describes the time window of series and the latest value of each instance.
func Caption(kind metrics.Kind, series []metrics.Series) string {
	if len(series) == 0 || len(series[0].Points) == 0 {
		return ""
	}

	first := series[0].Points[0].Time()
	last := first

	latest := make([]string, 0, len(series))

	for _, s := range series {
		if len(s.Points) > 0 && s.Points[0].Time().Before(first) {
			first = s.Points[0].Time()
		}

		point, ok := s.Latest()
		if !ok {
			continue
		}

		if point.Time().After(last) {
			last = point.Time()
		}

		latest = append(latest, InstanceName(s.Instance)+" "+kind.Format(point.Value))
	}

	return first.Format(timeFormat) + " → " + last.Format(timeFormat) + "  " + strings.Join(latest, ", ")
}

// InstanceName labels a series. Samples without an instance are shown as "unknown".
func InstanceName(instance string) string {
	if instance == "" {
		return "unknown"
	}

	return instance
}
