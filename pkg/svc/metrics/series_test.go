package metrics_test

import (
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByInstance(t *testing.T) {
	t.Parallel()

	points := []metrics.Point{
		{Timestamp: 20, Instance: "node-b", Value: 2},
		{Timestamp: 20, Instance: "node-a", Value: 20},
		{Timestamp: 10, Instance: "node-b", Value: 1},
		{Timestamp: 10, Instance: "node-a", Value: 10},
	}

	series := metrics.GroupByInstance(points)

	require.Len(t, series, 2)
	assert.Equal(t, "node-b", series[0].Instance)
	assert.Equal(t, []float64{1, 2}, series[0].Values())
	assert.Equal(t, "node-a", series[1].Instance)
	assert.Equal(t, []float64{10, 20}, series[1].Values())

	latest, ok := series[1].Latest()
	require.True(t, ok)
	assert.Equal(t, int64(20), latest.Timestamp)
}

func TestGroupByInstance_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, metrics.GroupByInstance(nil))

	_, ok := metrics.Series{}.Latest()
	assert.False(t, ok)
}

func TestKind_Format(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		kind  metrics.Kind
		value float64
		want  string
	}{
		{name: "cpu percent", kind: metrics.CPU, value: 12.3456, want: "12.35%"},
		{name: "memory percent", kind: metrics.Memory, value: 42.5, want: "42.5%"},
		{name: "receive throughput", kind: metrics.NetRX, value: 1536, want: "1.5 kB/s"},
		{name: "negative throughput clamps", kind: metrics.NetTX, value: -3, want: "0 B/s"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, test.want, test.kind.Format(test.value))
		})
	}
}
