package metrics_test

import (
	"context"
	"testing"

	"github.com/devantler-tech/kubeassist/pkg/client/backend"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKind_Labels(t *testing.T) {
	t.Parallel()

	labels := make([]string, 0, len(metrics.Kinds()))
	for _, kind := range metrics.Kinds() {
		labels = append(labels, kind.Label())
	}

	assert.Equal(t, []string{"CPU Usage", "Memory Usage", "Disk Usage", "Network RX", "Network TX"}, labels)
	assert.True(t, metrics.NetTX.Throughput())
	assert.False(t, metrics.Disk.Throughput())
}

func TestKind_Cycle(t *testing.T) {
	t.Parallel()

	assert.Equal(t, metrics.Memory, metrics.CPU.Next())
	assert.Equal(t, metrics.CPU, metrics.NetTX.Next())
	assert.Equal(t, metrics.NetTX, metrics.CPU.Prev())
	assert.Equal(t, metrics.CPU, metrics.Kind("gpu").Next())
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	kind, err := metrics.ParseKind(" NET_RX ")
	require.NoError(t, err)
	assert.Equal(t, metrics.NetRX, kind)

	_, err = metrics.ParseKind("gpu")
	require.ErrorIs(t, err, metrics.ErrUnknownMetric)
}

type fakeSource struct {
	calls []string
}

func (f *fakeSource) TimeSeries(_ context.Context, metricType string) ([]backend.MetricPoint, error) {
	f.calls = append(f.calls, metricType)

	return []backend.MetricPoint{{Timestamp: 1700000000, Instance: "node-1", Value: 42.5}}, nil
}

func TestNewBackendFetcher(t *testing.T) {
	t.Parallel()

	source := &fakeSource{}
	fetcher := metrics.NewBackendFetcher(source)

	points, err := fetcher.Fetch(context.Background(), metrics.Disk)
	require.NoError(t, err)
	assert.Equal(t, []metrics.Point{{Timestamp: 1700000000, Instance: "node-1", Value: 42.5}}, points)
	assert.Equal(t, int64(1700000000), points[0].Time().Unix())

	_, err = fetcher.Fetch(context.Background(), metrics.Kind("gpu"))
	require.ErrorIs(t, err, metrics.ErrUnknownMetric)
	assert.Equal(t, []string{"disk"}, source.calls)
}
