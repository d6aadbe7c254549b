package chart_test

import (
	"testing"
	"time"

	"github.com/devantler-tech/kubeassist/pkg/cli/ui/chart"
	"github.com/devantler-tech/kubeassist/pkg/svc/metrics"
	"github.com/stretchr/testify/assert"
)

func TestRender_Empty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, chart.Render(metrics.CPU, nil))
}

func TestRender_IncludesCaption(t *testing.T) {
	t.Parallel()

	points := []metrics.Point{
		{Timestamp: 1700000000, Instance: "node-1", Value: 10},
		{Timestamp: 1700000010, Instance: "node-1", Value: 20},
		{Timestamp: 1700000000, Instance: "node-2", Value: 30},
		{Timestamp: 1700000010, Instance: "node-2", Value: 40},
		{Timestamp: 1700000010, Instance: "node-3", Value: 1},
		{Timestamp: 1700000010, Instance: "node-4", Value: 2},
		{Timestamp: 1700000010, Instance: "node-5", Value: 3},
		{Timestamp: 1700000010, Instance: "node-6", Value: 4},
	}

	out := chart.Render(metrics.CPU, points, chart.WithHeight(4), chart.WithWidth(20))

	assert.Contains(t, out, "node-1 20%")
	assert.Contains(t, out, "node-6 4%")
}

func TestCaption(t *testing.T) {
	t.Parallel()

	series := metrics.GroupByInstance([]metrics.Point{
		{Timestamp: 1700000000, Value: 1024},
		{Timestamp: 1700000060, Value: 2048},
	})

	start := time.Unix(1700000000, 0).Format("15:04:05")
	end := time.Unix(1700000060, 0).Format("15:04:05")

	assert.Equal(t, start+" → "+end+"  unknown 2.0 kB/s", chart.Caption(metrics.NetRX, series))
	assert.Empty(t, chart.Caption(metrics.NetRX, nil))
}
