package metrics

import (
	"context"
	"fmt"

	"github.com/devantler-tech/kubeassist/pkg/client/backend"
)

// Fetcher loads the current series for a kind.
type Fetcher interface {
	Fetch(ctx context.Context, kind Kind) ([]Point, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context, kind Kind) ([]Point, error)

// Fetch implements Fetcher.
func (f FetcherFunc) Fetch(ctx context.Context, kind Kind) ([]Point, error) {
	return f(ctx, kind)
}

// TimeSeriesSource is the backend call behind a Fetcher. The backend client satisfies it.
type TimeSeriesSource interface {
	TimeSeries(ctx context.Context, metricType string) ([]backend.MetricPoint, error)
}

// NewBackendFetcher creates a Fetcher that validates the kind before calling the backend.
func NewBackendFetcher(source TimeSeriesSource) Fetcher {
	return FetcherFunc(func(ctx context.Context, kind Kind) ([]Point, error) {
		if !kind.Valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, kind)
		}

		samples, err := source.TimeSeries(ctx, string(kind))
		if err != nil {
			return nil, fmt.Errorf("fetch %s series: %w", kind, err)
		}

		points := make([]Point, 0, len(samples))
		for _, sample := range samples {
			points = append(points, Point{
				Timestamp: sample.Timestamp,
				Instance:  sample.Instance,
				Value:     sample.Value,
			})
		}

		return points, nil
	})
}
