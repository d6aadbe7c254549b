package metrics

import (
	"cmp"
	"slices"

	"github.com/dustin/go-humanize"
)

// Series holds the samples of one instance in time order.
type Series struct {
	Instance string
	Points   []Point
}

// Values returns the sample values in time order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s.Points))
	for idx, point := range s.Points {
		values[idx] = point.Value
	}

	return values
}

// Latest returns the newest sample, if any.
func (s Series) Latest() (Point, bool) {
	if len(s.Points) == 0 {
		return Point{}, false
	}

	return s.Points[len(s.Points)-1], true
}

// GroupByInstance splits a flat response into one series per instance.
// Series keep the order in which instances first appear.
func GroupByInstance(points []Point) []Series {
	index := make(map[string]int)

	var series []Series

	for _, point := range points {
		idx, ok := index[point.Instance]
		if !ok {
			idx = len(series)
			index[point.Instance] = idx
			series = append(series, Series{Instance: point.Instance})
		}

		series[idx].Points = append(series[idx].Points, point)
	}

	for _, s := range series {
		slices.SortStableFunc(s.Points, func(a, b Point) int {
			return cmp.Compare(a.Timestamp, b.Timestamp)
		})
	}

	return series
}

// Format renders a value in the unit of the kind: bytes per second for network
// kinds and percent otherwise.
func (k Kind) Format(value float64) string {
	if k.Throughput() {
		return humanize.Bytes(uint64(max(value, 0))) + "/s"
	}

	return humanize.FtoaWithDigits(value, 2) + "%" //nolint:mnd // two decimals like the backend
}
