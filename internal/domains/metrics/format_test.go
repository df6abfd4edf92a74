package metrics_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/metrics"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func TestFormatSpeed(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		speed    float64
		unit     string
		expected string
	}{
		{name: "below one mbps", speed: 999, unit: "kbps", expected: "999 kbps"},
		{name: "exactly one mbps", speed: 1000, unit: "kbps", expected: "1.0 Mbps"},
		{name: "mbps rounding", speed: 15240, unit: "kbps", expected: "15.2 Mbps"},
		{name: "other unit", speed: 3.14159, unit: "Mbps", expected: "3.1 Mbps"},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, metrics.FormatSpeed(testCase.speed, testCase.unit))
		})
	}
}

func TestRegionID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "north-tehran", metrics.RegionID("North Tehran"))
	require.Equal(t, "a-b-c", metrics.RegionID("A \t B\nC"))
	require.Equal(t, "karaj", metrics.RegionID("KARAJ"))
}

func TestTransformHistogram(t *testing.T) {
	t.Parallel()

	stamp := time.Date(2025, 3, 10, 14, 30, 0, 0, time.UTC)
	data := entities.HistogramData{
		SpeedUnit: "kbps",
		Buckets: []entities.HistogramBucket{
			{Timestamp: stamp, AverageDownload: 15250, AverageUpload: 2400, AverageLatency: 41.26, Count: 12},
		},
	}

	chart := metrics.TransformHistogram(data, entities.TimeRangeLastDay)
	require.Equal(t, []string{"14:30"}, chart.Labels)
	require.Equal(t, []float64{15.25}, chart.Download)
	require.Equal(t, []float64{2.4}, chart.Upload)
	require.Equal(t, []float64{41.3}, chart.Latency)

	chart = metrics.TransformHistogram(data, entities.TimeRangeLastMonth)
	require.Equal(t, []string{"Mar 10"}, chart.Labels)
}

func TestTransformDistribution(t *testing.T) {
	t.Parallel()

	chart := metrics.TransformDistribution(entities.DistributionData{})
	require.Empty(t, chart.Labels)

	chart = metrics.TransformDistribution(entities.DistributionData{Distribution: []entities.DistributionEntry{
		{Technology: "", Count: 0},
	}})
	require.Equal(t, []string{"Unknown"}, chart.Labels)
	require.Equal(t, []float64{0}, chart.Percentages)
}
