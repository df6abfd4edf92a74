package coloring_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name       string
		value      float64
		thresholds coloring.Thresholds
		expected   coloring.Level
	}{
		{name: "signal excellent", value: -69, thresholds: coloring.SignalThresholds, expected: coloring.LevelExcellent},
		{name: "signal boundary excellent", value: -70, thresholds: coloring.SignalThresholds, expected: coloring.LevelExcellent},
		{name: "signal good", value: -72, thresholds: coloring.SignalThresholds, expected: coloring.LevelGood},
		{name: "signal fair", value: -100, thresholds: coloring.SignalThresholds, expected: coloring.LevelFair},
		{name: "signal poor", value: -101, thresholds: coloring.SignalThresholds, expected: coloring.LevelPoor},
		{name: "quality good", value: 60, thresholds: coloring.QualityThresholds, expected: coloring.LevelGood},
		{name: "quality poor", value: 39.9, thresholds: coloring.QualityThresholds, expected: coloring.LevelPoor},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, coloring.Classify(testCase.value, testCase.thresholds))
		})
	}
}

func TestColorFor(t *testing.T) {
	t.Parallel()

	require.Equal(t, "#22c55e", coloring.ColorFor(-60, coloring.MetricSignal))
	require.Equal(t, "#eab308", coloring.ColorFor(65, coloring.MetricQuality))
	require.Equal(t, "#f97316", coloring.ColorFor(-90, "latency"))
	require.Equal(t, "#ef4444", coloring.ColorFor(-120, ""))
}

func TestMetricValue(t *testing.T) {
	t.Parallel()

	point := entities.MapDataPoint{SignalStrength: lo.ToPtr(-80.5)}
	require.InDelta(t, -80.5, coloring.MetricValue(point, coloring.MetricSignal), 0.001)
	require.InDelta(t, -80.5, coloring.MetricValue(point, "unknown"), 0.001)
	require.Zero(t, coloring.MetricValue(point, coloring.MetricQuality))
}
