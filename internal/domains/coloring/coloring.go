package coloring

import (
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type Level string

const (
	LevelExcellent Level = "excellent"
	LevelGood      Level = "good"
	LevelFair      Level = "fair"
	LevelPoor      Level = "poor"
)

func (l Level) Color() string {
	switch l {
	case LevelExcellent:
		return "#22c55e"
	case LevelGood:
		return "#eab308"
	case LevelFair:
		return "#f97316"
	default:
		return "#ef4444"
	}
}

// metrics a map can be colored by.
const (
	MetricSignal  = "signal"
	MetricQuality = "quality"
)

// Thresholds are the lower bounds of each level, excellent first.
type Thresholds struct {
	Excellent float64
	Good      float64
	Fair      float64
}

var (
	SignalThresholds  = Thresholds{Excellent: -70, Good: -85, Fair: -100}
	QualityThresholds = Thresholds{Excellent: 80, Good: 60, Fair: 40}
)

// ThresholdsFor falls back to signal thresholds for unknown metrics.
func ThresholdsFor(metric string) Thresholds {
	if metric == MetricQuality {
		return QualityThresholds
	}

	return SignalThresholds
}

func Classify(value float64, thresholds Thresholds) Level {
	switch {
	case value >= thresholds.Excellent:
		return LevelExcellent
	case value >= thresholds.Good:
		return LevelGood
	case value >= thresholds.Fair:
		return LevelFair
	default:
		return LevelPoor
	}
}

func ColorFor(value float64, metric string) string {
	return Classify(value, ThresholdsFor(metric)).Color()
}

// MetricValue picks the colored value of a point, 0 when missing.
func MetricValue(point entities.MapDataPoint, metric string) float64 {
	value := point.SignalStrength
	if metric == MetricQuality {
		value = point.SignalQuality
	}

	if value == nil {
		return 0
	}

	return *value
}

// Marker is a point ready to draw.
type Marker struct {
	entities.MapDataPoint
	Lat   float64 `json:"lat"`
	Long  float64 `json:"long"`
	Value float64 `json:"value"`
	Level Level   `json:"level"`
	Color string  `json:"color"`
}
