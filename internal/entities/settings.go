package entities

type ThresholdOperator string

const (
	OperatorGT  ThresholdOperator = "gt"
	OperatorLT  ThresholdOperator = "lt"
	OperatorEQ  ThresholdOperator = "eq"
	OperatorGTE ThresholdOperator = "gte"
	OperatorLTE ThresholdOperator = "lte"
)

// Compare reports whether value satisfies "value <op> limit".
func (o ThresholdOperator) Compare(value, limit float64) bool {
	switch o {
	case OperatorGT:
		return value > limit
	case OperatorLT:
		return value < limit
	case OperatorEQ:
		return value == limit
	case OperatorGTE:
		return value >= limit
	case OperatorLTE:
		return value <= limit
	default:
		return false
	}
}

func (o ThresholdOperator) Symbol() string {
	switch o {
	case OperatorGT:
		return ">"
	case OperatorLT:
		return "<"
	case OperatorEQ:
		return "="
	case OperatorGTE:
		return "≥"
	case OperatorLTE:
		return "≤"
	default:
		return string(o)
	}
}

type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank orders severities, critical first.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// metrics a threshold rule can watch.
const (
	ThresholdMetricDownloadSpeed  = "downloadSpeed"
	ThresholdMetricUploadSpeed    = "uploadSpeed"
	ThresholdMetricLatency        = "latency"
	ThresholdMetricAvailability   = "availability"
	ThresholdMetricSignalStrength = "signalStrength"
	ThresholdMetricSignalQuality  = "signalQuality"
)

type ThresholdConfig struct {
	ID       string            `json:"id" yaml:"id"`
	Name     string            `json:"name" yaml:"name" validate:"required"`
	Metric   string            `json:"metric" yaml:"metric" validate:"required,oneof=downloadSpeed uploadSpeed latency availability signalStrength signalQuality"`
	Operator ThresholdOperator `json:"operator" yaml:"operator" validate:"required,oneof=gt lt eq gte lte"`
	Value    float64           `json:"value" yaml:"value"`
	Severity Severity          `json:"severity" yaml:"severity" validate:"required,oneof=info warning critical"`
	Enabled  bool              `json:"enabled" yaml:"enabled"`
}

type MapSettings struct {
	CenterLat  float64 `json:"centerLat" validate:"gte=-90,lte=90"`
	CenterLong float64 `json:"centerLong" validate:"gte=-180,lte=180"`
	Zoom       int     `json:"zoom" validate:"min=1,max=18"`
}

type ExportSettings struct {
	Format            string `json:"format" validate:"oneof=csv kml json"`
	IncludeDeviceInfo bool   `json:"includeDeviceInfo"`
}

// Settings are the admin settings kept on this machine.
type Settings struct {
	Thresholds      []ThresholdConfig `json:"thresholds" validate:"dive"`
	SyncIntervalSec int               `json:"syncIntervalSec" validate:"min=60"`
	Map             MapSettings       `json:"map"`
	Export          ExportSettings    `json:"export"`
}

func DefaultSettings() Settings {
	return Settings{
		Thresholds: []ThresholdConfig{
			{
				ID:       "1",
				Name:     "High Latency",
				Metric:   ThresholdMetricLatency,
				Operator: OperatorGT,
				Value:    100,
				Severity: SeverityWarning,
				Enabled:  true,
			},
			{
				ID:       "2",
				Name:     "Low Signal Strength",
				Metric:   ThresholdMetricSignalStrength,
				Operator: OperatorLT,
				Value:    -90,
				Severity: SeverityCritical,
				Enabled:  true,
			},
		},
		SyncIntervalSec: 300,
		Map: MapSettings{
			CenterLat:  35.6892,
			CenterLong: 51.3890,
			Zoom:       12,
		},
		Export: ExportSettings{
			Format:            "csv",
			IncludeDeviceInfo: true,
		},
	}
}
