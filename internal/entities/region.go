package entities

type Region struct {
	Name             string  `json:"name"`
	AverageStrength  float64 `json:"average_strength"`
	AverageQuality   float64 `json:"average_quality"`
	MeasurementCount int     `json:"measurement_count"`
	StrengthClass    string  `json:"strength_class"`
	QualityClass     string  `json:"quality_class"`
}

type RegionListResponse = Response[struct {
	Regions []Region `json:"regions"`
}]

// RegionMetric is a region row keyed by a slug of its name.
type RegionMetric struct {
	ID string `json:"id"`
	Region
}

type RegionMetrics []RegionMetric
