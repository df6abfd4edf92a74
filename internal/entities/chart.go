package entities

import (
	"time"
)

type HistogramBucket struct {
	Timestamp       time.Time `json:"timestamp"`
	AverageDownload float64   `json:"avg_download"`
	AverageUpload   float64   `json:"avg_upload"`
	AverageLatency  float64   `json:"avg_latency"`
	Count           int       `json:"count"`
}

type HistogramData struct {
	Buckets   []HistogramBucket `json:"buckets"`
	SpeedUnit string            `json:"speed_unit"`
}

type HistogramResponse = Response[*HistogramData]

// NetworkChartData is the line chart dataset: speeds in Mbps, latency in ms.
type NetworkChartData struct {
	Labels   []string  `json:"labels"`
	Download []float64 `json:"download"`
	Upload   []float64 `json:"upload"`
	Latency  []float64 `json:"latency"`
}

type DistributionEntry struct {
	Technology string `json:"technology"`
	Count      int    `json:"count"`
}

type DistributionData struct {
	Distribution []DistributionEntry `json:"distribution"`
}

type DistributionResponse = Response[*DistributionData]

// NetworkDistributionData is the doughnut chart dataset.
type NetworkDistributionData struct {
	Labels      []string  `json:"labels"`
	Data        []int     `json:"data"`
	Percentages []float64 `json:"percentages"`
}
