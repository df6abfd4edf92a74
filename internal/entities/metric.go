package entities

import (
	"fmt"
	"slices"

	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type TimeRange string

const (
	TimeRangeLastHour  TimeRange = "last-hour"
	TimeRangeLastDay   TimeRange = "last-day"
	TimeRangeLastWeek  TimeRange = "last-week"
	TimeRangeLastMonth TimeRange = "last-month"
)

var timeRanges = []TimeRange{TimeRangeLastHour, TimeRangeLastDay, TimeRangeLastWeek, TimeRangeLastMonth}

func ParseTimeRange(value string) (TimeRange, error) {
	tr := TimeRange(value)
	if !slices.Contains(timeRanges, tr) {
		return "", fmt.Errorf("ParseTimeRange: %w: %q", errs.ErrUnknownTimeRange, value)
	}

	return tr, nil
}

func (r TimeRange) String() string {
	return string(r)
}

// Label returns the display name of the range.
func (r TimeRange) Label() string {
	switch r {
	case TimeRangeLastHour:
		return "Last Hour"
	case TimeRangeLastDay:
		return "Last 24 Hours"
	case TimeRangeLastWeek:
		return "Last 7 Days"
	case TimeRangeLastMonth:
		return "Last 30 Days"
	default:
		return "Last 24 Hours"
	}
}

type AverageMetric struct {
	AverageSpeed   *float64 `json:"averageSpeed,omitempty"`
	AverageLatency *float64 `json:"averageLatency,omitempty"`
	Availability   *float64 `json:"availability,omitempty"`
	Unit           string   `json:"unit"`
}

type MetricResponse = Response[AverageMetric]

// MetricSample is a labeled value ready for display.
type MetricSample struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Formatted string  `json:"formatted"`
}

// DashboardMetrics holds nil for every metric that could not be fetched.
type DashboardMetrics struct {
	DownloadSpeed *MetricSample `json:"downloadSpeed"`
	UploadSpeed   *MetricSample `json:"uploadSpeed"`
	Latency       *MetricSample `json:"latency"`
	Availability  *MetricSample `json:"availability"`
}
