package metrics

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

const unitKbps = "kbps"

var whitespaceRun = regexp.MustCompile(`\s+`)

// FormatSpeed renders kbps as Mbps from 1000 kbps upwards.
func FormatSpeed(speed float64, unit string) string {
	if unit == unitKbps {
		if mbps := speed / 1000; mbps >= 1 {
			return fmt.Sprintf("%.1f Mbps", mbps)
		}

		return fmt.Sprintf("%.0f kbps", speed)
	}

	return fmt.Sprintf("%.1f %s", speed, unit)
}

func FormatLatency(latency float64, unit string) string {
	return fmt.Sprintf("%.1f %s", latency, unit)
}

func FormatAvailability(availability float64) string {
	return fmt.Sprintf("%.1f%%", availability)
}

func speedSample(metric entities.AverageMetric) *entities.MetricSample {
	if metric.AverageSpeed == nil {
		return nil
	}

	return &entities.MetricSample{
		Value:     *metric.AverageSpeed,
		Unit:      metric.Unit,
		Formatted: FormatSpeed(*metric.AverageSpeed, metric.Unit),
	}
}

func latencySample(metric entities.AverageMetric) *entities.MetricSample {
	if metric.AverageLatency == nil {
		return nil
	}

	return &entities.MetricSample{
		Value:     *metric.AverageLatency,
		Unit:      metric.Unit,
		Formatted: FormatLatency(*metric.AverageLatency, metric.Unit),
	}
}

func availabilitySample(metric entities.AverageMetric) *entities.MetricSample {
	if metric.Availability == nil {
		return nil
	}

	return &entities.MetricSample{
		Value:     *metric.Availability,
		Unit:      metric.Unit,
		Formatted: FormatAvailability(*metric.Availability),
	}
}

// RegionID is the lowercase region name with whitespace runs replaced by "-".
func RegionID(name string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(name), "-")
}

// TransformHistogram converts buckets into chart series. Speeds in kbps are
// converted to Mbps.
func TransformHistogram(data entities.HistogramData, timeRange entities.TimeRange) entities.NetworkChartData {
	divider := lo.Ternary(data.SpeedUnit == unitKbps || lo.IsEmpty(data.SpeedUnit), 1000.0, 1.0)
	layout := bucketLayout(timeRange)

	chart := entities.NetworkChartData{
		Labels:   make([]string, 0, len(data.Buckets)),
		Download: make([]float64, 0, len(data.Buckets)),
		Upload:   make([]float64, 0, len(data.Buckets)),
		Latency:  make([]float64, 0, len(data.Buckets)),
	}
	for _, bucket := range data.Buckets {
		chart.Labels = append(chart.Labels, bucket.Timestamp.Format(layout))
		chart.Download = append(chart.Download, round(bucket.AverageDownload/divider, 2))
		chart.Upload = append(chart.Upload, round(bucket.AverageUpload/divider, 2))
		chart.Latency = append(chart.Latency, round(bucket.AverageLatency, 1))
	}

	return chart
}

func bucketLayout(timeRange entities.TimeRange) string {
	switch timeRange {
	case entities.TimeRangeLastHour, entities.TimeRangeLastDay:
		return "15:04"
	case entities.TimeRangeLastWeek:
		return "Jan 02 15:04"
	default:
		return "Jan 02"
	}
}

// TransformDistribution converts technology counts into chart series with
// percentages of the total.
func TransformDistribution(data entities.DistributionData) entities.NetworkDistributionData {
	total := lo.SumBy(data.Distribution, func(entry entities.DistributionEntry) int {
		return entry.Count
	})

	chart := entities.NetworkDistributionData{
		Labels:      make([]string, 0, len(data.Distribution)),
		Data:        make([]int, 0, len(data.Distribution)),
		Percentages: make([]float64, 0, len(data.Distribution)),
	}
	for _, entry := range data.Distribution {
		chart.Labels = append(chart.Labels, lo.Ternary(lo.IsNotEmpty(entry.Technology), entry.Technology, "Unknown"))
		chart.Data = append(chart.Data, entry.Count)

		var percentage float64
		if total > 0 {
			percentage = round(float64(entry.Count)*100/float64(total), 1)
		}
		chart.Percentages = append(chart.Percentages, percentage)
	}

	return chart
}

func round(value float64, places int) float64 {
	factor := math.Pow(10, float64(places))
	return math.Round(value*factor) / factor
}
