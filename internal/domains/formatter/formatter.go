package formatter

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

const notAvailable = "N/A"

func newTable(header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Format.Footer = text.FormatDefault
	t.AppendHeader(header)
	return t
}

// render puts the title on its own line above the table.
func render(title string, t table.Writer) string {
	if lo.IsEmpty(title) {
		return t.Render()
	}

	return title + "\n" + t.Render()
}

// Dashboard renders the four metric cards.
func Dashboard(metrics entities.DashboardMetrics, timeRange entities.TimeRange) string {
	t := newTable(table.Row{"METRIC", "VALUE"})
	t.AppendRows([]table.Row{
		{"Download Speed", sampleText(metrics.DownloadSpeed)},
		{"Upload Speed", sampleText(metrics.UploadSpeed)},
		{"Latency", sampleText(metrics.Latency)},
		{"Availability", sampleText(metrics.Availability)},
	})
	return render("Network Overview ("+timeRange.Label()+")", t)
}

func sampleText(sample *entities.MetricSample) string {
	if sample == nil {
		return notAvailable
	}

	return sample.Formatted
}

// Trends renders the histogram chart series.
func Trends(chart entities.NetworkChartData, timeRange entities.TimeRange) string {
	t := newTable(table.Row{"TIME", "DOWNLOAD (Mbps)", "UPLOAD (Mbps)", "LATENCY (ms)"})
	for i, label := range chart.Labels {
		t.AppendRow(table.Row{
			label,
			fmt.Sprintf("%.2f", at(chart.Download, i)),
			fmt.Sprintf("%.2f", at(chart.Upload, i)),
			fmt.Sprintf("%.1f", at(chart.Latency, i)),
		})
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d bucket(s)", len(chart.Labels))})
	return render("Network Performance Trends ("+timeRange.Label()+")", t)
}

func at(values []float64, index int) float64 {
	if index < len(values) {
		return values[index]
	}

	return 0
}

func Distribution(chart entities.NetworkDistributionData, timeRange entities.TimeRange) string {
	t := newTable(table.Row{"TECHNOLOGY", "COUNT", "SHARE"})
	for i, label := range chart.Labels {
		var count int
		if i < len(chart.Data) {
			count = chart.Data[i]
		}
		t.AppendRow(table.Row{
			label,
			groupThousands(int64(count)),
			fmt.Sprintf("%.1f%%", at(chart.Percentages, i)),
		})
	}
	return render("Network Distribution ("+timeRange.Label()+")", t)
}

// DetailedList renders rows with the columns given by the backend labels.
func DetailedList(list entities.DetailedList) string {
	if len(list.Values) == 0 {
		return "No data available"
	}

	header := lo.Map(list.Labels, func(label string, _ int) any {
		return FormatHeader(label)
	})
	t := newTable(header)
	for _, values := range list.Values {
		t.AppendRow(lo.Map(list.Labels, func(label string, _ int) any {
			return FormatValue(values[label])
		}))
	}

	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Showing %d %s", len(list.Values), lo.Ternary(len(list.Values) == 1, "record", "records")))
	if list.TotalPages > 0 {
		b.WriteString(fmt.Sprintf(" (page %d of %d, %s total)", list.Page, list.TotalPages, groupThousands(int64(list.TotalCount))))
	}
	return b.String()
}

// FormatHeader turns snake_case into Title Case.
func FormatHeader(label string) string {
	words := strings.Split(label, "_")
	for i, word := range words {
		if lo.IsNotEmpty(word) {
			words[i] = strings.ToUpper(word[:1]) + word[1:]
		}
	}

	return strings.Join(words, " ")
}

// FormatValue renders a decoded json cell.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return notAvailable
	case bool:
		return lo.Ternary(v, "Yes", "No")
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < 1<<53 {
			return groupThousands(int64(v))
		}
		return strconv.FormatFloat(v, 'f', 2, 64)
	case int:
		return groupThousands(int64(v))
	case int64:
		return groupThousands(v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

func groupThousands(value int64) string {
	digits := strconv.FormatInt(value, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, digit := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	return sign + b.String()
}

func Regions(regions entities.RegionMetrics) string {
	t := newTable(table.Row{"ID", "REGION", "SIGNAL STRENGTH", "SIGNAL QUALITY", "MEASUREMENTS"})
	for _, region := range regions {
		t.AppendRow(table.Row{
			region.ID,
			region.Name,
			fmt.Sprintf("%.1f dBm (%s)", region.AverageStrength, region.StrengthClass),
			fmt.Sprintf("%.1f (%s)", region.AverageQuality, region.QualityClass),
			groupThousands(int64(region.MeasurementCount)),
		})
	}
	return render("Regions", t)
}

func Users(page entities.UsersPage) string {
	t := newTable(table.Row{"ID", "EMAIL", "ROLE", "CREATED"})
	for _, user := range page.Users {
		t.AppendRow(table.Row{user.ID, user.Email, user.Role, formatTime(user.CreatedAt)})
	}

	totalPages := 1
	if page.PageSize > 0 {
		totalPages = max(1, int(math.Ceil(float64(page.TotalCount)/float64(page.PageSize))))
	}
	t.AppendFooter(table.Row{"", "", "", fmt.Sprintf("page %d of %d, %d total", page.Page, totalPages, page.TotalCount)})
	return render("Users", t)
}

func Profile(user *entities.User, expiresAt time.Time) string {
	if user == nil {
		return "Not logged in"
	}

	t := newTable(table.Row{"FIELD", "VALUE"})
	t.AppendRows([]table.Row{
		{"ID", user.ID},
		{"Email", user.Email},
		{"Role", user.Role},
		{"Session Expires", formatTime(expiresAt)},
	})
	return render("Profile", t)
}

// Markers renders at most limit markers, all when limit <= 0.
func Markers(markers []coloring.Marker, limit int) string {
	t := newTable(table.Row{"DEVICE", "LAT", "LONG", "TECH", "STRENGTH", "QUALITY", "LEVEL", "COLOR"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 7, Transformer: levelTransformer},
	})

	shown := markers
	if limit > 0 && len(markers) > limit {
		shown = markers[:limit]
	}

	for _, marker := range shown {
		t.AppendRow(table.Row{
			marker.DeviceID,
			fmt.Sprintf("%.5f", marker.Lat),
			fmt.Sprintf("%.5f", marker.Long),
			lo.Ternary(lo.IsNotEmpty(marker.CellularTechnology), marker.CellularTechnology, notAvailable),
			optional(marker.SignalStrength, "%.0f dBm"),
			optional(marker.SignalQuality, "%.0f"),
			marker.Level,
			marker.Color,
		})
	}
	t.AppendFooter(table.Row{"", "", "", "", "", "", "", fmt.Sprintf("%d/%d shown", len(shown), len(markers))})
	return render("Map Points", t)
}

func levelTransformer(value any) string {
	level, ok := value.(coloring.Level)
	if !ok {
		return fmt.Sprintf("%v", value)
	}

	var color text.Color
	switch level {
	case coloring.LevelExcellent:
		color = text.FgGreen
	case coloring.LevelGood:
		color = text.FgYellow
	case coloring.LevelFair:
		color = text.FgHiRed
	default:
		color = text.FgRed
	}

	return color.Sprint(string(level))
}

func AreaStats(stats entities.AreaStats) string {
	t := newTable(table.Row{"FIELD", "VALUE"})
	t.AppendRows([]table.Row{
		{"Measurements", groupThousands(int64(stats.Measurements))},
		{"Center", fmt.Sprintf("%.5f, %.5f", stats.CenterLat, stats.CenterLong)},
		{"Area", fmt.Sprintf("%.2f km²", stats.AreaKm2)},
		{"Avg Signal Strength", optional(stats.AverageSignalStrength, "%.1f dBm")},
		{"Avg Signal Quality", optional(stats.AverageSignalQuality, "%.1f")},
	})

	technologies := lo.Keys(stats.Technologies)
	sort.Strings(technologies)
	for _, technology := range technologies {
		t.AppendRow(table.Row{"Technology " + technology, stats.Technologies[technology]})
	}
	return render("Selected Area", t)
}

func Alerts(alerts entities.Alerts) string {
	if len(alerts) == 0 {
		return "No active alerts"
	}

	t := newTable(table.Row{"SEVERITY", "TITLE", "MESSAGE", "TIME"})
	for _, alert := range alerts {
		t.AppendRow(table.Row{strings.ToUpper(string(alert.Severity)), alert.Title, alert.Message, formatTime(alert.Timestamp)})
	}
	return render("Alerts", t)
}

func Settings(settings entities.Settings) string {
	thresholds := newTable(table.Row{"ID", "NAME", "RULE", "SEVERITY", "ENABLED"})
	for _, rule := range settings.Thresholds {
		thresholds.AppendRow(table.Row{
			rule.ID,
			rule.Name,
			fmt.Sprintf("%s %s %s", rule.Metric, rule.Operator.Symbol(), strconv.FormatFloat(rule.Value, 'f', -1, 64)),
			rule.Severity,
			FormatValue(rule.Enabled),
		})
	}

	general := newTable(table.Row{"SETTING", "VALUE"})
	general.AppendRows([]table.Row{
		{"Sync Interval", fmt.Sprintf("%d min", settings.SyncIntervalSec/60)},
		{"Map Center", fmt.Sprintf("%.4f, %.4f", settings.Map.CenterLat, settings.Map.CenterLong)},
		{"Map Zoom", settings.Map.Zoom},
		{"Export Format", strings.ToUpper(settings.Export.Format)},
		{"Include Device Info", FormatValue(settings.Export.IncludeDeviceInfo)},
	})

	return render("Alert Thresholds", thresholds) + "\n" + render("General", general)
}

func ClientConfig(cfg entities.ClientConfig) string {
	t := newTable(table.Row{"SETTING", "VALUE"})
	t.AppendRows([]table.Row{
		{"Sampling Interval", fmt.Sprintf("%d s", cfg.SamplingIntervalSec)},
		{"Upload Interval", fmt.Sprintf("%d s", cfg.UploadIntervalSec)},
		{"Enabled Tests", lo.Ternary(len(cfg.EnabledTests) > 0, strings.Join(cfg.EnabledTests, ", "), notAvailable)},
		{"Ping Target", orNotAvailable(cfg.PingTarget)},
		{"DNS Server", orNotAvailable(cfg.DNSServer)},
		{"HTTP Test URL", orNotAvailable(cfg.HTTPTestURL)},
		{"SMS Recipient", orNotAvailable(cfg.SMSRecipient)},
		{"Collect Cell Info", FormatValue(cfg.CollectCellInfo)},
		{"Updated", formatTime(cfg.UpdatedAt)},
	})
	return render("Client Configuration", t)
}

func optional(value *float64, format string) string {
	if value == nil {
		return notAvailable
	}

	return fmt.Sprintf(format, *value)
}

func orNotAvailable(value string) string {
	return lo.Ternary(lo.IsNotEmpty(value), value, notAvailable)
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return notAvailable
	}

	return value.Local().Format("2006-01-02 15:04:05")
}
