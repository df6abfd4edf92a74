package alerting

import (
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/telemetry"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type (
	ISettingsService interface {
		Get() (settings entities.Settings, err error)
	}

	IPublisher interface {
		Publish(subject string, data []byte) (err error)
	}
)

// Observation holds the current value of every watchable metric, nil when unknown.
type Observation map[string]*float64

type Service struct {
	settingsService ISettingsService
	publisher       IPublisher
	now             func() time.Time
}

// NewService accepts a nil publisher, alerts are then only returned.
func NewService(settingsService ISettingsService, publisher IPublisher) *Service {
	return &Service{
		settingsService: settingsService,
		publisher:       publisher,
		now:             time.Now,
	}
}

// Observe converts dashboard metrics and area stats into display units:
// speeds in Mbps, latency in ms, availability in percent.
func Observe(dashboard entities.DashboardMetrics, stats *entities.AreaStats) Observation {
	observation := Observation{
		entities.ThresholdMetricDownloadSpeed: speedMbps(dashboard.DownloadSpeed),
		entities.ThresholdMetricUploadSpeed:   speedMbps(dashboard.UploadSpeed),
		entities.ThresholdMetricLatency:       sampleValue(dashboard.Latency),
		entities.ThresholdMetricAvailability:  sampleValue(dashboard.Availability),
	}

	if stats != nil {
		observation[entities.ThresholdMetricSignalStrength] = stats.AverageSignalStrength
		observation[entities.ThresholdMetricSignalQuality] = stats.AverageSignalQuality
	}

	return observation
}

// Evaluate matches enabled rules against the observation. Alerts are ordered
// critical first.
func (s *Service) Evaluate(observation Observation) (alerts entities.Alerts, err error) {
	settings, err := s.settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("Evaluate: %w", err)
	}

	now := s.now()
	for _, rule := range settings.Thresholds {
		if !rule.Enabled {
			continue
		}

		value, ok := observation[rule.Metric]
		if !ok || value == nil {
			continue
		}

		if !rule.Operator.Compare(*value, rule.Value) {
			continue
		}

		alerts = append(alerts, entities.Alert{
			ID:        uuid.NewString(),
			RuleID:    rule.ID,
			Title:     rule.Name,
			Message:   fmt.Sprintf("%s is %s (threshold %s %s)", rule.Metric, formatValue(*value), rule.Operator.Symbol(), formatValue(rule.Value)),
			Severity:  rule.Severity,
			Value:     *value,
			Timestamp: now,
		})
	}

	slices.SortStableFunc(alerts, func(a, b entities.Alert) int {
		return a.Severity.Rank() - b.Severity.Rank()
	})

	return alerts, nil
}

// Publish sends every alert to its severity subject.
func (s *Service) Publish(alerts entities.Alerts) (err error) {
	for _, alert := range alerts {
		telemetry.AlertRaised(string(alert.Severity))
		log.Warn().
			Str("rule", alert.Title).
			Str("severity", string(alert.Severity)).
			Float64("value", alert.Value).
			Msg("Publish: " + alert.Message)

		if s.publisher == nil {
			continue
		}

		data, err := json.Marshal(alert)
		if err != nil {
			return fmt.Errorf("Publish: %w", err)
		}

		if err = s.publisher.Publish(Subject(alert.Severity), data); err != nil {
			return fmt.Errorf("Publish: %w", err)
		}
	}

	return nil
}

func Subject(severity entities.Severity) string {
	return strings.Join([]string{constants.MQAlertsSubjectPrefix, string(severity)}, ".")
}

func speedMbps(sample *entities.MetricSample) *float64 {
	if sample == nil {
		return nil
	}

	if sample.Unit == "kbps" {
		return lo.ToPtr(sample.Value / 1000)
	}

	return lo.ToPtr(sample.Value)
}

func sampleValue(sample *entities.MetricSample) *float64 {
	if sample == nil {
		return nil
	}

	return lo.ToPtr(sample.Value)
}

func formatValue(value float64) string {
	return strconv.FormatFloat(math.Round(value*100)/100, 'f', -1, 64)
}
