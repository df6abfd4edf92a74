package watch

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sourcegraph/conc"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/alerting"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type (
	IMetricsService interface {
		GetAllMetrics(ctx context.Context, timeRange entities.TimeRange) (metrics entities.DashboardMetrics)
	}

	IMapDataService interface {
		GetMapData(ctx context.Context, bounds *entities.Bounds) (points entities.MapDataPoints, err error)
	}

	IAlertingService interface {
		Evaluate(observation alerting.Observation) (alerts entities.Alerts, err error)
		Publish(alerts entities.Alerts) (err error)
	}

	ISessionWatcher interface {
		Watch(ctx context.Context, interval time.Duration)
	}
)

// Report is the outcome of one refresh.
type Report struct {
	Metrics entities.DashboardMetrics `json:"metrics"`
	Stats   *entities.AreaStats       `json:"stats,omitempty"`
	Alerts  entities.Alerts           `json:"alerts"`
	At      time.Time                 `json:"at"`
}

type Service struct {
	metricsService  IMetricsService
	mapDataService  IMapDataService
	alertingService IAlertingService
	sessionWatcher  ISessionWatcher

	mx         sync.RWMutex
	lastReport *Report
}

func NewService(metricsService IMetricsService, mapDataService IMapDataService, alertingService IAlertingService,
	sessionWatcher ISessionWatcher) *Service {
	return &Service{
		metricsService:  metricsService,
		mapDataService:  mapDataService,
		alertingService: alertingService,
		sessionWatcher:  sessionWatcher,
	}
}

// Run refreshes immediately and then every interval until ctx is done.
func (s *Service) Run(ctx context.Context, interval time.Duration, timeRange entities.TimeRange, onReport func(report Report)) {
	var wg conc.WaitGroup
	defer wg.Wait()

	if s.sessionWatcher != nil {
		wg.Go(func() {
			s.sessionWatcher.Watch(ctx, constants.SessionCheckInterval)
		})
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		report, err := s.Tick(ctx, timeRange)
		if err != nil {
			log.Error().Err(err).Msg("Run: tick error")
		} else if onReport != nil {
			onReport(report)
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Tick fetches dashboard metrics and map stats, then evaluates and publishes alerts.
func (s *Service) Tick(ctx context.Context, timeRange entities.TimeRange) (report Report, err error) {
	var wg conc.WaitGroup
	wg.Go(func() {
		report.Metrics = s.metricsService.GetAllMetrics(ctx, timeRange)
	})
	wg.Go(func() {
		points, err := s.mapDataService.GetMapData(ctx, nil)
		if err != nil {
			log.Warn().Err(err).Msg("Tick: map data unavailable")
			return
		}

		stats := mapdata.Stats(mapdata.Markers(mapdata.FilterValidPoints(points), ""))
		report.Stats = &stats
	})
	wg.Wait()

	report.At = time.Now()
	if report.Alerts, err = s.alertingService.Evaluate(alerting.Observe(report.Metrics, report.Stats)); err != nil {
		return report, fmt.Errorf("Tick: %w", err)
	}

	s.mx.Lock()
	s.lastReport = &report
	s.mx.Unlock()

	if err = s.alertingService.Publish(report.Alerts); err != nil {
		return report, fmt.Errorf("Tick: %w", err)
	}

	return report, nil
}

// LastReport returns the latest evaluated report, false before the first tick.
func (s *Service) LastReport() (report Report, ok bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()

	if s.lastReport == nil {
		return report, false
	}

	return *s.lastReport, true
}
