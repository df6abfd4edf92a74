package watch_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/alerting"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/watch"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/watch/watch_mocks"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type serviceFields struct {
	metricsService  *watch_mocks.MockIMetricsService
	mapDataService  *watch_mocks.MockIMapDataService
	alertingService *watch_mocks.MockIAlertingService
	sessionWatcher  *watch_mocks.MockISessionWatcher
}

func newServiceFields(t *testing.T) *serviceFields {
	return &serviceFields{
		metricsService:  watch_mocks.NewMockIMetricsService(t),
		mapDataService:  watch_mocks.NewMockIMapDataService(t),
		alertingService: watch_mocks.NewMockIAlertingService(t),
		sessionWatcher:  watch_mocks.NewMockISessionWatcher(t),
	}
}

func (f *serviceFields) service() *watch.Service {
	return watch.NewService(f.metricsService, f.mapDataService, f.alertingService, f.sessionWatcher)
}

func TestService_Tick(t *testing.T) {
	t.Parallel()

	dashboard := entities.DashboardMetrics{Latency: &entities.MetricSample{Value: 150, Unit: "ms"}}
	alerts := entities.Alerts{{ID: "a", Title: "High Latency", Severity: entities.SeverityWarning}}

	testTable := []struct {
		name        string
		prepare     func(t *testing.T, f *serviceFields)
		check       func(t *testing.T, report watch.Report)
		expectedErr bool
	}{
		{
			name: "metrics and map stats",
			prepare: func(t *testing.T, f *serviceFields) {
				f.metricsService.EXPECT().GetAllMetrics(mock.Anything, entities.TimeRangeLastHour).Return(dashboard).Once()
				f.mapDataService.EXPECT().GetMapData(mock.Anything, (*entities.Bounds)(nil)).Return(entities.MapDataPoints{
					{Latitude: "35.7", Longitude: "51.4", SignalStrength: lo.ToPtr(-95.0)},
					{Latitude: "bad", Longitude: "51.4", SignalStrength: lo.ToPtr(-20.0)},
				}, nil).Once()
				f.alertingService.EXPECT().
					Evaluate(mock.Anything).
					Run(func(observation alerting.Observation) {
						require.InDelta(t, 150.0, *observation[entities.ThresholdMetricLatency], 0.001)
						require.InDelta(t, -95.0, *observation[entities.ThresholdMetricSignalStrength], 0.001)
					}).
					Return(alerts, nil).
					Once()
				f.alertingService.EXPECT().Publish(alerts).Return(nil).Once()
			},
			check: func(t *testing.T, report watch.Report) {
				require.Equal(t, dashboard, report.Metrics)
				require.NotNil(t, report.Stats)
				require.Equal(t, 1, report.Stats.Measurements)
				require.Equal(t, alerts, report.Alerts)
			},
		},
		{
			name: "map data failure keeps metrics",
			prepare: func(t *testing.T, f *serviceFields) {
				f.metricsService.EXPECT().GetAllMetrics(mock.Anything, entities.TimeRangeLastHour).Return(dashboard).Once()
				f.mapDataService.EXPECT().GetMapData(mock.Anything, mock.Anything).Return(nil, errors.New("timeout")).Once()
				f.alertingService.EXPECT().Evaluate(mock.Anything).Return(nil, nil).Once()
				f.alertingService.EXPECT().Publish(entities.Alerts(nil)).Return(nil).Once()
			},
			check: func(t *testing.T, report watch.Report) {
				require.Nil(t, report.Stats)
				require.Empty(t, report.Alerts)
			},
		},
		{
			name: "publish failure",
			prepare: func(t *testing.T, f *serviceFields) {
				f.metricsService.EXPECT().GetAllMetrics(mock.Anything, mock.Anything).Return(dashboard).Once()
				f.mapDataService.EXPECT().GetMapData(mock.Anything, mock.Anything).Return(entities.MapDataPoints{}, nil).Once()
				f.alertingService.EXPECT().Evaluate(mock.Anything).Return(alerts, nil).Once()
				f.alertingService.EXPECT().Publish(alerts).Return(errors.New("nats down")).Once()
			},
			expectedErr: true,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			f := newServiceFields(t)
			testCase.prepare(t, f)

			report, err := f.service().Tick(context.Background(), entities.TimeRangeLastHour)
			if testCase.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			testCase.check(t, report)
		})
	}
}

func TestService_Run(t *testing.T) {
	t.Parallel()

	f := newServiceFields(t)
	f.sessionWatcher.EXPECT().
		Watch(mock.Anything, constants.SessionCheckInterval).
		Run(func(ctx context.Context, _ time.Duration) { <-ctx.Done() }).
		Return().
		Once()
	f.metricsService.EXPECT().GetAllMetrics(mock.Anything, mock.Anything).Return(entities.DashboardMetrics{})
	f.mapDataService.EXPECT().GetMapData(mock.Anything, mock.Anything).Return(entities.MapDataPoints{}, nil)
	f.alertingService.EXPECT().Evaluate(mock.Anything).Return(nil, nil)
	f.alertingService.EXPECT().Publish(mock.Anything).Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var reports atomic.Int32
	done := make(chan struct{})
	go func() {
		defer close(done)
		f.service().Run(ctx, 20*time.Millisecond, entities.TimeRangeLastDay, func(watch.Report) {
			if reports.Add(1) == 3 {
				cancel()
			}
		})
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watch did not stop")
	}
	require.GreaterOrEqual(t, reports.Load(), int32(3))
}
