package metrics_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/metrics"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type noSession struct{}

func (noSession) Token() (string, error) { return "", nil }
func (noSession) Clear() error           { return nil }

func newTestService(t *testing.T, mux *http.ServeMux) *metrics.Service {
	t.Helper()

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return metrics.NewService(apiclient.NewService(server.URL, time.Second, noSession{}))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func metricHandler(data map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "message": "ok", "data": data})
	}
}

func TestService_GetAllMetrics(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		prepare  func(mux *http.ServeMux)
		expected func(t *testing.T, m entities.DashboardMetrics)
	}{
		{
			name: "all metrics",
			prepare: func(mux *http.ServeMux) {
				mux.HandleFunc("/metrics/avg-down-speed", metricHandler(map[string]any{"averageSpeed": 12500, "unit": "kbps"}))
				mux.HandleFunc("/metrics/avg-up-speed", metricHandler(map[string]any{"averageSpeed": 850, "unit": "kbps"}))
				mux.HandleFunc("/metrics/avg-latency", metricHandler(map[string]any{"averageLatency": 42.37, "unit": "ms"}))
				mux.HandleFunc("/metrics/network-availability", metricHandler(map[string]any{"availability": 99.56, "unit": "%"}))
			},
			expected: func(t *testing.T, m entities.DashboardMetrics) {
				require.NotNil(t, m.DownloadSpeed)
				require.Equal(t, "12.5 Mbps", m.DownloadSpeed.Formatted)
				require.NotNil(t, m.UploadSpeed)
				require.Equal(t, "850 kbps", m.UploadSpeed.Formatted)
				require.NotNil(t, m.Latency)
				require.Equal(t, "42.4 ms", m.Latency.Formatted)
				require.NotNil(t, m.Availability)
				require.Equal(t, "99.6%", m.Availability.Formatted)
			},
		},
		{
			name: "one failed metric stays nil",
			prepare: func(mux *http.ServeMux) {
				mux.HandleFunc("/metrics/avg-down-speed", metricHandler(map[string]any{"averageSpeed": 1000, "unit": "kbps"}))
				mux.HandleFunc("/metrics/avg-up-speed", metricHandler(map[string]any{"averageSpeed": 500, "unit": "kbps"}))
				mux.HandleFunc("/metrics/avg-latency", func(w http.ResponseWriter, _ *http.Request) {
					w.WriteHeader(http.StatusInternalServerError)
				})
				mux.HandleFunc("/metrics/network-availability", metricHandler(map[string]any{"availability": 97, "unit": "%"}))
			},
			expected: func(t *testing.T, m entities.DashboardMetrics) {
				require.Equal(t, "1.0 Mbps", m.DownloadSpeed.Formatted)
				require.Equal(t, "500 kbps", m.UploadSpeed.Formatted)
				require.Nil(t, m.Latency)
				require.Equal(t, "97.0%", m.Availability.Formatted)
			},
		},
		{
			name: "absent value stays nil",
			prepare: func(mux *http.ServeMux) {
				mux.HandleFunc("/metrics/avg-down-speed", metricHandler(map[string]any{"unit": "kbps"}))
				mux.HandleFunc("/metrics/avg-up-speed", metricHandler(map[string]any{"averageLatency": 3, "unit": "kbps"}))
			},
			expected: func(t *testing.T, m entities.DashboardMetrics) {
				require.Nil(t, m.DownloadSpeed)
				require.Nil(t, m.UploadSpeed)
				require.Nil(t, m.Latency)
				require.Nil(t, m.Availability)
			},
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			testCase.prepare(mux)
			service := newTestService(t, mux)

			testCase.expected(t, service.GetAllMetrics(context.Background(), entities.TimeRangeLastDay))
		})
	}
}

func TestService_GetAvgLatencySendsRange(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics/avg-latency", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start") != "last-week" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"averageLatency": 10, "unit": "ms"}})
	})
	service := newTestService(t, mux)

	metric, err := service.GetAvgLatency(context.Background(), entities.TimeRangeLastWeek)
	require.NoError(t, err)
	require.NotNil(t, metric.AverageLatency)
	require.InDelta(t, 10.0, *metric.AverageLatency, 0.001)
}

func TestService_GetNetworkDistribution(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics/network-distribution", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start") == "last-hour" {
			writeJSON(w, http.StatusOK, map[string]any{"success": false, "message": "no data for range"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"distribution": []map[string]any{
				{"technology": "LTE", "count": 3},
				{"technology": "NR", "count": 1},
			},
		}})
	})
	service := newTestService(t, mux)

	chart, err := service.GetNetworkDistribution(context.Background(), entities.TimeRangeLastDay)
	require.NoError(t, err)
	require.Equal(t, []string{"LTE", "NR"}, chart.Labels)
	require.Equal(t, []int{3, 1}, chart.Data)
	require.Equal(t, []float64{75, 25}, chart.Percentages)

	_, err = service.GetNetworkDistribution(context.Background(), entities.TimeRangeLastHour)
	require.ErrorIs(t, err, errs.ErrUnsuccessfulResponse)
	require.Contains(t, err.Error(), "no data for range")
}

func TestService_GetDetailedList(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics/detailed-list", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"labels":      []string{"device_id", "metric"},
			"values":      []map[string]any{{"device_id": "dev-1", "metric": query.Get("metric")}},
			"page":        2,
			"total_pages": 4,
			"total_count": 31,
		}})
	})
	service := newTestService(t, mux)

	testTable := []struct {
		name        string
		params      entities.DetailedListParams
		expectedErr error
	}{
		{
			name:   "dns list",
			params: entities.DetailedListParams{Start: entities.TimeRangeLastDay, Page: 2, Metric: entities.MetricTypeDNS},
		},
		{
			name:        "unknown metric",
			params:      entities.DetailedListParams{Start: entities.TimeRangeLastDay, Page: 1, Metric: "ftp"},
			expectedErr: errs.ErrUnknownMetricType,
		},
		{
			name:        "unknown range",
			params:      entities.DetailedListParams{Start: "yesterday", Page: 1, Metric: entities.MetricTypePing},
			expectedErr: errs.ErrUnknownTimeRange,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			list, err := service.GetDetailedList(context.Background(), testCase.params)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				return
			}

			require.NoError(t, err)
			require.Equal(t, 31, list.TotalCount)
			require.Equal(t, "dns", list.Values[0]["metric"])
		})
	}

	_, err := service.GetDetailedList(context.Background(), entities.DetailedListParams{Start: entities.TimeRangeLastDay, Metric: entities.MetricTypeDNS})
	require.Error(t, err)
}

func TestService_GetRegionList(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("/metrics/region-list", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{
			"regions": []map[string]any{
				{"name": "North  Tehran", "average_strength": -72.4, "strength_class": "good"},
				{"name": "Karaj", "average_strength": -95.1, "strength_class": "poor"},
			},
		}})
	})
	service := newTestService(t, mux)

	regions, err := service.GetRegionList(context.Background())
	require.NoError(t, err)
	require.Len(t, regions, 2)
	require.Equal(t, "north-tehran", regions[0].ID)
	require.Equal(t, "North  Tehran", regions[0].Name)
	require.Equal(t, "karaj", regions[1].ID)
}
