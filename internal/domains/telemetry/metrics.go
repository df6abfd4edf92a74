package telemetry

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	promAPIRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "qoe_monitor_api_requests_total",
		Help: "Backend API requests by method, path and status class",
	}, []string{"method", "path", "status"})
	promAPIDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "qoe_monitor_api_request_duration_seconds",
		Help:    "Backend API request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})
	promMapFetches = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "qoe_monitor_map_fetches_total",
		Help: "Map data fetches issued by viewport loaders, by result",
	}, []string{"result"})
	promMapPointsDropped = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "qoe_monitor_map_points_dropped_total",
		Help: "Map points discarded because of invalid coordinates",
	})
	promMapFeedClients = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "qoe_monitor_map_feed_clients",
		Help: "Open map feed websocket connections",
	})
	promAlertsRaised = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "qoe_monitor_alerts_raised_total",
		Help: "Threshold alerts raised, by severity",
	}, []string{"severity"})
)

func init() {
	prometheus.MustRegister(
		promAPIRequests,
		promAPIDuration,
		promMapFetches,
		promMapPointsDropped,
		promMapFeedClients,
		promAlertsRaised,
	)
}

// ObserveAPIRequest records a finished backend call. statusCode 0 means transport error.
func ObserveAPIRequest(method, path string, statusCode int, elapsed time.Duration) {
	status := "error"
	if statusCode > 0 {
		status = strconv.Itoa(statusCode/100) + "xx"
	}

	promAPIRequests.WithLabelValues(method, path, status).Inc()
	promAPIDuration.WithLabelValues(method, path).Observe(elapsed.Seconds())
}

func MapFetched(success bool) {
	result := "success"
	if !success {
		result = "error"
	}

	promMapFetches.WithLabelValues(result).Inc()
}

func MapPointsDropped(count int) {
	promMapPointsDropped.Add(float64(count))
}

func MapFeedClientConnected() {
	promMapFeedClients.Inc()
}

func MapFeedClientDisconnected() {
	promMapFeedClients.Dec()
}

func AlertRaised(severity string) {
	promAlertsRaised.WithLabelValues(severity).Inc()
}
