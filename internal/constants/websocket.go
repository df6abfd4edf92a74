package constants

import (
	"time"
)

const (
	RouteMapFeed = "/ws/map"
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
)

const (
	WSPingPeriod   = 30 * time.Second
	WSPongWait     = 40 * time.Second
	WSWriteTimeout = 5 * time.Second
)

const (
	MapFeedActionRetry = "retry"
)
