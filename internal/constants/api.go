package constants

// backend REST paths, relative to the API base url.
const (
	PathAuthLogin = "/auth/login"
	PathAuthMe    = "/auth/me"

	PathAvgDownSpeed        = "/metrics/avg-down-speed"
	PathAvgUpSpeed          = "/metrics/avg-up-speed"
	PathAvgLatency          = "/metrics/avg-latency"
	PathNetworkAvailability = "/metrics/network-availability"
	PathNetworkHistogram    = "/metrics/network-histogram"
	PathNetworkDistribution = "/metrics/network-distribution"
	PathDetailedList        = "/metrics/detailed-list"
	PathMapData             = "/metrics/map-data"
	PathRegionList          = "/metrics/region-list"

	PathClientConfig = "/config"
	PathUsers        = "/users"
	PathUser         = "/users/{id}"
)
