package constants

const (
	DefaultLogfilePath = "/var/log/qoe/qoe_monitor.log"
	DefaultDataDir     = "/var/lib/qoe/monitor-db"
)
