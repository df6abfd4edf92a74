package constants

const (
	// out messages.
	MQAlertsSubjectPrefix = "qoe.alerts"

	// request/reply.
	MQMonitorGetReport   = "qoe.monitor.report"
	MQMonitorGetAlerts   = "qoe.monitor.alerts"
	MQMonitorGetSettings = "qoe.monitor.settings"
	MQMonitorGetMapStats = "qoe.monitor.map-stats"
)
