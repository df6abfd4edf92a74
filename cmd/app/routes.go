package main

import (
	"github.com/Fivegen-LLC/qoe-monitor/infrastructure"
	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/alerting"
)

func getMQRoutes(injector infrastructure.IInjector) map[string]alerting.Handler {
	watchMQHandler := injector.InjectWatchMQHandler()
	settingsMQHandler := injector.InjectSettingsMQHandler()

	return map[string]alerting.Handler{
		constants.MQMonitorGetReport:   watchMQHandler.GetReport,
		constants.MQMonitorGetAlerts:   watchMQHandler.GetAlerts,
		constants.MQMonitorGetMapStats: watchMQHandler.GetMapStats,
		constants.MQMonitorGetSettings: settingsMQHandler.GetSettings,
	}
}
