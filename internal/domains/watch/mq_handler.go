package watch

import (
	"github.com/nats-io/nats.go"

	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type (
	IReportSource interface {
		LastReport() (report Report, ok bool)
	}

	MQHandler struct {
		reportSource IReportSource
	}
)

func NewMQHandler(reportSource IReportSource) *MQHandler {
	return &MQHandler{
		reportSource: reportSource,
	}
}

func (h *MQHandler) GetReport(_ *nats.Msg) (resp any) {
	report, ok := h.reportSource.LastReport()
	if !ok {
		return entities.NewNotFoundResponse("no report yet")
	}

	response := struct {
		entities.MQResponse

		Report Report `json:"report"`
	}{
		MQResponse: entities.NewOkResponse(),
		Report:     report,
	}

	return response
}

func (h *MQHandler) GetAlerts(_ *nats.Msg) (resp any) {
	report, ok := h.reportSource.LastReport()
	if !ok {
		return entities.NewNotFoundResponse("no report yet")
	}

	response := struct {
		entities.MQResponse

		Alerts entities.Alerts `json:"alerts"`
	}{
		MQResponse: entities.NewOkResponse(),
		Alerts:     report.Alerts,
	}

	return response
}

func (h *MQHandler) GetMapStats(_ *nats.Msg) (resp any) {
	report, ok := h.reportSource.LastReport()
	if !ok || report.Stats == nil {
		return entities.NewNotFoundResponse("no map stats yet")
	}

	response := struct {
		entities.MQResponse

		Stats entities.AreaStats `json:"stats"`
	}{
		MQResponse: entities.NewOkResponse(),
		Stats:      *report.Stats,
	}

	return response
}
