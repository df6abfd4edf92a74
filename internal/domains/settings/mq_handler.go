package settings

import (
	"github.com/nats-io/nats.go"

	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

type (
	ISettingsService interface {
		Get() (settings entities.Settings, err error)
	}

	MQHandler struct {
		settingsService ISettingsService
	}
)

func NewMQHandler(settingsService ISettingsService) *MQHandler {
	return &MQHandler{
		settingsService: settingsService,
	}
}

func (h *MQHandler) GetSettings(_ *nats.Msg) (resp any) {
	settings, err := h.settingsService.Get()
	if err != nil {
		return entities.NewInternalErrorResponse(err.Error())
	}

	response := struct {
		entities.MQResponse

		Settings entities.Settings `json:"settings"`
	}{
		MQResponse: entities.NewOkResponse(),
		Settings:   settings,
	}

	return response
}
