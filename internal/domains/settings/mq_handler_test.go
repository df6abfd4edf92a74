package settings_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/settings"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func TestMQHandler_GetSettings(t *testing.T) {
	t.Parallel()

	service := newTestService(t)
	require.NoError(t, service.SetSyncInterval(600))

	data, err := json.Marshal(settings.NewMQHandler(service).GetSettings(nil))
	require.NoError(t, err)

	var reply struct {
		Code     int               `json:"code"`
		Settings entities.Settings `json:"settings"`
	}
	require.NoError(t, json.Unmarshal(data, &reply))
	require.Equal(t, http.StatusOK, reply.Code)
	require.Equal(t, 600, reply.Settings.SyncIntervalSec)
	require.Len(t, reply.Settings.Thresholds, 2)
}
