package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/settings"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/storage"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

func newTestService(t *testing.T) *settings.Service {
	t.Helper()

	db, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return settings.NewService(storage.NewKV(db))
}

func TestService_GetDefaults(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	got, err := service.Get()
	require.NoError(t, err)
	require.Equal(t, entities.DefaultSettings(), got)
	require.Len(t, got.Thresholds, 2)
	require.Equal(t, "High Latency", got.Thresholds[0].Name)
	require.Equal(t, 300, got.SyncIntervalSec)
	require.Equal(t, 12, got.Map.Zoom)
}

func TestService_Save(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name        string
		mutate      func(s *entities.Settings)
		expectedErr bool
	}{
		{
			name:   "valid",
			mutate: func(s *entities.Settings) { s.SyncIntervalSec = 600 },
		},
		{
			name:        "sync below minimum",
			mutate:      func(s *entities.Settings) { s.SyncIntervalSec = 30 },
			expectedErr: true,
		},
		{
			name:        "sync not whole minutes",
			mutate:      func(s *entities.Settings) { s.SyncIntervalSec = 90 },
			expectedErr: true,
		},
		{
			name:        "zoom out of range",
			mutate:      func(s *entities.Settings) { s.Map.Zoom = 19 },
			expectedErr: true,
		},
		{
			name:        "latitude out of range",
			mutate:      func(s *entities.Settings) { s.Map.CenterLat = 91 },
			expectedErr: true,
		},
		{
			name:        "unknown export format",
			mutate:      func(s *entities.Settings) { s.Export.Format = "xlsx" },
			expectedErr: true,
		},
		{
			name:        "unknown operator",
			mutate:      func(s *entities.Settings) { s.Thresholds[0].Operator = "ne" },
			expectedErr: true,
		},
		{
			name:        "duplicate ids",
			mutate:      func(s *entities.Settings) { s.Thresholds[1].ID = s.Thresholds[0].ID },
			expectedErr: true,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			service := newTestService(t)
			value := entities.DefaultSettings()
			testCase.mutate(&value)

			err := service.Save(value)
			if testCase.expectedErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			got, err := service.Get()
			require.NoError(t, err)
			require.Equal(t, value, got)
		})
	}
}

func TestService_Thresholds(t *testing.T) {
	t.Parallel()

	service := newTestService(t)

	created, err := service.UpsertThreshold(entities.ThresholdConfig{
		Name:     "Slow Download",
		Metric:   entities.ThresholdMetricDownloadSpeed,
		Operator: entities.OperatorLT,
		Value:    5,
		Severity: entities.SeverityWarning,
		Enabled:  true,
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	created.Value = 2
	_, err = service.UpsertThreshold(created)
	require.NoError(t, err)

	got, err := service.Get()
	require.NoError(t, err)
	require.Len(t, got.Thresholds, 3)
	require.InDelta(t, 2.0, got.Thresholds[2].Value, 0.001)

	require.NoError(t, service.DeleteThreshold("1"))
	require.ErrorIs(t, service.DeleteThreshold("1"), errs.ErrThresholdNotFound)

	got, err = service.Get()
	require.NoError(t, err)
	require.Len(t, got.Thresholds, 2)
	require.Equal(t, "Low Signal Strength", got.Thresholds[0].Name)

	_, err = service.UpsertThreshold(entities.ThresholdConfig{Name: "broken", Metric: "jitter"})
	require.Error(t, err)

	reset, err := service.Reset()
	require.NoError(t, err)
	require.Equal(t, entities.DefaultSettings(), reset)

	got, err = service.Get()
	require.NoError(t, err)
	require.Len(t, got.Thresholds, 2)
	require.Equal(t, "High Latency", got.Thresholds[0].Name)
}

func TestService_ImportThresholds(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	valid := filepath.Join(dir, "thresholds.yaml")
	require.NoError(t, os.WriteFile(valid, []byte(`thresholds:
  - id: "1"
    name: Very High Latency
    metric: latency
    operator: gte
    value: 250
    severity: critical
    enabled: true
  - name: Poor Quality
    metric: signalQuality
    operator: lt
    value: 40
    severity: info
    enabled: false
`), 0o600))

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte(`thresholds:
  - name: Missing operator
    metric: latency
    severity: info
`), 0o600))

	service := newTestService(t)

	imported, err := service.ImportThresholds(valid)
	require.NoError(t, err)
	require.Equal(t, 2, imported)

	got, err := service.Get()
	require.NoError(t, err)
	require.Len(t, got.Thresholds, 3)
	require.Equal(t, "Very High Latency", got.Thresholds[0].Name)
	require.Equal(t, entities.SeverityCritical, got.Thresholds[0].Severity)
	require.Equal(t, "Poor Quality", got.Thresholds[2].Name)

	_, err = service.ImportThresholds(invalid)
	require.Error(t, err)

	_, err = service.ImportThresholds(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}
