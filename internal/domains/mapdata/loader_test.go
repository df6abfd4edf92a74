package mapdata_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata/mapdata_mocks"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

const testDebounce = 100 * time.Millisecond

func samplePoints() entities.MapDataPoints {
	return entities.MapDataPoints{
		{DeviceID: "a", Latitude: "35.70", Longitude: "51.40", SignalStrength: lo.ToPtr(-72.0), CellularTechnology: "LTE"},
		{DeviceID: "b", Latitude: "35.72", Longitude: "51.42", SignalStrength: lo.ToPtr(-69.0), CellularTechnology: "NR"},
		{DeviceID: "bad", Latitude: "", Longitude: "51.42"},
	}
}

func waitState(t *testing.T, loader *mapdata.Loader, state mapdata.State) mapdata.Snapshot {
	t.Helper()

	require.Eventually(t, func() bool {
		return loader.Snapshot().State == state
	}, 2*time.Second, 5*time.Millisecond)

	return loader.Snapshot()
}

func TestLoader_UpdateBoundsDebounce(t *testing.T) {
	t.Parallel()

	service := mapdata_mocks.NewMockIMapDataService(t)
	loader := mapdata.NewLoader(service, testDebounce, coloring.MetricSignal)
	t.Cleanup(loader.Close)

	last := entities.Bounds{MinLat: 35.5, MaxLat: 35.9, MinLong: 51.1, MaxLong: 51.6}

	var calls atomic.Int32
	service.EXPECT().
		GetMapData(mock.Anything, &last).
		Run(func(_ context.Context, _ *entities.Bounds) { calls.Add(1) }).
		Return(samplePoints(), nil).
		Times(1)

	for i := range 5 {
		bounds := last
		bounds.MinLat -= float64(5-i) * 0.1
		if i == 4 {
			bounds = last
		}
		require.NoError(t, loader.UpdateBounds(bounds))
		require.Equal(t, mapdata.StatePending, loader.Snapshot().State)
		time.Sleep(testDebounce / 10)
	}

	snapshot := waitState(t, loader, mapdata.StateSuccess)
	time.Sleep(3 * testDebounce)

	require.Equal(t, int32(1), calls.Load())
	require.Equal(t, &last, snapshot.Bounds)
	require.Len(t, snapshot.Markers, 2)
	require.Equal(t, coloring.LevelGood, snapshot.Markers[0].Level)
	require.Equal(t, "#eab308", snapshot.Markers[0].Color)
	require.Equal(t, coloring.LevelExcellent, snapshot.Markers[1].Level)
	require.Equal(t, 2, snapshot.Stats.Measurements)
	require.Equal(t, map[string]int{"LTE": 1, "NR": 1}, snapshot.Stats.Technologies)
}

func TestLoader_InvalidBounds(t *testing.T) {
	t.Parallel()

	service := mapdata_mocks.NewMockIMapDataService(t)
	loader := mapdata.NewLoader(service, testDebounce, coloring.MetricSignal)
	t.Cleanup(loader.Close)

	require.Error(t, loader.UpdateBounds(entities.Bounds{MinLat: 10, MaxLat: 0, MinLong: 0, MaxLong: 1}))
	require.Equal(t, mapdata.StateIdle, loader.Snapshot().State)
}

func TestLoader_ErrorClearsMarkers(t *testing.T) {
	t.Parallel()

	service := mapdata_mocks.NewMockIMapDataService(t)
	loader := mapdata.NewLoader(service, testDebounce, coloring.MetricSignal)
	t.Cleanup(loader.Close)

	service.EXPECT().
		GetMapData(mock.Anything, (*entities.Bounds)(nil)).
		Return(samplePoints(), nil).
		Once()
	service.EXPECT().
		GetMapData(mock.Anything, (*entities.Bounds)(nil)).
		Return(nil, &mapdata.FetchError{Message: "backend down"}).
		Once()

	loader.Load(context.Background())
	snapshot := loader.Snapshot()
	require.Equal(t, mapdata.StateSuccess, snapshot.State)
	require.Len(t, snapshot.Markers, 2)

	loader.Refetch(context.Background())
	snapshot = loader.Snapshot()
	require.Equal(t, mapdata.StateError, snapshot.State)
	require.Equal(t, "backend down", snapshot.Error)
	require.Empty(t, snapshot.Markers)
	require.Zero(t, snapshot.Stats.Measurements)
}

func TestLoader_SetMetric(t *testing.T) {
	t.Parallel()

	service := mapdata_mocks.NewMockIMapDataService(t)
	loader := mapdata.NewLoader(service, testDebounce, coloring.MetricSignal)
	t.Cleanup(loader.Close)

	service.EXPECT().
		GetMapData(mock.Anything, mock.Anything).
		Return(samplePoints(), nil).
		Once()

	loader.Load(context.Background())
	loader.SetMetric(coloring.MetricQuality)

	snapshot := loader.Snapshot()
	require.Equal(t, coloring.MetricQuality, snapshot.Metric)
	for _, marker := range snapshot.Markers {
		require.Equal(t, coloring.LevelPoor, marker.Level)
	}
}

func TestLoader_Changes(t *testing.T) {
	t.Parallel()

	service := mapdata_mocks.NewMockIMapDataService(t)
	loader := mapdata.NewLoader(service, testDebounce, coloring.MetricSignal)

	service.EXPECT().
		GetMapData(mock.Anything, mock.Anything).
		Return(samplePoints(), nil).
		Once()

	loader.Load(context.Background())

	snapshot, ok := <-loader.Changes()
	require.True(t, ok)
	require.Equal(t, mapdata.StateSuccess, snapshot.State)

	loader.Close()
	_, ok = <-loader.Changes()
	require.False(t, ok)

	require.NoError(t, loader.UpdateBounds(entities.Bounds{MinLat: 0, MaxLat: 1, MinLong: 0, MaxLong: 1}))
	time.Sleep(2 * testDebounce)
}
