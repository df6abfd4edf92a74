package mapdata_test

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

func TestStats(t *testing.T) {
	t.Parallel()

	empty := mapdata.Stats(nil)
	require.Zero(t, empty.Measurements)
	require.Nil(t, empty.AverageSignalStrength)
	require.NotNil(t, empty.Technologies)

	markers := mapdata.Markers(entities.MapDataPoints{
		{Latitude: "35.0", Longitude: "51.0", SignalStrength: lo.ToPtr(-70.0), SignalQuality: lo.ToPtr(80.0), CellularTechnology: "LTE"},
		{Latitude: "36.0", Longitude: "52.0", SignalStrength: lo.ToPtr(-90.0), CellularTechnology: "LTE"},
		{Latitude: "35.5", Longitude: "51.5"},
	}, coloring.MetricSignal)

	stats := mapdata.Stats(markers)
	require.Equal(t, 3, stats.Measurements)
	require.InDelta(t, 35.5, stats.CenterLat, 1e-6)
	require.InDelta(t, 51.5, stats.CenterLong, 1e-6)
	require.InDelta(t, -80.0, *stats.AverageSignalStrength, 1e-9)
	require.InDelta(t, 80.0, *stats.AverageSignalQuality, 1e-9)
	require.Equal(t, map[string]int{"LTE": 2, "Unknown": 1}, stats.Technologies)

	// one degree square near 35.5N is roughly 111 km by 90.6 km
	require.InDelta(t, 10060, stats.AreaKm2, 150)
}

func TestBoundsRect(t *testing.T) {
	t.Parallel()

	rect := mapdata.BoundsRect(entities.Bounds{MinLat: 0, MaxLat: 1, MinLong: 0, MaxLong: 1})
	require.InDelta(t, 0.5, rect.Center().Lat.Degrees(), 1e-9)
	require.InDelta(t, 12364, mapdata.AreaKm2(rect), 50)
}
