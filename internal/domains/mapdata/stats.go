package mapdata

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
)

const earthRadiusKm = 6371.0088

// BoundsRect converts a viewport into an s2 rectangle.
func BoundsRect(bounds entities.Bounds) s2.Rect {
	return s2.RectFromLatLng(s2.LatLngFromDegrees(bounds.MinLat, bounds.MinLong)).
		AddPoint(s2.LatLngFromDegrees(bounds.MaxLat, bounds.MaxLong))
}

// AreaKm2 is the surface of rect on the mean earth sphere.
func AreaKm2(rect s2.Rect) float64 {
	if rect.IsEmpty() {
		return 0
	}

	return rect.Area() * earthRadiusKm * earthRadiusKm
}

// Stats summarizes markers: bounding rect centre, covered area, averages and technologies.
func Stats(markers []coloring.Marker) entities.AreaStats {
	stats := entities.AreaStats{
		Measurements: len(markers),
		Technologies: make(map[string]int),
	}
	if len(markers) == 0 {
		return stats
	}

	rect := s2.EmptyRect()
	var strengths, qualities []float64
	for _, marker := range markers {
		rect = rect.AddPoint(s2.LatLngFromDegrees(marker.Lat, marker.Long))

		if marker.SignalStrength != nil {
			strengths = append(strengths, *marker.SignalStrength)
		}

		if marker.SignalQuality != nil {
			qualities = append(qualities, *marker.SignalQuality)
		}

		stats.Technologies[lo.Ternary(lo.IsNotEmpty(marker.CellularTechnology), marker.CellularTechnology, "Unknown")]++
	}

	center := rect.Center()
	stats.CenterLat = round6(center.Lat.Degrees())
	stats.CenterLong = round6(center.Lng.Degrees())
	stats.AreaKm2 = math.Round(AreaKm2(rect)*100) / 100
	stats.AverageSignalStrength = average(strengths)
	stats.AverageSignalQuality = average(qualities)
	return stats
}

func average(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	return lo.ToPtr(math.Round(lo.Sum(values)/float64(len(values))*10) / 10)
}

func round6(value float64) float64 {
	return math.Round(value*1e6) / 1e6
}
