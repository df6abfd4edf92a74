package entities

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Bounds is a map viewport rectangle in degrees.
type Bounds struct {
	MinLat  float64 `json:"minLat" validate:"gte=-90,lte=90,ltefield=MaxLat"`
	MaxLat  float64 `json:"maxLat" validate:"gte=-90,lte=90"`
	MinLong float64 `json:"minLong" validate:"gte=-180,lte=180,ltefield=MaxLong"`
	MaxLong float64 `json:"maxLong" validate:"gte=-180,lte=180"`
}

// MapDataPoint is a single device measurement. Coordinates and timestamp arrive as strings.
type MapDataPoint struct {
	DeviceID              string      `json:"device_id"`
	Timestamp             string      `json:"timestamp"`
	Latitude              string      `json:"latitude"`
	Longitude             string      `json:"longitude"`
	CellularTechnology    string      `json:"cellular_technology,omitempty"`
	NetworkOperatorName   string      `json:"network_operator_name,omitempty"`
	NetworkOperatorMCCMNC string      `json:"network_operator_mccmnc,omitempty"`
	SignalStrength        *float64    `json:"signal_strength,omitempty"`
	SignalQuality         *float64    `json:"signal_quality,omitempty"`
	LAC                   OptionalInt `json:"lac"`
	RAC                   OptionalInt `json:"rac"`
	TAC                   OptionalInt `json:"tac"`
	CellID                OptionalInt `json:"cell_id"`
	ARFCN                 OptionalInt `json:"arfcn"`
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02",
}

// Time parses the measurement timestamp. Unknown formats report false.
func (p MapDataPoint) Time() (time.Time, bool) {
	value := strings.TrimSpace(p.Timestamp)
	if value == "" {
		return time.Time{}, false
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, true
		}
	}

	return time.Time{}, false
}

// OptionalInt is a cell identifier that devices report as a number, a numeric string or nothing.
type OptionalInt struct {
	Value int64
	Valid bool
}

func NewOptionalInt(value int64) OptionalInt {
	return OptionalInt{Value: value, Valid: true}
}

func (o OptionalInt) MarshalJSON() ([]byte, error) {
	if !o.Valid {
		return []byte("null"), nil
	}

	return []byte(strconv.FormatInt(o.Value, 10)), nil
}

// UnmarshalJSON never fails: values that are not integers leave the field unset.
func (o *OptionalInt) UnmarshalJSON(data []byte) error {
	*o = OptionalInt{}

	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return nil
		}
		data = []byte(strings.TrimSpace(text))
	}

	if value, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*o = NewOptionalInt(value)
		return nil
	}

	if value, err := strconv.ParseFloat(string(data), 64); err == nil && value == float64(int64(value)) {
		*o = NewOptionalInt(int64(value))
	}

	return nil
}

type MapDataPoints []MapDataPoint

type MapData struct {
	Points MapDataPoints `json:"points"`
}

type MapDataResponse = Response[*MapData]

// AreaStats summarizes the markers of a viewport.
type AreaStats struct {
	Measurements          int            `json:"measurements"`
	CenterLat             float64        `json:"centerLat"`
	CenterLong            float64        `json:"centerLong"`
	AreaKm2               float64        `json:"areaKm2"`
	AverageSignalStrength *float64       `json:"averageSignalStrength"`
	AverageSignalQuality  *float64       `json:"averageSignalQuality"`
	Technologies          map[string]int `json:"technologies"`
}
