package export

import (
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/coloring"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type Format string

const (
	FormatCSV  Format = "csv"
	FormatKML  Format = "kml"
	FormatJSON Format = "json"
)

func ParseFormat(value string) (Format, error) {
	format := Format(strings.ToLower(value))
	switch format {
	case FormatCSV, FormatKML, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("ParseFormat: %w: %q", errs.ErrUnknownExportFormat, value)
	}
}

type Options struct {
	Format            Format
	IncludeDeviceInfo bool
}

// Write renders markers in the requested format.
func Write(w io.Writer, markers []coloring.Marker, options Options) (err error) {
	switch options.Format {
	case FormatCSV:
		err = writeCSV(w, markers, options.IncludeDeviceInfo)
	case FormatKML:
		err = writeKML(w, markers, options.IncludeDeviceInfo)
	case FormatJSON:
		err = writeJSON(w, markers, options.IncludeDeviceInfo)
	default:
		err = fmt.Errorf("%w: %q", errs.ErrUnknownExportFormat, options.Format)
	}

	if err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

var (
	baseColumns   = []string{"timestamp", "latitude", "longitude", "signal_strength", "signal_quality", "level", "color"}
	deviceColumns = []string{"device_id", "cellular_technology", "network_operator_name", "network_operator_mccmnc", "lac", "rac", "tac", "cell_id", "arfcn"}
)

func writeCSV(w io.Writer, markers []coloring.Marker, includeDeviceInfo bool) (err error) {
	writer := csv.NewWriter(w)

	header := baseColumns
	if includeDeviceInfo {
		header = append(append([]string{}, baseColumns...), deviceColumns...)
	}

	if err = writer.Write(header); err != nil {
		return err
	}

	for _, marker := range markers {
		record := []string{
			formatTimestamp(marker.MapDataPoint),
			formatFloat(marker.Lat),
			formatFloat(marker.Long),
			formatOptionalFloat(marker.SignalStrength),
			formatOptionalFloat(marker.SignalQuality),
			string(marker.Level),
			marker.Color,
		}
		if includeDeviceInfo {
			record = append(record,
				marker.DeviceID,
				marker.CellularTechnology,
				marker.NetworkOperatorName,
				marker.NetworkOperatorMCCMNC,
				formatOptionalInt(marker.LAC),
				formatOptionalInt(marker.RAC),
				formatOptionalInt(marker.TAC),
				formatOptionalInt(marker.CellID),
				formatOptionalInt(marker.ARFCN),
			)
		}

		if err = writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

type jsonMarker struct {
	Timestamp      string         `json:"timestamp"`
	Latitude       float64        `json:"latitude"`
	Longitude      float64        `json:"longitude"`
	SignalStrength *float64       `json:"signal_strength"`
	SignalQuality  *float64       `json:"signal_quality"`
	Level          coloring.Level `json:"level"`
	Color          string         `json:"color"`
	Device         *jsonDevice    `json:"device,omitempty"`
}

type jsonDevice struct {
	DeviceID              string `json:"device_id"`
	CellularTechnology    string `json:"cellular_technology,omitempty"`
	NetworkOperatorName   string `json:"network_operator_name,omitempty"`
	NetworkOperatorMCCMNC string `json:"network_operator_mccmnc,omitempty"`
	LAC                   *int64 `json:"lac,omitempty"`
	RAC                   *int64 `json:"rac,omitempty"`
	TAC                   *int64 `json:"tac,omitempty"`
	CellID                *int64 `json:"cell_id,omitempty"`
	ARFCN                 *int64 `json:"arfcn,omitempty"`
}

func writeJSON(w io.Writer, markers []coloring.Marker, includeDeviceInfo bool) (err error) {
	items := lo.Map(markers, func(marker coloring.Marker, _ int) jsonMarker {
		item := jsonMarker{
			Timestamp:      formatTimestamp(marker.MapDataPoint),
			Latitude:       marker.Lat,
			Longitude:      marker.Long,
			SignalStrength: marker.SignalStrength,
			SignalQuality:  marker.SignalQuality,
			Level:          marker.Level,
			Color:          marker.Color,
		}
		if includeDeviceInfo {
			item.Device = &jsonDevice{
				DeviceID:              marker.DeviceID,
				CellularTechnology:    marker.CellularTechnology,
				NetworkOperatorName:   marker.NetworkOperatorName,
				NetworkOperatorMCCMNC: marker.NetworkOperatorMCCMNC,
				LAC:                   optionalInt(marker.LAC),
				RAC:                   optionalInt(marker.RAC),
				TAC:                   optionalInt(marker.TAC),
				CellID:                optionalInt(marker.CellID),
				ARFCN:                 optionalInt(marker.ARFCN),
			}
		}

		return item
	})

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

type kmlDocument struct {
	XMLName  xml.Name `xml:"kml"`
	XMLNS    string   `xml:"xmlns,attr"`
	Document struct {
		Name       string         `xml:"name"`
		Placemarks []kmlPlacemark `xml:"Placemark"`
	} `xml:"Document"`
}

type kmlPlacemark struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
	Style       struct {
		IconStyle struct {
			Color string `xml:"color"`
		} `xml:"IconStyle"`
	} `xml:"Style"`
	Point struct {
		Coordinates string `xml:"coordinates"`
	} `xml:"Point"`
}

func writeKML(w io.Writer, markers []coloring.Marker, includeDeviceInfo bool) (err error) {
	var doc kmlDocument
	doc.XMLNS = "http://www.opengis.net/kml/2.2"
	doc.Document.Name = "QoE measurements"

	for i, marker := range markers {
		var placemark kmlPlacemark
		placemark.Name = fmt.Sprintf("Measurement %d", i+1)
		if includeDeviceInfo && lo.IsNotEmpty(marker.DeviceID) {
			placemark.Name = marker.DeviceID
		}

		lines := []string{
			"Signal Strength: " + lo.Ternary(marker.SignalStrength != nil, formatOptionalFloat(marker.SignalStrength)+" dBm", "N/A"),
			"Signal Quality: " + lo.Ternary(marker.SignalQuality != nil, formatOptionalFloat(marker.SignalQuality), "N/A"),
			"Level: " + string(marker.Level),
		}
		if includeDeviceInfo {
			lines = append(lines,
				"Technology: "+lo.Ternary(lo.IsNotEmpty(marker.CellularTechnology), marker.CellularTechnology, "N/A"),
				"Operator: "+lo.Ternary(lo.IsNotEmpty(marker.NetworkOperatorName), marker.NetworkOperatorName, "N/A"),
				"MCC-MNC: "+lo.Ternary(lo.IsNotEmpty(marker.NetworkOperatorMCCMNC), marker.NetworkOperatorMCCMNC, "N/A"),
			)
		}
		placemark.Description = strings.Join(lines, "\n")
		placemark.Style.IconStyle.Color = kmlColor(marker.Color)
		placemark.Point.Coordinates = formatFloat(marker.Long) + "," + formatFloat(marker.Lat) + ",0"

		doc.Document.Placemarks = append(doc.Document.Placemarks, placemark)
	}

	if _, err = io.WriteString(w, xml.Header); err != nil {
		return err
	}

	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err = encoder.Encode(doc); err != nil {
		return err
	}

	_, err = io.WriteString(w, "\n")
	return err
}

// kmlColor converts #rrggbb into opaque aabbggrr.
func kmlColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return "ffffffff"
	}

	return "ff" + hex[4:6] + hex[2:4] + hex[0:2]
}

// formatTimestamp normalizes known layouts to RFC3339 and passes anything else through.
func formatTimestamp(point entities.MapDataPoint) string {
	if parsed, ok := point.Time(); ok {
		return parsed.UTC().Format(time.RFC3339)
	}

	return strings.TrimSpace(point.Timestamp)
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func formatOptionalFloat(value *float64) string {
	if value == nil {
		return ""
	}

	return formatFloat(*value)
}

func formatOptionalInt(value entities.OptionalInt) string {
	if !value.Valid {
		return ""
	}

	return strconv.FormatInt(value.Value, 10)
}

func optionalInt(value entities.OptionalInt) *int64 {
	if !value.Valid {
		return nil
	}

	return lo.ToPtr(value.Value)
}
