package mapdata

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/telemetry"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

const defaultErrorMessage = "Failed to fetch map data"

type (
	IAPIClient interface {
		Get(ctx context.Context, path string, result any, options ...apiclient.RequestOption) (err error)
	}
)

var validate = validator.New()

type Service struct {
	apiClient IAPIClient
}

func NewService(apiClient IAPIClient) *Service {
	return &Service{
		apiClient: apiClient,
	}
}

// GetMapData fetches raw points, scoped to bounds when given.
func (s *Service) GetMapData(ctx context.Context, bounds *entities.Bounds) (points entities.MapDataPoints, err error) {
	var options []apiclient.RequestOption
	if bounds != nil {
		if err = ValidateBounds(*bounds); err != nil {
			return nil, fmt.Errorf("GetMapData: %w", err)
		}

		options = append(options, apiclient.WithQuery(map[string]string{
			"min_lat":  formatCoordinate(bounds.MinLat),
			"max_lat":  formatCoordinate(bounds.MaxLat),
			"min_long": formatCoordinate(bounds.MinLong),
			"max_long": formatCoordinate(bounds.MaxLong),
		}))
	}

	var resp entities.MapDataResponse
	if err = s.apiClient.Get(ctx, constants.PathMapData, &resp, options...); err != nil {
		return nil, fmt.Errorf("GetMapData: %w", err)
	}

	if !resp.Success || resp.Data == nil || resp.Data.Points == nil {
		return nil, fmt.Errorf("GetMapData: %w", &FetchError{
			Message: lo.Ternary(lo.IsNotEmpty(resp.Message), resp.Message, defaultErrorMessage),
		})
	}

	return resp.Data.Points, nil
}

func ValidateBounds(bounds entities.Bounds) (err error) {
	if err = validate.Struct(bounds); err != nil {
		return fmt.Errorf("ValidateBounds: %w: %w", errs.ErrInvalidBounds, err)
	}

	return nil
}

// FetchError is an unsuccessful map data envelope.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return errs.ErrUnsuccessfulResponse
}

// ParseCoordinates returns the point position. Blank, non-numeric, non-finite
// or out of range values are rejected.
func ParseCoordinates(point entities.MapDataPoint) (lat, long float64, err error) {
	if lat, err = parseCoordinate(point.Latitude, 90); err != nil {
		return 0, 0, fmt.Errorf("ParseCoordinates: latitude: %w", err)
	}

	if long, err = parseCoordinate(point.Longitude, 180); err != nil {
		return 0, 0, fmt.Errorf("ParseCoordinates: longitude: %w", err)
	}

	return lat, long, nil
}

func parseCoordinate(value string, limit float64) (coordinate float64, err error) {
	value = strings.TrimSpace(value)
	if lo.IsEmpty(value) {
		return 0, fmt.Errorf("%w: empty", errs.ErrInvalidCoordinates)
	}

	if coordinate, err = strconv.ParseFloat(value, 64); err != nil {
		return 0, fmt.Errorf("%w: %q", errs.ErrInvalidCoordinates, value)
	}

	if math.IsNaN(coordinate) || math.IsInf(coordinate, 0) || coordinate < -limit || coordinate > limit {
		return 0, fmt.Errorf("%w: %q out of range", errs.ErrInvalidCoordinates, value)
	}

	return coordinate, nil
}

// FilterValidPoints drops points without usable coordinates.
func FilterValidPoints(points entities.MapDataPoints) entities.MapDataPoints {
	valid := make(entities.MapDataPoints, 0, len(points))
	for index, point := range points {
		if _, _, err := ParseCoordinates(point); err != nil {
			log.Warn().
				Err(err).
				Int("index", index).
				Str("deviceID", point.DeviceID).
				Str("latitude", point.Latitude).
				Str("longitude", point.Longitude).
				Msg("FilterValidPoints: point dropped")
			continue
		}

		valid = append(valid, point)
	}

	if dropped := len(points) - len(valid); dropped > 0 {
		telemetry.MapPointsDropped(dropped)
		log.Debug().Msgf("FilterValidPoints: kept %d/%d points", len(valid), len(points))
	}

	return valid
}

func formatCoordinate(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
