package errs

import (
	"errors"
	"fmt"
)

var (
	ErrAPIError             = fmt.Errorf("api error")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrBadRequest           = errors.New("bad request")
	ErrUnsuccessfulResponse = errors.New("unsuccessful response")
)

// shown to the user as is.
//
//nolint:stylecheck,revive // user facing messages
var (
	ErrNotAuthenticated   = errors.New("Not authenticated. Please login.")
	ErrForbidden          = errors.New("Admin role required")
	ErrSessionExpired     = errors.New("Session expired. Please login again.")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrMissingCredentials = errors.New("Email and password are required")
	ErrLoginFailed        = errors.New("Login failed. Please try again.")
	ErrProfileFailed      = errors.New("Failed to fetch user profile")
)

var (
	ErrInvalidBounds      = errors.New("invalid bounds")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrNoExpiry           = errors.New("token has no expiry")
)

var (
	ErrUnknownMetricType   = errors.New("unknown metric type")
	ErrUnknownTimeRange    = errors.New("unknown time range")
	ErrUnknownExportFormat = errors.New("unknown export format")
	ErrThresholdNotFound   = errors.New("threshold not found")
)
