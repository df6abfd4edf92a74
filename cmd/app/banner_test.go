package main

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

func TestBannerMessage(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "user facing error",
			err:      fmt.Errorf("Login: %w", errors.Join(errs.ErrLoginFailed, errors.New("dial tcp: refused"))),
			expected: "Login failed. Please try again.",
		},
		{
			name:     "session expired",
			err:      fmt.Errorf("GetProfile: %w", errs.ErrSessionExpired),
			expected: "Session expired. Please login again.",
		},
		{
			name:     "map fetch error",
			err:      fmt.Errorf("GetMapData: %w", &mapdata.FetchError{Message: "No data in area"}),
			expected: "No data in area",
		},
		{
			name: "api error with message",
			err: fmt.Errorf("List: %w", &apiclient.APIError{
				StatusCode: http.StatusConflict,
				Status:     "409 Conflict",
				Message:    "email already exists",
			}),
			expected: "email already exists",
		},
		{
			name:     "api error without message",
			err:      &apiclient.APIError{StatusCode: http.StatusBadGateway, Status: "502 Bad Gateway"},
			expected: "502 Bad Gateway",
		},
		{
			name:     "other",
			err:      errors.New("boom"),
			expected: "boom",
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.Equal(t, testCase.expected, bannerMessage(testCase.err))
		})
	}
}
