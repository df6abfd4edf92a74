package main

import (
	"errors"

	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/mapdata"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

var userFacingErrors = []error{
	errs.ErrNotAuthenticated,
	errs.ErrForbidden,
	errs.ErrSessionExpired,
	errs.ErrInvalidCredentials,
	errs.ErrMissingCredentials,
	errs.ErrLoginFailed,
	errs.ErrProfileFailed,
}

// bannerMessage is the one line shown when a command fails.
func bannerMessage(err error) string {
	for _, userErr := range userFacingErrors {
		if errors.Is(err, userErr) {
			return userErr.Error()
		}
	}

	var fetchErr *mapdata.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		return lo.Ternary(lo.IsNotEmpty(apiErr.Message), apiErr.Message, apiErr.Status)
	}

	return err.Error()
}
