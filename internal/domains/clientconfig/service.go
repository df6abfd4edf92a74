package clientconfig

import (
	"context"
	"fmt"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type (
	IAPIClient interface {
		Get(ctx context.Context, path string, result any, options ...apiclient.RequestOption) (err error)
		Put(ctx context.Context, path string, body, result any, options ...apiclient.RequestOption) (err error)
	}
)

type Service struct {
	apiClient IAPIClient
	validate  *validator.Validate
}

func NewService(apiClient IAPIClient) *Service {
	return &Service{
		apiClient: apiClient,
		validate:  validator.New(),
	}
}

func (s *Service) Get(ctx context.Context) (cfg entities.ClientConfig, err error) {
	var resp entities.ClientConfigResponse
	if err = s.apiClient.Get(ctx, constants.PathClientConfig, &resp); err != nil {
		return cfg, fmt.Errorf("Get: %w", err)
	}

	if !resp.Success || resp.Data == nil {
		return cfg, fmt.Errorf("Get: %w: %s", errs.ErrUnsuccessfulResponse,
			lo.Ternary(lo.IsNotEmpty(resp.Message), resp.Message, "Failed to fetch config"))
	}

	return *resp.Data, nil
}

// Update sends the changed fields only and returns the stored config.
func (s *Service) Update(ctx context.Context, req entities.UpdateConfigRequest) (cfg entities.ClientConfig, err error) {
	if err = s.validate.Struct(req); err != nil {
		return cfg, fmt.Errorf("Update: %w", err)
	}

	if reflect.ValueOf(req).IsZero() {
		return cfg, fmt.Errorf("Update: %w: nothing to update", errs.ErrBadRequest)
	}

	var resp entities.ClientConfigResponse
	if err = s.apiClient.Put(ctx, constants.PathClientConfig, req, &resp); err != nil {
		return cfg, fmt.Errorf("Update: %w", err)
	}

	if !resp.Success || resp.Data == nil {
		return cfg, fmt.Errorf("Update: %w: %s", errs.ErrUnsuccessfulResponse,
			lo.Ternary(lo.IsNotEmpty(resp.Message), resp.Message, "Failed to update config"))
	}

	log.Info().Any("config", resp.Data).Msg("Update: client config updated")
	return *resp.Data, nil
}
