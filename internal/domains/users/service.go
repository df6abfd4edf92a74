package users

import (
	"context"
	"fmt"
	"strconv"

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
		Post(ctx context.Context, path string, body, result any, options ...apiclient.RequestOption) (err error)
		Delete(ctx context.Context, path string, result any, options ...apiclient.RequestOption) (err error)
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

// List returns a page of users. Pages start at 1.
func (s *Service) List(ctx context.Context, page, pageSize int) (usersPage entities.UsersPage, err error) {
	page = max(page, 1)
	if pageSize <= 0 {
		pageSize = constants.DefaultUsersPerPage
	}

	var resp entities.UsersResponse
	if err = s.apiClient.Get(ctx, constants.PathUsers, &resp, apiclient.WithQuery(map[string]string{
		"page":      strconv.Itoa(page),
		"page_size": strconv.Itoa(pageSize),
	})); err != nil {
		return usersPage, fmt.Errorf("List: %w", err)
	}

	if !resp.Success {
		return usersPage, fmt.Errorf("List: %w: %s", errs.ErrUnsuccessfulResponse,
			lo.Ternary(lo.IsNotEmpty(resp.Message), resp.Message, "Failed to fetch users"))
	}

	return resp.Data, nil
}

func (s *Service) Create(ctx context.Context, req entities.CreateUserRequest) (user entities.User, err error) {
	if err = s.validate.Struct(req); err != nil {
		return user, fmt.Errorf("Create: %w", err)
	}

	var resp entities.Response[entities.User]
	if err = s.apiClient.Post(ctx, constants.PathUsers, req, &resp); err != nil {
		return user, fmt.Errorf("Create: %w", err)
	}

	if !resp.Success {
		return user, fmt.Errorf("Create: %w: %s", errs.ErrUnsuccessfulResponse,
			lo.Ternary(lo.IsNotEmpty(resp.Message), resp.Message, "Failed to create user"))
	}

	log.Info().Str("email", resp.Data.Email).Str("role", resp.Data.Role).Msg("Create: user created")
	return resp.Data, nil
}

func (s *Service) Delete(ctx context.Context, id int64) (err error) {
	if id <= 0 {
		return fmt.Errorf("Delete: %w: invalid user id %d", errs.ErrBadRequest, id)
	}

	if err = s.apiClient.Delete(ctx, constants.PathUser, nil, apiclient.WithPathParams(map[string]string{
		"id": strconv.FormatInt(id, 10),
	})); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}

	log.Info().Int64("id", id).Msg("Delete: user deleted")
	return nil
}
