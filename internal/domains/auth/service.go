package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type (
	IAPIClient interface {
		Get(ctx context.Context, path string, result any, options ...apiclient.RequestOption) (err error)
		Post(ctx context.Context, path string, body, result any, options ...apiclient.RequestOption) (err error)
	}

	ISessionStore interface {
		Save(token string, user entities.User, expiresAt time.Time) (err error)
		SetUser(user entities.User) (err error)
		Clear() (err error)
	}
)

type Service struct {
	apiClient    IAPIClient
	sessionStore ISessionStore
	validate     *validator.Validate
}

func NewService(apiClient IAPIClient, sessionStore ISessionStore) *Service {
	return &Service{
		apiClient:    apiClient,
		sessionStore: sessionStore,
		validate:     validator.New(),
	}
}

// Login authenticates against the backend and stores the session.
func (s *Service) Login(ctx context.Context, req entities.LoginRequest) (user entities.User, err error) {
	if err = s.validate.Struct(req); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				if fieldErr.Tag() == "email" {
					return user, fmt.Errorf("Login: %w", errs.ErrInvalidCredentials)
				}
			}
		}

		return user, fmt.Errorf("Login: %w", errs.ErrMissingCredentials)
	}

	var resp entities.LoginResponse
	if err = s.apiClient.Post(ctx, constants.PathAuthLogin, req, &resp); err != nil {
		log.Error().Err(err).Str("email", req.Email).Msg("Login: request error")
		switch apiclient.StatusCode(err) {
		case http.StatusUnauthorized:
			return user, fmt.Errorf("Login: %w", errs.ErrInvalidCredentials)
		case http.StatusBadRequest:
			return user, fmt.Errorf("Login: %w", errs.ErrMissingCredentials)
		default:
			return user, fmt.Errorf("Login: %w", errors.Join(errs.ErrLoginFailed, err))
		}
	}

	var expiresAt time.Time
	if resp.ExpiresAt > 0 {
		expiresAt = time.Unix(resp.ExpiresAt, 0)
	}

	if err = s.sessionStore.Save(resp.Token, resp.User, expiresAt); err != nil {
		return user, fmt.Errorf("Login: %w", errors.Join(errs.ErrLoginFailed, err))
	}

	log.Info().Str("email", resp.User.Email).Str("role", resp.User.Role).Msg("Login: logged in")
	return resp.User, nil
}

func (s *Service) Logout() (err error) {
	if err = s.sessionStore.Clear(); err != nil {
		return fmt.Errorf("Logout: %w", err)
	}

	return nil
}

// GetProfile refreshes the stored user from the backend.
func (s *Service) GetProfile(ctx context.Context) (user entities.User, err error) {
	var resp entities.User
	if err = s.apiClient.Get(ctx, constants.PathAuthMe, &resp); err != nil {
		if errors.Is(err, errs.ErrUnauthorized) {
			if clearErr := s.sessionStore.Clear(); clearErr != nil {
				log.Error().Err(clearErr).Msg("GetProfile: clear session error")
			}

			return user, fmt.Errorf("GetProfile: %w", errs.ErrSessionExpired)
		}

		return user, fmt.Errorf("GetProfile: %w", errors.Join(errs.ErrProfileFailed, err))
	}

	if err = s.sessionStore.SetUser(resp); err != nil {
		return user, fmt.Errorf("GetProfile: %w", err)
	}

	return resp, nil
}
