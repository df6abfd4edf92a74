package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/telemetry"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type (
	ISessionStore interface {
		Token() (token string, err error)
		Clear() (err error)
	}
)

type Service struct {
	client       *resty.Client
	sessionStore ISessionStore
}

func NewService(baseURL string, timeout time.Duration, sessionStore ISessionStore) *Service {
	s := &Service{
		sessionStore: sessionStore,
	}

	s.client = resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	s.client.OnBeforeRequest(s.attachToken)
	s.client.OnAfterResponse(s.handleResponse)
	s.client.OnError(func(r *resty.Request, err error) {
		log.Debug().
			Err(err).
			Str("method", r.Method).
			Str("url", r.URL).
			Msg("apiclient: request failed")
	})

	return s
}

type requestOptions struct {
	query      map[string]string
	pathParams map[string]string
	body       any
}

type RequestOption func(o *requestOptions)

func WithQuery(query map[string]string) RequestOption {
	return func(o *requestOptions) {
		o.query = query
	}
}

func WithPathParams(params map[string]string) RequestOption {
	return func(o *requestOptions) {
		o.pathParams = params
	}
}

func WithBody(body any) RequestOption {
	return func(o *requestOptions) {
		o.body = body
	}
}

func (s *Service) Get(ctx context.Context, path string, result any, options ...RequestOption) (err error) {
	return s.Do(ctx, http.MethodGet, path, result, options...)
}

func (s *Service) Post(ctx context.Context, path string, body, result any, options ...RequestOption) (err error) {
	return s.Do(ctx, http.MethodPost, path, result, append(options, WithBody(body))...)
}

func (s *Service) Put(ctx context.Context, path string, body, result any, options ...RequestOption) (err error) {
	return s.Do(ctx, http.MethodPut, path, result, append(options, WithBody(body))...)
}

func (s *Service) Delete(ctx context.Context, path string, result any, options ...RequestOption) (err error) {
	return s.Do(ctx, http.MethodDelete, path, result, options...)
}

// Do executes a request against the backend and decodes a 2xx body into result.
func (s *Service) Do(ctx context.Context, method, path string, result any, options ...RequestOption) (err error) {
	var opts requestOptions
	for _, option := range options {
		option(&opts)
	}

	var errBody struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	req := s.client.R().
		SetContext(ctx).
		SetError(&errBody)

	if result != nil {
		req.SetResult(result)
	}

	if len(opts.query) > 0 {
		req.SetQueryParams(opts.query)
	}

	if len(opts.pathParams) > 0 {
		req.SetPathParams(opts.pathParams)
	}

	if opts.body != nil {
		req.SetBody(opts.body)
	}

	started := time.Now()
	resp, err := req.Execute(method, path)
	if err != nil {
		telemetry.ObserveAPIRequest(method, path, 0, time.Since(started))
		return fmt.Errorf("Do: %s %s: %w", method, path, err)
	}

	telemetry.ObserveAPIRequest(method, path, resp.StatusCode(), time.Since(started))

	if resp.IsError() {
		return &APIError{
			StatusCode: resp.StatusCode(),
			Status:     resp.Status(),
			Message:    lo.Ternary(lo.IsNotEmpty(errBody.Message), errBody.Message, errBody.Error),
			Method:     method,
			Path:       path,
		}
	}

	return nil
}

func (s *Service) attachToken(_ *resty.Client, r *resty.Request) (err error) {
	token, err := s.sessionStore.Token()
	if err != nil {
		log.Error().Err(err).Msg("attachToken: read token error")
	}

	if lo.IsNotEmpty(token) {
		r.SetAuthToken(token)
	}

	log.Debug().
		Str("method", r.Method).
		Str("url", r.URL).
		Any("data", r.Body).
		Msg("attachToken: api request")

	return nil
}

func (s *Service) handleResponse(_ *resty.Client, resp *resty.Response) (err error) {
	if resp.StatusCode() == http.StatusUnauthorized {
		if clearErr := s.sessionStore.Clear(); clearErr != nil {
			log.Error().Err(clearErr).Msg("handleResponse: clear session error")
		}
	}

	event := log.Debug()
	if resp.IsError() {
		event = log.Warn()
	}

	event.
		Int("status", resp.StatusCode()).
		Str("url", resp.Request.URL).
		Str("data", string(resp.Body())).
		Msg("handleResponse: api response")

	return nil
}

// APIError is a non-2xx backend answer.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Method     string
	Path       string
}

func (e *APIError) Error() string {
	if lo.IsNotEmpty(e.Message) {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Status, e.Message)
	}

	return fmt.Sprintf("%s %s: %s", e.Method, e.Path, e.Status)
}

func (e *APIError) Unwrap() []error {
	wrapped := []error{errs.ErrAPIError}
	switch e.StatusCode {
	case http.StatusUnauthorized:
		wrapped = append(wrapped, errs.ErrUnauthorized)
	case http.StatusBadRequest:
		wrapped = append(wrapped, errs.ErrBadRequest)
	}

	return wrapped
}

// StatusCode extracts the backend status from err, 0 when err is not an APIError.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}

	return 0
}
