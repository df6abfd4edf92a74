package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/apiclient"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/auth"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/session"
	"github.com/Fivegen-LLC/qoe-monitor/internal/domains/storage"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

func newTestServices(t *testing.T, handler http.HandlerFunc) (*auth.Service, *session.Service) {
	t.Helper()

	db, err := storage.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sessionService := session.NewService(storage.NewKV(db))
	apiClient := apiclient.NewService(server.URL, time.Second, sessionService)
	return auth.NewService(apiClient, sessionService), sessionService
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func TestService_Login(t *testing.T) {
	t.Parallel()

	expiresAt := time.Now().Add(time.Hour).Unix()

	testTable := []struct {
		name          string
		req           entities.LoginRequest
		handler       http.HandlerFunc
		expectedErr   error
		expectedEmail string
	}{
		{
			name: "success",
			req:  entities.LoginRequest{Email: "ops@example.com", Password: "secret"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				var body entities.LoginRequest
				_ = json.NewDecoder(r.Body).Decode(&body)
				writeJSON(w, http.StatusOK, entities.LoginResponse{
					Token:     "token-" + body.Password,
					User:      entities.User{ID: 3, Email: body.Email, Role: "admin"},
					ExpiresAt: expiresAt,
				})
			},
			expectedEmail: "ops@example.com",
		},
		{
			name:        "empty password",
			req:         entities.LoginRequest{Email: "ops@example.com"},
			handler:     func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) },
			expectedErr: errs.ErrMissingCredentials,
		},
		{
			name: "wrong password",
			req:  entities.LoginRequest{Email: "ops@example.com", Password: "wrong"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
			},
			expectedErr: errs.ErrInvalidCredentials,
		},
		{
			name: "backend rejects body",
			req:  entities.LoginRequest{Email: "ops@example.com", Password: "x"},
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad"})
			},
			expectedErr: errs.ErrMissingCredentials,
		},
		{
			name:        "server error",
			req:         entities.LoginRequest{Email: "ops@example.com", Password: "x"},
			handler:     func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusBadGateway) },
			expectedErr: errs.ErrLoginFailed,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			authService, sessionService := newTestServices(t, testCase.handler)

			user, err := authService.Login(context.Background(), testCase.req)
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				require.False(t, sessionService.IsAuthenticated())
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.expectedEmail, user.Email)
			require.True(t, sessionService.IsAuthenticated())
			require.True(t, sessionService.IsAdmin())

			token, err := sessionService.Token()
			require.NoError(t, err)
			require.Equal(t, "token-"+testCase.req.Password, token)

			require.NoError(t, authService.Logout())
			require.False(t, sessionService.IsAuthenticated())
			require.Nil(t, sessionService.User())
		})
	}
}

func TestService_GetProfile(t *testing.T) {
	t.Parallel()

	testTable := []struct {
		name            string
		handler         http.HandlerFunc
		expectedErr     error
		expectedRole    string
		expectedCleared bool
	}{
		{
			name: "updates stored user",
			handler: func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer stored" {
					w.WriteHeader(http.StatusUnauthorized)
					return
				}
				writeJSON(w, http.StatusOK, entities.User{ID: 1, Email: "ops@example.com", Role: "user"})
			},
			expectedRole: "user",
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "expired"})
			},
			expectedErr:     errs.ErrSessionExpired,
			expectedCleared: true,
		},
		{
			name:        "server error",
			handler:     func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusInternalServerError) },
			expectedErr: errs.ErrProfileFailed,
		},
	}
	for _, testCase := range testTable {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			authService, sessionService := newTestServices(t, testCase.handler)
			require.NoError(t, sessionService.Save("stored", entities.User{ID: 1, Role: "admin"}, time.Now().Add(time.Hour)))

			user, err := authService.GetProfile(context.Background())
			if testCase.expectedErr != nil {
				require.ErrorIs(t, err, testCase.expectedErr)
				require.Equal(t, testCase.expectedCleared, !sessionService.IsAuthenticated())
				return
			}

			require.NoError(t, err)
			require.Equal(t, testCase.expectedRole, user.Role)
			require.Equal(t, testCase.expectedRole, sessionService.User().Role)
		})
	}
}
