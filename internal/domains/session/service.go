package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/Fivegen-LLC/qoe-monitor/internal/constants"
	"github.com/Fivegen-LLC/qoe-monitor/internal/entities"
	"github.com/Fivegen-LLC/qoe-monitor/internal/errs"
)

type (
	IStorage interface {
		Get(key string) (value []byte, found bool, err error)
		SetMany(pairs map[string][]byte) (err error)
		Delete(keys ...string) (err error)
	}
)

type Service struct {
	storage IStorage
	now     func() time.Time
}

func NewService(storage IStorage) *Service {
	return &Service{
		storage: storage,
		now:     time.Now,
	}
}

// WithClock replaces the time source.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Save stores the session. A zero expiresAt is taken from the token exp claim.
func (s *Service) Save(token string, user entities.User, expiresAt time.Time) (err error) {
	if lo.IsEmpty(token) {
		return fmt.Errorf("Save: %w", errs.ErrNotAuthenticated)
	}

	if expiresAt.IsZero() {
		if expiresAt, err = ExpiryFromToken(token); err != nil {
			return fmt.Errorf("Save: %w", err)
		}
	}

	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	if err = s.storage.SetMany(map[string][]byte{
		constants.TokenKey:   []byte(token),
		constants.UserKey:    userData,
		constants.ExpiresKey: []byte(strconv.FormatInt(expiresAt.Unix(), 10)),
	}); err != nil {
		return fmt.Errorf("Save: %w", err)
	}

	return nil
}

// SetUser replaces the stored user, leaving token and expiry intact.
func (s *Service) SetUser(user entities.User) (err error) {
	userData, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("SetUser: %w", err)
	}

	if err = s.storage.SetMany(map[string][]byte{constants.UserKey: userData}); err != nil {
		return fmt.Errorf("SetUser: %w", err)
	}

	return nil
}

func (s *Service) Token() (token string, err error) {
	value, _, err := s.storage.Get(constants.TokenKey)
	if err != nil {
		return "", fmt.Errorf("Token: %w", err)
	}

	return string(value), nil
}

// User returns nil when the user is missing or cannot be decoded.
func (s *Service) User() *entities.User {
	value, found, err := s.storage.Get(constants.UserKey)
	if err != nil {
		log.Error().Err(err).Msg("User: read user error")
		return nil
	}

	if !found {
		return nil
	}

	var user entities.User
	if err = json.Unmarshal(value, &user); err != nil {
		log.Warn().Err(err).Msg("User: stored user is corrupt")
		return nil
	}

	return &user
}

// ExpiresAt returns found=false when no valid expiry is stored.
func (s *Service) ExpiresAt() (expiresAt time.Time, found bool) {
	value, found, err := s.storage.Get(constants.ExpiresKey)
	if err != nil {
		log.Error().Err(err).Msg("ExpiresAt: read expiry error")
		return time.Time{}, false
	}

	if !found {
		return time.Time{}, false
	}

	seconds, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		log.Warn().Err(err).Msg("ExpiresAt: stored expiry is corrupt")
		return time.Time{}, false
	}

	return time.Unix(seconds, 0), true
}

func (s *Service) Get() (session entities.Session, err error) {
	if session.Token, err = s.Token(); err != nil {
		return session, fmt.Errorf("Get: %w", err)
	}

	session.User = s.User()
	session.ExpiresAt, _ = s.ExpiresAt()
	return session, nil
}

func (s *Service) Clear() (err error) {
	if err = s.storage.Delete(constants.TokenKey, constants.UserKey, constants.ExpiresKey); err != nil {
		return fmt.Errorf("Clear: %w", err)
	}

	return nil
}

// IsAuthenticated reports a stored, unexpired session. An expired session is cleared.
func (s *Service) IsAuthenticated() bool {
	token, err := s.Token()
	if err != nil || lo.IsEmpty(token) {
		return false
	}

	expiresAt, found := s.ExpiresAt()
	if !found {
		return false
	}

	if !s.now().Before(expiresAt) {
		if err = s.Clear(); err != nil {
			log.Error().Err(err).Msg("IsAuthenticated: clear session error")
		}
		return false
	}

	return true
}

func (s *Service) IsExpiringSoon() bool {
	expiresAt, found := s.ExpiresAt()
	if !found {
		return false
	}

	return expiresAt.Sub(s.now()) <= constants.SessionExpiringSoon
}

func (s *Service) HasRole(role string) bool {
	user := s.User()
	return user != nil && user.Role == role
}

func (s *Service) IsAdmin() bool {
	return s.HasRole(constants.RoleAdmin)
}

// RequireAdmin fails unless an admin session is active.
func (s *Service) RequireAdmin() (err error) {
	if !s.IsAuthenticated() {
		return fmt.Errorf("RequireAdmin: %w", errs.ErrNotAuthenticated)
	}

	if !s.IsAdmin() {
		return fmt.Errorf("RequireAdmin: %w", errs.ErrForbidden)
	}

	return nil
}

// Watch periodically drops an expired session until ctx is done.
func (s *Service) Watch(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.check()
		}
	}
}

func (s *Service) check() {
	token, err := s.Token()
	if err != nil {
		log.Error().Err(err).Msg("check: read token error")
		return
	}

	if lo.IsEmpty(token) {
		return
	}

	if !s.IsAuthenticated() {
		log.Warn().Msg("check: session expired, logged out")
		return
	}

	if s.IsExpiringSoon() {
		expiresAt, _ := s.ExpiresAt()
		log.Warn().Time("expiresAt", expiresAt).Msg("check: session expires soon")
	}
}

// ExpiryFromToken reads the exp claim without verifying the signature.
func ExpiryFromToken(token string) (expiresAt time.Time, err error) {
	var claims jwt.RegisteredClaims
	if _, _, err = jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return time.Time{}, fmt.Errorf("ExpiryFromToken: %w", err)
	}

	if claims.ExpiresAt == nil {
		return time.Time{}, fmt.Errorf("ExpiryFromToken: %w", errs.ErrNoExpiry)
	}

	return claims.ExpiresAt.Time, nil
}
