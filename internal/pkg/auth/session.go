// Package auth provides password hashing and server-side session
// management. Sessions bind an opaque cookie token to a user id, display
// name and role for the lifetime of the session.
package auth

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/pkg/apperrors"
)

// Session is the server-side state established on login and destroyed
// on logout or expiry.
type Session struct {
	Token     string
	UserID    int64
	Name      string
	Role      models.RoleType
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

// SessionStore persists sessions. Implementations must treat Delete of a
// missing token as a no-op so logout stays idempotent.
type SessionStore interface {
	Create(ctx context.Context, session *Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}

// SessionConfig configures the session service.
type SessionConfig struct {
	CookieName string
	TTL        time.Duration
	Secure     bool
}

// SessionService issues, resolves and revokes sessions on top of a store.
type SessionService struct {
	store  SessionStore
	config SessionConfig
}

// NewSessionService creates a new SessionService.
func NewSessionService(store SessionStore, config SessionConfig) *SessionService {
	if config.CookieName == "" {
		config.CookieName = "gradpath_session"
	}
	if config.TTL <= 0 {
		config.TTL = 24 * time.Hour
	}
	return &SessionService{
		store:  store,
		config: config,
	}
}

// CookieName returns the name of the session cookie.
func (s *SessionService) CookieName() string {
	return s.config.CookieName
}

// TTL returns the configured session lifetime.
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Secure reports whether the session cookie must be HTTPS-only.
func (s *SessionService) Secure() bool {
	return s.config.Secure
}

// Issue creates a new session for the user and persists it. The token is
// an opaque random UUID; nothing about the user is derivable from it.
func (s *SessionService) Issue(ctx context.Context, user *models.User) (*Session, error) {
	session := &Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Role:      user.Role,
		ExpiresAt: time.Now().Add(s.config.TTL),
	}

	if err := s.store.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

// Resolve looks up the session for a token. Missing, unknown and expired
// tokens all come back as ErrSessionNotFound; an expired row is removed
// lazily on the way out.
func (s *SessionService) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, apperrors.ErrSessionNotFound
	}

	session, err := s.store.Get(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		_ = s.store.Delete(ctx, token)
		return nil, apperrors.ErrSessionNotFound
	}

	return session, nil
}

// Revoke destroys the session for a token. Revoking a token that no
// longer exists is not an error.
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	err := s.store.Delete(ctx, token)
	if err != nil && !errors.Is(err, apperrors.ErrSessionNotFound) {
		return err
	}
	return nil
}
