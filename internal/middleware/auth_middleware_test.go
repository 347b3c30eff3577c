package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/auth"
)

type stubSessionStore struct {
	sessions map[string]*auth.Session
}

func (s *stubSessionStore) Create(_ context.Context, session *auth.Session) error {
	s.sessions[session.Token] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, token string) (*auth.Session, error) {
	session, ok := s.sessions[token]
	if !ok {
		return nil, apperrors.ErrSessionNotFound
	}
	return session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, token string) error {
	delete(s.sessions, token)
	return nil
}

func newGuardedRouter(t *testing.T) (*gin.Engine, *stubSessionStore, *auth.SessionService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := &stubSessionStore{sessions: make(map[string]*auth.Session)}
	sessions := auth.NewSessionService(store, auth.SessionConfig{})
	mw := NewAuthMiddleware(sessions)

	router := gin.New()
	router.GET("/me", mw.RequireAuth(), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"id": id})
	})
	router.GET("/admin", mw.RequireAuth(), mw.RoleRequired(models.RoleAdmin), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	return router, store, sessions
}

func issueSession(t *testing.T, sessions *auth.SessionService, role models.RoleType) *auth.Session {
	t.Helper()
	session, err := sessions.Issue(context.Background(), &models.User{
		ID: 7, Name: "Ada", Role: role,
	})
	require.NoError(t, err)
	return session
}

func doRequest(router *gin.Engine, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthWithoutCookie(t *testing.T) {
	router, _, _ := newGuardedRouter(t)

	rec := doRequest(router, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"Authentication required"}`, rec.Body.String())
}

func TestRequireAuthWithUnknownToken(t *testing.T) {
	router, _, sessions := newGuardedRouter(t)

	rec := doRequest(router, &http.Cookie{Name: sessions.CookieName(), Value: "bogus"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthWithExpiredSession(t *testing.T) {
	router, store, sessions := newGuardedRouter(t)

	store.sessions["stale"] = &auth.Session{
		Token: "stale", UserID: 7, ExpiresAt: time.Now().Add(-time.Minute),
	}

	rec := doRequest(router, &http.Cookie{Name: sessions.CookieName(), Value: "stale"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthWithValidSession(t *testing.T) {
	router, _, sessions := newGuardedRouter(t)
	session := issueSession(t, sessions, models.RoleStudent)

	rec := doRequest(router, &http.Cookie{Name: sessions.CookieName(), Value: session.Token})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":7}`, rec.Body.String())
}

func TestRoleRequiredRejectsStudentOnAdminRoute(t *testing.T) {
	router, _, sessions := newGuardedRouter(t)
	session := issueSession(t, sessions, models.RoleStudent)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: session.Token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.JSONEq(t, `{"message":"Admin privileges required"}`, rec.Body.String())
}

func TestRoleRequiredAllowsAdmin(t *testing.T) {
	router, _, sessions := newGuardedRouter(t)
	session := issueSession(t, sessions, models.RoleAdmin)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: sessions.CookieName(), Value: session.Token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUnauthenticatedBeatsForbidden(t *testing.T) {
	// Without a session the admin route answers 401, never 403
	router, _, _ := newGuardedRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
