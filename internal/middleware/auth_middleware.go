package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/auth"
)

// Context keys set by RequireAuth for downstream handlers.
const (
	ContextUserID       = "userID"
	ContextUserName     = "userName"
	ContextUserRole     = "userRole"
	ContextSessionToken = "sessionToken"
)

// AuthMiddleware guards routes behind a valid session cookie.
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{
		sessions: sessions,
	}
}

// RequireAuth resolves the session cookie and aborts with 401 when it is
// missing, unknown or expired. On success the session identity is placed
// on the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(m.sessions.CookieName())
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
			return
		}

		session, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextUserName, session.Name)
		c.Set(ContextUserRole, session.Role)
		c.Set(ContextSessionToken, session.Token)

		c.Next()
	}
}

// RoleRequired aborts with 403 unless the authenticated session carries
// the given role. It must run after RequireAuth; a missing role on the
// context is treated as unauthenticated.
func (m *AuthMiddleware) RoleRequired(role models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		value, exists := c.Get(ContextUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewError("Authentication required"))
			return
		}

		current, ok := value.(models.RoleType)
		if !ok || current != role {
			message := "Access restricted"
			switch role {
			case models.RoleAdmin:
				message = "Admin privileges required"
			case models.RoleStudent:
				message = "Student account required"
			}
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewError(message))
			return
		}

		c.Next()
	}
}

// UserID returns the authenticated user id from the request context.
func UserID(c *gin.Context) (int64, bool) {
	value, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := value.(int64)
	return id, ok
}

// SessionToken returns the session token from the request context.
func SessionToken(c *gin.Context) (string, bool) {
	value, exists := c.Get(ContextSessionToken)
	if !exists {
		return "", false
	}
	token, ok := value.(string)
	return token, ok
}
