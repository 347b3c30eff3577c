// Package controllers contains the Gin HTTP handlers.
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/app/services"
	"github.com/gradpath/intake/internal/middleware"
	"github.com/gradpath/intake/internal/pkg/auth"
)

// AuthController handles registration, login and logout.
type AuthController struct {
	authService services.AuthService
	sessions    *auth.SessionService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService, sessions *auth.SessionService) *AuthController {
	return &AuthController{
		authService: authService,
		sessions:    sessions,
	}
}

// Signup handles POST /api/auth/signup
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Name, email, and password are required"))
		return
	}

	if err := c.authService.Signup(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessage("User created successfully"))
}

// Login handles POST /api/auth/login. On success the session token is
// set as an HTTP-only cookie scoped to the whole site.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Email and password are required"))
		return
	}

	user, session, err := c.authService.Login(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(c.sessions.CookieName(), session.Token,
		int(c.sessions.TTL().Seconds()), "/", "", c.sessions.Secure(), true)

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User: dto.UserResponse{
			ID:    user.ID,
			Name:  user.Name,
			Email: user.Email,
			Role:  string(user.Role),
		},
	})
}

// Logout handles POST /api/auth/logout. The server-side session is
// destroyed and the cookie cleared; a repeated logout still succeeds.
func (c *AuthController) Logout(ctx *gin.Context) {
	token, _ := middleware.SessionToken(ctx)

	if err := c.authService.Logout(ctx.Request.Context(), token); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.SetCookie(c.sessions.CookieName(), "", -1, "/", "", c.sessions.Secure(), true)
	ctx.JSON(http.StatusOK, dto.NewMessage("Logged out successfully"))
}

// CreateAdmin handles POST /api/auth/create-admin. Only an existing
// admin reaches this handler; the route is guarded.
func (c *AuthController) CreateAdmin(ctx *gin.Context) {
	var req dto.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewError("Name, email, and password are required"))
		return
	}

	if err := c.authService.CreateAdmin(ctx.Request.Context(), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessage("Admin created successfully"))
}
