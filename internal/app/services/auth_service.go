package services

import (
	"context"
	"errors"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/auth"
	"github.com/gradpath/intake/internal/pkg/logger"
	"github.com/gradpath/intake/internal/pkg/validation"
)

type authService struct {
	users    UserStore
	sessions *auth.SessionService
}

// NewAuthService creates a new authentication service
func NewAuthService(users UserStore, sessions *auth.SessionService) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
	}
}

// Signup registers a new account. Email is normalized before the
// uniqueness check so the same address cannot be registered twice with
// different casing.
func (s *authService) Signup(ctx context.Context, req dto.SignupRequest) error {
	if !validation.IsValidName(req.Name) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Name, email, and password are required")
	}

	email := validation.NormalizeEmail(req.Email)
	if !validation.IsValidEmail(email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Invalid email format")
	}

	if req.Password == "" {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Name, email, and password are required")
	}

	role, ok := models.ParseRole(req.Role)
	if !ok {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Invalid role")
	}

	exists, err := s.users.EmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: &hash,
		Role:         role,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		// Losing the race to the unique constraint maps the same as the
		// pre-check above
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			return apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists, "Email already registered")
		}
		return err
	}

	logger.Info().Str("email", email).Str("role", string(role)).Msg("User registered")
	return nil
}

// Login verifies credentials and issues a session. Unknown email, an
// account without a password and a wrong password are indistinguishable
// to the caller.
func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*models.User, *auth.Session, error) {
	email := validation.NormalizeEmail(req.Email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
		}
		return nil, nil, err
	}

	if user.PasswordHash == nil || !auth.CheckPassword(*user.PasswordHash, req.Password) {
		return nil, nil, apperrors.NewCustomError(apperrors.ErrInvalidCredentials, "Invalid email or password")
	}

	session, err := s.sessions.Issue(ctx, user)
	if err != nil {
		return nil, nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role)).Msg("User logged in")
	return user, session, nil
}

// Logout revokes the session for a token. Always succeeds for an
// already-gone session.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Revoke(ctx, token)
}

// CreateAdmin registers a new admin account. Admin passwords carry a
// stricter length floor, and the operation refuses to overwrite an
// existing admin with the same email.
func (s *authService) CreateAdmin(ctx context.Context, req dto.CreateAdminRequest) error {
	if !validation.IsValidName(req.Name) {
		return apperrors.NewCustomError(apperrors.ErrValidationFailed, "Name, email, and password are required")
	}

	email := validation.NormalizeEmail(req.Email)
	if !validation.IsValidEmail(email) {
		return apperrors.NewCustomError(apperrors.ErrInvalidEmail, "Invalid email format")
	}

	if len(req.Password) < validation.AdminPasswordMinLength {
		return apperrors.NewCustomError(apperrors.ErrInvalidPassword, "Admin password must be at least 12 characters")
	}

	exists, err := s.users.AdminEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		return apperrors.NewCustomError(apperrors.ErrAdminAlreadyExists, "Admin already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return err
	}

	user := &models.User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: &hash,
		Role:         models.RoleAdmin,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		return err
	}

	logger.Info().Str("email", email).Msg("Admin account created")
	return nil
}
