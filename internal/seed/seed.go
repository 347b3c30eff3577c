// Package seed creates the initial records a fresh deployment needs.
package seed

import (
	"context"

	"github.com/gradpath/intake/internal/app/models"
	"github.com/gradpath/intake/internal/app/repositories"
	"github.com/gradpath/intake/internal/config"
	"github.com/gradpath/intake/internal/pkg/auth"
	"github.com/gradpath/intake/internal/pkg/logger"
	"github.com/gradpath/intake/internal/pkg/validation"
)

// EnsureDefaultAdmin creates the bootstrap admin account from config if
// one does not exist yet. With no admin credentials configured the step
// is skipped; the create-admin endpoint then has no reachable caller, so
// deployments must either configure this or seed the database manually.
func EnsureDefaultAdmin(ctx context.Context, cfg *config.Config, users *repositories.UserRepository) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn().Msg("No default admin configured, skipping admin seed")
		return nil
	}

	email := validation.NormalizeEmail(cfg.Admin.Email)

	exists, err := users.AdminEmailExists(ctx, email)
	if err != nil {
		return err
	}
	if exists {
		logger.Debug().Str("email", email).Msg("Default admin already present")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	name := cfg.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	admin := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: &hash,
		Role:         models.RoleAdmin,
	}

	if _, err := users.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info().Str("email", email).Msg("Default admin account created")
	return nil
}
