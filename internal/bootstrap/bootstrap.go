// Package bootstrap assembles the application: configuration, logging,
// database, migrations, seed data and the HTTP router.
package bootstrap

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/gradpath/intake/internal/app/controllers"
	"github.com/gradpath/intake/internal/app/migrations"
	"github.com/gradpath/intake/internal/app/repositories"
	"github.com/gradpath/intake/internal/app/routes"
	"github.com/gradpath/intake/internal/app/services"
	"github.com/gradpath/intake/internal/config"
	"github.com/gradpath/intake/internal/db"
	"github.com/gradpath/intake/internal/middleware"
	"github.com/gradpath/intake/internal/pkg/auth"
	"github.com/gradpath/intake/internal/pkg/filestorage"
	"github.com/gradpath/intake/internal/pkg/helpers"
	"github.com/gradpath/intake/internal/pkg/logger"
	"github.com/gradpath/intake/internal/seed"
)

// LoadConfigAndSetupLogger loads configuration and configures logging
// accordingly. A .env file is honored when present but never required.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg("No .env file found, relying on environment")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(cfg.Logging.Level),
		Pretty: cfg.Logging.Format != "json",
	})

	logger.Info().Str("mode", cfg.Server.Mode).Msg("Configuration loaded")
	return cfg, nil
}

// SetupDatabase connects to Postgres, applies pending migrations and
// seeds the default admin account.
func SetupDatabase(ctx context.Context, cfg *config.Config, migrationsDir string) (*db.PostgresDB, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, err
	}

	migrator := migrations.NewMigrator(database.Pool)
	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		database.Close()
		return nil, err
	}

	if err := seed.EnsureDefaultAdmin(ctx, cfg, repositories.NewUserRepository(database)); err != nil {
		database.Close()
		return nil, err
	}

	return database, nil
}

// BuildRouter wires repositories, services, controllers and middleware
// into a ready-to-serve Gin engine.
func BuildRouter(cfg *config.Config, database *db.PostgresDB) (*gin.Engine, error) {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	storage, err := filestorage.NewLocalStorage(cfg.Server.UploadRoot)
	if err != nil {
		return nil, err
	}

	repos := repositories.NewRepositories(database)

	sessionService := auth.NewSessionService(repos.Sessions, auth.SessionConfig{
		CookieName: cfg.Session.CookieName,
		TTL:        helpers.ParseDuration(cfg.Session.TTL, 24*time.Hour),
		Secure:     cfg.Session.Secure,
	})

	svcs := services.Services{
		Auth:    services.NewAuthService(repos.Users, sessionService),
		Student: services.NewStudentService(repos.StudentDetails, storage),
		Admin:   services.NewAdminService(repos.StudentDetails),
	}

	ctrl := routes.Controllers{
		Auth:    controllers.NewAuthController(svcs.Auth, sessionService),
		Student: controllers.NewStudentController(svcs.Student, storage, cfg.Server.MaxUploadSize),
		Admin:   controllers.NewAdminController(svcs.Admin),
	}

	authMw := middleware.NewAuthMiddleware(sessionService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	routes.SetupRoutes(router, ctrl, authMw)

	return router, nil
}
