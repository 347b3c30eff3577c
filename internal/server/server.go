// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/config"
	"github.com/gradpath/intake/internal/db"
	"github.com/gradpath/intake/internal/pkg/logger"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	config   *config.Config
	database *db.PostgresDB
	http     *http.Server
}

// New creates a Server around a configured router.
func New(cfg *config.Config, router *gin.Engine, database *db.PostgresDB) *Server {
	return &Server{
		config:   cfg,
		database: database,
		http: &http.Server{
			Addr:         ":" + cfg.Server.Port,
			Handler:      router,
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// Run starts serving and blocks until the listener fails or is closed.
func (s *Server) Run() error {
	logger.Info().Str("port", s.config.Server.Port).Msg("HTTP server starting")

	err := s.http.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting new connections, drains in-flight requests
// and closes the database pool.
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info().Msg("Shutting down server")

	err := s.http.Shutdown(ctx)

	if s.database != nil {
		s.database.Close()
	}

	return err
}
