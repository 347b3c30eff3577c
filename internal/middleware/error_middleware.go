// Package middleware contains the Gin middleware and the shared
// error-to-response mapping used by every controller.
package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gradpath/intake/internal/app/models/dto"
	"github.com/gradpath/intake/internal/pkg/apperrors"
	"github.com/gradpath/intake/internal/pkg/logger"
)

// HandleAPIError reduces a service error to an HTTP status and a message
// envelope. Unrecognized errors are logged with their cause and answered
// with a generic 500 so internals never leak to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrInvalidEmail),
		errors.Is(err, apperrors.ErrInvalidPassword),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidFileType),
		errors.Is(err, apperrors.ErrUnknownFileKind),
		errors.Is(err, apperrors.ErrAdminAlreadyExists):
		respond(c, http.StatusBadRequest, err, "Invalid request")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, err, "Invalid email or password")

	case errors.Is(err, apperrors.ErrAuthenticationRequired),
		errors.Is(err, apperrors.ErrSessionNotFound):
		respond(c, http.StatusUnauthorized, err, "Authentication required")

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, err, "Permission denied")

	case errors.Is(err, apperrors.ErrStudentNotFound):
		respond(c, http.StatusNotFound, err, "Student not found")

	case errors.Is(err, apperrors.ErrDetailsNotFound):
		respond(c, http.StatusNotFound, err, "No details found for this user.")

	case errors.Is(err, apperrors.ErrFileNotFound):
		respond(c, http.StatusNotFound, err, "File does not exist.")

	case errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrResourceNotFound):
		respond(c, http.StatusNotFound, err, "Resource not found")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, err, "Email already registered")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.NewError("Internal server error"))
	}
}

// respond writes the error envelope, preferring the curated message
// attached by the service over the generic fallback for the category.
func respond(c *gin.Context, status int, err error, fallback string) {
	message := fallback
	var ce *apperrors.CustomError
	if errors.As(err, &ce) && ce.Message != "" {
		message = ce.Message
	}
	c.JSON(status, dto.NewError(message))
}
