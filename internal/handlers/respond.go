package handlers

import (
	"errors"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/logger"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/pkg/serviceerrors"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/service"
	"github.com/gin-gonic/gin"
)

// toAppError maps service errors onto client-facing responses. Anything
// unrecognized becomes an opaque internal error.
func toAppError(err error) *serviceerrors.AppError {
	switch {
	case errors.Is(err, service.ErrUserExists):
		return serviceerrors.NewBadRequest("Username or email already exists").Wrap(err)
	case errors.Is(err, service.ErrRegistrationDisabled):
		return serviceerrors.NewNotImplemented("Registration not available in mock mode").Wrap(err)
	case errors.Is(err, service.ErrInvalidCredentials):
		return serviceerrors.NewUnauthorized("Invalid credentials").Wrap(err)
	case errors.Is(err, service.ErrTokenExpired):
		return serviceerrors.NewUnauthorized("Token expired").Wrap(err)
	case errors.Is(err, service.ErrInvalidToken):
		return serviceerrors.NewUnauthorized("Invalid token").Wrap(err)
	case errors.Is(err, service.ErrUserNotFound):
		return serviceerrors.NewUnauthorized("User not found").Wrap(err)
	default:
		return serviceerrors.FromError(err)
	}
}

func respondError(c *gin.Context, err error) {
	appErr := toAppError(err)
	if appErr.IsInternal() {
		logger.FromContext(c.Request.Context()).Errorf("internal error: %v", appErr.Base)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Msg})
}
