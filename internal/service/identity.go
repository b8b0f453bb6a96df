package service

import (
	"context"
	"errors"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
)

var (
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUserNotFound         = errors.New("user not found")
	ErrUserExists           = errors.New("username or email already exists")
	ErrRegistrationDisabled = errors.New("registration not available in mock mode")
	ErrTokenExpired         = errors.New("token expired")
	ErrInvalidToken         = errors.New("invalid token")
)

// IdentityProvider answers who a user is. It is selected once at startup:
// a fixed in-process identity for mock deployments, or the database-backed
// provider everywhere else.
type IdentityProvider interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*models.User, error)
	AppLogin(ctx context.Context, email, password string) models.AppLoginResponse
	UserByID(ctx context.Context, id string) (*models.User, error)
}
