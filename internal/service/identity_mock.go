package service

import (
	"context"
	"time"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
)

// mockIdentity serves a single fixed identity without touching the
// database or the MyTrips API. For local development only.
type mockIdentity struct {
	username string
	password string
	email    string
	userID   string
}

// NewMockIdentity creates the mock-mode IdentityProvider.
func NewMockIdentity(username, password, email, userID string) IdentityProvider {
	return &mockIdentity{
		username: username,
		password: password,
		email:    email,
		userID:   userID,
	}
}

func (p *mockIdentity) user() *models.User {
	return &models.User{
		ID:        p.userID,
		Username:  p.username,
		Email:     p.email,
		CreatedAt: time.Now().UTC(),
	}
}

func (p *mockIdentity) Register(_ context.Context, _, _, _ string) (*models.User, error) {
	return nil, ErrRegistrationDisabled
}

func (p *mockIdentity) Login(_ context.Context, username, password string) (*models.User, error) {
	if username != p.username || password != p.password {
		return nil, ErrInvalidCredentials
	}
	return p.user(), nil
}

func (p *mockIdentity) AppLogin(_ context.Context, email, password string) models.AppLoginResponse {
	if email == p.email && password == p.password {
		return models.AppLoginResponse{
			Authenticated: true,
			UserID:        p.userID,
			Message:       "Authentication successful",
		}
	}
	// Generic message; do not reveal which part of the pair was wrong.
	return models.AppLoginResponse{
		Authenticated: false,
		Message:       "Invalid credentials",
	}
}

func (p *mockIdentity) UserByID(_ context.Context, id string) (*models.User, error) {
	if id != p.userID {
		return nil, ErrUserNotFound
	}
	return p.user(), nil
}
