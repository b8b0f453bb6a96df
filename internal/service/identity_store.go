package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/clients/mytrips"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/AdarBahar/mytrips-viewer-ui/internal/repository"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// storeIdentity is the production IdentityProvider: users live in the
// database, passwords are bcrypt-hashed, and app-login is proxied to the
// MyTrips API.
type storeIdentity struct {
	userRepo repository.UserRepository
	mytrips  *mytrips.Client
}

// NewStoreIdentity creates the database-backed IdentityProvider.
func NewStoreIdentity(userRepo repository.UserRepository, mytripsClient *mytrips.Client) IdentityProvider {
	return &storeIdentity{
		userRepo: userRepo,
		mytrips:  mytripsClient,
	}
}

func (p *storeIdentity) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	exists, err := p.userRepo.ExistsByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := p.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (p *storeIdentity) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := p.userRepo.FindByUsername(ctx, username)
	if err != nil {
		// Unknown user and bad password are indistinguishable to callers.
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (p *storeIdentity) AppLogin(ctx context.Context, email, password string) models.AppLoginResponse {
	return p.mytrips.AppLogin(ctx, email, password)
}

func (p *storeIdentity) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := p.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
