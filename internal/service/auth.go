package service

import (
	"context"
	"errors"

	"github.com/AdarBahar/mytrips-viewer-ui/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const tokenType = "bearer"

// AuthService orchestrates registration, login and bearer-token
// authentication on top of the selected IdentityProvider.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.Token, error)
	Login(ctx context.Context, req models.LoginRequest) (*models.Token, error)
	AppLogin(ctx context.Context, req models.AppLoginRequest) models.AppLoginResponse
	CurrentUser(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	identity   IdentityProvider
	jwtService JWTService
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(identity IdentityProvider, jwtService JWTService) AuthService {
	return &authService{
		identity:   identity,
		jwtService: jwtService,
	}
}

func (s *authService) Register(ctx context.Context, req models.RegisterRequest) (*models.Token, error) {
	user, err := s.identity.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *authService) Login(ctx context.Context, req models.LoginRequest) (*models.Token, error) {
	user, err := s.identity.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.issueToken(user)
}

func (s *authService) AppLogin(ctx context.Context, req models.AppLoginRequest) models.AppLoginResponse {
	return s.identity.AppLogin(ctx, req.Email, req.Password)
}

func (s *authService) CurrentUser(ctx context.Context, token string) (*models.User, error) {
	claims, err := s.jwtService.ValidateToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	return s.identity.UserByID(ctx, claims.Subject)
}

func (s *authService) issueToken(user *models.User) (*models.Token, error) {
	accessToken, err := s.jwtService.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}
	return &models.Token{
		AccessToken: accessToken,
		TokenType:   tokenType,
		User:        *user,
	}, nil
}
