package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/marinerh/personnel-backend/internal/domain/auth"
	"github.com/marinerh/personnel-backend/internal/domain/user"
	"github.com/marinerh/personnel-backend/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Login checks credentials and issues an access/refresh token pair. An
// unknown username and a wrong password both collapse to
// ErrInvalidCredentials so responses do not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, string, int64, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, "", 0, err
	}

	u, err := s.userRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return auth.LoginResponse{}, "", 0, auth.ErrInvalidCredentials
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role, u.Locale)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return auth.LoginResponse{}, "", 0, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
		Role:        string(u.Role),
		Locale:      string(u.Locale),
	}, refreshToken, refreshExpiresAt, nil
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (auth.LoginResponse, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.LoginResponse{}, auth.ErrRefreshRevoked
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to get user: %w", err)
	}

	accessToken, expiresAt, err := s.jwtService.GenerateAccessToken(u.ID, u.Username, u.EmployeeID, u.Role, u.Locale)
	if err != nil {
		return auth.LoginResponse{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	return auth.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   expiresAt,
		Role:        string(u.Role),
		Locale:      string(u.Locale),
	}, nil
}

// Logout revokes the refresh token so it cannot mint new access tokens.
func (s *AuthService) Logout(ctx context.Context, refreshToken string) {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
}
