package service

import (
	"context"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
	"github.com/atkinsguitar/pos-api/pkg/utils"
)

// AuthService handles login and token refresh for register users.
type AuthService struct {
	userRepo   repository.UserRepository
	jwtManager *utils.JWTManager
}

func NewAuthService(userRepo repository.UserRepository, jwtManager *utils.JWTManager) *AuthService {
	return &AuthService{userRepo: userRepo, jwtManager: jwtManager}
}

// LoginResult carries the token pair and the authenticated user.
type LoginResult struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         *entity.User `json:"user"`
}

// Login verifies a username and password. Unknown users and wrong passwords
// return the same error so the response does not leak which usernames exist.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDeactivated
	}

	return s.issueTokens(user)
}

// Refresh exchanges a valid refresh token for a fresh pair. The user is
// re-read so a deactivation since login takes effect immediately.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*LoginResult, error) {
	claims, err := s.jwtManager.ValidateToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperror.ErrAccountDeactivated
	}

	return s.issueTokens(user)
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginResult, error) {
	access, err := s.jwtManager.GenerateAccessToken(user.ID, user.Username, user.Role.String())
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtManager.GenerateRefreshToken(user.ID, user.Username, user.Role.String())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}
