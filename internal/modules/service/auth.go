package service

import (
	"context"
	"errors"
	"time"

	"github.com/void-labs/showcase/internal/config"
	"github.com/void-labs/showcase/internal/modules/model"
	"github.com/void-labs/showcase/internal/modules/repo"
	"github.com/void-labs/showcase/internal/pkg/passwords"
	"github.com/void-labs/showcase/internal/pkg/tokens"
	"gorm.io/gorm"
)

type SignupInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
	ProfilePicture  string
	Institution     string
}

type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*model.User, error)
	Login(ctx context.Context, username, password string) (*tokens.Pair, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

type authService struct {
	users repo.UserRepo
	cfg   *config.Config
}

func NewAuthService(users repo.UserRepo, cfg *config.Config) AuthService {
	return &authService{users: users, cfg: cfg}
}

// Signup validates the password confirmation, hashes the password and creates
// the user with a default role of Presenter. Username/email uniqueness is left
// to the storage layer and surfaces as gorm.ErrDuplicatedKey.
func (s *authService) Signup(ctx context.Context, in SignupInput) (*model.User, error) {
	if in.Password != in.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	role := in.Role
	if role == "" {
		role = model.RolePresenter
	}
	if !model.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	hash, err := passwords.Hash(in.Password, s.cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	u := &model.User{
		Username:       in.Username,
		Email:          in.Email,
		PasswordHash:   hash,
		Role:           role,
		ProfilePicture: in.ProfilePicture,
		Institution:    in.Institution,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (*tokens.Pair, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !passwords.Compare(u.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return tokens.IssuePair(
		s.cfg.Auth.JWTSecret,
		u.ID,
		u.Role,
		time.Duration(s.cfg.Auth.AccessExpireMin)*time.Minute,
		time.Duration(s.cfg.Auth.RefreshExpireHr)*time.Hour,
	)
}

// Refresh trades a valid refresh token for a fresh access token. The user is
// re-read so a role change or deletion takes effect immediately.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := tokens.Verify(s.cfg.Auth.JWTSecret, refreshToken, tokens.TypeRefresh)
	if err != nil {
		return "", err
	}
	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", tokens.ErrInvalidToken
		}
		return "", err
	}

	pair, err := tokens.IssuePair(
		s.cfg.Auth.JWTSecret,
		u.ID,
		u.Role,
		time.Duration(s.cfg.Auth.AccessExpireMin)*time.Minute,
		time.Duration(s.cfg.Auth.RefreshExpireHr)*time.Hour,
	)
	if err != nil {
		return "", err
	}
	return pair.Access, nil
}
