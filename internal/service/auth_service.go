package service

import (
	"context"

	"gin-gorm-todolist/internal/core/auth"
	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/pkg/utils"
)

type AuthService struct {
	users domain.UserRepository
	jwter *auth.JWTer
}

func NewAuthService(users domain.UserRepository, jwter *auth.JWTer) *AuthService {
	return &AuthService{users: users, jwter: jwter}
}

// Login 用户不存在和密码错误返回同一个错误
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	if req == nil || req.Username == "" || req.Password == "" {
		return nil, domain.BadCredentials()
	}
	u, err := s.users.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if u == nil || !utils.CheckPassword(req.Password, u.Password) {
		return nil, domain.BadCredentials()
	}
	tok, err := s.jwter.Issue(u.ID, u.Username, u.Roles)
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{Token: tok}, nil
}

func (s *AuthService) Logout(ctx context.Context, c *auth.Claims) error {
	return s.jwter.Revoke(ctx, c)
}
