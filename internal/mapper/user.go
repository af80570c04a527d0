package mapper

import (
	"fmt"

	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/pkg/utils"
)

func ToUserResponse(u *domain.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	roles := u.Roles
	if roles == nil {
		roles = []string{}
	}
	return &dto.UserResponse{ID: u.ID, Username: u.Username, Email: u.Email, Roles: roles}
}

func ToUserResponses(us []domain.User) []dto.UserResponse {
	out := make([]dto.UserResponse, 0, len(us))
	for i := range us {
		out = append(out, *ToUserResponse(&us[i]))
	}
	return out
}

// ToUserEntity 新用户：密码做 bcrypt，默认 ROLE_USER
func ToUserEntity(req *dto.UserRequest) (*domain.User, error) {
	if req == nil {
		return nil, nil
	}
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	return &domain.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hash,
		Roles:    []string{domain.RoleUser},
	}, nil
}
