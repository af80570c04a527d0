package service

import (
	"context"
	"strings"

	"gin-gorm-todolist/internal/domain"
	"gin-gorm-todolist/internal/dto"
	"gin-gorm-todolist/internal/mapper"
	"gin-gorm-todolist/pkg/utils"
)

type UserService struct {
	users domain.UserRepository
}

func NewUserService(users domain.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Create(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error) {
	if req == nil {
		return nil, domain.BadRequest("Invalid user data.")
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, domain.BadRequest("Password is required.")
	}
	if err := s.checkDuplicates(ctx, req.Username, req.Email); err != nil {
		return nil, err
	}
	u, err := mapper.ToUserEntity(req)
	if err != nil {
		return nil, domain.BadRequest("%s", err.Error())
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(u), nil
}

func (s *UserService) checkDuplicates(ctx context.Context, username, email string) error {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflict(domain.UsernameAlreadyExists)
	}
	taken, err = s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		return domain.Conflict(domain.EmailAlreadyExists)
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*dto.UserResponse, error) {
	u, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(u), nil
}

func (s *UserService) mustFind(ctx context.Context, id uint) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("%s%d", domain.UserNotFoundID, id)
	}
	return u, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]dto.UserResponse, error) {
	us, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToUserResponses(us), nil
}

// Update 覆盖 username/email，密码和角色不动
func (s *UserService) Update(ctx context.Context, id uint, req *dto.UserRequest) (*dto.UserResponse, error) {
	u, err := s.mustFind(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.overwrite(ctx, u, req)
}

func (s *UserService) UpdateByUsername(ctx context.Context, username string, req *dto.UserRequest) (*dto.UserResponse, error) {
	u, err := s.mustFindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.overwrite(ctx, u, req)
}

func (s *UserService) overwrite(ctx context.Context, u *domain.User, req *dto.UserRequest) (*dto.UserResponse, error) {
	if req == nil {
		return nil, domain.BadRequest("Invalid user data.")
	}
	u.Username = req.Username
	u.Email = req.Email
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(u), nil
}

// Delete 单次条件删除，删不到即 NotFound
func (s *UserService) Delete(ctx context.Context, id uint) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.NotFound("%s%d", domain.UserNotFoundID, id)
	}
	return nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	u, err := s.mustFindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return mapper.ToUserResponse(u), nil
}

func (s *UserService) mustFindByUsername(ctx context.Context, username string) (*domain.User, error) {
	u, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NotFound("%s%s", domain.UserNotFoundUsername, username)
	}
	return u, nil
}

func (s *UserService) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, email)
}

func (s *UserService) CountByEmail(ctx context.Context, email string) (int64, error) {
	return s.users.CountByEmail(ctx, email)
}

// EnsureAdmin 启动时调用；账号已存在则返回 false
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil || taken {
		return false, err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return false, err
	}
	admin := &domain.User{
		Username: username,
		Email:    email,
		Password: hash,
		Roles:    []string{domain.RoleAdmin},
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return false, err
	}
	return true, nil
}
