package service

import (
	"context"
	"fmt"
	"regexp"

	"galaxy_api/internal/common"
	"galaxy_api/internal/common/security"
	"galaxy_api/internal/domain/model"
	"galaxy_api/internal/domain/repository"
)

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UpsertUserRequest is the payload for both create and update; every field
// is required and the plaintext password is hashed before it reaches the
// repository.
type UpsertUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullname"`
	Role     string `json:"role"`
}

func (r UpsertUserRequest) validate() (model.Role, error) {
	if r.Email == "" || r.Password == "" || r.FullName == "" {
		return model.RoleInvalid, fmt.Errorf("email, password and fullname are required: %w", common.ErrValidation)
	}
	if !emailPattern.MatchString(r.Email) {
		return model.RoleInvalid, fmt.Errorf("invalid input for field 'email': %w", common.ErrValidation)
	}
	role, err := model.ParseRole(r.Role)
	if err != nil {
		return model.RoleInvalid, fmt.Errorf("%v: %w", err, common.ErrValidation)
	}
	return role, nil
}

func (s *UserService) Create(ctx context.Context, req UpsertUserRequest) (*model.User, error) {
	role, err := req.validate()
	if err != nil {
		return nil, err
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:          req.Email,
		FullName:       req.FullName,
		HashedPassword: hashedPassword,
		Role:           role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Get(ctx context.Context, id int64) (*model.User, error) {
	return s.userRepo.FindByID(ctx, id)
}

func (s *UserService) Update(ctx context.Context, id int64, req UpsertUserRequest) (*model.User, error) {
	role, err := req.validate()
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	hashedPassword, err := security.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user.Email = req.Email
	user.FullName = req.FullName
	user.HashedPassword = hashedPassword
	user.Role = role

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.userRepo.Delete(ctx, id)
}
