package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/atkinsguitar/pos-api/internal/domain/entity"
	"github.com/atkinsguitar/pos-api/internal/domain/enum"
	"github.com/atkinsguitar/pos-api/internal/domain/repository"
	"github.com/atkinsguitar/pos-api/pkg/apperror"
	"github.com/atkinsguitar/pos-api/pkg/utils"
)

const minPasswordLength = 6

// UserService owns account administration: creating cashier accounts,
// role changes, password resets, and deactivation.
type UserService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUserInput carries a new account.
type CreateUserInput struct {
	Username string
	Name     string
	Password string
	Role     enum.UserRole
}

func (s *UserService) Create(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if len(input.Password) < minPasswordLength {
		return nil, apperror.NewBadRequestError("password must be at least 6 characters")
	}
	if !input.Role.IsValid() {
		return nil, apperror.NewBadRequestError("invalid role")
	}

	existing, err := s.userRepo.GetByUsername(ctx, input.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("username already taken")
	}

	hash, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: input.Username,
		Name:     input.Name,
		Password: hash,
		Role:     input.Role,
		IsActive: true,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// UpdateUserInput carries a partial account update. Nil fields are left
// unchanged; a non-empty Password resets the password.
type UpdateUserInput struct {
	Name     *string
	Role     *enum.UserRole
	Password *string
	IsActive *bool
}

func (s *UserService) Update(ctx context.Context, id uuid.UUID, input *UpdateUserInput) (*entity.User, error) {
	user, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Role != nil {
		if !input.Role.IsValid() {
			return nil, apperror.NewBadRequestError("invalid role")
		}
		user.Role = *input.Role
	}
	if input.Password != nil && *input.Password != "" {
		if len(*input.Password) < minPasswordLength {
			return nil, apperror.NewBadRequestError("password must be at least 6 characters")
		}
		hash, err := utils.HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}
	if input.IsActive != nil {
		user.IsActive = *input.IsActive
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Deactivate disables an account without deleting it, so its name stays
// attached to past transactions. An actor may not deactivate themselves.
func (s *UserService) Deactivate(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return apperror.NewBadRequestError("cannot deactivate your own account")
	}

	user, err := s.GetByID(ctx, id)
	if err != nil {
		return err
	}
	user.IsActive = false
	return s.userRepo.Update(ctx, user)
}
