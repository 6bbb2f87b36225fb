package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"contenthub-backend/internal/domains/user/model"
	"contenthub-backend/internal/domains/user/repository"
	"contenthub-backend/internal/shared"
)

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) ServiceInterface {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	return s.userRepo.Get(ctx, id)
}

func (s *userService) UpsertUser(ctx context.Context, params model.UpsertUserParams) (*model.User, error) {
	if params.Role != nil && !params.Role.IsValid() {
		return nil, fmt.Errorf("invalid role %q", *params.Role)
	}

	return s.userRepo.Upsert(ctx, params)
}

func (s *userService) DeleteUser(ctx context.Context, actor shared.Actor, id uuid.UUID) (bool, error) {
	if !actor.CanManage(id) {
		return false, model.ErrForbidden
	}

	return s.userRepo.Delete(ctx, id)
}
