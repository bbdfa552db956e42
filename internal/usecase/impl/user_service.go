package impl

import (
	"context"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user resolution service.
func NewUserService(userRepo repository.UserRepository) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
	}
}

// ResolveUser looks a user up by exact email match. A miss is a valid nil
// result.
func (s *userService) ResolveUser(ctx context.Context, email string) (*usecase.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDTO(user), nil
}
