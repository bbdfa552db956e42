package impl

import (
	"context"
	"testing"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	mockRepo "github.com/FlippingBinary/grocery-deflater/internal/mocks/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	service := NewUserService(userRepo)

	return userServiceFixtures{
		service:  service,
		userRepo: userRepo,
	}
}

func TestUserService_ResolveUser_Found(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jo@example.com").
		Return(&entity.User{
			ID:           2,
			FirstName:    "Jo",
			LastName:     "Smith",
			Email:        "jo@example.com",
			Password:     "hunter2",
			MobileNumber: "555-0100",
		}, nil)

	user, err := fx.service.ResolveUser(ctx, "jo@example.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "Jo Smith", user.Name)
	assert.Equal(t, "jo@example.com", user.Email)
}

func TestUserService_ResolveUser_MissReturnsNil(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "nobody@example.com").
		Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.ResolveUser(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_ResolveUser_RepositoryError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindByEmail(ctx, "jo@example.com").
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.ResolveUser(ctx, "jo@example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find user by email")
}
