package impl

import (
	"context"
	"testing"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	domainerrors "github.com/FlippingBinary/grocery-deflater/internal/domain/errors"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	mockRepo "github.com/FlippingBinary/grocery-deflater/internal/mocks/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// categoryServiceFixtures holds all test dependencies for category service tests.
type categoryServiceFixtures struct {
	service      usecase.CategoryUsecase
	categoryRepo *mockRepo.MockCategoryRepository
}

func createTestCategoryService(t *testing.T) categoryServiceFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	service := NewCategoryService(categoryRepo)

	return categoryServiceFixtures{
		service:      service,
		categoryRepo: categoryRepo,
	}
}

func assertErrorCode(t *testing.T, err error, code string) {
	t.Helper()

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.ErrorCode())
}

func TestCategoryService_ResolveCategories_NoFilter(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		Find(ctx, query.CategoryCriteria{}).
		Return([]*entity.Category{
			{ID: 1, Name: "Dairy", Description: "Milk and cheese"},
			{ID: 2, Name: "Bakery", Description: "Bread and pastry"},
		}, nil)

	categories, err := fx.service.ResolveCategories(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, identity.Encode(identity.ScopeCategory, 1), categories[0].ID)
	assert.Equal(t, "Dairy", categories[0].Name)
	assert.Equal(t, "Milk and cheese", categories[0].Description)
}

func TestCategoryService_ResolveCategories_ByFilter(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	encodedID := identity.Encode(identity.ScopeCategory, 7)
	prefix := "Da"

	var wantID int64 = 7
	fx.categoryRepo.EXPECT().
		Find(ctx, query.CategoryCriteria{
			ID:   &wantID,
			Name: query.Match{StartsWith: &prefix},
		}).
		Return([]*entity.Category{{ID: 7, Name: "Dairy"}}, nil)

	categories, err := fx.service.ResolveCategories(ctx, &usecase.CategoryFilter{
		ID:   &encodedID,
		Name: &usecase.StringMatch{StartsWith: &prefix},
	}, nil)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, encodedID, categories[0].ID)
}

func TestCategoryService_ResolveCategories_MalformedID(t *testing.T) {
	fx := createTestCategoryService(t)

	badID := "not-base64!!"
	_, err := fx.service.ResolveCategories(context.Background(), &usecase.CategoryFilter{ID: &badID}, nil)
	assertErrorCode(t, err, "INVALID_ID")
}

func TestCategoryService_ResolveCategories_ScopeMismatch(t *testing.T) {
	fx := createTestCategoryService(t)

	productID := identity.Encode(identity.ScopeProduct, 7)
	_, err := fx.service.ResolveCategories(context.Background(), &usecase.CategoryFilter{ID: &productID}, nil)
	assertErrorCode(t, err, "SCOPE_MISMATCH")
}

func TestCategoryService_ResolveCategories_ParentProduct(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	parent := &usecase.Product{
		ID:         identity.Encode(identity.ScopeProduct, 3),
		CategoryID: identity.Encode(identity.ScopeCategory, 9),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(&entity.Category{ID: 9, Name: "Dairy"}, nil)

	categories, err := fx.service.ResolveCategories(ctx, nil, parent)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, identity.Encode(identity.ScopeCategory, 9), categories[0].ID)
}

func TestCategoryService_ResolveCategories_ParentAndFilterExclusive(t *testing.T) {
	fx := createTestCategoryService(t)

	parent := &usecase.Product{
		ID:         identity.Encode(identity.ScopeProduct, 3),
		CategoryID: identity.Encode(identity.ScopeCategory, 9),
	}

	_, err := fx.service.ResolveCategories(context.Background(), &usecase.CategoryFilter{}, parent)
	assertErrorCode(t, err, "INVALID_FILTER")
}

func TestCategoryService_ResolveCategories_ParentMissingCategoryID(t *testing.T) {
	fx := createTestCategoryService(t)

	parent := &usecase.Product{ID: identity.Encode(identity.ScopeProduct, 3)}

	_, err := fx.service.ResolveCategories(context.Background(), nil, parent)
	assertErrorCode(t, err, "INTERNAL_ERROR")
}

func TestCategoryService_ResolveCategories_ParentCategoryMissingRow(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	parent := &usecase.Product{
		ID:         identity.Encode(identity.ScopeProduct, 3),
		CategoryID: identity.Encode(identity.ScopeCategory, 9),
	}

	fx.categoryRepo.EXPECT().
		FindByID(ctx, int64(9)).
		Return(nil, repository.ErrCategoryNotFound)

	_, err := fx.service.ResolveCategories(ctx, nil, parent)
	assertErrorCode(t, err, "INTERNAL_ERROR")
}

func TestCategoryService_ResolveCategories_RepositoryError(t *testing.T) {
	fx := createTestCategoryService(t)

	ctx := context.Background()
	fx.categoryRepo.EXPECT().
		Find(ctx, query.CategoryCriteria{}).
		Return(nil, errors.New("connection reset"))

	_, err := fx.service.ResolveCategories(ctx, nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find categories")
}
