package impl

import (
	"context"
	"testing"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	mockRepo "github.com/FlippingBinary/grocery-deflater/internal/mocks/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service      usecase.ProductUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	listRepo     *mockRepo.MockListRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	listRepo := mockRepo.NewMockListRepository(t)
	service := NewProductService(ProductServiceParams{
		ProductRepo:  productRepo,
		CategoryRepo: categoryRepo,
		ListRepo:     listRepo,
	})

	return productServiceFixtures{
		service:      service,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		listRepo:     listRepo,
	}
}

func milk() *entity.Product {
	return &entity.Product{ID: 3, Name: "Milk", Picture: "milk.png", CategoryID: 9}
}

func milkAtStoreA() *entity.Variant {
	return &entity.Variant{
		ID:         42,
		ProductID:  3,
		LocationID: 10,
		Price:      3.50,
		Weight:     1.0,
		Product:    milk(),
	}
}

func TestProductService_ResolveProducts_Standalone(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{}).
		Return([]*entity.Product{milk()}, nil)

	products, err := fx.service.ResolveProducts(ctx, nil, usecase.Standalone())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, identity.Encode(identity.ScopeProduct, 3), products[0].ID)
	assert.Equal(t, "Milk", products[0].Name)
	assert.Equal(t, identity.Encode(identity.ScopeCategory, 9), products[0].CategoryID)
	assert.Nil(t, products[0].Price)
	assert.Nil(t, products[0].MerchantID)
}

func TestProductService_ResolveProducts_ByIDAndName(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	encodedID := identity.Encode(identity.ScopeProduct, 3)
	prefix := "Mi"
	suffix := "lk"

	var wantID int64 = 3
	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{
			ID:   &wantID,
			Name: query.Match{StartsWith: &prefix, EndsWith: &suffix},
		}).
		Return([]*entity.Product{milk()}, nil)

	products, err := fx.service.ResolveProducts(ctx, &usecase.ProductFilter{
		ID:   &encodedID,
		Name: &usecase.StringMatch{StartsWith: &prefix, EndsWith: &suffix},
	}, usecase.Standalone())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductService_ResolveProducts_IDScopeMismatch(t *testing.T) {
	fx := createTestProductService(t)

	variantID := identity.Encode(identity.ScopeVariant, 42)
	_, err := fx.service.ResolveProducts(context.Background(), &usecase.ProductFilter{ID: &variantID}, usecase.Standalone())
	assertErrorCode(t, err, "SCOPE_MISMATCH")
}

func TestProductService_ResolveProducts_CategoryIDOverridesCategoryName(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	encodedCategory := identity.Encode(identity.ScopeCategory, 9)
	name := "Dairy"

	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{CategoryIDs: []int64{9}}).
		Return([]*entity.Product{milk()}, nil)

	// The category name match is never consulted when categoryId is set.
	products, err := fx.service.ResolveProducts(ctx, &usecase.ProductFilter{
		CategoryID: &encodedCategory,
		Category:   &usecase.StringMatch{Matches: &name},
	}, usecase.Standalone())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductService_ResolveProducts_ByCategoryName(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	name := "Dairy"
	fx.categoryRepo.EXPECT().
		Find(ctx, query.CategoryCriteria{Name: query.Match{Equals: &name}}).
		Return([]*entity.Category{{ID: 9, Name: "Dairy"}, {ID: 12, Name: "Dairy Free"}}, nil)

	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{CategoryIDs: []int64{9, 12}}).
		Return([]*entity.Product{milk()}, nil)

	products, err := fx.service.ResolveProducts(ctx, &usecase.ProductFilter{
		Category: &usecase.StringMatch{Matches: &name},
	}, usecase.Standalone())
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductService_ResolveProducts_CategoryNameWithoutMatches(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	name := "Nonexistent"
	fx.categoryRepo.EXPECT().
		Find(ctx, query.CategoryCriteria{Name: query.Match{Equals: &name}}).
		Return([]*entity.Category{}, nil)

	// An empty inclusion set still restricts: it matches nothing.
	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{CategoryIDs: []int64{}}).
		Return([]*entity.Product{}, nil)

	products, err := fx.service.ResolveProducts(ctx, &usecase.ProductFilter{
		Category: &usecase.StringMatch{Matches: &name},
	}, usecase.Standalone())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ResolveProducts_WithinCategory(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	var wantCategory int64 = 9
	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{CategoryID: &wantCategory}).
		Return([]*entity.Product{milk()}, nil)

	parent := &usecase.Category{ID: identity.Encode(identity.ScopeCategory, 9), Name: "Dairy"}
	products, err := fx.service.ResolveProducts(ctx, nil, usecase.WithinCategory(parent))
	require.NoError(t, err)
	require.Len(t, products, 1)
}

func TestProductService_ResolveProducts_WithinCategoryIntersectsFilter(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	encodedOther := identity.Encode(identity.ScopeCategory, 12)

	var wantCategory int64 = 9
	fx.productRepo.EXPECT().
		Find(ctx, query.ProductCriteria{CategoryIDs: []int64{12}, CategoryID: &wantCategory}).
		Return([]*entity.Product{}, nil)

	parent := &usecase.Category{ID: identity.Encode(identity.ScopeCategory, 9), Name: "Dairy"}
	products, err := fx.service.ResolveProducts(ctx, &usecase.ProductFilter{CategoryID: &encodedOther}, usecase.WithinCategory(parent))
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductService_ResolveProducts_WithinMerchant(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindVariantsAtLocation(ctx, int64(10), query.ProductCriteria{}).
		Return([]*entity.Variant{milkAtStoreA()}, nil)

	parent := &usecase.Merchant{ID: identity.Encode(identity.ScopeLocation, 10), Name: "Store A"}
	products, err := fx.service.ResolveProducts(ctx, nil, usecase.WithinMerchant(parent))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, identity.Encode(identity.ScopeVariant, 42), products[0].ID)
	assert.Equal(t, "Milk", products[0].Name)
	require.NotNil(t, products[0].Price)
	assert.InDelta(t, 3.50, *products[0].Price, 0.001)
	require.NotNil(t, products[0].MerchantID)
	assert.Equal(t, identity.Encode(identity.ScopeLocation, 10), *products[0].MerchantID)
}

func TestProductService_ResolveProducts_WithinList(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.listRepo.EXPECT().
		FindItems(ctx, int64(5), query.ProductCriteria{}).
		Return([]*entity.ProductListItem{
			{ID: 77, ProductListID: 5, ProductID: 3, Product: milk()},
		}, nil)

	parent := &usecase.List{ID: identity.Encode(identity.ScopeList, 5), Name: "Groceries"}
	products, err := fx.service.ResolveProducts(ctx, nil, usecase.WithinList(parent))
	require.NoError(t, err)
	require.Len(t, products, 1)
	// Item-row granularity: the ID addresses the list entry, not the product.
	assert.Equal(t, identity.Encode(identity.ScopeProduct, 77), products[0].ID)
	assert.Equal(t, "Milk", products[0].Name)
}

func TestProductService_UpdateProductPrice_ByVariantID(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	variant := milkAtStoreA()
	fx.productRepo.EXPECT().
		FindVariantByID(ctx, int64(42)).
		Return(variant, nil)
	fx.productRepo.EXPECT().
		SaveVariantPrice(ctx, variant).
		Return(nil)

	product, err := fx.service.UpdateProductPrice(ctx, usecase.UpdateProductPriceInput{
		ProductID: identity.Encode(identity.ScopeVariant, 42),
		Price:     4.00,
	})
	require.NoError(t, err)
	require.NotNil(t, product.Price)
	assert.InDelta(t, 4.00, *product.Price, 0.001)
	assert.Equal(t, identity.Encode(identity.ScopeVariant, 42), product.ID)
}

func TestProductService_UpdateProductPrice_ByProductAndMerchant(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	variant := milkAtStoreA()
	fx.productRepo.EXPECT().
		FindVariantAt(ctx, int64(3), int64(10)).
		Return(variant, nil)
	fx.productRepo.EXPECT().
		SaveVariantPrice(ctx, variant).
		Return(nil)

	product, err := fx.service.UpdateProductPrice(ctx, usecase.UpdateProductPriceInput{
		ProductID:  identity.Encode(identity.ScopeProduct, 3),
		MerchantID: identity.Encode(identity.ScopeLocation, 10),
		Price:      4.00,
	})
	require.NoError(t, err)
	require.NotNil(t, product.Price)
	assert.InDelta(t, 4.00, *product.Price, 0.001)
}

func TestProductService_UpdateProductPrice_SamePriceTwice(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	variant := milkAtStoreA()
	fx.productRepo.EXPECT().
		FindVariantByID(ctx, int64(42)).
		Return(variant, nil).
		Twice()
	fx.productRepo.EXPECT().
		SaveVariantPrice(ctx, variant).
		Return(nil).
		Twice()

	input := usecase.UpdateProductPriceInput{
		ProductID: identity.Encode(identity.ScopeVariant, 42),
		Price:     3.50,
	}

	first, err := fx.service.UpdateProductPrice(ctx, input)
	require.NoError(t, err)
	second, err := fx.service.UpdateProductPrice(ctx, input)
	require.NoError(t, err)
	assert.InDelta(t, *first.Price, *second.Price, 0.001)
	assert.InDelta(t, 3.50, variant.Price, 0.001)
}

func TestProductService_UpdateProductPrice_VariantMissing(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().
		FindVariantByID(ctx, int64(42)).
		Return(nil, repository.ErrVariantNotFound)

	_, err := fx.service.UpdateProductPrice(ctx, usecase.UpdateProductPriceInput{
		ProductID: identity.Encode(identity.ScopeVariant, 42),
		Price:     4.00,
	})
	assertErrorCode(t, err, "VARIANT_NOT_FOUND")
}

func TestProductService_UpdateProductPrice_WrongScope(t *testing.T) {
	fx := createTestProductService(t)

	_, err := fx.service.UpdateProductPrice(context.Background(), usecase.UpdateProductPriceInput{
		ProductID: identity.Encode(identity.ScopeLocation, 10),
		Price:     4.00,
	})
	assertErrorCode(t, err, "SCOPE_MISMATCH")
}

func TestProductService_UpdateProductPrice_SaveFailure(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	variant := milkAtStoreA()
	fx.productRepo.EXPECT().
		FindVariantByID(ctx, int64(42)).
		Return(variant, nil)
	fx.productRepo.EXPECT().
		SaveVariantPrice(ctx, variant).
		Return(errors.New("write conflict"))

	_, err := fx.service.UpdateProductPrice(ctx, usecase.UpdateProductPriceInput{
		ProductID: identity.Encode(identity.ScopeVariant, 42),
		Price:     4.00,
	})
	assertErrorCode(t, err, "UPDATE_FAILED")
}
