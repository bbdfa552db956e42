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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// merchantServiceFixtures holds all test dependencies for merchant service tests.
type merchantServiceFixtures struct {
	service        usecase.MerchantUsecase
	storefrontRepo *mockRepo.MockStorefrontRepository
}

func createTestMerchantService(t *testing.T) merchantServiceFixtures {
	storefrontRepo := mockRepo.NewMockStorefrontRepository(t)
	service := NewMerchantService(storefrontRepo)

	return merchantServiceFixtures{
		service:        service,
		storefrontRepo: storefrontRepo,
	}
}

func storeA() *entity.Storefront {
	return &entity.Storefront{
		LocationID:   10,
		MerchantID:   1,
		MerchantName: "Store A",
		StreetNumber: 12,
		StreetName:   "Main St",
		City:         "Springfield",
		State:        "IL",
		Zip:          62704,
	}
}

func TestMerchantService_ResolveMerchants_ByID(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(storeA(), nil)

	encodedID := identity.Encode(identity.ScopeLocation, 10)
	merchants, err := fx.service.ResolveMerchants(ctx, &usecase.MerchantFilter{ID: &encodedID}, nil)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, encodedID, merchants[0].ID)
	assert.Equal(t, "Store A", merchants[0].Name)
	assert.Equal(t, "12 Main St", merchants[0].Location.Address)
	assert.Equal(t, "Springfield", merchants[0].Location.City)
	assert.Equal(t, "IL", merchants[0].Location.State)
	assert.Equal(t, "62704", merchants[0].Location.Zip)
}

func TestMerchantService_ResolveMerchants_ByID_Miss(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindByID(ctx, int64(999)).
		Return(nil, repository.ErrStorefrontNotFound)

	encodedID := identity.Encode(identity.ScopeLocation, 999)
	merchants, err := fx.service.ResolveMerchants(ctx, &usecase.MerchantFilter{ID: &encodedID}, nil)
	require.NoError(t, err)
	assert.Empty(t, merchants)
}

func TestMerchantService_ResolveMerchants_ByID_ScopeMismatch(t *testing.T) {
	fx := createTestMerchantService(t)

	encodedID := identity.Encode(identity.ScopeProduct, 10)
	_, err := fx.service.ResolveMerchants(context.Background(), &usecase.MerchantFilter{ID: &encodedID}, nil)
	assertErrorCode(t, err, "SCOPE_MISMATCH")
}

func TestMerchantService_ResolveMerchants_IDTakesPrecedenceOverName(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindByID(ctx, int64(10)).
		Return(storeA(), nil)

	encodedID := identity.Encode(identity.ScopeLocation, 10)
	name := "ignored"
	merchants, err := fx.service.ResolveMerchants(ctx, &usecase.MerchantFilter{
		ID:   &encodedID,
		Name: &usecase.StringMatch{Matches: &name},
	}, nil)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
}

func TestMerchantService_ResolveMerchants_ByName(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	prefix := "Store"
	fx.storefrontRepo.EXPECT().
		FindByMerchantName(ctx, query.Match{StartsWith: &prefix}).
		Return([]*entity.Storefront{storeA()}, nil)

	merchants, err := fx.service.ResolveMerchants(ctx, &usecase.MerchantFilter{
		Name: &usecase.StringMatch{StartsWith: &prefix},
	}, nil)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, "Store A", merchants[0].Name)
}

func TestMerchantService_ResolveMerchants_ByLocation(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	city := "Springfield"
	state := "IL"
	fx.storefrontRepo.EXPECT().
		FindByAddress(ctx, query.AddressCriteria{
			City:  query.Match{Equals: &city},
			State: query.Match{Equals: &state},
		}).
		Return([]*entity.Storefront{storeA()}, nil)

	merchants, err := fx.service.ResolveMerchants(ctx, &usecase.MerchantFilter{
		Location: &usecase.LocationFilter{
			City:  &usecase.StringMatch{Matches: &city},
			State: &usecase.StringMatch{Matches: &state},
		},
	}, nil)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
}

func TestMerchantService_ResolveMerchants_ParentGenericProduct(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindByProduct(ctx, int64(3)).
		Return([]*entity.Storefront{storeA()}, nil)

	parent := &usecase.Product{ID: identity.Encode(identity.ScopeProduct, 3)}
	merchants, err := fx.service.ResolveMerchants(ctx, nil, parent)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
	assert.Equal(t, identity.Encode(identity.ScopeLocation, 10), merchants[0].ID)
}

func TestMerchantService_ResolveMerchants_ParentVariant(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindByVariant(ctx, int64(42)).
		Return(storeA(), nil)

	parent := &usecase.Product{ID: identity.Encode(identity.ScopeVariant, 42)}
	merchants, err := fx.service.ResolveMerchants(ctx, nil, parent)
	require.NoError(t, err)
	require.Len(t, merchants, 1)
}

func TestMerchantService_ResolveMerchants_ParentVariantWithoutLocation(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindByVariant(ctx, int64(42)).
		Return(nil, repository.ErrStorefrontNotFound)

	parent := &usecase.Product{ID: identity.Encode(identity.ScopeVariant, 42)}
	_, err := fx.service.ResolveMerchants(ctx, nil, parent)
	assertErrorCode(t, err, "INTERNAL_ERROR")
}

func TestMerchantService_ResolveMerchants_ParentWrongScope(t *testing.T) {
	fx := createTestMerchantService(t)

	parent := &usecase.Product{ID: identity.Encode(identity.ScopeCategory, 9)}
	_, err := fx.service.ResolveMerchants(context.Background(), nil, parent)
	assertErrorCode(t, err, "SCOPE_MISMATCH")
}

func TestMerchantService_ResolveMerchants_All(t *testing.T) {
	fx := createTestMerchantService(t)

	ctx := context.Background()
	fx.storefrontRepo.EXPECT().
		FindAll(ctx).
		Return([]*entity.Storefront{storeA(), {
			LocationID:   11,
			MerchantID:   1,
			MerchantName: "Store A",
			StreetNumber: 4,
			StreetName:   "Oak Ave",
			City:         "Shelbyville",
			State:        "IL",
			Zip:          62565,
		}}, nil)

	merchants, err := fx.service.ResolveMerchants(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, merchants, 2)
	assert.Equal(t, "4 Oak Ave", merchants[1].Location.Address)
}
