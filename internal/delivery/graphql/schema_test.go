package graphql

import (
	"context"
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	mockRepo "github.com/FlippingBinary/grocery-deflater/internal/mocks/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase/impl"
)

// schemaFixtures wires the real services over mocked repositories, so the
// tests exercise the full resolution path from query string to data map.
type schemaFixtures struct {
	schema       graphql.Schema
	categoryRepo *mockRepo.MockCategoryRepository
	storeRepo    *mockRepo.MockStorefrontRepository
	productRepo  *mockRepo.MockProductRepository
	listRepo     *mockRepo.MockListRepository
	userRepo     *mockRepo.MockUserRepository
}

func createTestSchema(t *testing.T) schemaFixtures {
	categoryRepo := mockRepo.NewMockCategoryRepository(t)
	storeRepo := mockRepo.NewMockStorefrontRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	listRepo := mockRepo.NewMockListRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)

	schema, err := NewSchema(SchemaParams{
		Categories: impl.NewCategoryService(categoryRepo),
		Merchants:  impl.NewMerchantService(storeRepo),
		Products: impl.NewProductService(impl.ProductServiceParams{
			ProductRepo:  productRepo,
			CategoryRepo: categoryRepo,
			ListRepo:     listRepo,
		}),
		Lists: impl.NewListService(impl.ListServiceParams{
			ListRepo:    listRepo,
			ProductRepo: productRepo,
		}),
		Users: impl.NewUserService(userRepo),
	})
	require.NoError(t, err)

	return schemaFixtures{
		schema:       schema,
		categoryRepo: categoryRepo,
		storeRepo:    storeRepo,
		productRepo:  productRepo,
		listRepo:     listRepo,
		userRepo:     userRepo,
	}
}

func execute(t *testing.T, fx schemaFixtures, request string, variables map[string]interface{}) *graphql.Result {
	t.Helper()

	return graphql.Do(graphql.Params{
		Schema:         fx.schema,
		RequestString:  request,
		VariableValues: variables,
		Context:        context.Background(),
	})
}

func strPtr(s string) *string {
	return &s
}

func int64Ptr(i int64) *int64 {
	return &i
}

func TestSchema_CategoryProductMerchantTraversal(t *testing.T) {
	fx := createTestSchema(t)

	fx.categoryRepo.EXPECT().
		Find(mock.Anything, query.CategoryCriteria{Name: query.Match{StartsWith: strPtr("Dai")}}).
		Return([]*entity.Category{{ID: 9, Name: "Dairy", Description: "Milk and cheese"}}, nil)
	fx.productRepo.EXPECT().
		Find(mock.Anything, query.ProductCriteria{CategoryID: int64Ptr(9)}).
		Return([]*entity.Product{{ID: 3, Name: "Milk", Picture: "milk.png", CategoryID: 9}}, nil)
	fx.storeRepo.EXPECT().
		FindByProduct(mock.Anything, int64(3)).
		Return([]*entity.Storefront{{
			LocationID:   10,
			MerchantID:   1,
			MerchantName: "Store A",
			StreetNumber: 12,
			StreetName:   "Main St",
			City:         "Springfield",
			State:        "IL",
			Zip:          62704,
		}}, nil)

	result := execute(t, fx, `{
		categories(filterBy: {name: {startsWith: "Dai"}}) {
			id
			name
			products {
				id
				name
				merchant {
					id
					name
					location { address city zip }
				}
			}
		}
	}`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	categories := data["categories"].([]interface{})
	require.Len(t, categories, 1)

	category := categories[0].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeCategory, 9), category["id"])
	assert.Equal(t, "Dairy", category["name"])

	products := category["products"].([]interface{})
	require.Len(t, products, 1)

	product := products[0].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeProduct, 3), product["id"])
	assert.Equal(t, "Milk", product["name"])

	merchant := product["merchant"].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeLocation, 10), merchant["id"])
	assert.Equal(t, "Store A", merchant["name"])

	location := merchant["location"].(map[string]interface{})
	assert.Equal(t, "12 Main St", location["address"])
	assert.Equal(t, "Springfield", location["city"])
	assert.Equal(t, "62704", location["zip"])
}

func TestSchema_MerchantProductsCarryVariantFields(t *testing.T) {
	fx := createTestSchema(t)

	fx.storeRepo.EXPECT().
		FindByMerchantName(mock.Anything, query.Match{Equals: strPtr("Store A")}).
		Return([]*entity.Storefront{{LocationID: 10, MerchantID: 1, MerchantName: "Store A"}}, nil)
	fx.productRepo.EXPECT().
		FindVariantsAtLocation(mock.Anything, int64(10), query.ProductCriteria{}).
		Return([]*entity.Variant{{
			ID:         42,
			ProductID:  3,
			LocationID: 10,
			Price:      3.50,
			Weight:     1.0,
			Product:    &entity.Product{ID: 3, Name: "Milk", Picture: "milk.png", CategoryID: 9},
		}}, nil)

	result := execute(t, fx, `{
		merchants(filterBy: {name: {matches: "Store A"}}) {
			id
			products { id name price weight merchantId }
		}
	}`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	merchants := data["merchants"].([]interface{})
	require.Len(t, merchants, 1)

	products := merchants[0].(map[string]interface{})["products"].([]interface{})
	require.Len(t, products, 1)

	product := products[0].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeVariant, 42), product["id"])
	assert.Equal(t, "Milk", product["name"])
	assert.InDelta(t, 3.50, product["price"], 0.0001)
	assert.InDelta(t, 1.0, product["weight"], 0.0001)
	assert.Equal(t, identity.Encode(identity.ScopeLocation, 10), product["merchantId"])
}

func TestSchema_ListProductsResolveItems(t *testing.T) {
	fx := createTestSchema(t)

	fx.listRepo.EXPECT().
		FindByID(mock.Anything, int64(5)).
		Return(&entity.ProductList{ID: 5, Name: "Groceries", OwnerID: 2}, nil)
	fx.listRepo.EXPECT().
		FindItems(mock.Anything, int64(5), query.ProductCriteria{}).
		Return([]*entity.ProductListItem{{
			ID:            101,
			ProductListID: 5,
			ProductID:     77,
			Product:       &entity.Product{ID: 77, Name: "Eggs", Picture: "eggs.png", CategoryID: 4},
		}}, nil)

	result := execute(t, fx, `query($id: ID!) {
		list(filterBy: {id: $id}) {
			id
			name
			products { id name }
		}
	}`, map[string]interface{}{"id": identity.Encode(identity.ScopeList, 5)})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	list := data["list"].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeList, 5), list["id"])
	assert.Equal(t, "Groceries", list["name"])

	products := list["products"].([]interface{})
	require.Len(t, products, 1)

	// Item-row granularity: the ID addresses the list entry, not the product.
	product := products[0].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeProduct, 101), product["id"])
	assert.Equal(t, "Eggs", product["name"])
}

func TestSchema_UserQuery(t *testing.T) {
	fx := createTestSchema(t)

	fx.userRepo.EXPECT().
		FindByEmail(mock.Anything, "jo@example.com").
		Return(&entity.User{
			ID:        2,
			FirstName: "Jo",
			LastName:  "Smith",
			Email:     "jo@example.com",
		}, nil)

	result := execute(t, fx, `{
		user(email: "jo@example.com") { id name email }
	}`, nil)
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	user := data["user"].(map[string]interface{})
	assert.Equal(t, 2, user["id"])
	assert.Equal(t, "Jo Smith", user["name"])
	assert.Equal(t, "jo@example.com", user["email"])
}

func TestSchema_UpdateProductPriceMutation(t *testing.T) {
	fx := createTestSchema(t)

	fx.productRepo.EXPECT().
		FindVariantByID(mock.Anything, int64(42)).
		Return(&entity.Variant{
			ID:         42,
			ProductID:  3,
			LocationID: 10,
			Price:      3.50,
			Weight:     1.0,
			Product:    &entity.Product{ID: 3, Name: "Milk", Picture: "milk.png", CategoryID: 9},
		}, nil)
	fx.productRepo.EXPECT().
		SaveVariantPrice(mock.Anything, mock.MatchedBy(func(v *entity.Variant) bool {
			return v.ID == 42 && v.Price == 4.00
		})).
		Return(nil)

	result := execute(t, fx, `mutation($input: UpdateProductPriceInput!) {
		updateProductPrice(input: $input) { id price merchantId }
	}`, map[string]interface{}{
		"input": map[string]interface{}{
			"productId": identity.Encode(identity.ScopeVariant, 42),
			"price":     4.00,
		},
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	product := data["updateProductPrice"].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeVariant, 42), product["id"])
	assert.InDelta(t, 4.00, product["price"], 0.0001)
	assert.Equal(t, identity.Encode(identity.ScopeLocation, 10), product["merchantId"])
}

func TestSchema_AddToListMutation(t *testing.T) {
	fx := createTestSchema(t)

	fx.listRepo.EXPECT().
		FindByID(mock.Anything, int64(5)).
		Return(&entity.ProductList{ID: 5, Name: "Groceries", OwnerID: 2}, nil)
	fx.listRepo.EXPECT().
		AddItem(mock.Anything, int64(5), int64(3)).
		Return(&entity.ProductListItem{ID: 102, ProductListID: 5, ProductID: 3}, nil)

	result := execute(t, fx, `mutation($input: AddToListInput!) {
		addToList(input: $input) { id name }
	}`, map[string]interface{}{
		"input": map[string]interface{}{
			"listId":    identity.Encode(identity.ScopeList, 5),
			"productId": identity.Encode(identity.ScopeProduct, 3),
		},
	})
	require.Empty(t, result.Errors)

	data := result.Data.(map[string]interface{})
	list := data["addToList"].(map[string]interface{})
	assert.Equal(t, identity.Encode(identity.ScopeList, 5), list["id"])
	assert.Equal(t, "Groceries", list["name"])
}

func TestSchema_ResolverErrorCarriesCodeExtension(t *testing.T) {
	fx := createTestSchema(t)

	result := execute(t, fx, `{
		categories(filterBy: {id: "not-base64!!"}) { id }
	}`, nil)
	require.NotEmpty(t, result.Errors)
	assert.Equal(t, "INVALID_ID", result.Errors[0].Extensions["code"])
}
