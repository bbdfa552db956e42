// Package impl provides the concrete implementations of the usecase
// contracts. Each service decides its query plan from the parent context and
// the filter shape, and returns entities re-encoded with opaque IDs.
package impl

import (
	"strconv"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"
)

// --- Mapper functions ---
// These helpers convert domain entities into the external DTOs, re-encoding
// every internal key with its scope.

func toCategoryDTO(data *entity.Category) *usecase.Category {
	return &usecase.Category{
		ID:          identity.Encode(identity.ScopeCategory, data.ID),
		Name:        data.Name,
		Description: data.Description,
	}
}

func toMerchantDTO(data *entity.Storefront) *usecase.Merchant {
	return &usecase.Merchant{
		ID:   identity.Encode(identity.ScopeLocation, data.LocationID),
		Name: data.MerchantName,
		Location: usecase.MerchantLocation{
			Address: data.Address(),
			City:    data.City,
			State:   data.State,
			Zip:     strconv.Itoa(data.Zip),
		},
	}
}

func toProductDTO(data *entity.Product) *usecase.Product {
	return &usecase.Product{
		ID:         identity.Encode(identity.ScopeProduct, data.ID),
		Name:       data.Name,
		Picture:    data.Picture,
		CategoryID: identity.Encode(identity.ScopeCategory, data.CategoryID),
	}
}

// toVariantDTO flattens a variant and its generic product into a single
// variant-scoped Product carrying the location-specific price and weight.
func toVariantDTO(data *entity.Variant) *usecase.Product {
	price := data.Price
	weight := data.Weight
	merchantID := identity.Encode(identity.ScopeLocation, data.LocationID)

	return &usecase.Product{
		ID:         identity.Encode(identity.ScopeVariant, data.ID),
		Name:       data.Product.Name,
		Picture:    data.Product.Picture,
		CategoryID: identity.Encode(identity.ScopeCategory, data.Product.CategoryID),
		Price:      &price,
		Weight:     &weight,
		MerchantID: &merchantID,
	}
}

// toListItemDTO maps a list item joined to its product. The ID is encoded at
// item-row granularity so a single list entry stays individually addressable.
func toListItemDTO(data *entity.ProductListItem) *usecase.Product {
	return &usecase.Product{
		ID:         identity.Encode(identity.ScopeProduct, data.ID),
		Name:       data.Product.Name,
		Picture:    data.Product.Picture,
		CategoryID: identity.Encode(identity.ScopeCategory, data.Product.CategoryID),
	}
}

func toListDTO(data *entity.ProductList) *usecase.List {
	return &usecase.List{
		ID:   identity.Encode(identity.ScopeList, data.ID),
		Name: data.Name,
	}
}

func toUserDTO(data *entity.User) *usecase.User {
	return &usecase.User{
		ID:           data.ID,
		Name:         data.FullName(),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Email:        data.Email,
		Password:     data.Password,
		MobileNumber: data.MobileNumber,
	}
}
