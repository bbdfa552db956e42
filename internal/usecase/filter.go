// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to resolve typed graph queries.
package usecase

import "github.com/FlippingBinary/grocery-deflater/internal/domain/query"

// StringMatch is the wire shape of a partial string filter. All parts are
// optional and combine conjunctively.
type StringMatch struct {
	StartsWith *string `json:"startsWith" mapstructure:"startsWith"`
	EndsWith   *string `json:"endsWith" mapstructure:"endsWith"`
	Matches    *string `json:"matches" mapstructure:"matches"`
}

// Match folds the present parts into a backend-neutral predicate. A nil
// receiver imposes no constraint.
func (s *StringMatch) Match() query.Match {
	if s == nil {
		return query.Match{}
	}

	return query.Match{
		StartsWith: s.StartsWith,
		EndsWith:   s.EndsWith,
		Equals:     s.Matches,
	}
}

// CategoryFilter selects categories by opaque ID, name, or description.
type CategoryFilter struct {
	ID          *string      `json:"id" mapstructure:"id"`
	Name        *StringMatch `json:"name" mapstructure:"name"`
	Description *StringMatch `json:"description" mapstructure:"description"`
}

// LocationFilter restricts merchant locations by address columns. The
// address match applies to the street name.
type LocationFilter struct {
	Address *StringMatch `json:"address" mapstructure:"address"`
	City    *StringMatch `json:"city" mapstructure:"city"`
	State   *StringMatch `json:"state" mapstructure:"state"`
	Zip     *StringMatch `json:"zip" mapstructure:"zip"`
}

// MerchantFilter selects storefronts. When several shapes are present the
// resolver honors them in the order id, name, location; the branches are not
// combined.
type MerchantFilter struct {
	ID       *string         `json:"id" mapstructure:"id"`
	Name     *StringMatch    `json:"name" mapstructure:"name"`
	Location *LocationFilter `json:"location" mapstructure:"location"`
}

// ProductFilter selects products. CategoryID (an opaque category ID) takes
// precedence over Category (a name match) when both are present.
type ProductFilter struct {
	ID         *string      `json:"id" mapstructure:"id"`
	Name       *StringMatch `json:"name" mapstructure:"name"`
	Category   *StringMatch `json:"category" mapstructure:"category"`
	CategoryID *string      `json:"categoryId" mapstructure:"categoryId"`
}

// ListFilter selects a single product list. Exactly one field is expected;
// the resolver honors them in the order id, userId, name.
type ListFilter struct {
	ID     *string `json:"id" mapstructure:"id"`
	UserID *int64  `json:"userId" mapstructure:"userId"`
	Name   *string `json:"name" mapstructure:"name"`
}

// UpdateProductPriceInput carries the price mutation arguments. ProductID may
// be product- or variant-scoped; MerchantID is only consulted for the former.
type UpdateProductPriceInput struct {
	ProductID  string  `json:"productId" mapstructure:"productId"`
	MerchantID string  `json:"merchantId" mapstructure:"merchantId"`
	Price      float64 `json:"price" mapstructure:"price"`
}

// AddToListInput carries the add-to-list mutation arguments. A variant-scoped
// ProductID is dereferenced to its owning generic product.
type AddToListInput struct {
	ListID    string `json:"listId" mapstructure:"listId"`
	ProductID string `json:"productId" mapstructure:"productId"`
}
