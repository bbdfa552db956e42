package usecase

import "context"

// ProductUsecase defines the product/variant resolution contract and the
// price mutation.
type ProductUsecase interface {
	// ResolveProducts normalizes the filter first (id, name, categoryId
	// over category), then branches on the resolution context: list
	// context returns the list's items at item-row granularity, merchant
	// context returns variant-shaped products sold at that location,
	// category context intersects the category restriction with any
	// category filter, and standalone context queries products directly.
	ResolveProducts(ctx context.Context, filter *ProductFilter, rctx ResolutionContext) ([]*Product, error)

	// UpdateProductPrice sets a variant's price. A product-scoped
	// ProductID requires a location-scoped MerchantID to pick the variant;
	// a variant-scoped ProductID addresses it directly and MerchantID is
	// ignored. Referencing an absent variant is an error.
	UpdateProductPrice(ctx context.Context, input UpdateProductPriceInput) (*Product, error)
}
