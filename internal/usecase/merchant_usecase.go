package usecase

import "context"

// MerchantUsecase defines the storefront resolution contract.
type MerchantUsecase interface {
	// ResolveMerchants returns storefront locations. When several filter
	// shapes are supplied the first matching branch wins, in this order:
	// filter.id, filter.name, filter.location, parent product, all
	// storefronts. A product-scoped parent yields every location selling
	// any of its variants; a variant-scoped parent yields exactly the one
	// location of that variant.
	ResolveMerchants(ctx context.Context, filter *MerchantFilter, parent *Product) ([]*Merchant, error)
}
