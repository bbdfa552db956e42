package repository

import (
	"context"
	"errors"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
)

// ErrStorefrontNotFound is a domain-specific error returned when a storefront location is not found.
var ErrStorefrontNotFound = errors.New("storefront not found")

// StorefrontRepository defines lookups over merchant locations. Every result
// row is a location already joined with its owning merchant's name, since the
// API never exposes a location without it.
type StorefrontRepository interface {
	// FindByID retrieves a single storefront by its location key.
	FindByID(ctx context.Context, locationID int64) (*entity.Storefront, error)

	// FindByMerchantName retrieves every location of every merchant whose
	// name satisfies the match.
	FindByMerchantName(ctx context.Context, name query.Match) ([]*entity.Storefront, error)

	// FindByAddress retrieves every location satisfying the combined
	// address criteria.
	FindByAddress(ctx context.Context, crit query.AddressCriteria) ([]*entity.Storefront, error)

	// FindByProduct retrieves every location selling any variant of the
	// given generic product.
	FindByProduct(ctx context.Context, productID int64) ([]*entity.Storefront, error)

	// FindByVariant retrieves the single location a variant is sold at.
	FindByVariant(ctx context.Context, variantID int64) (*entity.Storefront, error)

	// FindAll retrieves every location of every merchant.
	FindAll(ctx context.Context) ([]*entity.Storefront, error)
}
