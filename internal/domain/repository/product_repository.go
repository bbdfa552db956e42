package repository

import (
	"context"
	"errors"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
)

// ErrVariantNotFound is a domain-specific error returned when a variant is not found.
var ErrVariantNotFound = errors.New("variant not found")

// ProductRepository defines lookups over generic products and their
// location-specific variants. Variant results always carry the joined
// generic product.
type ProductRepository interface {
	// Find retrieves every generic product satisfying the criteria.
	Find(ctx context.Context, crit query.ProductCriteria) ([]*entity.Product, error)

	// FindVariantsAtLocation retrieves every variant sold at the location,
	// with the criteria applied against the joined generic product.
	FindVariantsAtLocation(ctx context.Context, locationID int64, crit query.ProductCriteria) ([]*entity.Variant, error)

	// FindVariantByID retrieves a single variant by its own key.
	FindVariantByID(ctx context.Context, variantID int64) (*entity.Variant, error)

	// FindVariantAt retrieves the unique variant of a product at a location.
	FindVariantAt(ctx context.Context, productID, locationID int64) (*entity.Variant, error)

	// SaveVariantPrice persists the variant's current price.
	SaveVariantPrice(ctx context.Context, variant *entity.Variant) error
}
