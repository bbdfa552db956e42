package repository

import (
	"context"
	"errors"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
)

// ErrListNotFound is a domain-specific error returned when a product list is not found.
var ErrListNotFound = errors.New("product list not found")

// ListRepository defines the standard operations for product list persistence.
type ListRepository interface {
	// FindByID retrieves a single list by its internal key.
	FindByID(ctx context.Context, id int64) (*entity.ProductList, error)

	// FindByOwner retrieves the first list owned by the given user.
	FindByOwner(ctx context.Context, ownerID int64) (*entity.ProductList, error)

	// FindByName retrieves the first list with an exact name match.
	FindByName(ctx context.Context, name string) (*entity.ProductList, error)

	// FindItems retrieves the list's items joined to their generic
	// products, with the criteria applied against the joined product.
	FindItems(ctx context.Context, listID int64, crit query.ProductCriteria) ([]*entity.ProductListItem, error)

	// AddItem appends a generic product to the list.
	AddItem(ctx context.Context, listID, productID int64) (*entity.ProductListItem, error)
}
