package usecase

import "context"

// ListUsecase defines the product list resolution contract and the add-item
// mutation.
type ListUsecase interface {
	// ResolveList returns the first list matched by the filter, honoring
	// the fields in the order id, userId, name. A miss returns nil, not an
	// error: "not found" is a valid terminal value for point lookups.
	ResolveList(ctx context.Context, filter ListFilter) (*List, error)

	// AddToList appends a generic product to a list. A variant-scoped
	// product ID is dereferenced to its owning generic product first.
	// Returns nil when the list itself does not exist.
	AddToList(ctx context.Context, input AddToListInput) (*List, error)
}
