package usecase

import "context"

// CategoryUsecase defines the category resolution contract.
type CategoryUsecase interface {
	// ResolveCategories returns categories matching the filter, or the
	// single category of the parent product. Supplying both the filter and
	// a parent is an error: a product has exactly one category, so
	// filtering inside it makes no sense.
	ResolveCategories(ctx context.Context, filter *CategoryFilter, parent *Product) ([]*Category, error)
}
