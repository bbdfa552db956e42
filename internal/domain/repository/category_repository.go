// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
)

// ErrCategoryNotFound is a domain-specific error returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the standard operations for category persistence.
type CategoryRepository interface {
	// FindByID retrieves a single category by its internal key.
	FindByID(ctx context.Context, id int64) (*entity.Category, error)

	// Find retrieves every category satisfying the criteria. An empty
	// criteria value matches all categories.
	Find(ctx context.Context, crit query.CategoryCriteria) ([]*entity.Category, error)
}
