package impl

import (
	"context"

	domainerrors "github.com/FlippingBinary/grocery-deflater/internal/domain/errors"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
)

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category resolution service.
func NewCategoryService(categoryRepo repository.CategoryRepository) usecase.CategoryUsecase {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// ResolveCategories returns the categories matching the filter, or the single
// category of the parent product.
func (s *categoryService) ResolveCategories(ctx context.Context, filter *usecase.CategoryFilter, parent *usecase.Product) ([]*usecase.Category, error) {
	if parent != nil {
		return s.resolveParentCategory(ctx, filter, parent)
	}

	crit := query.CategoryCriteria{}
	if filter != nil {
		if filter.ID != nil {
			recordID, ok := identity.Decode(*filter.ID)
			if !ok {
				return nil, domainerrors.NewInvalidIDError("filterBy.id")
			}
			if recordID.Scope != identity.ScopeCategory {
				return nil, domainerrors.NewScopeMismatchError("filterBy.id", identity.ScopeCategory, recordID.Scope)
			}
			crit.ID = &recordID.Key
		}
		crit.Name = filter.Name.Match()
		crit.Description = filter.Description.Match()
	}

	categories, err := s.categoryRepo.Find(ctx, crit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	result := make([]*usecase.Category, 0, len(categories))
	for _, category := range categories {
		result = append(result, toCategoryDTO(category))
	}

	return result, nil
}

// resolveParentCategory looks up the one category the parent product embeds.
// Filters are rejected here: a product has exactly one category, so filtering
// inside it makes no sense. A missing or mis-scoped categoryId is an
// invariant violation, not a user error.
func (s *categoryService) resolveParentCategory(ctx context.Context, filter *usecase.CategoryFilter, parent *usecase.Product) ([]*usecase.Category, error) {
	if filter != nil {
		return nil, domainerrors.ErrInvalidFilterCombination.WithDetails(
			"cannot filter categories inside a product because a product has exactly one category",
		)
	}
	if parent.CategoryID == "" {
		return nil, domainerrors.ErrInternalError.WithDetails(
			"parent product has no categoryId; this should not be possible",
		)
	}

	recordID, ok := identity.Decode(parent.CategoryID)
	if !ok || recordID.Scope != identity.ScopeCategory {
		return nil, domainerrors.ErrInternalError.WithDetails("categoryId of parent product is invalid")
	}

	category, err := s.categoryRepo.FindByID(ctx, recordID.Key)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, domainerrors.ErrInternalError.WithDetails("category of parent product does not exist")
		}

		return nil, errors.Wrap(err, "failed to find category of parent product")
	}

	return []*usecase.Category{toCategoryDTO(category)}, nil
}
