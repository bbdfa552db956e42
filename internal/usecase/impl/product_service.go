package impl

import (
	"context"
	"fmt"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	domainerrors "github.com/FlippingBinary/grocery-deflater/internal/domain/errors"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type productService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	listRepo     repository.ListRepository
}

// ProductServiceParams defines the dependencies for the product service
type ProductServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	ListRepo     repository.ListRepository
}

// NewProductService creates a new product resolution service instance
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		listRepo:     params.ListRepo,
	}
}

// ResolveProducts normalizes the filter into backend-neutral criteria, then
// branches on the parent context. Every branch applies the same criteria; the
// context only decides which row set they run against.
func (s *productService) ResolveProducts(ctx context.Context, filter *usecase.ProductFilter, rctx usecase.ResolutionContext) ([]*usecase.Product, error) {
	crit, err := s.normalizeFilter(ctx, filter)
	if err != nil {
		return nil, err
	}

	if list, ok := rctx.List(); ok {
		return s.resolveListItems(ctx, list, crit)
	}
	if merchant, ok := rctx.Merchant(); ok {
		return s.resolveVariantsAtMerchant(ctx, merchant, crit)
	}
	if category, ok := rctx.Category(); ok {
		recordID, ok := identity.Decode(category.ID)
		if !ok || recordID.Scope != identity.ScopeCategory {
			return nil, domainerrors.ErrInternalError.WithDetails("id of parent category is invalid")
		}
		// Intersects with any categoryId restriction already in the
		// criteria rather than widening it.
		crit.CategoryID = &recordID.Key
	}

	products, err := s.productRepo.Find(ctx, crit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	result := make([]*usecase.Product, 0, len(products))
	for _, product := range products {
		result = append(result, toProductDTO(product))
	}

	return result, nil
}

// normalizeFilter folds the wire filter into ProductCriteria. An opaque
// categoryId takes precedence over a category name match; the name match
// resolves to an inclusion set of internal category keys, which stays empty
// (matching nothing) when no category satisfies it.
func (s *productService) normalizeFilter(ctx context.Context, filter *usecase.ProductFilter) (query.ProductCriteria, error) {
	crit := query.ProductCriteria{}
	if filter == nil {
		return crit, nil
	}

	if filter.ID != nil {
		recordID, ok := identity.Decode(*filter.ID)
		if !ok {
			return crit, domainerrors.NewInvalidIDError("filterBy.id")
		}
		if recordID.Scope != identity.ScopeProduct {
			return crit, domainerrors.NewScopeMismatchError("filterBy.id", identity.ScopeProduct, recordID.Scope)
		}
		crit.ID = &recordID.Key
	}

	crit.Name = filter.Name.Match()

	switch {
	case filter.CategoryID != nil:
		recordID, ok := identity.Decode(*filter.CategoryID)
		if !ok {
			return crit, domainerrors.NewInvalidIDError("filterBy.categoryId")
		}
		if recordID.Scope != identity.ScopeCategory {
			return crit, domainerrors.NewScopeMismatchError("filterBy.categoryId", identity.ScopeCategory, recordID.Scope)
		}
		crit.CategoryIDs = []int64{recordID.Key}
	case filter.Category != nil:
		categories, err := s.categoryRepo.Find(ctx, query.CategoryCriteria{Name: filter.Category.Match()})
		if err != nil {
			return crit, errors.Wrap(err, "failed to find categories by name")
		}

		crit.CategoryIDs = make([]int64, 0, len(categories))
		for _, category := range categories {
			crit.CategoryIDs = append(crit.CategoryIDs, category.ID)
		}
	}

	return crit, nil
}

// resolveListItems returns the parent list's items, each re-encoded at
// item-row granularity so a single entry stays individually addressable.
func (s *productService) resolveListItems(ctx context.Context, list *usecase.List, crit query.ProductCriteria) ([]*usecase.Product, error) {
	recordID, ok := identity.Decode(list.ID)
	if !ok || recordID.Scope != identity.ScopeList {
		return nil, domainerrors.ErrInternalError.WithDetails("id of parent list is invalid")
	}

	items, err := s.listRepo.FindItems(ctx, recordID.Key, crit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find list items")
	}

	result := make([]*usecase.Product, 0, len(items))
	for _, item := range items {
		result = append(result, toListItemDTO(item))
	}

	return result, nil
}

// resolveVariantsAtMerchant flattens each variant sold at the parent
// storefront together with its generic product into one variant-scoped entry.
func (s *productService) resolveVariantsAtMerchant(ctx context.Context, merchant *usecase.Merchant, crit query.ProductCriteria) ([]*usecase.Product, error) {
	recordID, ok := identity.Decode(merchant.ID)
	if !ok || recordID.Scope != identity.ScopeLocation {
		return nil, domainerrors.ErrInternalError.WithDetails("id of parent merchant is invalid")
	}

	variants, err := s.productRepo.FindVariantsAtLocation(ctx, recordID.Key, crit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variants at location")
	}

	result := make([]*usecase.Product, 0, len(variants))
	for _, variant := range variants {
		result = append(result, toVariantDTO(variant))
	}

	return result, nil
}

// UpdateProductPrice sets a variant's price and persists it. The variant is
// addressed either directly by a variant-scoped productId, or by the pair of
// a product-scoped productId and a location-scoped merchantId.
func (s *productService) UpdateProductPrice(ctx context.Context, input usecase.UpdateProductPriceInput) (*usecase.Product, error) {
	variant, err := s.findTargetVariant(ctx, input)
	if err != nil {
		return nil, err
	}

	variant.Price = input.Price
	if err := s.productRepo.SaveVariantPrice(ctx, variant); err != nil {
		return nil, domainerrors.ErrUpdateFailed.WithDetails(err.Error())
	}

	return toVariantDTO(variant), nil
}

func (s *productService) findTargetVariant(ctx context.Context, input usecase.UpdateProductPriceInput) (*entity.Variant, error) {
	recordID, ok := identity.Decode(input.ProductID)
	if !ok {
		return nil, domainerrors.NewInvalidIDError("input.productId")
	}

	switch recordID.Scope {
	case identity.ScopeVariant:
		variant, err := s.productRepo.FindVariantByID(ctx, recordID.Key)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return nil, domainerrors.ErrVariantNotFound
			}

			return nil, errors.Wrap(err, "failed to find variant by id")
		}

		return variant, nil
	case identity.ScopeProduct:
		merchantID, ok := identity.Decode(input.MerchantID)
		if !ok {
			return nil, domainerrors.NewInvalidIDError("input.merchantId")
		}
		if merchantID.Scope != identity.ScopeLocation {
			return nil, domainerrors.NewScopeMismatchError("input.merchantId", identity.ScopeLocation, merchantID.Scope)
		}

		variant, err := s.productRepo.FindVariantAt(ctx, recordID.Key, merchantID.Key)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return nil, domainerrors.ErrVariantNotFound
			}

			return nil, errors.Wrap(err, "failed to find variant at location")
		}

		return variant, nil
	default:
		return nil, domainerrors.ErrScopeMismatch.WithDetails(
			fmt.Sprintf("input.productId uses scope %q; want %q or %q",
				recordID.Scope, identity.ScopeProduct, identity.ScopeVariant),
		)
	}
}
