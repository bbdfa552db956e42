package impl

import (
	"context"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	domainerrors "github.com/FlippingBinary/grocery-deflater/internal/domain/errors"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type listService struct {
	listRepo    repository.ListRepository
	productRepo repository.ProductRepository
}

// ListServiceParams defines the dependencies for the list service
type ListServiceParams struct {
	fx.In

	ListRepo    repository.ListRepository
	ProductRepo repository.ProductRepository
}

// NewListService creates a new product list service instance
func NewListService(params ListServiceParams) usecase.ListUsecase {
	return &listService{
		listRepo:    params.ListRepo,
		productRepo: params.ProductRepo,
	}
}

// ResolveList returns the first list matched by the filter fields in the
// order id, userId, name. A miss is a valid nil result.
func (s *listService) ResolveList(ctx context.Context, filter usecase.ListFilter) (*usecase.List, error) {
	var (
		list *entity.ProductList
		err  error
	)

	switch {
	case filter.ID != nil:
		recordID, ok := identity.Decode(*filter.ID)
		if !ok {
			return nil, domainerrors.NewInvalidIDError("filterBy.id")
		}
		if recordID.Scope != identity.ScopeList {
			return nil, domainerrors.NewScopeMismatchError("filterBy.id", identity.ScopeList, recordID.Scope)
		}

		list, err = s.listRepo.FindByID(ctx, recordID.Key)
	case filter.UserID != nil:
		list, err = s.listRepo.FindByOwner(ctx, *filter.UserID)
	case filter.Name != nil:
		list, err = s.listRepo.FindByName(ctx, *filter.Name)
	default:
		return nil, nil
	}

	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find list")
	}

	return toListDTO(list), nil
}

// AddToList appends a generic product to a list. A variant-scoped product ID
// is dereferenced to its owning generic product first, since lists hold
// generic products only.
func (s *listService) AddToList(ctx context.Context, input usecase.AddToListInput) (*usecase.List, error) {
	listID, ok := identity.Decode(input.ListID)
	if !ok {
		return nil, domainerrors.NewInvalidIDError("input.listId")
	}
	if listID.Scope != identity.ScopeList {
		return nil, domainerrors.NewScopeMismatchError("input.listId", identity.ScopeList, listID.Scope)
	}

	productID, err := s.resolveGenericProductID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	list, err := s.listRepo.FindByID(ctx, listID.Key)
	if err != nil {
		if errors.Is(err, repository.ErrListNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find list by id")
	}

	if _, err := s.listRepo.AddItem(ctx, listID.Key, productID); err != nil {
		return nil, domainerrors.ErrSaveFailed.WithDetails(err.Error())
	}

	return toListDTO(list), nil
}

// resolveGenericProductID maps the mutation's product reference to a generic
// product key, dereferencing a variant to its owning product.
func (s *listService) resolveGenericProductID(ctx context.Context, encodedID string) (int64, error) {
	recordID, ok := identity.Decode(encodedID)
	if !ok {
		return 0, domainerrors.NewInvalidIDError("input.productId")
	}

	switch recordID.Scope {
	case identity.ScopeProduct:
		return recordID.Key, nil
	case identity.ScopeVariant:
		variant, err := s.productRepo.FindVariantByID(ctx, recordID.Key)
		if err != nil {
			if errors.Is(err, repository.ErrVariantNotFound) {
				return 0, domainerrors.ErrVariantNotFound
			}

			return 0, errors.Wrap(err, "failed to find variant by id")
		}

		return variant.ProductID, nil
	default:
		return 0, domainerrors.NewScopeMismatchError("input.productId", identity.ScopeProduct, recordID.Scope)
	}
}
