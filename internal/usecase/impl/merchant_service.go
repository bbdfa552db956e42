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
)

type merchantService struct {
	storefrontRepo repository.StorefrontRepository
}

// NewMerchantService creates a new storefront resolution service.
func NewMerchantService(storefrontRepo repository.StorefrontRepository) usecase.MerchantUsecase {
	return &merchantService{
		storefrontRepo: storefrontRepo,
	}
}

// ResolveMerchants returns storefront locations. The filter branches are
// mutually exclusive and honored in a fixed order: id, name, location,
// parent product, all storefronts.
func (s *merchantService) ResolveMerchants(ctx context.Context, filter *usecase.MerchantFilter, parent *usecase.Product) ([]*usecase.Merchant, error) {
	switch {
	case filter != nil && filter.ID != nil:
		return s.resolveByID(ctx, *filter.ID)
	case filter != nil && filter.Name != nil:
		storefronts, err := s.storefrontRepo.FindByMerchantName(ctx, filter.Name.Match())
		if err != nil {
			return nil, errors.Wrap(err, "failed to find storefronts by merchant name")
		}

		return toMerchantDTOs(storefronts), nil
	case filter != nil && filter.Location != nil:
		crit := query.AddressCriteria{
			StreetName: filter.Location.Address.Match(),
			City:       filter.Location.City.Match(),
			State:      filter.Location.State.Match(),
			Zip:        filter.Location.Zip.Match(),
		}

		storefronts, err := s.storefrontRepo.FindByAddress(ctx, crit)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find storefronts by address")
		}

		return toMerchantDTOs(storefronts), nil
	case parent != nil:
		return s.resolveByParentProduct(ctx, parent)
	default:
		storefronts, err := s.storefrontRepo.FindAll(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find storefronts")
		}

		return toMerchantDTOs(storefronts), nil
	}
}

// resolveByID is a point lookup; a miss is a valid empty result, not an error.
func (s *merchantService) resolveByID(ctx context.Context, encodedID string) ([]*usecase.Merchant, error) {
	recordID, ok := identity.Decode(encodedID)
	if !ok {
		return nil, domainerrors.NewInvalidIDError("filterBy.id")
	}
	if recordID.Scope != identity.ScopeLocation {
		return nil, domainerrors.NewScopeMismatchError("filterBy.id", identity.ScopeLocation, recordID.Scope)
	}

	storefront, err := s.storefrontRepo.FindByID(ctx, recordID.Key)
	if err != nil {
		if errors.Is(err, repository.ErrStorefrontNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find storefront by id")
	}

	return []*usecase.Merchant{toMerchantDTO(storefront)}, nil
}

// resolveByParentProduct returns the sellers of the parent product. A
// product-scoped parent yields every location selling any of its variants; a
// variant-scoped parent yields exactly its one location.
func (s *merchantService) resolveByParentProduct(ctx context.Context, parent *usecase.Product) ([]*usecase.Merchant, error) {
	recordID, ok := identity.Decode(parent.ID)
	if !ok {
		return nil, domainerrors.NewInvalidIDError("parent product id")
	}

	switch recordID.Scope {
	case identity.ScopeProduct:
		storefronts, err := s.storefrontRepo.FindByProduct(ctx, recordID.Key)
		if err != nil {
			return nil, errors.Wrap(err, "failed to find storefronts selling product")
		}

		return toMerchantDTOs(storefronts), nil
	case identity.ScopeVariant:
		storefront, err := s.storefrontRepo.FindByVariant(ctx, recordID.Key)
		if err != nil {
			if errors.Is(err, repository.ErrStorefrontNotFound) {
				return nil, domainerrors.ErrInternalError.WithDetails("parent variant has no location; this should not be possible")
			}

			return nil, errors.Wrap(err, "failed to find storefront of variant")
		}

		return []*usecase.Merchant{toMerchantDTO(storefront)}, nil
	default:
		return nil, domainerrors.ErrScopeMismatch.WithDetails(
			fmt.Sprintf("parent product id uses scope %q; want %q or %q",
				recordID.Scope, identity.ScopeProduct, identity.ScopeVariant),
		)
	}
}

func toMerchantDTOs(storefronts []*entity.Storefront) []*usecase.Merchant {
	result := make([]*usecase.Merchant, 0, len(storefronts))
	for _, storefront := range storefronts {
		result = append(result, toMerchantDTO(storefront))
	}

	return result
}
