package postgres

import (
	"context"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// storefrontColumns selects a location row joined with its owning merchant's
// name, the shape every storefront lookup returns.
const storefrontColumns = "locations.id AS location_id, locations.merchant_id, merchants.name AS merchant_name, " +
	"locations.street_number, locations.street_name, locations.city, locations.state, locations.zip"

// storefrontRow is the scan target for the joined storefront projection.
type storefrontRow struct {
	LocationID   int64
	MerchantID   int64
	MerchantName string
	StreetNumber int
	StreetName   string
	City         string
	State        string
	Zip          int
}

// storefrontRepository implements the repository.StorefrontRepository interface.
type storefrontRepository struct {
	db *gorm.DB
}

// NewStorefrontRepository is the constructor for storefrontRepository.
func NewStorefrontRepository(db *gorm.DB) repository.StorefrontRepository {
	return &storefrontRepository{
		db: db,
	}
}

func (repo *storefrontRepository) baseQuery(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Table("locations").
		Select(storefrontColumns).
		Joins("JOIN merchants ON merchants.id = locations.merchant_id")
}

// FindByID retrieves a single storefront by its location key.
func (repo *storefrontRepository) FindByID(ctx context.Context, locationID int64) (*entity.Storefront, error) {
	var row storefrontRow

	if err := repo.baseQuery(ctx).
		Where("locations.id = ?", locationID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStorefrontNotFound
		}

		return nil, errors.Wrap(err, "failed to find storefront by id")
	}

	return toStorefrontDomain(&row), nil
}

// FindByMerchantName retrieves every location of every merchant whose name
// satisfies the match.
func (repo *storefrontRepository) FindByMerchantName(ctx context.Context, name query.Match) ([]*entity.Storefront, error) {
	tx := applyMatch(repo.baseQuery(ctx), "merchants.name", name)

	return repo.findRows(tx, "failed to find storefronts by merchant name")
}

// FindByAddress retrieves every location satisfying the combined address
// criteria. Zip is stored numerically, so string matches run against its text
// form.
func (repo *storefrontRepository) FindByAddress(ctx context.Context, crit query.AddressCriteria) ([]*entity.Storefront, error) {
	tx := repo.baseQuery(ctx)
	tx = applyMatch(tx, "locations.street_name", crit.StreetName)
	tx = applyMatch(tx, "locations.city", crit.City)
	tx = applyMatch(tx, "locations.state", crit.State)
	tx = applyMatch(tx, "CAST(locations.zip AS TEXT)", crit.Zip)

	return repo.findRows(tx, "failed to find storefronts by address")
}

// FindByProduct retrieves every location selling any variant of the given
// generic product.
func (repo *storefrontRepository) FindByProduct(ctx context.Context, productID int64) ([]*entity.Storefront, error) {
	tx := repo.baseQuery(ctx).
		Joins("JOIN product_variants ON product_variants.location_id = locations.id").
		Where("product_variants.product_id = ?", productID).
		Distinct()

	return repo.findRows(tx, "failed to find storefronts selling product")
}

// FindByVariant retrieves the single location a variant is sold at.
func (repo *storefrontRepository) FindByVariant(ctx context.Context, variantID int64) (*entity.Storefront, error) {
	var row storefrontRow

	if err := repo.baseQuery(ctx).
		Joins("JOIN product_variants ON product_variants.location_id = locations.id").
		Where("product_variants.id = ?", variantID).
		Take(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStorefrontNotFound
		}

		return nil, errors.Wrap(err, "failed to find storefront of variant")
	}

	return toStorefrontDomain(&row), nil
}

// FindAll retrieves every location of every merchant.
func (repo *storefrontRepository) FindAll(ctx context.Context) ([]*entity.Storefront, error) {
	return repo.findRows(repo.baseQuery(ctx), "failed to find storefronts")
}

func (repo *storefrontRepository) findRows(tx *gorm.DB, wrapMsg string) ([]*entity.Storefront, error) {
	var rows []*storefrontRow
	if err := tx.Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, wrapMsg)
	}

	storefronts := make([]*entity.Storefront, 0, len(rows))
	for _, row := range rows {
		storefronts = append(storefronts, toStorefrontDomain(row))
	}

	return storefronts, nil
}

// toStorefrontDomain maps a joined projection row to a pure domain entity.
func toStorefrontDomain(data *storefrontRow) *entity.Storefront {
	return &entity.Storefront{
		LocationID:   data.LocationID,
		MerchantID:   data.MerchantID,
		MerchantName: data.MerchantName,
		StreetNumber: data.StreetNumber,
		StreetName:   data.StreetName,
		City:         data.City,
		State:        data.State,
		Zip:          data.Zip,
	}
}
