package postgres

import (
	"context"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	domainerrors "github.com/FlippingBinary/grocery-deflater/internal/domain/errors"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Find retrieves every generic product satisfying the criteria.
func (repo *productRepository) Find(ctx context.Context, crit query.ProductCriteria) ([]*entity.Product, error) {
	tx := applyProductCriteria(repo.db.WithContext(ctx).Model(&model.ProductModel{}), crit)

	var productMs []*model.ProductModel
	if err := tx.Find(&productMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find products")
	}

	products := make([]*entity.Product, 0, len(productMs))
	for _, productM := range productMs {
		products = append(products, toProductDomain(productM))
	}

	return products, nil
}

// FindVariantsAtLocation retrieves every variant sold at the location, with
// the criteria applied against the joined generic product.
func (repo *productRepository) FindVariantsAtLocation(ctx context.Context, locationID int64, crit query.ProductCriteria) ([]*entity.Variant, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Joins("JOIN products ON products.id = product_variants.product_id").
		Where("product_variants.location_id = ?", locationID).
		Preload("Product")
	tx = applyProductCriteria(tx, crit)

	var variantMs []*model.VariantModel
	if err := tx.Find(&variantMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find variants at location")
	}

	variants := make([]*entity.Variant, 0, len(variantMs))
	for _, variantM := range variantMs {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// FindVariantByID retrieves a single variant by its own key, with the
// generic product joined in.
func (repo *productRepository) FindVariantByID(ctx context.Context, variantID int64) (*entity.Variant, error) {
	var variantM model.VariantModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("id = ?", variantID).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant by id")
	}

	return toVariantDomain(&variantM), nil
}

// FindVariantAt retrieves the unique variant of a product at a location.
func (repo *productRepository) FindVariantAt(ctx context.Context, productID, locationID int64) (*entity.Variant, error) {
	var variantM model.VariantModel

	if err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("product_id = ? AND location_id = ?", productID, locationID).
		First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVariantNotFound
		}

		return nil, errors.Wrap(err, "failed to find variant at location")
	}

	return toVariantDomain(&variantM), nil
}

// SaveVariantPrice persists the variant's current price. Only the price
// column is written; last write wins under concurrent updates.
func (repo *productRepository) SaveVariantPrice(ctx context.Context, variant *entity.Variant) error {
	result := repo.db.WithContext(ctx).
		Model(&model.VariantModel{}).
		Where("id = ?", variant.ID).
		Update("price", variant.Price)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update variant price")
	}
	if result.RowsAffected == 0 {
		return repository.ErrVariantNotFound
	}

	return nil
}

// toProductDomain maps a persistence model to a pure domain entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:         data.ID,
		Name:       data.Name,
		Picture:    data.Picture,
		CategoryID: data.CategoryID,
	}
}

// toVariantDomain maps a variant and its joined product to a pure domain
// entity.
func toVariantDomain(data *model.VariantModel) *entity.Variant {
	variant := &entity.Variant{
		ID:         data.ID,
		ProductID:  data.ProductID,
		LocationID: data.LocationID,
		Price:      data.Price,
		Weight:     data.Weight,
	}
	if data.Product != nil {
		variant.Product = toProductDomain(data.Product)
	}

	return variant
}
