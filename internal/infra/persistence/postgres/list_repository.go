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

// listRepository implements the repository.ListRepository interface.
type listRepository struct {
	db *gorm.DB
}

// NewListRepository is the constructor for listRepository.
func NewListRepository(db *gorm.DB) repository.ListRepository {
	return &listRepository{
		db: db,
	}
}

// FindByID retrieves a single list by its internal key.
func (repo *listRepository) FindByID(ctx context.Context, id int64) (*entity.ProductList, error) {
	var listM model.ProductListModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list by id")
	}

	return toListDomain(&listM), nil
}

// FindByOwner retrieves the first list owned by the given user.
func (repo *listRepository) FindByOwner(ctx context.Context, ownerID int64) (*entity.ProductList, error) {
	var listM model.ProductListModel

	if err := repo.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("id").
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list by owner")
	}

	return toListDomain(&listM), nil
}

// FindByName retrieves the first list with an exact name match.
func (repo *listRepository) FindByName(ctx context.Context, name string) (*entity.ProductList, error) {
	var listM model.ProductListModel

	if err := repo.db.WithContext(ctx).
		Where("name = ?", name).
		Order("id").
		First(&listM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrListNotFound
		}

		return nil, errors.Wrap(err, "failed to find list by name")
	}

	return toListDomain(&listM), nil
}

// FindItems retrieves the list's items joined to their generic products, with
// the criteria applied against the joined product.
func (repo *listRepository) FindItems(ctx context.Context, listID int64, crit query.ProductCriteria) ([]*entity.ProductListItem, error) {
	tx := repo.db.WithContext(ctx).
		Model(&model.ProductListItemModel{}).
		Joins("JOIN products ON products.id = product_list_items.product_id").
		Where("product_list_items.product_list_id = ?", listID).
		Preload("Product")
	tx = applyProductCriteria(tx, crit)

	var itemMs []*model.ProductListItemModel
	if err := tx.Find(&itemMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find list items")
	}

	items := make([]*entity.ProductListItem, 0, len(itemMs))
	for _, itemM := range itemMs {
		items = append(items, toListItemDomain(itemM))
	}

	return items, nil
}

// AddItem appends a generic product to the list.
func (repo *listRepository) AddItem(ctx context.Context, listID, productID int64) (*entity.ProductListItem, error) {
	itemM := &model.ProductListItemModel{
		ProductListID: listID,
		ProductID:     productID,
	}

	if err := repo.db.WithContext(ctx).Create(itemM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "product is already on the list")
		}
		if isForeignKeyConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "invalid list or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return nil, domainerrors.NewDatabaseExecuteError(err, "missing required list item information")
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to add list item")
	}

	return toListItemDomain(itemM), nil
}

// toListDomain maps a persistence model to a pure domain entity.
func toListDomain(data *model.ProductListModel) *entity.ProductList {
	return &entity.ProductList{
		ID:      data.ID,
		Name:    data.Name,
		OwnerID: data.OwnerID,
	}
}

// toListItemDomain maps a list item and its joined product to a pure domain
// entity.
func toListItemDomain(data *model.ProductListItemModel) *entity.ProductListItem {
	item := &entity.ProductListItem{
		ID:            data.ID,
		ProductListID: data.ProductListID,
		ProductID:     data.ProductID,
	}
	if data.Product != nil {
		item.Product = toProductDomain(data.Product)
	}

	return item
}
