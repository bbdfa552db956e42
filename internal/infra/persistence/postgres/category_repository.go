// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/entity"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"
	"github.com/FlippingBinary/grocery-deflater/internal/domain/repository"
	"github.com/FlippingBinary/grocery-deflater/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// categoryRepository implements the repository.CategoryRepository interface.
type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository is the constructor for categoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{
		db: db,
	}
}

// FindByID retrieves a single category by its internal key.
func (repo *categoryRepository) FindByID(ctx context.Context, id int64) (*entity.Category, error) {
	var categoryM model.CategoryModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&categoryM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCategoryNotFound
		}

		return nil, errors.Wrap(err, "failed to find category by id")
	}

	return toCategoryDomain(&categoryM), nil
}

// Find retrieves every category satisfying the criteria.
func (repo *categoryRepository) Find(ctx context.Context, crit query.CategoryCriteria) ([]*entity.Category, error) {
	tx := repo.db.WithContext(ctx).Model(&model.CategoryModel{})
	if crit.ID != nil {
		tx = tx.Where("id = ?", *crit.ID)
	}
	tx = applyMatch(tx, "name", crit.Name)
	tx = applyMatch(tx, "description", crit.Description)

	var categoryMs []*model.CategoryModel
	if err := tx.Find(&categoryMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find categories")
	}

	categories := make([]*entity.Category, 0, len(categoryMs))
	for _, categoryM := range categoryMs {
		categories = append(categories, toCategoryDomain(categoryM))
	}

	return categories, nil
}

// toCategoryDomain maps a persistence model to a pure domain entity.
func toCategoryDomain(data *model.CategoryModel) *entity.Category {
	return &entity.Category{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
	}
}
