package postgres

import (
	"strings"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/query"

	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// applyMatch translates a backend-neutral string predicate into SQL
// conditions on the given column expression. Present parts accumulate
// conjunctively; a zero match appends nothing.
func applyMatch(tx *gorm.DB, column string, m query.Match) *gorm.DB {
	if m.StartsWith != nil {
		tx = tx.Where(column+" LIKE ?", likeEscaper.Replace(*m.StartsWith)+"%")
	}
	if m.EndsWith != nil {
		tx = tx.Where(column+" LIKE ?", "%"+likeEscaper.Replace(*m.EndsWith))
	}
	if m.Equals != nil {
		tx = tx.Where(column+" = ?", *m.Equals)
	}

	return tx
}

// applyProductCriteria translates the normalized product criteria against the
// 'products' table columns, which every branch of the product resolver joins
// against. A non-nil empty CategoryIDs set matches nothing.
func applyProductCriteria(tx *gorm.DB, crit query.ProductCriteria) *gorm.DB {
	if crit.ID != nil {
		tx = tx.Where("products.id = ?", *crit.ID)
	}
	tx = applyMatch(tx, "products.name", crit.Name)
	if crit.CategoryIDs != nil {
		tx = tx.Where("products.category_id IN ?", crit.CategoryIDs)
	}
	if crit.CategoryID != nil {
		tx = tx.Where("products.category_id = ?", *crit.CategoryID)
	}

	return tx
}
