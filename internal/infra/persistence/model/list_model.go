package model

import "time"

// ProductListModel mirrors the 'product_lists' table.
type ProductListModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	OwnerID   int64  `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []ProductListItemModel `gorm:"foreignKey:ProductListID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductListModel) TableName() string {
	return "product_lists"
}

// ProductListItemModel mirrors the 'product_list_items' join table. Lists
// hold generic products, never variants.
type ProductListItemModel struct {
	ID            int64 `gorm:"primaryKey;autoIncrement"`
	ProductListID int64 `gorm:"not null;index"`
	ProductID     int64 `gorm:"not null;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductListItemModel) TableName() string {
	return "product_list_items"
}
