package model

import "time"

// ProductModel mirrors the 'products' table. Every product belongs to exactly
// one category.
type ProductModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Name       string `gorm:"type:varchar(255);not null"`
	Picture    string `gorm:"type:text"`
	CategoryID int64  `gorm:"not null;index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Variants []VariantModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// VariantModel mirrors the 'product_variants' table: one product as sold at
// one location, with its own price and weight.
type VariantModel struct {
	ID         int64   `gorm:"primaryKey;autoIncrement"`
	ProductID  int64   `gorm:"not null;index"`
	LocationID int64   `gorm:"not null;index"`
	Price      float64 `gorm:"not null"`
	Weight     float64
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Product *ProductModel `gorm:"foreignKey:ProductID"`
}

// TableName explicitly sets the table name for GORM.
func (VariantModel) TableName() string {
	return "product_variants"
}
