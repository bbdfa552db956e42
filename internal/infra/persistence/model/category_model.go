// Package model contains the GORM persistence models mirroring the database
// tables. Models never leave the infra layer; repositories map them to domain
// entities at the boundary.
package model

import "time"

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID          int64  `gorm:"primaryKey;autoIncrement"`
	Name        string `gorm:"type:varchar(100);not null"`
	Description string `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []ProductModel `gorm:"foreignKey:CategoryID"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}
