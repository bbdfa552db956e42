package model

import "time"

// MerchantModel mirrors the 'merchants' table: the legal merchant entity,
// which can operate several storefront locations.
type MerchantModel struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(255);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Locations []LocationModel `gorm:"foreignKey:MerchantID"`
}

// TableName explicitly sets the table name for GORM.
func (MerchantModel) TableName() string {
	return "merchants"
}

// LocationModel mirrors the 'locations' table: a single storefront of a
// merchant.
type LocationModel struct {
	ID           int64 `gorm:"primaryKey;autoIncrement"`
	MerchantID   int64 `gorm:"not null;index"`
	StreetNumber int
	StreetName   string `gorm:"type:varchar(255)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(50)"`
	Zip          int
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Merchant *MerchantModel `gorm:"foreignKey:MerchantID"`
	Variants []VariantModel `gorm:"foreignKey:LocationID"`
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
