package model

import "time"

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"type:varchar(100)"`
	LastName     string `gorm:"type:varchar(100)"`
	Email        string `gorm:"type:varchar(255);unique;not null"`
	Password     string `gorm:"type:varchar(255);not null"`
	MobileNumber string `gorm:"type:varchar(30)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Lists []ProductListModel `gorm:"foreignKey:OwnerID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
