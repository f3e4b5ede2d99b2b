package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID           uint            `json:"id" gorm:"primaryKey"`
	Name         string          `json:"name" gorm:"not null"`
	Description  string          `json:"description" gorm:"type:text"`
	Price        decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	RestaurantID uint            `json:"restaurant_id" gorm:"not null;index"`
	ImagePath    string          `json:"image_path"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
	DeletedAt    gorm.DeletedAt  `json:"deleted_at" gorm:"index"`
}
