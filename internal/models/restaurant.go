package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID           uint           `json:"id" gorm:"primaryKey"`
	Email        string         `json:"email" gorm:"unique;not null"`
	PasswordHash string         `json:"-" gorm:"not null"`
	Name         string         `json:"name" gorm:"not null"`
	Category     string         `json:"category" gorm:"not null"`
	Address      string         `json:"address"`
	PhoneNumber  string         `json:"phone_number"`
	Description  string         `json:"description" gorm:"type:text"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `json:"deleted_at" gorm:"index"`

	// Derived on read from reviews of the restaurant's orders, never stored.
	AverageRating float64 `json:"average_rating" gorm:"-"`
}
