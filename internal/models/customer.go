package models

import (
	"time"

	"gorm.io/gorm"
)

type Customer struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	Email          string         `json:"email" gorm:"unique;not null"`
	PasswordHash   string         `json:"-" gorm:"not null"`
	Name           string         `json:"name"`
	Address        string         `json:"address"`
	Membership     bool           `json:"membership" gorm:"default:false"`
	MembershipType string         `json:"membership_type"` // monthly, annual
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

type MembershipType string

const (
	MembershipMonthly MembershipType = "monthly"
	MembershipAnnual  MembershipType = "annual"
)

func (m MembershipType) Valid() bool {
	switch m {
	case MembershipMonthly, MembershipAnnual:
		return true
	}
	return false
}
