package models

import "time"

// CustomerTier segments customers for the storefront owner's dashboard
type CustomerTier string

const (
	TierRegular CustomerTier = "REGULAR"
	TierVIP     CustomerTier = "VIP"
)

type Customer struct {
	ID         uint         `json:"id" gorm:"primaryKey"`
	BusinessID uint         `json:"business_id" gorm:"not null;index"`
	Name       string       `json:"name" gorm:"not null"`
	Phone      string       `json:"phone"`
	Tier       CustomerTier `json:"tier" gorm:"default:'REGULAR'"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}
