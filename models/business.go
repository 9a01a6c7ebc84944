package models

import "time"

// TimeFormat selects how scheduled times render in customer messages
type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12h"
	TimeFormat24h TimeFormat = "24h"
)

type Business struct {
	ID           uint         `json:"id" gorm:"primaryKey"`
	OwnerID      uint         `json:"owner_id" gorm:"not null"`
	Owner        User         `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name         string       `json:"name" gorm:"not null"`
	Type         BusinessType `json:"type" gorm:"not null;default:'RESTAURANT'"`
	Language     string       `json:"language" gorm:"default:'en'"`
	Currency     string       `json:"currency" gorm:"default:'USD'"`
	TimeFormat   TimeFormat   `json:"time_format" gorm:"default:'12h'"`
	LocationName string       `json:"location_name"`
	Address      string       `json:"address"`
	Phone        string       `json:"phone"` // WhatsApp-reachable number

	// TranslateToBusinessLanguage switches customer messages from English
	// to the business's configured language
	TranslateToBusinessLanguage bool `json:"translate_to_business_language" gorm:"default:false"`

	Notifications NotificationSettings `json:"notifications" gorm:"embedded;embeddedPrefix:notify_"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NotificationSettings is the per-business matrix of which (fulfillment
// type, status) transitions offer a customer message.
//
// The asymmetry is intentional: CONFIRMED and PREPARING are opt-in (the
// zero value is off), while READY and OUT_FOR_DELIVERY are opt-out (nil
// means on) because those statuses are operationally urgent for the
// customer.
type NotificationSettings struct {
	Enabled bool `json:"enabled" gorm:"default:true"`

	DeliveryConfirmed bool `json:"delivery_confirmed"`
	PickupConfirmed   bool `json:"pickup_confirmed"`
	DineInConfirmed   bool `json:"dine_in_confirmed"`

	DeliveryPreparing bool `json:"delivery_preparing"`
	PickupPreparing   bool `json:"pickup_preparing"`
	DineInPreparing   bool `json:"dine_in_preparing"`

	PickupReady    *bool `json:"pickup_ready"`
	DineInReady    *bool `json:"dine_in_ready"`
	OutForDelivery *bool `json:"out_for_delivery"`
}
