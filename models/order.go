package models

import "time"

type Order struct {
	ID          uint     `json:"id" gorm:"primaryKey"`
	BusinessID  uint     `json:"business_id" gorm:"not null;index"`
	Business    Business `json:"business,omitempty" gorm:"foreignKey:BusinessID"`
	OrderNumber string   `json:"order_number" gorm:"uniqueIndex;not null"`
	CustomerID  uint     `json:"customer_id" gorm:"not null"`
	Customer    Customer `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`

	Status        OrderStatus     `json:"status" gorm:"not null;default:'PENDING'"`
	Type          FulfillmentType `json:"type" gorm:"not null;default:'DELIVERY'"`
	PaymentStatus PaymentStatus   `json:"payment_status" gorm:"not null;default:'PENDING'"`

	// Monetary fields; total = subtotal + delivery_fee + tax - discount,
	// maintained by the intake handler, never recomputed downstream
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"delivery_fee"`
	Tax         float64 `json:"tax"`
	Discount    float64 `json:"discount"`
	Total       float64 `json:"total"`

	DeliveryAddress string     `json:"delivery_address"`
	DeliveryTime    *time.Time `json:"delivery_time"`
	Notes           string     `json:"notes"` // append-only for rejection reasons

	Items         []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"order_id" gorm:"not null"`
	ProductID uint    `json:"product_id" gorm:"not null"`
	Product   Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
	Quantity  int     `json:"quantity" gorm:"not null"`
	UnitPrice float64 `json:"unit_price" gorm:"not null"` // snapshot price at time of order
	Name      string  `json:"name"`                       // snapshot name
	Modifiers string  `json:"modifiers"`
}

// OrderStatusHistory tracks every status change for the audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
