package models

// OrderStatus represents all possible states of a storefront order
type OrderStatus string

const (
	StatusPending        OrderStatus = "PENDING"
	StatusConfirmed      OrderStatus = "CONFIRMED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusReady          OrderStatus = "READY"
	StatusPickedUp       OrderStatus = "PICKED_UP"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
	StatusCancelled      OrderStatus = "CANCELLED"
	StatusReturned       OrderStatus = "RETURNED"
	StatusRefunded       OrderStatus = "REFUNDED"
)

// PaymentStatus tracks payment independently of the order lifecycle
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "PENDING"
	PaymentPaid     PaymentStatus = "PAID"
	PaymentFailed   PaymentStatus = "FAILED"
	PaymentRefunded PaymentStatus = "REFUNDED"
)

// FulfillmentType is how an order reaches the customer
type FulfillmentType string

const (
	FulfillmentDelivery FulfillmentType = "DELIVERY"
	FulfillmentPickup   FulfillmentType = "PICKUP"
	FulfillmentDineIn   FulfillmentType = "DINE_IN"
)

// BusinessType affects customer-facing terminology (e.g. retail says
// "Preparing Shipment" where food service says "Preparing")
type BusinessType string

const (
	BusinessRestaurant BusinessType = "RESTAURANT"
	BusinessCafe       BusinessType = "CAFE"
	BusinessRetail     BusinessType = "RETAIL"
	BusinessGrocery    BusinessType = "GROCERY"
)

// IsRetail reports whether a business type uses shipment terminology
func (b BusinessType) IsRetail() bool {
	return b == BusinessRetail || b == BusinessGrocery
}
