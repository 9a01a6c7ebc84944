package notification

import (
	"storefront-admin-api/models"
)

// ShouldNotify decides whether a customer message should be offered for
// a transition to target, given the business's notification matrix.
//
// CONFIRMED and PREPARING are opt-in per fulfillment type. READY and
// OUT_FOR_DELIVERY are opt-out (unset means on) because the customer
// needs to act on them. READY never notifies for delivery orders, which
// use OUT_FOR_DELIVERY instead. No other status offers a message.
func ShouldNotify(target models.OrderStatus, typ models.FulfillmentType, settings models.NotificationSettings) bool {
	if !settings.Enabled {
		return false
	}

	switch target {
	case models.StatusConfirmed:
		switch typ {
		case models.FulfillmentDelivery:
			return settings.DeliveryConfirmed
		case models.FulfillmentPickup:
			return settings.PickupConfirmed
		case models.FulfillmentDineIn:
			return settings.DineInConfirmed
		}
		return false

	case models.StatusPreparing:
		switch typ {
		case models.FulfillmentDelivery:
			return settings.DeliveryPreparing
		case models.FulfillmentPickup:
			return settings.PickupPreparing
		case models.FulfillmentDineIn:
			return settings.DineInPreparing
		}
		return false

	case models.StatusReady:
		switch typ {
		case models.FulfillmentPickup:
			return onUnlessDisabled(settings.PickupReady)
		case models.FulfillmentDineIn:
			return onUnlessDisabled(settings.DineInReady)
		}
		return false

	case models.StatusOutForDelivery:
		if typ != models.FulfillmentDelivery {
			return false
		}
		return onUnlessDisabled(settings.OutForDelivery)
	}

	return false
}

func onUnlessDisabled(flag *bool) bool {
	return flag == nil || *flag
}
