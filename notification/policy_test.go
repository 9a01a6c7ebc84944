package notification

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-admin-api/models"
)

func boolPtr(v bool) *bool { return &v }

var everyStatus = []models.OrderStatus{
	models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
	models.StatusReady, models.StatusPickedUp, models.StatusOutForDelivery,
	models.StatusDelivered, models.StatusCancelled, models.StatusReturned,
	models.StatusRefunded,
}

var everyType = []models.FulfillmentType{
	models.FulfillmentDelivery, models.FulfillmentPickup, models.FulfillmentDineIn,
}

func TestGlobalDisableWinsEverywhere(t *testing.T) {
	t.Parallel()

	settings := models.NotificationSettings{
		Enabled:           false,
		DeliveryConfirmed: true,
		PickupConfirmed:   true,
		DineInConfirmed:   true,
		DeliveryPreparing: true,
		PickupPreparing:   true,
		DineInPreparing:   true,
		PickupReady:       boolPtr(true),
		DineInReady:       boolPtr(true),
		OutForDelivery:    boolPtr(true),
	}
	for _, status := range everyStatus {
		for _, typ := range everyType {
			require.False(t, ShouldNotify(status, typ, settings), "%s/%s", status, typ)
		}
	}
}

func TestReadyNeverNotifiesForDelivery(t *testing.T) {
	t.Parallel()

	// Even a fully enabled matrix never offers READY for delivery orders
	settings := models.NotificationSettings{Enabled: true, OutForDelivery: boolPtr(true)}
	require.False(t, ShouldNotify(models.StatusReady, models.FulfillmentDelivery, settings))
}

func TestOutForDeliveryOnlyAppliesToDelivery(t *testing.T) {
	t.Parallel()

	settings := models.NotificationSettings{Enabled: true, OutForDelivery: boolPtr(true)}
	require.True(t, ShouldNotify(models.StatusOutForDelivery, models.FulfillmentDelivery, settings))
	require.False(t, ShouldNotify(models.StatusOutForDelivery, models.FulfillmentPickup, settings))
	require.False(t, ShouldNotify(models.StatusOutForDelivery, models.FulfillmentDineIn, settings))
}

func TestEarlyStatusesAreOptIn(t *testing.T) {
	t.Parallel()

	// Zero-value flags mean off for CONFIRMED and PREPARING
	settings := models.NotificationSettings{Enabled: true}
	for _, typ := range everyType {
		require.False(t, ShouldNotify(models.StatusConfirmed, typ, settings))
		require.False(t, ShouldNotify(models.StatusPreparing, typ, settings))
	}

	settings.PickupConfirmed = true
	require.True(t, ShouldNotify(models.StatusConfirmed, models.FulfillmentPickup, settings))
	require.False(t, ShouldNotify(models.StatusConfirmed, models.FulfillmentDelivery, settings))

	settings.DeliveryPreparing = true
	require.True(t, ShouldNotify(models.StatusPreparing, models.FulfillmentDelivery, settings))
	require.False(t, ShouldNotify(models.StatusPreparing, models.FulfillmentDineIn, settings))
}

func TestUrgentStatusesAreOptOut(t *testing.T) {
	t.Parallel()

	// Unset READY / OUT_FOR_DELIVERY flags default to on
	settings := models.NotificationSettings{Enabled: true}
	require.True(t, ShouldNotify(models.StatusReady, models.FulfillmentPickup, settings))
	require.True(t, ShouldNotify(models.StatusReady, models.FulfillmentDineIn, settings))
	require.True(t, ShouldNotify(models.StatusOutForDelivery, models.FulfillmentDelivery, settings))

	// Explicit opt-out is honored
	settings.PickupReady = boolPtr(false)
	settings.OutForDelivery = boolPtr(false)
	require.False(t, ShouldNotify(models.StatusReady, models.FulfillmentPickup, settings))
	require.True(t, ShouldNotify(models.StatusReady, models.FulfillmentDineIn, settings))
	require.False(t, ShouldNotify(models.StatusOutForDelivery, models.FulfillmentDelivery, settings))
}

func TestSilentStatusesNeverNotify(t *testing.T) {
	t.Parallel()

	settings := models.NotificationSettings{
		Enabled:           true,
		DeliveryConfirmed: true,
		PickupConfirmed:   true,
		DineInConfirmed:   true,
		DeliveryPreparing: true,
		PickupPreparing:   true,
		DineInPreparing:   true,
		PickupReady:       boolPtr(true),
		DineInReady:       boolPtr(true),
		OutForDelivery:    boolPtr(true),
	}
	silent := []models.OrderStatus{
		models.StatusPending, models.StatusPickedUp, models.StatusDelivered,
		models.StatusCancelled, models.StatusReturned, models.StatusRefunded,
	}
	for _, status := range silent {
		for _, typ := range everyType {
			require.False(t, ShouldNotify(status, typ, settings), "%s/%s", status, typ)
		}
	}
}
