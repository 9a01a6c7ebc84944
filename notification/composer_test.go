package notification

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storefront-admin-api/models"
)

func deliveryOrder() models.Order {
	return models.Order{
		ID:              7,
		OrderNumber:     "ORD-9F8E7D6C",
		Status:          models.StatusConfirmed,
		Type:            models.FulfillmentDelivery,
		Total:           42.50,
		DeliveryAddress: "123 Main St",
		Customer:        models.Customer{Name: "Dana", Phone: "15550001111"},
	}
}

func usBusiness() models.Business {
	return models.Business{
		Name:         "Corner Bistro",
		Type:         models.BusinessRestaurant,
		Language:     "en",
		Currency:     "USD",
		TimeFormat:   models.TimeFormat12h,
		LocationName: "Corner Bistro Downtown",
	}
}

func TestComposeDeliveryEnglish(t *testing.T) {
	t.Parallel()

	out := Compose(deliveryOrder(), usBusiness(), "")
	require.Contains(t, out, "$42.50")
	require.Contains(t, out, "123 Main St")
	require.Contains(t, out, "Hi Dana!")
	require.Contains(t, out, "ORD-9F8E7D6C")
	require.Contains(t, out, "Confirmed")
	require.Contains(t, out, "Corner Bistro")
	require.NotContains(t, out, "Pickup at")
	require.NotContains(t, out, "Dine-in at")
}

func TestComposeUnknownLanguageEqualsEnglish(t *testing.T) {
	t.Parallel()

	english := Compose(deliveryOrder(), usBusiness(), "")

	business := usBusiness()
	business.TranslateToBusinessLanguage = true
	business.Language = "xx"
	require.Equal(t, english, Compose(deliveryOrder(), business, ""))
}

func TestComposeTranslationToggle(t *testing.T) {
	t.Parallel()

	business := usBusiness()
	business.Language = "es"

	// Toggle off forces English regardless of the stored language
	require.Contains(t, Compose(deliveryOrder(), business, ""), "Hi Dana!")

	business.TranslateToBusinessLanguage = true
	out := Compose(deliveryOrder(), business, "")
	require.Contains(t, out, "¡Hola Dana!")
	require.Contains(t, out, "Confirmado")
	require.Contains(t, out, "$42.50")
}

func TestComposeRegionalLanguageCollapses(t *testing.T) {
	t.Parallel()

	business := usBusiness()
	business.TranslateToBusinessLanguage = true
	business.Language = "es-MX"
	require.Contains(t, Compose(deliveryOrder(), business, ""), "¡Hola Dana!")
}

func TestComposeStatusOverride(t *testing.T) {
	t.Parallel()

	order := deliveryOrder()
	order.Status = models.StatusReady // stale in-memory status

	out := Compose(order, usBusiness(), models.StatusOutForDelivery)
	require.Contains(t, out, "Out for Delivery")
	require.Contains(t, out, "Your order is on its way to you!")
	require.NotContains(t, out, "Ready")
}

func TestComposePickupAndDineInLines(t *testing.T) {
	t.Parallel()

	order := deliveryOrder()
	order.Type = models.FulfillmentPickup
	out := Compose(order, usBusiness(), models.StatusReady)
	require.Contains(t, out, "Pickup at: Corner Bistro Downtown")
	require.Contains(t, out, "Your order is packed and ready for pickup!")
	require.NotContains(t, out, "123 Main St")

	order.Type = models.FulfillmentDineIn
	out = Compose(order, usBusiness(), models.StatusReady)
	require.Contains(t, out, "Dine-in at: Corner Bistro Downtown")
	require.Contains(t, out, "Your order is ready to be served!")
}

func TestComposeRetailPreparingTerminology(t *testing.T) {
	t.Parallel()

	business := usBusiness()
	business.Type = models.BusinessRetail

	out := Compose(deliveryOrder(), business, models.StatusPreparing)
	require.Contains(t, out, "Preparing Shipment")
	require.Contains(t, out, "We're getting your shipment ready.")
	require.NotContains(t, out, "kitchen")
}

func TestComposeScheduledTimeFormats(t *testing.T) {
	t.Parallel()

	order := deliveryOrder()
	at := time.Date(2024, time.March, 5, 18, 30, 0, 0, time.UTC)
	order.DeliveryTime = &at

	out := Compose(order, usBusiness(), "")
	require.Contains(t, out, "Scheduled for: Mar 5, 2024 6:30 PM")

	business := usBusiness()
	business.TimeFormat = models.TimeFormat24h
	out = Compose(order, business, "")
	require.Contains(t, out, "Scheduled for: Mar 5, 2024 18:30")

	// No scheduled line when no time is set
	require.NotContains(t, Compose(deliveryOrder(), usBusiness(), ""), "Scheduled for")
}

func TestComposeSilentStatusOmitsSentence(t *testing.T) {
	t.Parallel()

	out := Compose(deliveryOrder(), usBusiness(), models.StatusCancelled)
	lines := strings.Split(out, "\n")
	// greeting, status line, address, total, thanks — no status sentence
	require.Len(t, lines, 5)
	require.Contains(t, out, "Cancelled")
}

func TestComposeUnknownStatusHumanized(t *testing.T) {
	t.Parallel()

	out := Compose(deliveryOrder(), usBusiness(), "ON_HOLD")
	require.Contains(t, out, "ON HOLD")
}

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$42.50", FormatAmount(42.5, "USD"))
	require.Equal(t, "€7.00", FormatAmount(7, "EUR"))
	require.Equal(t, "₪19.90", FormatAmount(19.9, "ILS"))
	// Unknown codes render as themselves
	require.Equal(t, "XYZ3.25", FormatAmount(3.25, "XYZ"))
}
