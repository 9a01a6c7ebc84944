package notification

import (
	"testing"

	"github.com/stretchr/testify/require"

	"storefront-admin-api/models"
)

func TestTranslationTablesAreComplete(t *testing.T) {
	t.Parallel()

	require.Empty(t, tableGaps(), "every shipped language must cover the canonical key set")
}

func TestNoStrayTableKeys(t *testing.T) {
	t.Parallel()

	canonicalPhrases := map[string]bool{}
	for _, key := range canonicalPhraseKeys {
		canonicalPhrases[key] = true
	}
	for lang, table := range phraseTable {
		for key := range table {
			require.True(t, canonicalPhrases[key], "stray phrase key %s/%s", lang, key)
		}
	}

	canonicalMessages := map[string]bool{}
	for _, key := range canonicalMessageKeys {
		canonicalMessages[key] = true
	}
	for lang, table := range statusMessageTable {
		for key := range table {
			require.True(t, canonicalMessages[key], "stray message key %s/%s", lang, key)
		}
	}
}

func TestNormalizeLanguage(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en", normalizeLanguage("en"))
	require.Equal(t, "es", normalizeLanguage("es"))
	require.Equal(t, "es", normalizeLanguage("es-MX"))
	require.Equal(t, "fr", normalizeLanguage("fr-CA"))
	require.Equal(t, "ar", normalizeLanguage("ar"))
	require.Equal(t, "en", normalizeLanguage("xx"))
	require.Equal(t, "en", normalizeLanguage(""))
	require.Equal(t, "en", normalizeLanguage("not a tag!"))
}

func TestLocaleTagFallback(t *testing.T) {
	t.Parallel()

	require.Equal(t, "en-US", localeTag("en"))
	require.Equal(t, "es-ES", localeTag("es"))
	require.Equal(t, "en-US", localeTag("xx"))
}

func TestPhraseFallsBackPerKey(t *testing.T) {
	t.Parallel()

	// An unknown language falls back to English key by key
	require.Equal(t, phraseTable["en"][phraseTotal], phrase("xx", phraseTotal))
	// A known language uses its own entry
	require.Equal(t, "Total", phrase("es", phraseTotal))
	require.NotEqual(t, phrase("en", phraseGreeting), phrase("es", phraseGreeting))
}

func TestStatusMessageKeyBranching(t *testing.T) {
	t.Parallel()

	food := models.BusinessRestaurant
	retail := models.BusinessRetail

	require.Equal(t, msgPreparing, statusMessageKey(models.StatusPreparing, models.FulfillmentDelivery, food))
	require.Equal(t, msgPreparingRetl, statusMessageKey(models.StatusPreparing, models.FulfillmentDelivery, retail))

	require.Equal(t, msgReadyPickup, statusMessageKey(models.StatusReady, models.FulfillmentPickup, food))
	require.Equal(t, msgReadyDineIn, statusMessageKey(models.StatusReady, models.FulfillmentDineIn, food))
	require.Empty(t, statusMessageKey(models.StatusReady, models.FulfillmentDelivery, food))

	require.Equal(t, msgPickedUpDineIn, statusMessageKey(models.StatusPickedUp, models.FulfillmentDineIn, food))
	require.Equal(t, msgPickedUpPickup, statusMessageKey(models.StatusPickedUp, models.FulfillmentPickup, food))

	// Silent statuses have no sentence
	for _, status := range []models.OrderStatus{
		models.StatusPending, models.StatusCancelled, models.StatusReturned, models.StatusRefunded,
	} {
		require.Empty(t, statusMessageKey(status, models.FulfillmentDelivery, food))
	}
}

func TestStatusLabelFallbacks(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Out for Delivery", statusLabel("en", models.StatusOutForDelivery, models.BusinessRestaurant))
	require.Equal(t, "En camino", statusLabel("es", models.StatusOutForDelivery, models.BusinessRestaurant))
	// Unknown language falls back to English
	require.Equal(t, "Out for Delivery", statusLabel("xx", models.StatusOutForDelivery, models.BusinessRestaurant))
	// Unknown status renders with separators as spaces
	require.Equal(t, "ON HOLD", statusLabel("en", "ON_HOLD", models.BusinessRestaurant))
}

func TestCurrencySymbols(t *testing.T) {
	t.Parallel()

	require.Equal(t, "$", currencySymbol("USD"))
	require.Equal(t, "€", currencySymbol("EUR"))
	require.Equal(t, "XYZ", currencySymbol("XYZ"))
}
