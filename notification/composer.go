package notification

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"storefront-admin-api/models"
)

// Compose builds the fully localized customer message for an order at
// the given status. statusOverride, when non-empty, replaces the
// order's persisted status; callers pass the status they just set so
// the message never reflects a stale read. The function is pure: order,
// business and the static tables are its only inputs.
func Compose(order models.Order, business models.Business, statusOverride models.OrderStatus) string {
	status := order.Status
	if statusOverride != "" {
		status = statusOverride
	}

	lang := effectiveLanguage(business)
	locale := localeTag(lang)

	var lines []string
	lines = append(lines, fmt.Sprintf(phrase(lang, phraseGreeting), order.Customer.Name))
	lines = append(lines, fmt.Sprintf(phrase(lang, phraseStatusUpdate),
		order.OrderNumber, statusLabel(lang, status, business.Type)))

	switch order.Type {
	case models.FulfillmentDelivery:
		lines = append(lines, phrase(lang, phraseDeliveryTo)+": "+order.DeliveryAddress)
	case models.FulfillmentPickup:
		lines = append(lines, phrase(lang, phrasePickupAt)+": "+business.LocationName)
	case models.FulfillmentDineIn:
		lines = append(lines, phrase(lang, phraseDineInAt)+": "+business.LocationName)
	}

	lines = append(lines, phrase(lang, phraseTotal)+": "+FormatAmount(order.Total, business.Currency))

	if order.DeliveryTime != nil {
		lines = append(lines, phrase(lang, phraseScheduled)+": "+
			formatScheduled(*order.DeliveryTime, locale, business.TimeFormat))
	}

	if msg := statusMessage(lang, statusMessageKey(status, order.Type, business.Type)); msg != "" {
		lines = append(lines, msg)
	}

	lines = append(lines, fmt.Sprintf(phrase(lang, phraseThanks), business.Name))

	return strings.Join(lines, "\n")
}

func effectiveLanguage(business models.Business) string {
	if !business.TranslateToBusinessLanguage {
		return "en"
	}
	return normalizeLanguage(business.Language)
}

// FormatAmount renders a money value as symbol plus exactly two decimal
// places. Decimal rendering avoids float-format surprises like 42.5.
func FormatAmount(amount float64, currency string) string {
	return currencySymbol(currency) + decimal.NewFromFloat(amount).StringFixed(2)
}

// Localized month abbreviations for the date part of scheduled times.
// English uses Go's own layout names.
var monthNames = map[string][12]string{
	"es": {"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
	"fr": {"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
	"ar": {"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو", "يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر"},
}

// formatScheduled renders the scheduled time per the business's stored
// preference: 24h mode concatenates the localized date with the raw
// HH:MM, 12h mode uses the locale's clock rendering.
func formatScheduled(t time.Time, locale string, format models.TimeFormat) string {
	if format == models.TimeFormat24h {
		return formatDate(t, locale) + " " + t.Format("15:04")
	}
	return formatDate(t, locale) + " " + t.Format("3:04 PM")
}

func formatDate(t time.Time, locale string) string {
	lang := locale
	if i := strings.IndexByte(locale, '-'); i > 0 {
		lang = locale[:i]
	}
	months, ok := monthNames[lang]
	if !ok {
		// en-US and any unrecognized locale
		return t.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%d %s %d", t.Day(), months[t.Month()-1], t.Year())
}
