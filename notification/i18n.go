package notification

import (
	"strings"

	"golang.org/x/text/language"

	"storefront-admin-api/models"
)

// Translated languages. English is the canonical table every other
// language falls back to, key by key.
var supportedLanguages = []language.Tag{
	language.English,
	language.Spanish,
	language.French,
	language.Arabic,
}

var languageMatcher = language.NewMatcher(supportedLanguages)

// normalizeLanguage maps a stored business language code to one of the
// translated languages. Regional variants collapse to their base
// ("es-MX" becomes "es"); anything unrecognized becomes "en".
func normalizeLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return "en"
	}
	_, idx, conf := languageMatcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	return supportedLanguages[idx].String()
}

// localeTags resolves a language to the locale used for date layouts
var localeTags = map[string]string{
	"en": "en-US",
	"es": "es-ES",
	"fr": "fr-FR",
	"ar": "ar-SA",
}

func localeTag(lang string) string {
	if tag, ok := localeTags[lang]; ok {
		return tag
	}
	return "en-US"
}

// Phrase keys, the structural strings of every message
const (
	phraseGreeting     = "greeting"
	phraseStatusUpdate = "status_update"
	phraseDeliveryTo   = "delivery_to"
	phrasePickupAt     = "pickup_at"
	phraseDineInAt     = "dine_in_at"
	phraseTotal        = "total"
	phraseScheduled    = "scheduled_for"
	phraseThanks       = "thanks"
)

var phraseTable = map[string]map[string]string{
	"en": {
		phraseGreeting:     "Hi %s!",
		phraseStatusUpdate: "Your order %s has been updated to: %s.",
		phraseDeliveryTo:   "Delivery to",
		phrasePickupAt:     "Pickup at",
		phraseDineInAt:     "Dine-in at",
		phraseTotal:        "Total",
		phraseScheduled:    "Scheduled for",
		phraseThanks:       "Thank you for ordering from %s!",
	},
	"es": {
		phraseGreeting:     "¡Hola %s!",
		phraseStatusUpdate: "Tu pedido %s ha sido actualizado a: %s.",
		phraseDeliveryTo:   "Entrega a",
		phrasePickupAt:     "Recogida en",
		phraseDineInAt:     "Para comer en",
		phraseTotal:        "Total",
		phraseScheduled:    "Programado para",
		phraseThanks:       "¡Gracias por tu pedido en %s!",
	},
	"fr": {
		phraseGreeting:     "Bonjour %s !",
		phraseStatusUpdate: "Votre commande %s est maintenant : %s.",
		phraseDeliveryTo:   "Livraison à",
		phrasePickupAt:     "Retrait à",
		phraseDineInAt:     "Sur place à",
		phraseTotal:        "Total",
		phraseScheduled:    "Prévu pour",
		phraseThanks:       "Merci d'avoir commandé chez %s !",
	},
	"ar": {
		phraseGreeting:     "مرحباً %s!",
		phraseStatusUpdate: "تم تحديث طلبك %s إلى: %s.",
		phraseDeliveryTo:   "التوصيل إلى",
		phrasePickupAt:     "الاستلام من",
		phraseDineInAt:     "تناول الطعام في",
		phraseTotal:        "الإجمالي",
		phraseScheduled:    "الموعد",
		phraseThanks:       "شكراً لطلبك من %s!",
	},
}

// phrase looks up a structural string, falling back to English for any
// language that misses the key.
func phrase(lang, key string) string {
	if table, ok := phraseTable[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return phraseTable["en"][key]
}

// labelTable holds the customer-facing display name for each status
var labelTable = map[string]map[models.OrderStatus]string{
	"en": {
		models.StatusPending:        "Pending",
		models.StatusConfirmed:      "Confirmed",
		models.StatusPreparing:      "Preparing",
		models.StatusReady:          "Ready",
		models.StatusPickedUp:       "Picked Up",
		models.StatusOutForDelivery: "Out for Delivery",
		models.StatusDelivered:      "Delivered",
		models.StatusCancelled:      "Cancelled",
		models.StatusReturned:       "Returned",
		models.StatusRefunded:       "Refunded",
	},
	"es": {
		models.StatusPending:        "Pendiente",
		models.StatusConfirmed:      "Confirmado",
		models.StatusPreparing:      "En preparación",
		models.StatusReady:          "Listo",
		models.StatusPickedUp:       "Recogido",
		models.StatusOutForDelivery: "En camino",
		models.StatusDelivered:      "Entregado",
		models.StatusCancelled:      "Cancelado",
		models.StatusReturned:       "Devuelto",
		models.StatusRefunded:       "Reembolsado",
	},
	"fr": {
		models.StatusPending:        "En attente",
		models.StatusConfirmed:      "Confirmée",
		models.StatusPreparing:      "En préparation",
		models.StatusReady:          "Prête",
		models.StatusPickedUp:       "Récupérée",
		models.StatusOutForDelivery: "En livraison",
		models.StatusDelivered:      "Livrée",
		models.StatusCancelled:      "Annulée",
		models.StatusReturned:       "Retournée",
		models.StatusRefunded:       "Remboursée",
	},
	"ar": {
		models.StatusPending:        "قيد الانتظار",
		models.StatusConfirmed:      "مؤكد",
		models.StatusPreparing:      "قيد التحضير",
		models.StatusReady:          "جاهز",
		models.StatusPickedUp:       "تم الاستلام",
		models.StatusOutForDelivery: "في الطريق",
		models.StatusDelivered:      "تم التوصيل",
		models.StatusCancelled:      "ملغي",
		models.StatusReturned:       "مرتجع",
		models.StatusRefunded:       "مسترد",
	},
}

// Retail businesses phrase PREPARING as getting a shipment ready
var retailPreparingLabel = map[string]string{
	"en": "Preparing Shipment",
	"es": "Preparando envío",
	"fr": "Préparation de l'expédition",
	"ar": "تجهيز الشحنة",
}

// statusLabel returns the display name for a status, branching on
// business type for PREPARING and falling back to English, then to the
// raw status with separators turned into spaces.
func statusLabel(lang string, status models.OrderStatus, businessType models.BusinessType) string {
	if status == models.StatusPreparing && businessType.IsRetail() {
		if s, ok := retailPreparingLabel[lang]; ok {
			return s
		}
		return retailPreparingLabel["en"]
	}
	if table, ok := labelTable[lang]; ok {
		if s, ok := table[status]; ok {
			return s
		}
	}
	if s, ok := labelTable["en"][status]; ok {
		return s
	}
	return humanizeStatus(status)
}

func humanizeStatus(status models.OrderStatus) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(string(status))
}

// Status-message keys; not every status has one, those orders complete
// silently from a messaging standpoint.
const (
	msgConfirmed      = "confirmed"
	msgPreparing      = "preparing"
	msgPreparingRetl  = "preparing_retail"
	msgReadyPickup    = "ready_pickup"
	msgReadyDineIn    = "ready_dine_in"
	msgOutForDelivery = "out_for_delivery"
	msgDelivered      = "delivered"
	msgPickedUpPickup = "picked_up_pickup"
	msgPickedUpDineIn = "picked_up_dine_in"
)

var statusMessageTable = map[string]map[string]string{
	"en": {
		msgConfirmed:      "We've received your order and will start on it shortly.",
		msgPreparing:      "Our kitchen is working on your order right now.",
		msgPreparingRetl:  "We're getting your shipment ready.",
		msgReadyPickup:    "Your order is packed and ready for pickup!",
		msgReadyDineIn:    "Your order is ready to be served!",
		msgOutForDelivery: "Your order is on its way to you!",
		msgDelivered:      "Your order has been delivered. Enjoy!",
		msgPickedUpPickup: "Thanks for picking up your order. Enjoy!",
		msgPickedUpDineIn: "Your order has been served. Enjoy your meal!",
	},
	"es": {
		msgConfirmed:      "Hemos recibido tu pedido y empezaremos en breve.",
		msgPreparing:      "Nuestra cocina está preparando tu pedido ahora mismo.",
		msgPreparingRetl:  "Estamos preparando tu envío.",
		msgReadyPickup:    "¡Tu pedido está listo para recoger!",
		msgReadyDineIn:    "¡Tu pedido está listo para servir!",
		msgOutForDelivery: "¡Tu pedido va en camino!",
		msgDelivered:      "Tu pedido ha sido entregado. ¡Que aproveche!",
		msgPickedUpPickup: "Gracias por recoger tu pedido. ¡Que aproveche!",
		msgPickedUpDineIn: "Tu pedido ha sido servido. ¡Buen provecho!",
	},
	"fr": {
		msgConfirmed:      "Nous avons bien reçu votre commande et la traiterons sous peu.",
		msgPreparing:      "Notre cuisine prépare votre commande en ce moment.",
		msgPreparingRetl:  "Nous préparons votre expédition.",
		msgReadyPickup:    "Votre commande est prête à être retirée !",
		msgReadyDineIn:    "Votre commande est prête à être servie !",
		msgOutForDelivery: "Votre commande est en route !",
		msgDelivered:      "Votre commande a été livrée. Bon appétit !",
		msgPickedUpPickup: "Merci d'être venu chercher votre commande. Bon appétit !",
		msgPickedUpDineIn: "Votre commande a été servie. Bon appétit !",
	},
	"ar": {
		msgConfirmed:      "لقد استلمنا طلبك وسنبدأ به قريباً.",
		msgPreparing:      "مطبخنا يحضّر طلبك الآن.",
		msgPreparingRetl:  "نقوم بتجهيز شحنتك.",
		msgReadyPickup:    "طلبك جاهز للاستلام!",
		msgReadyDineIn:    "طلبك جاهز للتقديم!",
		msgOutForDelivery: "طلبك في الطريق إليك!",
		msgDelivered:      "تم توصيل طلبك. بالهناء والشفاء!",
		msgPickedUpPickup: "شكراً لاستلام طلبك. بالهناء والشفاء!",
		msgPickedUpDineIn: "تم تقديم طلبك. بالهناء والشفاء!",
	},
}

// statusMessageKey resolves which evocative sentence applies, branching
// on fulfillment type for READY and PICKED_UP and on business type for
// PREPARING. An empty key means no sentence for this combination.
func statusMessageKey(status models.OrderStatus, typ models.FulfillmentType, businessType models.BusinessType) string {
	switch status {
	case models.StatusConfirmed:
		return msgConfirmed
	case models.StatusPreparing:
		if businessType.IsRetail() {
			return msgPreparingRetl
		}
		return msgPreparing
	case models.StatusReady:
		switch typ {
		case models.FulfillmentPickup:
			return msgReadyPickup
		case models.FulfillmentDineIn:
			return msgReadyDineIn
		}
		return ""
	case models.StatusPickedUp:
		if typ == models.FulfillmentDineIn {
			return msgPickedUpDineIn
		}
		return msgPickedUpPickup
	case models.StatusOutForDelivery:
		return msgOutForDelivery
	case models.StatusDelivered:
		return msgDelivered
	}
	return ""
}

// statusMessage looks up the sentence for a key with English fallback;
// empty when no sentence is defined.
func statusMessage(lang, key string) string {
	if key == "" {
		return ""
	}
	if table, ok := statusMessageTable[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	return statusMessageTable["en"][key]
}

// currencySymbols maps currency codes to display symbols. An unknown
// code renders as itself.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"ILS": "₪",
	"INR": "₹",
	"JPY": "¥",
	"CNY": "¥",
	"KRW": "₩",
	"TRY": "₺",
	"RUB": "₽",
	"BRL": "R$",
	"MXN": "MX$",
	"CAD": "C$",
	"AUD": "A$",
	"PHP": "₱",
	"THB": "฿",
	"VND": "₫",
	"NGN": "₦",
	"ZAR": "R",
	"AED": "د.إ",
	"SAR": "﷼",
	"EGP": "E£",
}

func currencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// canonicalPhraseKeys and canonicalMessageKeys define the complete key
// sets a fully translated language must cover. The completeness test
// checks every shipped language against them so a missing translation
// fails CI instead of silently falling back at runtime.
var canonicalPhraseKeys = []string{
	phraseGreeting, phraseStatusUpdate, phraseDeliveryTo, phrasePickupAt,
	phraseDineInAt, phraseTotal, phraseScheduled, phraseThanks,
}

var canonicalMessageKeys = []string{
	msgConfirmed, msgPreparing, msgPreparingRetl, msgReadyPickup, msgReadyDineIn,
	msgOutForDelivery, msgDelivered, msgPickedUpPickup, msgPickedUpDineIn,
}

var allStatuses = []models.OrderStatus{
	models.StatusPending, models.StatusConfirmed, models.StatusPreparing,
	models.StatusReady, models.StatusPickedUp, models.StatusOutForDelivery,
	models.StatusDelivered, models.StatusCancelled, models.StatusReturned,
	models.StatusRefunded,
}

// tableGaps reports every (language, table, key) hole across the
// shipped translations.
func tableGaps() []string {
	var gaps []string
	for lang := range phraseTable {
		for _, key := range canonicalPhraseKeys {
			if _, ok := phraseTable[lang][key]; !ok {
				gaps = append(gaps, lang+"/phrase/"+key)
			}
		}
	}
	for lang := range statusMessageTable {
		for _, key := range canonicalMessageKeys {
			if _, ok := statusMessageTable[lang][key]; !ok {
				gaps = append(gaps, lang+"/message/"+key)
			}
		}
	}
	for lang := range labelTable {
		for _, status := range allStatuses {
			if _, ok := labelTable[lang][status]; !ok {
				gaps = append(gaps, lang+"/label/"+string(status))
			}
		}
		if _, ok := retailPreparingLabel[lang]; !ok {
			gaps = append(gaps, lang+"/label/PREPARING_RETAIL")
		}
	}
	return gaps
}
