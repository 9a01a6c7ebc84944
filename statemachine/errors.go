package statemachine

import (
	"errors"

	"storefront-admin-api/models"
)

// ErrMissingReason is returned when a cancellation carries no reason
var ErrMissingReason = errors.New("cancellation requires a non-empty reason")

// InvalidTransitionError reports a requested edge that is not in the
// legal set for the order's current status and fulfillment type.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
	Type models.FulfillmentType
}

func (e *InvalidTransitionError) Error() string {
	return "invalid transition: " + string(e.From) + " → " + string(e.To) +
		" is not allowed for " + string(e.Type) + " orders. " +
		"Valid transitions from " + string(e.From) + " are: " + describeLegal(e.From, e.Type)
}

// ShortcutNotAllowedError reports a completion shortcut attempted from
// a status that is already terminal for its fulfillment path.
type ShortcutNotAllowedError struct {
	From models.OrderStatus
}

func (e *ShortcutNotAllowedError) Error() string {
	return "cannot mark order as complete from status " + string(e.From)
}
