package statemachine

import (
	"strings"

	"storefront-admin-api/models"
)

// NotifyPolicy decides whether a customer message should be offered for
// a transition to the given status. The caller typically closes over the
// business's notification settings.
type NotifyPolicy func(target models.OrderStatus, typ models.FulfillmentType) bool

// TransitionOptions carries the per-request inputs of a transition
type TransitionOptions struct {
	// Reason is required when the target is CANCELLED
	Reason string
	// Policy, when set, is consulted for notification eligibility.
	// Cancellation never consults it.
	Policy NotifyPolicy
}

// SideEffects lists the effects the caller must execute after
// persisting the transition. The coordinator only requests effects, it
// never performs them.
type SideEffects struct {
	RevertStock bool `json:"revert_stock"`
}

// TransitionResult is the outcome of an accepted transition. Order is a
// mutated copy; writing it back is the caller's job.
type TransitionResult struct {
	Order          models.Order
	SideEffects    SideEffects
	NotifyEligible bool
}

// ApplyTransition validates and applies a status change, returning the
// updated order and the side effects the caller must run. The input
// order is not modified. Rejections happen before any mutation.
func ApplyTransition(order models.Order, target models.OrderStatus, opts TransitionOptions) (TransitionResult, error) {
	if !CanTransition(order.Status, target, order.Type) {
		return TransitionResult{}, &InvalidTransitionError{From: order.Status, To: target, Type: order.Type}
	}
	return apply(order, target, opts)
}

// ApplyCompletion is the one-step "mark as complete" shortcut: it jumps
// the order directly to its fulfillment type's final status. It is its
// own validated edge, not a walk over the intermediate ones.
func ApplyCompletion(order models.Order, opts TransitionOptions) (TransitionResult, error) {
	if !CanShortcut(order.Status) {
		return TransitionResult{}, &ShortcutNotAllowedError{From: order.Status}
	}
	return apply(order, FinalStatus(order.Type), opts)
}

func apply(order models.Order, target models.OrderStatus, opts TransitionOptions) (TransitionResult, error) {
	result := TransitionResult{}

	if target == models.StatusCancelled {
		if strings.TrimSpace(opts.Reason) == "" {
			return TransitionResult{}, ErrMissingReason
		}
		note := "[REJECTED] " + opts.Reason
		if order.Notes != "" {
			order.Notes = order.Notes + "\n" + note
		} else {
			order.Notes = note
		}
		result.SideEffects.RevertStock = true
		// Cancellation offers a reason flow, never a customer message
	} else if opts.Policy != nil {
		result.NotifyEligible = opts.Policy(target, order.Type)
	}

	order.Status = target
	result.Order = order
	return result, nil
}
