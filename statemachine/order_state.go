package statemachine

import (
	"storefront-admin-api/models"
)

// baseTransitions is the authoritative state machine definition for the
// rows that do not depend on fulfillment type. Every row includes the
// current status itself so an order can be re-saved in place.
var baseTransitions = map[models.OrderStatus][]models.OrderStatus{
	models.StatusPending:        {models.StatusPending, models.StatusConfirmed, models.StatusCancelled},
	models.StatusConfirmed:      {models.StatusConfirmed, models.StatusPreparing, models.StatusCancelled},
	models.StatusPreparing:      {models.StatusPreparing, models.StatusReady, models.StatusCancelled},
	models.StatusPickedUp:       {models.StatusPickedUp, models.StatusReturned, models.StatusRefunded},
	models.StatusOutForDelivery: {models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled},
	models.StatusDelivered:      {models.StatusDelivered, models.StatusReturned, models.StatusRefunded},
	models.StatusReturned:       {models.StatusReturned, models.StatusRefunded},
	models.StatusCancelled:      {models.StatusCancelled, models.StatusRefunded},
	models.StatusRefunded:       {models.StatusRefunded},
}

// READY branches on fulfillment type: delivery orders go out the door,
// pickup and dine-in orders are handed over on site.
var readyDelivery = []models.OrderStatus{
	models.StatusReady, models.StatusOutForDelivery, models.StatusDelivered, models.StatusCancelled,
}

var readyOnSite = []models.OrderStatus{
	models.StatusReady, models.StatusPickedUp, models.StatusCancelled,
}

// LegalNextStates returns all valid next states from a given status for
// a given fulfillment type. The result is never empty: an unknown or
// unset status degrades to offering only PENDING, because this feeds a
// status-selection control that must always have a choice.
func LegalNextStates(status models.OrderStatus, typ models.FulfillmentType) []models.OrderStatus {
	if status == models.StatusReady {
		if typ == models.FulfillmentDelivery {
			return cloneStatuses(readyDelivery)
		}
		return cloneStatuses(readyOnSite)
	}
	if next, ok := baseTransitions[status]; ok {
		return cloneStatuses(next)
	}
	return []models.OrderStatus{models.StatusPending}
}

// CanTransition checks whether a single edge is legal
func CanTransition(from, to models.OrderStatus, typ models.FulfillmentType) bool {
	for _, s := range LegalNextStates(from, typ) {
		if s == to {
			return true
		}
	}
	return false
}

// FinalStatus returns the canonical completion status for a fulfillment
// type: orders that leave the premises complete at DELIVERED, everything
// else completes at PICKED_UP.
func FinalStatus(typ models.FulfillmentType) models.OrderStatus {
	if typ == models.FulfillmentPickup || typ == models.FulfillmentDineIn {
		return models.StatusPickedUp
	}
	return models.StatusDelivered
}

// noShortcut holds the statuses from which the one-step "mark as
// complete" jump is not offered.
var noShortcut = map[models.OrderStatus]bool{
	models.StatusPickedUp:  true,
	models.StatusDelivered: true,
	models.StatusCancelled: true,
	models.StatusReturned:  true,
	models.StatusRefunded:  true,
}

// CanShortcut reports whether an order may jump directly to its
// fulfillment type's completion status, bypassing intermediate steps.
// This is an operator convenience edge, validated on its own.
func CanShortcut(status models.OrderStatus) bool {
	return !noShortcut[status]
}

// IsTerminal reports whether a status has no further edges other than
// possibly a refund.
func IsTerminal(status models.OrderStatus) bool {
	switch status {
	case models.StatusCancelled, models.StatusReturned, models.StatusRefunded:
		return true
	}
	return false
}

// Edge describes a single transition for the documentation endpoint
type Edge struct {
	From models.OrderStatus     `json:"from"`
	To   models.OrderStatus     `json:"to"`
	Type models.FulfillmentType `json:"type,omitempty"`
}

// Describe returns the full edge table for informational purposes
func Describe() []Edge {
	var edges []Edge
	for from, tos := range baseTransitions {
		for _, to := range tos {
			if to == from {
				continue
			}
			edges = append(edges, Edge{From: from, To: to})
		}
	}
	for _, to := range readyDelivery {
		if to == models.StatusReady {
			continue
		}
		edges = append(edges, Edge{From: models.StatusReady, To: to, Type: models.FulfillmentDelivery})
	}
	for _, typ := range []models.FulfillmentType{models.FulfillmentPickup, models.FulfillmentDineIn} {
		for _, to := range readyOnSite {
			if to == models.StatusReady {
				continue
			}
			edges = append(edges, Edge{From: models.StatusReady, To: to, Type: typ})
		}
	}
	return edges
}

func cloneStatuses(in []models.OrderStatus) []models.OrderStatus {
	out := make([]models.OrderStatus, len(in))
	copy(out, in)
	return out
}

func describeLegal(status models.OrderStatus, typ models.FulfillmentType) string {
	result := ""
	for i, s := range LegalNextStates(status, typ) {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}
