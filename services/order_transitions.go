package services

import (
	"bufood/entity"
)

// The status machine lives here and nowhere else. Controllers and clients ask
// this table what is allowed; they never re-derive it from status strings.
//
// Canceled is reserved for customer-initiated cancellation. A seller backing
// out of an order rejects it instead, and only while it is still Pending.

type transitionRule struct {
	actor entity.ActorRole
	// orderType restricts the transition to one fulfillment mode when set.
	orderType      entity.OrderType
	requiresReason bool
}

var transitionTable = map[entity.OrderStatus]map[entity.OrderStatus]transitionRule{
	entity.StatusPending: {
		entity.StatusAccepted: {actor: entity.RoleSeller},
		entity.StatusRejected: {actor: entity.RoleSeller, requiresReason: true},
		entity.StatusCanceled: {actor: entity.RoleCustomer, requiresReason: true},
	},
	entity.StatusAccepted: {
		entity.StatusCanceled:  {actor: entity.RoleCustomer, requiresReason: true},
		entity.StatusPreparing: {actor: entity.RoleSeller},
	},
	entity.StatusPreparing: {
		entity.StatusOutForDelivery: {actor: entity.RoleSeller, orderType: entity.OrderTypeDelivery},
		entity.StatusReady:          {actor: entity.RoleSeller, orderType: entity.OrderTypePickup},
	},
	entity.StatusReady: {
		entity.StatusReadyForPickup: {actor: entity.RoleSeller, orderType: entity.OrderTypePickup},
	},
	entity.StatusOutForDelivery: {
		entity.StatusDelivered: {actor: entity.RoleSeller},
	},
	entity.StatusReadyForPickup: {
		entity.StatusDelivered: {actor: entity.RoleSeller},
	},
	// Rejected, Canceled and Delivered are terminal.
}

// transitionEffects lists the timestamps and cancellation bookkeeping a legal
// transition must set alongside the status itself.
type transitionEffects struct {
	setAcceptedAt  bool
	setCanceledAt  bool
	setDeliveredAt bool
	canceledBy     entity.ActorRole
}

// ValidateTransition decides whether order may move to the requested status
// when asked by the given role, and which side effects apply. It is pure: no
// I/O, no mutation.
func ValidateTransition(order *entity.Order, to entity.OrderStatus, role entity.ActorRole, reason string) (transitionEffects, error) {
	var eff transitionEffects

	rule, ok := transitionTable[order.Status][to]
	if !ok || rule.actor != role {
		return eff, &InvalidTransitionError{From: order.Status, To: to}
	}
	if rule.orderType != "" && rule.orderType != order.OrderType {
		return eff, &InvalidTransitionError{From: order.Status, To: to}
	}
	if rule.requiresReason && reason == "" {
		if to == entity.StatusCanceled {
			return eff, &MissingFieldError{Field: "cancellationReason"}
		}
		return eff, &MissingFieldError{Field: "reason"}
	}

	switch to {
	case entity.StatusAccepted:
		eff.setAcceptedAt = true
	case entity.StatusCanceled:
		eff.setCanceledAt = true
		eff.canceledBy = entity.RoleCustomer
	case entity.StatusDelivered:
		eff.setDeliveredAt = true
	}
	return eff, nil
}

// AllowedTransitions lists the statuses the given role may move the order to.
// The API exposes this so clients only render legal actions.
func AllowedTransitions(order *entity.Order, role entity.ActorRole) []entity.OrderStatus {
	var out []entity.OrderStatus
	for to, rule := range transitionTable[order.Status] {
		if rule.actor != role {
			continue
		}
		if rule.orderType != "" && rule.orderType != order.OrderType {
			continue
		}
		out = append(out, to)
	}
	return out
}
