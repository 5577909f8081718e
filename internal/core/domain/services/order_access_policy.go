package services

import (
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
)

// OrderAccessPolicy decides who may view an order and who may move it to
// which status.
//
// Owners may request Cooking and Cooked, drivers PickedUp and Delivered, and
// clients nothing. By default the requested status is not compared with the
// current one, so an owner may move a Cooked order back to Cooking. With
// enforceMonotonic the requested status must come strictly later.
//
// Example:
//
//	policy := services.NewOrderAccessPolicy(cfg.OrdersEnforceMonotonic)
//	if !policy.CanView(caller, o) {
//	    return errs.NewForbiddenError("You can't edit order")
//	}
//	if !policy.CanTransition(caller, o, order.Cooked) {
//	    return errs.NewForbiddenError("You can't do that")
//	}
type OrderAccessPolicy struct {
	enforceMonotonic bool
}

func NewOrderAccessPolicy(enforceMonotonic bool) OrderAccessPolicy {
	return OrderAccessPolicy{enforceMonotonic: enforceMonotonic}
}

// EnforcesMonotonic reports whether backwards or repeated statuses are refused.
func (p OrderAccessPolicy) EnforcesMonotonic() bool {
	return p.enforceMonotonic
}

// CanView decides whether caller may read o. Only the rule for the caller's
// own role applies: a client must be the customer, a driver the assigned
// driver and an owner the restaurant owner. Any other role may view.
func (OrderAccessPolicy) CanView(caller user.Caller, o *order.Order) bool {
	switch caller.Role() {
	case user.Client:
		return o.IsCustomer(caller.ID())
	case user.Delivery:
		return o.IsDriver(caller.ID())
	case user.Owner:
		return o.IsOwner(caller.ID())
	default:
		return true
	}
}

// CanTransition decides whether caller may move o to requested. It requires
// CanView, a status the caller's role may set and ValidateStatusOrder.
func (p OrderAccessPolicy) CanTransition(caller user.Caller, o *order.Order, requested order.Status) bool {
	if !p.CanView(caller, o) {
		return false
	}
	if !roleMaySet(caller.Role(), requested) {
		return false
	}
	return p.ValidateStatusOrder(o.Status(), requested)
}

// ValidateStatusOrder is the guard point for lifecycle ordering. It always
// passes unless monotonic enforcement is on, in which case requested must
// come strictly after current.
func (p OrderAccessPolicy) ValidateStatusOrder(current, requested order.Status) bool {
	if !p.enforceMonotonic {
		return true
	}
	return requested.IsAfter(current)
}

func roleMaySet(role user.Role, status order.Status) bool {
	switch role {
	case user.Owner:
		return status == order.Cooking || status == order.Cooked
	case user.Delivery:
		return status == order.PickedUp || status == order.Delivered
	default:
		return false
	}
}
