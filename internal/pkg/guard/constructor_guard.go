// Package guard holds small helpers that protect domain types and use case
// inputs from being used as zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate on a zero guard when the
// caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as built by its constructor. Embed it in
// commands, queries and value objects whose zero value must be rejected.
//
// Example:
//
//	var ErrTakeOrderCommandIsNotConstructed = errors.New("TakeOrderCommand must be created via NewTakeOrderCommand")
//
//	type TakeOrderCommand struct {
//	    orderID kernel.ID
//	    guard   guard.ConstructorGuard
//	}
//
//	func (c TakeOrderCommand) Validate() error {
//	    return c.guard.Validate(ErrTakeOrderCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard that reports the owning value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a guard produced by NewConstructorGuard.
// For a zero guard it returns validationError, or ErrDefaultConstructorGuard
// when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
