package user

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller is the verified identity of whoever invokes an operation. Policies
// only read its ID and Role.
type Caller struct {
	id   kernel.ID
	role Role

	guard guard.ConstructorGuard
}

// NewCaller builds a caller from an authenticated account.
func NewCaller(id kernel.ID, role Role) (Caller, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Caller{}, err
	}
	return Caller{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

// Validate rejects a zero Caller.
func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

func (c Caller) ID() kernel.ID {
	return c.id
}

func (c Caller) Role() Role {
	return c.role
}

// Is reports whether the caller has the given role.
func (c Caller) Is(role Role) bool {
	return c.role == role
}
