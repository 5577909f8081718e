package kernel

import (
	"fmt"
	"strconv"

	"eats/internal/pkg/errs"
)

// ErrIDIsRequired is returned when validating the zero ID.
var ErrIDIsRequired = errs.NewValueIsRequiredError("id")

// ID identifies an entity. IDs are assigned by the store when an aggregate
// is first persisted, so a freshly constructed aggregate carries the zero ID
// until its repository assigns one.
//
// Example:
//
//	id, err := kernel.ParseID(ctx.Param("id"))
//	if err != nil {
//	    return err
//	}
//	order, err := repo.Get(ctx, id)
type ID uint

// NewID converts a raw identifier into an ID, rejecting zero.
func NewID(raw uint) (ID, error) {
	id := ID(raw)
	if err := id.Validate(); err != nil {
		return 0, err
	}
	return id, nil
}

// ParseID parses a decimal identifier such as a path parameter.
func ParseID(s string) (ID, error) {
	raw, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%q is not a number", s))
	}
	return NewID(uint(raw))
}

// Validate reports whether the ID was assigned.
func (id ID) Validate() error {
	if id == 0 {
		return ErrIDIsRequired
	}
	return nil
}

// IsZero reports whether the ID has not been assigned yet.
func (id ID) IsZero() bool {
	return id == 0
}

// Uint returns the raw identifier for persistence and transport.
func (id ID) Uint() uint {
	return uint(id)
}

func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}
