package queries

import (
	"errors"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/guard"
)

var ErrGetUserProfileQueryIsNotConstructed = errors.New(
	"GetUserProfileQuery must be created via NewGetUserProfileQuery constructor",
)

// GetUserProfileQuery reads a public account profile. The caller's own
// profile is the same query with the caller's ID.
type GetUserProfileQuery struct {
	userID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetUserProfileQuery(userID kernel.ID) (GetUserProfileQuery, error) {
	if err := userID.Validate(); err != nil {
		return GetUserProfileQuery{}, err
	}
	return GetUserProfileQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserProfileQuery) Validate() error {
	return q.guard.Validate(ErrGetUserProfileQueryIsNotConstructed)
}

func (q GetUserProfileQuery) UserID() kernel.ID {
	return q.userID
}
