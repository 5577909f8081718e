package services

import "eats/internal/core/domain/model/user"

// RoleAuthorizer gates operations by the role labels they require.
//
// Example:
//
//	authorizer := services.NewRoleAuthorizer()
//	if !authorizer.Authorize([]user.AllowedRole{user.AllowedOwner}, caller) {
//	    return errs.NewForbiddenError("Forbidden resource")
//	}
type RoleAuthorizer struct{}

func NewRoleAuthorizer() RoleAuthorizer {
	return RoleAuthorizer{}
}

// Authorize decides whether caller may invoke an operation requiring required.
//
// Rules, in order:
//   - no required roles: the operation is public and always allowed
//   - nil caller: an unauthenticated caller is refused
//   - AnyRole among required: every authenticated caller is allowed
//   - otherwise the caller's role must be listed
func (RoleAuthorizer) Authorize(required []user.AllowedRole, caller *user.Caller) bool {
	if len(required) == 0 {
		return true
	}
	if caller == nil {
		return false
	}
	for _, allowed := range required {
		if allowed.Allows(caller.Role()) {
			return true
		}
	}
	return false
}
