package user

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

// User is the account aggregate.
//
// Invariants:
//   - email is a syntactically valid address, stored lower case
//   - passwordHash is never empty; plain passwords never reach the aggregate
//   - role is Client, Owner or Delivery and does not change
//   - changing the email clears the verified flag
type User struct {
	id           kernel.ID
	email        string
	passwordHash string
	role         Role
	verified     bool

	isConstructed bool
}

// NewUser creates an unverified account. The ID is assigned on first save.
//
// Example:
//
//	hash, _ := hasher.Hash(password)
//	u, err := user.NewUser("nico@example.com", hash, user.Owner)
func NewUser(email, passwordHash string, role Role) (*User, error) {
	u := &User{isConstructed: true}

	if err := errors.Join(
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
		u.setRole(role),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rebuilds a persisted account.
func RestoreUser(id kernel.ID, email, passwordHash string, role Role, verified bool) (*User, error) {
	u, err := NewUser(email, passwordHash, role)
	if err != nil {
		return nil, err
	}
	if err = u.AssignID(id); err != nil {
		return nil, err
	}
	u.verified = verified
	return u, nil
}

// Validate ensures the account was built by a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

func (u *User) ID() kernel.ID {
	return u.id
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() Role {
	return u.role
}

func (u *User) Verified() bool {
	return u.verified
}

// Caller returns the identity policies evaluate for this account.
func (u *User) Caller() (Caller, error) {
	return NewCaller(u.id, u.role)
}

// AssignID records the store-assigned identity. It may be called once.
func (u *User) AssignID(id kernel.ID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if !u.id.IsZero() && u.id != id {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("user already has id %s", u.id))
	}
	u.id = id
	return nil
}

// ChangeEmail replaces the address and reports whether it actually changed.
// A changed address must be verified again.
func (u *User) ChangeEmail(email string) (bool, error) {
	previous := u.email
	if err := u.setEmail(email); err != nil {
		return false, err
	}
	if u.email == previous {
		return false, nil
	}
	u.verified = false
	return true, nil
}

// ChangePasswordHash stores a new password hash.
func (u *User) ChangePasswordHash(hash string) error {
	return u.setPasswordHash(hash)
}

// Verify marks the email address as confirmed.
func (u *User) Verify() {
	u.verified = true
}

// NormalizeEmail returns the stored form of an address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) setEmail(email string) error {
	email = NormalizeEmail(email)
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q is not an email address", email))
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("password")
	}
	u.passwordHash = hash
	return nil
}

func (u *User) setRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	u.role = role
	return nil
}
