// Package user models accounts and the identity of a caller.
//
// The package includes:
//   - Role: the Client, Owner or Delivery role an account is created with
//   - AllowedRole: the labels an operation may require, including the Any wildcard
//   - Caller: the authenticated identity handed to the order policies
//   - User: the account aggregate with its credentials and verification state
//   - Verification: a one-time email verification code bound to a user
package user
