package models

import "strings"

// User represents an account in the library. Accounts are identified by a
// username only; there is no password or credential material because the
// application is single-seat and authentication is out of scope.
type User struct {
	// ID is the unique identifier of the user. Positive values are
	// assigned by the remote store; negative values are allocated locally
	// while the remote store is unreachable.
	ID int64 `json:"id"`

	// Username is the unique, case-insensitively matched login name.
	Username string `json:"username"`
}

// Clone returns an independent copy of the user.
func (u User) Clone() User {
	return u
}

// SameUsername reports whether the user's username matches name, ignoring
// case. Username uniqueness is enforced case-insensitively everywhere, so
// all lookups go through this helper.
func (u User) SameUsername(name string) bool {
	return strings.EqualFold(u.Username, name)
}
