// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # User Roles

// UserRole represents the authorization level granted to an account.
//
// Accounts only carry a boolean admin flag; the role is derived from it when
// a token is issued.
type UserRole string

const (
	// Catalog management (series and chapter mutations)
	RoleAdmin UserRole = "admin"

	// Default role for standard registered readers
	RoleMember UserRole = "member"
)

// RoleFor maps the stored admin flag onto a [UserRole].
func RoleFor(isAdmin bool) UserRole {
	if isAdmin {
		return RoleAdmin
	}
	return RoleMember
}

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level()
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 40
	case RoleMember:
		return 10
	default:
		return 0
	}
}
