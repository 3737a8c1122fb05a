// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements reader accounts: registration, credential checks and
access token issuance.

# Architecture

Accounts carry a single boolean admin flag. A role is derived from it only
when a token is minted, see [sec.RoleFor].
*/
package auth

import "github.com/taibuivan/noctoon/internal/platform/sec"

// # Domain Entities

// User is a registered reader account.
type User struct {
	ID           string  `json:"id"`
	Username     string  `json:"username"`
	PasswordHash string  `json:"-"` // Never serialized.
	Email        *string `json:"email"`
	Avatar       *string `json:"avatar"`
	IsAdmin      bool    `json:"isAdmin"`
}

// Role returns the authorization role encoded into access tokens.
func (u *User) Role() sec.UserRole {
	return sec.RoleFor(u.IsAdmin)
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
)

// # Account Constraints

const (
	MinUsernameLength = 3
	MaxUsernameLength = 32
	MinPasswordLength = 6
	MaxPasswordLength = 72 // bcrypt input limit
)
