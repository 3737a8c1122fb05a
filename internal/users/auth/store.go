// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserRepository defines the data access contract for accounts.
type UserRepository interface {

	/*
		FindByID returns the account with the given ID.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND when absent
	*/
	FindByID(context context.Context, id string) (*User, error)

	/*
		FindByUsername returns the account with the given username.

		Returns:
		  - *User: Hydrated entity
		  - error: NOT_FOUND when absent
	*/
	FindByUsername(context context.Context, username string) (*User, error)

	/*
		Create persists a new account.

		Returns:
		  - error: CONFLICT when the username is taken
	*/
	Create(context context.Context, user *User) error
}
