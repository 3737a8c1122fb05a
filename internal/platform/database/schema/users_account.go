// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users.account' table
type UserAccountTable struct {
	Table        string
	Seq          string
	ID           string
	Username     string
	PasswordHash string
	Email        string
	Avatar       string
	IsAdmin      string
}

// UserAccount is the schema definition for users.account
var UserAccount = UserAccountTable{
	Table:        "users.account",
	Seq:          "seq",
	ID:           "id",
	Username:     "username",
	PasswordHash: "passwordhash",
	Email:        "email",
	Avatar:       "avatar",
	IsAdmin:      "isadmin",
}

// Columns lists the selectable columns in scan order.
func (t UserAccountTable) Columns() []string {
	return []string{t.ID, t.Username, t.PasswordHash, t.Email, t.Avatar, t.IsAdmin}
}
