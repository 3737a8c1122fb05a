// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/database/schema"
	"github.com/taibuivan/noctoon/internal/platform/dberr"
)

const resourceName = "User"

var table = schema.UserAccount

// PostgresUserRepository implements [UserRepository] on users.account.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

// NewPostgresUserRepository wraps an open pool.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(table.Columns(), ", "), table.Table, table.ID)
	return scanUser(repository.db.QueryRow(context, query, id))
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		strings.Join(table.Columns(), ", "), table.Table, table.Username)
	return scanUser(repository.db.QueryRow(context, query, username))
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6)`,
		table.Table, strings.Join(table.Columns(), ", "))

	_, err := repository.db.Exec(context, query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Avatar,
		user.IsAdmin,
	)
	if dberr.IsUniqueViolation(err) {
		return apperr.Conflict("Username already exists")
	}
	return dberr.Wrap(err, resourceName)
}

func scanUser(row pgx.Row) (*User, error) {
	user := &User{}
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Avatar,
		&user.IsAdmin,
	)
	if err != nil {
		return nil, dberr.Wrap(err, resourceName)
	}
	return user, nil
}
