// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

// PostgreSQL SQLSTATE codes handled explicitly.
const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// Wrap inspects a database error and converts it into an [apperr.AppError].
//
// resource names the entity for NOT_FOUND messages ("Series", "Chapter").
// Unknown errors become INTERNAL_ERROR with the original error kept as the cause.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case uniqueViolation:
			return apperr.Conflict(resource + " already exists")
		case foreignKeyViolation:
			return apperr.ValidationError("Referenced resource does not exist",
				apperr.FieldError{Field: pgError.ColumnName, Message: pgError.Detail})
		}
	}

	return apperr.Internal(fmt.Errorf("%s: %w", resource, err))
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint failure.
func IsUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	return errors.As(err, &pgError) && pgError.Code == uniqueViolation
}
