// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/dberr"
)

func TestWrap(t *testing.T) {
	assert.NoError(t, dberr.Wrap(nil, "Series"))

	notFound := apperr.As(dberr.Wrap(fmt.Errorf("scan: %w", pgx.ErrNoRows), "Chapter"))
	require.NotNil(t, notFound)
	assert.Equal(t, apperr.CodeNotFound, notFound.Code)
	assert.Equal(t, "Chapter not found", notFound.Message)

	duplicate := &pgconn.PgError{Code: "23505"}
	conflict := apperr.As(dberr.Wrap(duplicate, "User"))
	require.NotNil(t, conflict)
	assert.Equal(t, apperr.CodeConflict, conflict.Code)
	assert.True(t, dberr.IsUniqueViolation(duplicate))

	internal := apperr.As(dberr.Wrap(errors.New("connection reset"), "Series"))
	require.NotNil(t, internal)
	assert.Equal(t, http.StatusInternalServerError, internal.HTTPStatus)
	assert.ErrorContains(t, internal.Cause, "connection reset")
}
