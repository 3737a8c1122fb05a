// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/platform/ctxutil"
	"github.com/taibuivan/noctoon/internal/platform/sec"
)

/*
TestContext_RequestID verifies that Request IDs can be injected and retrieved.
*/
func TestContext_RequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "req-1")
	assert.Equal(t, "req-1", ctxutil.GetRequestID(ctx))
}

/*
TestContext_Logger verifies the default fallback and a stored logger.
*/
func TestContext_Logger(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	assert.Equal(t, slog.Default(), ctxutil.GetLogger(ctx))

	ctx = ctxutil.WithLogger(ctx, logger)
	assert.Equal(t, logger, ctxutil.GetLogger(ctx))
}

/*
TestContext_AuthUser verifies claims storage and the admin shortcut.
*/
func TestContext_AuthUser(t *testing.T) {
	ctx := context.Background()
	assert.Nil(t, ctxutil.GetAuthUser(ctx))
	assert.False(t, ctxutil.IsAdmin(ctx))

	member := ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "user-1", Role: string(sec.RoleMember)})
	require.NotNil(t, ctxutil.GetAuthUser(member))
	assert.Equal(t, "user-1", ctxutil.GetAuthUser(member).UserID)
	assert.False(t, ctxutil.IsAdmin(member))

	admin := ctxutil.WithAuthUser(ctx, &sec.AuthClaims{UserID: "admin-1", Role: string(sec.RoleAdmin)})
	assert.True(t, ctxutil.IsAdmin(admin))
}
