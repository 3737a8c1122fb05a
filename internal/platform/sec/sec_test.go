// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/platform/sec"
)

func TestPasswordHash_RoundTrip(t *testing.T) {
	hash, err := sec.HashPassword("admin123")
	require.NoError(t, err)

	assert.NotEqual(t, "admin123", hash)
	assert.True(t, sec.CheckPasswordHash("admin123", hash))
	assert.False(t, sec.CheckPasswordHash("admin124", hash))
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "noctoon.test")
	require.NoError(t, err)

	token, err := service.GenerateAccessToken("user-1", "reader", string(sec.RoleMember), time.Minute)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "reader", claims.Username)
	assert.Equal(t, string(sec.RoleMember), claims.Role)
}

func TestTokenService_RejectsForeignSecretAndExpiry(t *testing.T) {
	issuer, _ := sec.NewTokenService("secret-a", "noctoon.test")
	verifier, _ := sec.NewTokenService("secret-b", "noctoon.test")

	token, err := issuer.GenerateAccessToken("user-1", "reader", "member", time.Minute)
	require.NoError(t, err)
	_, err = verifier.VerifyToken(token)
	assert.Error(t, err)

	expired, err := issuer.GenerateAccessToken("user-1", "reader", "member", -time.Minute)
	require.NoError(t, err)
	_, err = issuer.VerifyToken(expired)
	assert.Error(t, err)
}

func TestNewTokenService_EmptySecret(t *testing.T) {
	_, err := sec.NewTokenService("", "noctoon.test")
	assert.Error(t, err)
}

func TestRoleFor(t *testing.T) {
	assert.Equal(t, sec.RoleAdmin, sec.RoleFor(true))
	assert.Equal(t, sec.RoleMember, sec.RoleFor(false))
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleMember))
	assert.False(t, sec.RoleMember.AtLeast(sec.RoleAdmin))
}
