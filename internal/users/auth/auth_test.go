// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/middleware"
	"github.com/taibuivan/noctoon/internal/platform/sec"
	"github.com/taibuivan/noctoon/internal/users/auth"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRegister(t *testing.T) {
	service := auth.NewService(auth.NewMemoryUserRepository(), discardLogger())
	ctx := context.Background()

	user, err := service.Register(ctx, auth.RegisterInput{Username: "reader", Password: "secret1", Email: pointer.To("reader@noctoon.com")})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.IsAdmin)
	assert.NotEqual(t, "secret1", user.PasswordHash)
	assert.True(t, sec.CheckPasswordHash("secret1", user.PasswordHash))

	_, err = service.Register(ctx, auth.RegisterInput{Username: "reader", Password: "another1"})
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeConflict, ae.Code)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)

	for _, input := range []auth.RegisterInput{
		{Password: "secret1"},
		{Username: "ab", Password: "secret1"},
		{Username: "someone"},
		{Username: "someone", Password: "short"},
		{Username: "someone", Password: "secret1", Email: pointer.To("not-an-email")},
	} {
		_, err := service.Register(ctx, input)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code, "%+v", input)
	}
}

func TestLogin(t *testing.T) {
	tokens, err := sec.NewTokenService("test-secret", "noctoon.app")
	require.NoError(t, err)

	service := auth.NewService(auth.NewMemoryUserRepository(), discardLogger()).WithTokens(tokens)
	ctx := context.Background()

	admin, err := service.Provision(ctx, auth.ProvisionInput{ID: "admin-1", Username: "admin", Password: "admin123", IsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", admin.ID)

	again, err := service.Provision(ctx, auth.ProvisionInput{Username: "admin", Password: "changed"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", again.ID)

	result, err := service.Login(ctx, auth.LoginInput{Username: "admin", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", result.User.ID)
	require.NotEmpty(t, result.Token)

	claims, err := tokens.VerifyToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin-1", claims.UserID)
	assert.Equal(t, string(sec.RoleAdmin), claims.Role)

	_, err = service.Login(ctx, auth.LoginInput{Username: "admin", Password: "wrong"})
	assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)

	_, err = service.Login(ctx, auth.LoginInput{Username: "ghost", Password: "admin123"})
	assert.Equal(t, apperr.CodeUnauthorized, apperr.As(err).Code)

	_, err = service.Login(ctx, auth.LoginInput{Username: "admin"})
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
}

func TestLogin_WithoutTokens(t *testing.T) {
	service := auth.NewService(auth.NewMemoryUserRepository(), discardLogger())
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Username: "reader", Password: "secret1"})
	require.NoError(t, err)

	result, err := service.Login(ctx, auth.LoginInput{Username: "reader", Password: "secret1"})
	require.NoError(t, err)
	assert.Empty(t, result.Token)
}

func TestHandler(t *testing.T) {
	tokens, err := sec.NewTokenService("test-secret", "noctoon.app")
	require.NoError(t, err)

	service := auth.NewService(auth.NewMemoryUserRepository(), discardLogger()).WithTokens(tokens)
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Mount("/api/auth", auth.NewHandler(service).Routes())

	post := func(path, body string) *httptest.ResponseRecorder {
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, path, strings.NewReader(body)))
		return recorder
	}

	registered := post("/api/auth/register", `{"username":"reader","password":"secret1"}`)
	require.Equal(t, http.StatusOK, registered.Code)
	assert.NotContains(t, registered.Body.String(), "password")
	assert.Contains(t, registered.Body.String(), `"username":"reader"`)

	assert.Equal(t, http.StatusBadRequest, post("/api/auth/register", `{"username":"reader","password":"secret1"}`).Code)
	assert.Equal(t, http.StatusBadRequest, post("/api/auth/login", `{"username":"reader"}`).Code)
	assert.Equal(t, http.StatusUnauthorized, post("/api/auth/login", `{"username":"reader","password":"nope"}`).Code)

	loggedIn := post("/api/auth/login", `{"username":"reader","password":"secret1"}`)
	require.Equal(t, http.StatusOK, loggedIn.Code)

	var body struct {
		User  auth.User `json:"user"`
		Token string    `json:"token"`
	}
	require.NoError(t, json.Unmarshal(loggedIn.Body.Bytes(), &body))
	assert.Equal(t, "reader", body.User.Username)
	require.NotEmpty(t, body.Token)

	anonymous := httptest.NewRecorder()
	router.ServeHTTP(anonymous, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusUnauthorized, anonymous.Code)

	me := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	request.Header.Set("Authorization", "Bearer "+body.Token)
	router.ServeHTTP(me, request)
	require.Equal(t, http.StatusOK, me.Code)
	assert.Contains(t, me.Body.String(), `"id":"`+body.User.ID+`"`)
}
