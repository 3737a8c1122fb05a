// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/ctxutil"
	"github.com/taibuivan/noctoon/internal/platform/respond"
	"github.com/taibuivan/noctoon/internal/platform/sec"
)

// TokenVerifier is the slice of [sec.TokenService] the middleware needs.
type TokenVerifier interface {
	VerifyToken(tokenString string) (*sec.AuthClaims, error)
}

// Authenticate parses an optional `Authorization: Bearer <token>` header.
//
// # Flow
//  1. No header: the request proceeds anonymously.
//  2. Malformed header or invalid token: 401.
//  3. Valid token: the claims are stored in the request context.
//
// A nil verifier (no JWT_SECRET configured) leaves every request anonymous.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get("Authorization")
			if authHeader == "" || verifier == nil {
				next.ServeHTTP(writer, request)
				return
			}

			scheme, token, found := strings.Cut(authHeader, " ")
			if !found || !strings.EqualFold(scheme, "bearer") || token == "" {
				respond.Error(writer, request, apperr.Unauthorized("Invalid authorization format"))
				return
			}

			claims, err := verifier.VerifyToken(token)
			if err != nil {
				respond.Error(writer, request, apperr.Unauthorized("Invalid or expired token"))
				return
			}

			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAdmin blocks requests unless the caller holds an admin token.
// Must be registered AFTER [Authenticate].
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		if !ctxutil.IsAdmin(request.Context()) {
			respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// AdminGate returns [RequireAdmin] when enforce is set and a pass-through otherwise.
func AdminGate(enforce bool) func(http.Handler) http.Handler {
	if enforce {
		return RequireAdmin
	}
	return func(next http.Handler) http.Handler { return next }
}
