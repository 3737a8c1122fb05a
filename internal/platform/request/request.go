// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It hides chi's parameter extraction and the body decoding pattern shared by
every handler.
*/
package requestutil

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/noctoon/internal/platform/ctxutil"
	"github.com/taibuivan/noctoon/internal/platform/sec"
	"github.com/taibuivan/noctoon/internal/platform/validate"
	"github.com/taibuivan/noctoon/pkg/convert"
	"github.com/taibuivan/noctoon/pkg/query"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(nil, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}
	return nil
}

// ID retrieves a named URL parameter from the route.
func ID(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

// Query returns the trimmed value of a query string parameter.
func Query(request *http.Request, name string) string {
	return strings.TrimSpace(request.URL.Query().Get(name))
}

// QueryList returns a query parameter as a slice. Both repeated parameters
// and comma-separated values are accepted.
func QueryList(request *http.Request, name string) []string {
	var values []string
	for _, raw := range request.URL.Query()[name] {
		values = append(values, query.StringSlice(raw)...)
	}
	return values
}

// QueryInt returns a query parameter parsed as an int, def when absent or malformed.
func QueryInt(request *http.Request, name string, def int) int {
	return convert.ToIntD(request.URL.Query().Get(name), def)
}

// QueryBool returns a query parameter parsed as a boolean, false when absent.
func QueryBool(request *http.Request, name string) bool {
	return convert.ToBool(request.URL.Query().Get(name))
}

// Claims extracts the authenticated user claims from the request context.
// Returns nil if the request carries no valid token.
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

// UserID returns explicit when set, otherwise the authenticated user's ID.
// Session identity travels as a plain userId field; a bearer token only
// fills it in when the caller omitted it.
func UserID(request *http.Request, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if claims := Claims(request); claims != nil {
		return claims.UserID
	}
	return ""
}
