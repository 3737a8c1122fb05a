// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/noctoon/internal/platform/constants"
	requestutil "github.com/taibuivan/noctoon/internal/platform/request"
	"github.com/taibuivan/noctoon/internal/platform/respond"
)

// Handler implements the account endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs an account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// Routes returns the router mounted at /api/auth.
//
// # Endpoints
//   - POST /register : Creates a member account.
//   - POST /login    : Checks credentials.
//   - GET  /me       : Returns the token holder.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Post("/register", handler.register)
	router.Post("/login", handler.login)
	router.Get("/me", handler.me)
	return router
}

/*
POST /api/auth/register.

Response:
  - 200: {user}
  - 400: Invalid data or username already exists
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{constants.FieldUser: user})
}

/*
POST /api/auth/login.

Response:
  - 200: {user, token?}
  - 400: Missing username or password
  - 401: Invalid credentials
*/
func (handler *Handler) login(writer http.ResponseWriter, request *http.Request) {
	var input LoginInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.authService.Login(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
GET /api/auth/me.

Response:
  - 200: {user}
  - 401: No valid bearer token
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	user, err := handler.authService.CurrentUser(request.Context(), requestutil.UserID(request, ""))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, map[string]any{constants.FieldUser: user})
}
