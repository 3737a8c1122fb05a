// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/noctoon/internal/platform/request"
	"github.com/taibuivan/noctoon/internal/platform/respond"
)

// Handler implements the favorites endpoints.
//
// The user is identified by the userId query parameter or body field. When
// it is omitted and the request carries a valid token, the token's user is used.
type Handler struct {
	service *Service
}

// NewHandler constructs a favorites [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/favorites.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listFavorites)
	router.Post("/", handler.addFavorite)
	router.Delete("/{seriesId}", handler.removeFavorite)
	return router
}

/*
GET /api/favorites?userId=.

Response:
  - 200: []Favorite (empty without a user)
*/
func (handler *Handler) listFavorites(writer http.ResponseWriter, request *http.Request) {
	favorites, err := handler.service.ListFavorites(request.Context(), requestutil.UserID(request, requestutil.Query(request, FieldUserID)))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, favorites)
}

/*
POST /api/favorites.

Request:
  - body: {"userId", "seriesId"}

Response:
  - 201: Favorite
  - 400: Missing fields or unknown series
*/
func (handler *Handler) addFavorite(writer http.ResponseWriter, request *http.Request) {
	var input AddInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.UserID = requestutil.UserID(request, input.UserID)

	f, err := handler.service.AddFavorite(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, f)
}

/*
DELETE /api/favorites/{seriesId}?userId=.

Response:
  - 200: {"success": true}
  - 400: userId missing
  - 404: Favorite not found
*/
func (handler *Handler) removeFavorite(writer http.ResponseWriter, request *http.Request) {
	owner := requestutil.UserID(request, requestutil.Query(request, FieldUserID))
	if err := handler.service.RemoveFavorite(request.Context(), owner, requestutil.ID(request, "seriesId")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}
