// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/noctoon/internal/platform/request"
	"github.com/taibuivan/noctoon/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for catalog discovery and management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new series [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches the series endpoints to the API router.
//
// # Routing Strategy
//
//   - Discovery (Public): list, detail, related and stats.
//   - Management: create, patch and delete behind adminGate.
func (handler *Handler) RegisterRoutes(api chi.Router, adminGate func(http.Handler) http.Handler) {
	api.Get("/series", handler.listSeries)
	api.Get("/series/stats", handler.stats)
	api.Get("/series/{id}", handler.getSeries)
	api.Get("/series/{id}/related", handler.relatedSeries)

	api.Group(func(admin chi.Router) {
		admin.Use(adminGate)
		admin.Post("/series", handler.createSeries)
		admin.Patch("/series/{id}", handler.updateSeries)
		admin.Delete("/series/{id}", handler.deleteSeries)
	})
}

// # Discovery Endpoints

/*
GET /api/series.

Description: Returns the catalog in insertion order. Without query
parameters the full catalog is returned.

Request:
  - q: string (case-insensitive title/author substring)
  - genre: string (comma-separated; any match)
  - status: string (ongoing, completed, hiatus, all)
  - featured: bool
  - trending: bool

Response:
  - 200: []Series
*/
func (handler *Handler) listSeries(writer http.ResponseWriter, request *http.Request) {
	filter := Filter{
		Query:    requestutil.Query(request, "q"),
		Genres:   requestutil.QueryList(request, "genre"),
		Status:   Status(requestutil.Query(request, "status")),
		Featured: requestutil.QueryBool(request, "featured"),
		Trending: requestutil.QueryBool(request, "trending"),
	}

	all, err := handler.service.ListSeries(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, all)
}

/*
GET /api/series/{id}.

Response:
  - 200: Series
  - 404: Series not found
*/
func (handler *Handler) getSeries(writer http.ResponseWriter, request *http.Request) {
	s, err := handler.service.GetSeries(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

/*
GET /api/series/{id}/related?limit=.

Description: Other series sharing at least one genre, six unless limit says otherwise.

Response:
  - 200: []Series
  - 404: Series not found
*/
func (handler *Handler) relatedSeries(writer http.ResponseWriter, request *http.Request) {
	related, err := handler.service.RelatedSeries(request.Context(),
		requestutil.ID(request, "id"),
		requestutil.QueryInt(request, "limit", RelatedLimit),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, related)
}

/*
GET /api/series/stats.

Response:
  - 200: Stats
*/
func (handler *Handler) stats(writer http.ResponseWriter, request *http.Request) {
	stats, err := handler.service.CatalogStats(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stats)
}

// # Management Endpoints

/*
POST /api/series.

Request:
  - body: CreateInput (title required)

Response:
  - 201: Series
  - 400: Invalid JSON or validation failure
*/
func (handler *Handler) createSeries(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.CreateSeries(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, s)
}

/*
PATCH /api/series/{id}.

Response:
  - 200: Series
  - 400: Invalid JSON or validation failure
  - 404: Series not found
*/
func (handler *Handler) updateSeries(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	s, err := handler.service.UpdateSeries(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, s)
}

/*
DELETE /api/series/{id}.

Response:
  - 200: {"success": true}
  - 404: Series not found
*/
func (handler *Handler) deleteSeries(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteSeries(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}
