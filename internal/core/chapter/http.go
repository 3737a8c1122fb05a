// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/noctoon/internal/platform/request"
	"github.com/taibuivan/noctoon/internal/platform/respond"
)

// # Handler Implementation

// Handler implements the HTTP layer for chapter lookups and management.
type Handler struct {
	service *Service
}

// NewHandler constructs a new chapter [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes attaches chapter endpoints to the API router.
// Chapter endpoints span both /series/{id}/chapters and /chapters/...
func (handler *Handler) RegisterRoutes(api chi.Router, adminGate func(http.Handler) http.Handler) {
	api.Get("/series/{id}/chapters", handler.listChapters)
	api.Get("/chapters/{id}", handler.getChapter)

	api.Group(func(admin chi.Router) {
		admin.Use(adminGate)
		admin.Post("/chapters", handler.createChapter)
		admin.Patch("/chapters/{id}", handler.updateChapter)
		admin.Delete("/chapters/{id}", handler.deleteChapter)
	})
}

// # Chapter Retrieval

/*
GET /api/series/{id}/chapters.

Description: Returns every chapter of a series, ascending by chapter number.
An unknown series yields an empty array.

Response:
  - 200: []Chapter
*/
func (handler *Handler) listChapters(writer http.ResponseWriter, request *http.Request) {
	chapters, err := handler.service.ListChapters(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, chapters)
}

/*
GET /api/chapters/{id}.

Response:
  - 200: Chapter
  - 404: Chapter not found
*/
func (handler *Handler) getChapter(writer http.ResponseWriter, request *http.Request) {
	c, err := handler.service.GetChapter(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

// # Chapter Management

/*
POST /api/chapters.

Request:
  - body: CreateInput (seriesId and chapterNumber required)

Response:
  - 201: Chapter
  - 400: Invalid JSON, missing fields or unknown series
*/
func (handler *Handler) createChapter(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.CreateChapter(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

/*
PATCH /api/chapters/{id}.

Response:
  - 200: Chapter
  - 400: Invalid JSON
  - 404: Chapter not found
*/
func (handler *Handler) updateChapter(writer http.ResponseWriter, request *http.Request) {
	var patch Patch
	if err := requestutil.DecodeJSON(request, &patch); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.UpdateChapter(request.Context(), requestutil.ID(request, "id"), patch)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

/*
DELETE /api/chapters/{id}.

Response:
  - 200: {"success": true}
  - 404: Chapter not found
*/
func (handler *Handler) deleteChapter(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.DeleteChapter(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Success(writer)
}
