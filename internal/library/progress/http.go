// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/noctoon/internal/platform/request"
	"github.com/taibuivan/noctoon/internal/platform/respond"
)

// Handler implements the reading-progress endpoints.
type Handler struct {
	service *Service
}

// NewHandler constructs a progress [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns the router mounted at /api/reading-progress.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()
	router.Get("/", handler.listProgress)
	router.Post("/", handler.recordProgress)
	return router
}

/*
GET /api/reading-progress?userId=&seriesId=.

Response:
  - 200: []ReadingProgress (empty without a user)
*/
func (handler *Handler) listProgress(writer http.ResponseWriter, request *http.Request) {
	rows, err := handler.service.ListProgress(request.Context(),
		requestutil.UserID(request, requestutil.Query(request, FieldUserID)),
		requestutil.Query(request, FieldSeriesID),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, rows)
}

/*
POST /api/reading-progress.

Request:
  - body: UpsertInput (userId, seriesId, chapterId required)

Response:
  - 200: ReadingProgress
  - 400: Missing fields
*/
func (handler *Handler) recordProgress(writer http.ResponseWriter, request *http.Request) {
	var input UpsertInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}
	input.UserID = requestutil.UserID(request, input.UserID)

	stored, err := handler.service.RecordProgress(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, stored)
}
