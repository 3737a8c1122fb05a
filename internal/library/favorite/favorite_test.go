// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/library/favorite"
	"github.com/taibuivan/noctoon/internal/platform/apperr"
)

type knownSeries map[string]bool

func (known knownSeries) Exists(_ context.Context, id string) (bool, error) {
	return known[id], nil
}

func newService() *favorite.Service {
	return favorite.NewService(favorite.NewMemoryRepository(), knownSeries{"series-1": true, "series-2": true},
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_AddFavorite_Idempotent(t *testing.T) {
	service := newService()
	ctx := context.Background()

	first, err := service.AddFavorite(ctx, favorite.AddInput{UserID: "user-1", SeriesID: "series-1"})
	require.NoError(t, err)
	again, err := service.AddFavorite(ctx, favorite.AddInput{UserID: "user-1", SeriesID: "series-1"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, again.ID)

	_, err = service.AddFavorite(ctx, favorite.AddInput{UserID: "user-1", SeriesID: "series-2"})
	require.NoError(t, err)

	favorites, err := service.ListFavorites(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, "series-1", favorites[0].SeriesID)
	assert.Equal(t, "series-2", favorites[1].SeriesID)
}

func TestService_AddFavorite_Validation(t *testing.T) {
	service := newService()
	for _, input := range []favorite.AddInput{
		{SeriesID: "series-1"},
		{UserID: "user-1"},
		{UserID: "user-1", SeriesID: "series-9"},
	} {
		_, err := service.AddFavorite(context.Background(), input)
		assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)
	}
}

func TestService_RemoveFavorite(t *testing.T) {
	service := newService()
	ctx := context.Background()

	_, err := service.AddFavorite(ctx, favorite.AddInput{UserID: "user-1", SeriesID: "series-1"})
	require.NoError(t, err)

	assert.Equal(t, apperr.CodeValidation, apperr.As(service.RemoveFavorite(ctx, "", "series-1")).Code)
	require.NoError(t, service.RemoveFavorite(ctx, "user-1", "series-1"))
	assert.True(t, apperr.IsNotFound(service.RemoveFavorite(ctx, "user-1", "series-1")))

	favorites, err := service.ListFavorites(ctx, "user-1")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestHandler_Favorites(t *testing.T) {
	router := chi.NewRouter()
	router.Mount("/api/favorites", favorite.NewHandler(newService()).Routes())

	serve := func(method, target, body string) *httptest.ResponseRecorder {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(method, target, reader))
		return recorder
	}

	assert.JSONEq(t, `[]`, serve(http.MethodGet, "/api/favorites", "").Body.String())
	assert.Equal(t, http.StatusBadRequest, serve(http.MethodPost, "/api/favorites", `{"userId":"user-1"}`).Code)
	assert.Equal(t, http.StatusCreated, serve(http.MethodPost, "/api/favorites", `{"userId":"user-1","seriesId":"series-1"}`).Code)

	list := serve(http.MethodGet, "/api/favorites?userId=user-1", "")
	assert.Contains(t, list.Body.String(), `"seriesId":"series-1"`)

	assert.Equal(t, http.StatusBadRequest, serve(http.MethodDelete, "/api/favorites/series-1", "").Code)
	assert.Equal(t, http.StatusOK, serve(http.MethodDelete, "/api/favorites/series-1?userId=user-1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(http.MethodDelete, "/api/favorites/series-1?userId=user-1", "").Code)
}
