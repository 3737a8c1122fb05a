// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import (
	"context"
	"log/slog"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/validate"
	"github.com/taibuivan/noctoon/pkg/uuid"
)

// SeriesChecker reports whether a series exists.
type SeriesChecker interface {
	Exists(context context.Context, id string) (bool, error)
}

// Service manages user favorites.
type Service struct {
	repo   Repository
	series SeriesChecker
	logger *slog.Logger
}

// NewService constructs a favorites [Service].
func NewService(repo Repository, series SeriesChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, series: series, logger: logger}
}

// ListFavorites returns the user's favorites. An empty user ID yields an empty list.
func (service *Service) ListFavorites(context context.Context, userID string) ([]*Favorite, error) {
	if userID == "" {
		return []*Favorite{}, nil
	}
	return service.repo.ListByUser(context, userID)
}

/*
AddFavorite bookmarks a series for a user.

Description: adding a pair that already exists returns the stored favorite
instead of creating a duplicate.

Returns:
  - *Favorite: The new or existing favorite
  - error: VALIDATION_ERROR on missing fields or unknown series
*/
func (service *Service) AddFavorite(context context.Context, input AddInput) (*Favorite, error) {
	validator := &validate.Validator{}
	validator.Required(FieldUserID, input.UserID).Required(FieldSeriesID, input.SeriesID)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	exists, err := service.series.Exists(context, input.SeriesID)
	if err != nil {
		return nil, err
	}
	if err := validator.Custom(FieldSeriesID, !exists, "Series does not exist").Err(); err != nil {
		return nil, err
	}

	existing, err := service.repo.Find(context, input.UserID, input.SeriesID)
	if err == nil {
		return existing, nil
	}
	if !apperr.IsNotFound(err) {
		return nil, err
	}

	f := &Favorite{ID: uuid.New(), UserID: input.UserID, SeriesID: input.SeriesID}
	if err := service.repo.Create(context, f); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "favorite_added",
		slog.String("user_id", f.UserID),
		slog.String("series_id", f.SeriesID),
	)
	return f, nil
}

// RemoveFavorite deletes the user's bookmark of a series.
func (service *Service) RemoveFavorite(context context.Context, userID, seriesID string) error {
	validator := &validate.Validator{}
	if err := validator.Required(FieldUserID, userID).Err(); err != nil {
		return err
	}

	if err := service.repo.Delete(context, userID, seriesID); err != nil {
		return err
	}

	service.logger.InfoContext(context, "favorite_removed",
		slog.String("user_id", userID),
		slog.String("series_id", seriesID),
	)
	return nil
}
