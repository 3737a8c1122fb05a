// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/platform/cache"
	"github.com/taibuivan/noctoon/internal/platform/constants"
	"github.com/taibuivan/noctoon/internal/platform/validate"
	"github.com/taibuivan/noctoon/pkg/uuid"
)

// # Service Layer

// Service orchestrates the business logic for the series catalog.
//
// Reads go through the cache: the full list is cached under one key and
// single series under a per-ID key. Every mutation invalidates both.
type Service struct {
	repo   Repository
	cache  cache.Cache
	logger *slog.Logger
}

// NewService constructs a [Service]. A nil cache disables caching.
func NewService(repo Repository, catalogCache cache.Cache, logger *slog.Logger) *Service {
	if catalogCache == nil {
		catalogCache = cache.Noop{}
	}
	return &Service{repo: repo, cache: catalogCache, logger: logger}
}

// # Lookups

/*
ListSeries returns the catalog subset matching filter, in insertion order.

A zero filter returns the full catalog.
*/
func (service *Service) ListSeries(context context.Context, filter Filter) ([]*Series, error) {
	all, err := service.all(context)
	if err != nil {
		return nil, err
	}
	if filter.IsZero() {
		return all, nil
	}
	return Apply(all, filter), nil
}

// GetSeries fetches one series by ID.
func (service *Service) GetSeries(context context.Context, id string) (*Series, error) {
	key := constants.RedisPrefixSeries + id

	var cached Series
	if service.cache.Get(context, key, &cached) {
		return &cached, nil
	}

	s, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	service.cache.Set(context, key, s)
	return s, nil
}

// Exists reports whether a series with the given ID is in the catalog.
// Other catalog services use it to reject references to unknown series.
func (service *Service) Exists(context context.Context, id string) (bool, error) {
	_, err := service.GetSeries(context, id)
	if err == nil {
		return true, nil
	}
	if apperr.IsNotFound(err) {
		return false, nil
	}
	return false, err
}

// RelatedSeries returns other series sharing a genre with the given one.
// A limit outside 1..MaxRelatedLimit selects RelatedLimit.
func (service *Service) RelatedSeries(context context.Context, id string, limit int) ([]*Series, error) {
	if limit <= 0 || limit > MaxRelatedLimit {
		limit = RelatedLimit
	}

	target, err := service.GetSeries(context, id)
	if err != nil {
		return nil, err
	}

	all, err := service.all(context)
	if err != nil {
		return nil, err
	}
	return Related(all, target, limit), nil
}

// CatalogStats returns the dashboard counters.
func (service *Service) CatalogStats(context context.Context) (Stats, error) {
	all, err := service.all(context)
	if err != nil {
		return Stats{}, err
	}
	return Summarize(all), nil
}

// # Management

/*
CreateSeries validates the input and adds a new series to the catalog.

Description: a UUID v7 identity is assigned, status defaults to ongoing and
rating/views always start at zero.

Returns:
  - *Series: The stored entity
  - error: VALIDATION_ERROR on bad input
*/
func (service *Service) CreateSeries(context context.Context, input CreateInput) (*Series, error) {
	s := &Series{
		ID:          uuid.New(),
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		CoverImage:  input.CoverImage,
		Author:      input.Author,
		Artist:      input.Artist,
		Genres:      normalizeGenres(input.Genres),
		Status:      input.Status,
		IsFeatured:  input.IsFeatured,
		IsTrending:  input.IsTrending,
	}
	if s.Status == "" {
		s.Status = StatusOngoing
	}

	if err := validateSeries(s); err != nil {
		return nil, err
	}

	if err := service.repo.Create(context, s); err != nil {
		return nil, err
	}

	service.invalidate(context, s.ID)
	service.logger.InfoContext(context, "series_created", slog.String("series_id", s.ID), slog.String("title", s.Title))
	return s, nil
}

// UpdateSeries applies a partial update to an existing series.
func (service *Service) UpdateSeries(context context.Context, id string, patch Patch) (*Series, error) {
	s, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	patch.ApplyTo(s)
	s.Title = strings.TrimSpace(s.Title)
	s.Genres = normalizeGenres(s.Genres)

	if err := validateSeries(s); err != nil {
		return nil, err
	}

	if err := service.repo.Update(context, s); err != nil {
		return nil, err
	}

	service.invalidate(context, id)
	service.logger.InfoContext(context, "series_updated", slog.String("series_id", id))
	return s, nil
}

// DeleteSeries removes a series. Dependent chapters are not removed.
func (service *Service) DeleteSeries(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.invalidate(context, id)
	service.logger.InfoContext(context, "series_deleted", slog.String("series_id", id))
	return nil
}

// # Internal Helpers

func (service *Service) all(context context.Context) ([]*Series, error) {
	var cached []*Series
	if service.cache.Get(context, constants.RedisKeySeriesAll, &cached) {
		return cached, nil
	}

	all, err := service.repo.List(context)
	if err != nil {
		return nil, err
	}

	service.cache.Set(context, constants.RedisKeySeriesAll, all)
	return all, nil
}

func (service *Service) invalidate(context context.Context, id string) {
	service.cache.Delete(context, constants.RedisKeySeriesAll, constants.RedisPrefixSeries+id)
}

func validateSeries(s *Series) error {
	validator := &validate.Validator{}
	validator.Required(FieldTitle, s.Title).MaxLen(FieldTitle, s.Title, MaxTitleLength)
	validator.OneOf(FieldStatus, string(s.Status), string(StatusOngoing), string(StatusCompleted), string(StatusHiatus))
	validator.Range(FieldRating, s.Rating, 0, MaxRating)
	validator.Custom(FieldViews, s.Views < 0, "Must not be negative")
	return validator.Err()
}

// normalizeGenres trims entries, drops blanks and duplicates, and never returns nil.
func normalizeGenres(genres []string) []string {
	normalized := make([]string, 0, len(genres))
	seen := make(map[string]struct{}, len(genres))
	for _, genre := range genres {
		genre = strings.TrimSpace(genre)
		if genre == "" {
			continue
		}
		if _, dup := seen[genre]; dup {
			continue
		}
		seen[genre] = struct{}{}
		normalized = append(normalized, genre)
	}
	return normalized
}
