// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import (
	"context"
	"log/slog"

	"github.com/taibuivan/noctoon/internal/platform/validate"
	"github.com/taibuivan/noctoon/pkg/uuid"
)

// SeriesChecker reports whether a series exists. Implemented by series.Service.
type SeriesChecker interface {
	Exists(context context.Context, id string) (bool, error)
}

// # Service Layer

// Service orchestrates chapter lookups and management.
type Service struct {
	repo   Repository
	series SeriesChecker
	logger *slog.Logger
}

// NewService constructs a chapter [Service].
func NewService(repo Repository, series SeriesChecker, logger *slog.Logger) *Service {
	return &Service{repo: repo, series: series, logger: logger}
}

// # Chapter Lookups

/*
ListChapters returns the chapters of a series ordered ascending by chapter
number. Chapters sharing a number stay in insertion order.
*/
func (service *Service) ListChapters(context context.Context, seriesID string) ([]*Chapter, error) {
	chapters, err := service.repo.ListBySeries(context, seriesID)
	if err != nil {
		return nil, err
	}
	SortByNumber(chapters)
	return chapters, nil
}

// GetChapter fetches a single chapter by ID.
func (service *Service) GetChapter(context context.Context, id string) (*Chapter, error) {
	return service.repo.FindByID(context, id)
}

// # Chapter Management

/*
CreateChapter validates the input and stores a new chapter.

Returns:
  - *Chapter: The stored entity
  - error: VALIDATION_ERROR when fields are missing or the series is unknown
*/
func (service *Service) CreateChapter(context context.Context, input CreateInput) (*Chapter, error) {
	validator := &validate.Validator{}
	validator.Required(FieldSeriesID, input.SeriesID)
	validate.Present(validator, FieldChapterNumber, input.ChapterNumber)
	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.checkSeries(context, input.SeriesID); err != nil {
		return nil, err
	}

	c := &Chapter{
		ID:            uuid.New(),
		SeriesID:      input.SeriesID,
		ChapterNumber: *input.ChapterNumber,
		Title:         input.Title,
		Pages:         append([]string{}, input.Pages...),
		ReleaseDate:   input.ReleaseDate,
	}

	if err := service.repo.Create(context, c); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "chapter_created",
		slog.String("chapter_id", c.ID),
		slog.String("series_id", c.SeriesID),
		slog.Int("chapter_number", c.ChapterNumber),
	)
	return c, nil
}

// UpdateChapter applies a partial update. Moving a chapter to another series
// requires that series to exist.
func (service *Service) UpdateChapter(context context.Context, id string, patch Patch) (*Chapter, error) {
	c, err := service.repo.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if patch.SeriesID != nil && *patch.SeriesID != c.SeriesID {
		if err := service.checkSeries(context, *patch.SeriesID); err != nil {
			return nil, err
		}
	}

	patch.ApplyTo(c)
	if err := service.repo.Update(context, c); err != nil {
		return nil, err
	}

	service.logger.InfoContext(context, "chapter_updated", slog.String("chapter_id", id))
	return c, nil
}

// DeleteChapter removes a chapter by ID.
func (service *Service) DeleteChapter(context context.Context, id string) error {
	if err := service.repo.Delete(context, id); err != nil {
		return err
	}
	service.logger.InfoContext(context, "chapter_deleted", slog.String("chapter_id", id))
	return nil
}

func (service *Service) checkSeries(context context.Context, seriesID string) error {
	exists, err := service.series.Exists(context, seriesID)
	if err != nil {
		return err
	}

	validator := &validate.Validator{}
	validator.Custom(FieldSeriesID, !exists, "Series does not exist")
	return validator.Err()
}
