// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/noctoon/internal/platform/validate"
	"github.com/taibuivan/noctoon/pkg/pointer"
	"github.com/taibuivan/noctoon/pkg/uuid"
)

// SeriesChecker reports whether a series exists.
type SeriesChecker interface {
	Exists(context context.Context, id string) (bool, error)
}

// Service records and lists reading progress.
type Service struct {
	repo   Repository
	series SeriesChecker
	logger *slog.Logger
	now    func() time.Time
}

// NewService constructs a progress [Service]. now stamps LastRead; nil
// selects [time.Now].
func NewService(repo Repository, series SeriesChecker, logger *slog.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, series: series, logger: logger, now: now}
}

/*
ListProgress returns the user's progress rows.

An empty user ID yields an empty list. When seriesID is set, the result is
narrowed to that series (at most one row).
*/
func (service *Service) ListProgress(context context.Context, userID, seriesID string) ([]*ReadingProgress, error) {
	if userID == "" {
		return []*ReadingProgress{}, nil
	}

	if seriesID == "" {
		return service.repo.ListByUser(context, userID)
	}

	rows, err := service.repo.ListByUser(context, userID)
	if err != nil {
		return nil, err
	}
	narrowed := make([]*ReadingProgress, 0, 1)
	for _, row := range rows {
		if row.SeriesID == seriesID {
			narrowed = append(narrowed, row)
		}
	}
	return narrowed, nil
}

/*
RecordProgress upserts the reading position for (userId, seriesId).

Returns:
  - *ReadingProgress: The stored row
  - error: VALIDATION_ERROR on missing fields, negative page or unknown series
*/
func (service *Service) RecordProgress(context context.Context, input UpsertInput) (*ReadingProgress, error) {
	page := pointer.Fallback(input.CurrentPage, 0)

	validator := &validate.Validator{}
	validator.
		Required(FieldUserID, input.UserID).
		Required(FieldSeriesID, input.SeriesID).
		Required(FieldChapterID, input.ChapterID).
		NonNegative(FieldCurrentPage, page)
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

	stored, err := service.repo.Upsert(context, &ReadingProgress{
		ID:          uuid.New(),
		UserID:      input.UserID,
		SeriesID:    input.SeriesID,
		ChapterID:   input.ChapterID,
		CurrentPage: page,
		LastRead:    FormatTimestamp(service.now()),
	})
	if err != nil {
		return nil, err
	}

	service.logger.DebugContext(context, "reading_progress_recorded",
		slog.String("user_id", stored.UserID),
		slog.String("series_id", stored.SeriesID),
		slog.String("chapter_id", stored.ChapterID),
		slog.Int("current_page", stored.CurrentPage),
	)
	return stored, nil
}
