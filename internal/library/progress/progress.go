// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package progress records where each user stopped reading each series.

There is exactly one [ReadingProgress] per (userId, seriesId): writes are
upserts that replace the chapter, page and timestamp of the existing record
while keeping its ID.
*/
package progress

import "time"

// ReadingProgress is the last reading position of a user in a series.
type ReadingProgress struct {
	ID          string `json:"id"`
	UserID      string `json:"userId"`
	SeriesID    string `json:"seriesId"`
	ChapterID   string `json:"chapterId"`
	CurrentPage int    `json:"currentPage"`

	// LastRead is an RFC 3339 UTC timestamp with millisecond precision.
	LastRead string `json:"lastRead"`
}

// UpsertInput is the body accepted by the progress endpoint.
// An omitted currentPage is recorded as page 0.
type UpsertInput struct {
	UserID      string `json:"userId"`
	SeriesID    string `json:"seriesId"`
	ChapterID   string `json:"chapterId"`
	CurrentPage *int   `json:"currentPage"`
}

// TimestampLayout formats LastRead.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// FormatTimestamp renders t in [TimestampLayout] after converting to UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

const (
	FieldUserID      = "userId"
	FieldSeriesID    = "seriesId"
	FieldChapterID   = "chapterId"
	FieldCurrentPage = "currentPage"
)
