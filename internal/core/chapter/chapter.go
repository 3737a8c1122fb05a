// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package chapter manages the installments of a series and their ordered pages.

Chapters reference their series by ID only. Storage does not enforce the
reference; the [Service] checks it on create and on series reassignment.
*/
package chapter

import (
	"sort"

	"github.com/taibuivan/noctoon/pkg/pointer"
)

// # Core Entities

// Chapter is one installment of a series.
//
// ChapterNumber orders chapters inside a series but is neither unique nor
// contiguous. Pages holds the image URLs in reading order.
type Chapter struct {
	ID            string   `json:"id"`
	SeriesID      string   `json:"seriesId"`
	ChapterNumber int      `json:"chapterNumber"`
	Title         *string  `json:"title"`
	Pages         []string `json:"pages"`
	ReleaseDate   *string  `json:"releaseDate"`
}

// Clone returns a deep copy of the chapter.
func (c *Chapter) Clone() *Chapter {
	clone := *c
	clone.Pages = append(make([]string, 0, len(c.Pages)), c.Pages...)
	return &clone
}

// TotalPages returns the number of pages in the chapter.
func (c *Chapter) TotalPages() int {
	return len(c.Pages)
}

// SortByNumber orders chapters ascending by ChapterNumber in place.
// Chapters sharing a number keep their relative (insertion) order.
func SortByNumber(chapters []*Chapter) {
	sort.SliceStable(chapters, func(i, j int) bool {
		return chapters[i].ChapterNumber < chapters[j].ChapterNumber
	})
}

// # Write Models

// CreateInput is the body accepted when adding a chapter.
// ChapterNumber is a pointer so an omitted number can be told apart from 0.
type CreateInput struct {
	SeriesID      string   `json:"seriesId"`
	ChapterNumber *int     `json:"chapterNumber"`
	Title         *string  `json:"title"`
	Pages         []string `json:"pages"`
	ReleaseDate   *string  `json:"releaseDate"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	SeriesID      *string   `json:"seriesId"`
	ChapterNumber *int      `json:"chapterNumber"`
	Title         *string   `json:"title"`
	Pages         *[]string `json:"pages"`
	ReleaseDate   *string   `json:"releaseDate"`
}

// ApplyTo copies every non-nil field of the patch onto c.
func (p Patch) ApplyTo(c *Chapter) {
	c.SeriesID = pointer.Fallback(p.SeriesID, c.SeriesID)
	c.ChapterNumber = pointer.Fallback(p.ChapterNumber, c.ChapterNumber)
	if p.Title != nil {
		c.Title = p.Title
	}
	if p.Pages != nil {
		c.Pages = append([]string{}, (*p.Pages)...)
	}
	if p.ReleaseDate != nil {
		c.ReleaseDate = p.ReleaseDate
	}
}

// # Field Identifiers

const (
	FieldSeriesID      = "seriesId"
	FieldChapterNumber = "chapterNumber"
	FieldPages         = "pages"
)
