// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package series defines the catalog's central entity and everything needed to
browse and manage it.

Core Responsibility:

  - Catalog: status lifecycle (ongoing, completed, hiatus), genres and
    featured/trending placement.
  - Discovery: the catalog filter, related-series lookup and dashboard counters.
  - Management: create, partial update and delete, with a read-through cache.
*/
package series

import "github.com/taibuivan/noctoon/pkg/pointer"

// # Domain Enums

// Status represents the publication status of a series.
type Status string

const (
	// StatusOngoing indicates the series is actively updating.
	StatusOngoing Status = "ongoing"

	// StatusCompleted indicates no further chapters are expected.
	StatusCompleted Status = "completed"

	// StatusHiatus indicates the series is paused.
	StatusHiatus Status = "hiatus"

	// StatusAll is only meaningful in a [Filter] and matches every status.
	StatusAll Status = "all"
)

// IsValid reports whether s is a status a series can hold.
func (s Status) IsValid() bool {
	switch s {
	case StatusOngoing, StatusCompleted, StatusHiatus:
		return true
	}
	return false
}

// # Core Entities

// Series is a manga title with its metadata and genre set.
type Series struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	CoverImage  *string  `json:"coverImage"`
	Author      *string  `json:"author"`
	Artist      *string  `json:"artist"`
	Genres      []string `json:"genres"`
	Status      Status   `json:"status"`

	// Rating is a 0-100 score; Views is a non-negative counter.
	Rating int   `json:"rating"`
	Views  int64 `json:"views"`

	IsFeatured bool `json:"isFeatured"`
	IsTrending bool `json:"isTrending"`
}

// Clone returns a deep copy, so callers can never alias repository state.
func (s *Series) Clone() *Series {
	clone := *s
	clone.Genres = append(make([]string, 0, len(s.Genres)), s.Genres...)
	return &clone
}

// HasGenre reports whether the series carries the given genre (exact match).
func (s *Series) HasGenre(genre string) bool {
	for _, g := range s.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// # Write Models

// CreateInput is the body accepted when adding a series. Rating and views
// are not accepted here; a new series always starts at zero.
type CreateInput struct {
	Title       string   `json:"title"`
	Description *string  `json:"description"`
	CoverImage  *string  `json:"coverImage"`
	Author      *string  `json:"author"`
	Artist      *string  `json:"artist"`
	Genres      []string `json:"genres"`
	Status      Status   `json:"status"`
	IsFeatured  bool     `json:"isFeatured"`
	IsTrending  bool     `json:"isTrending"`
}

// Patch is a partial update. Nil fields are left untouched.
type Patch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	CoverImage  *string   `json:"coverImage"`
	Author      *string   `json:"author"`
	Artist      *string   `json:"artist"`
	Genres      *[]string `json:"genres"`
	Status      *Status   `json:"status"`
	Rating      *int      `json:"rating"`
	Views       *int64    `json:"views"`
	IsFeatured  *bool     `json:"isFeatured"`
	IsTrending  *bool     `json:"isTrending"`
}

// ApplyTo copies every non-nil field of the patch onto s. The id is never touched.
func (p Patch) ApplyTo(s *Series) {
	s.Title = pointer.Fallback(p.Title, s.Title)
	if p.Description != nil {
		s.Description = p.Description
	}
	if p.CoverImage != nil {
		s.CoverImage = p.CoverImage
	}
	if p.Author != nil {
		s.Author = p.Author
	}
	if p.Artist != nil {
		s.Artist = p.Artist
	}
	if p.Genres != nil {
		s.Genres = append([]string{}, (*p.Genres)...)
	}
	s.Status = pointer.Fallback(p.Status, s.Status)
	s.Rating = pointer.Fallback(p.Rating, s.Rating)
	s.Views = pointer.Fallback(p.Views, s.Views)
	s.IsFeatured = pointer.Fallback(p.IsFeatured, s.IsFeatured)
	s.IsTrending = pointer.Fallback(p.IsTrending, s.IsTrending)
}

// # Dashboard

// Stats holds the catalog counters shown on the admin dashboard.
type Stats struct {
	Total    int `json:"total"`
	Featured int `json:"featured"`
	Trending int `json:"trending"`
}

// # Field Identifiers

const (
	FieldID     = "id"
	FieldTitle  = "title"
	FieldStatus = "status"
	FieldRating = "rating"
	FieldViews  = "views"
	FieldGenres = "genres"
)

const (
	// MaxTitleLength bounds series titles in characters.
	MaxTitleLength = 300

	// MaxRating is the upper bound of the rating scale.
	MaxRating = 100

	// RelatedLimit is the default length of the related-series list.
	RelatedLimit = 6

	// MaxRelatedLimit caps a caller-supplied related-series limit.
	MaxRelatedLimit = 24
)
