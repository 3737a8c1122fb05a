// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/taibuivan/noctoon/pkg/slice"
)

// # Search & Filtering

// Filter selects a subset of the catalog.
//
// All criteria groups are combined with AND. Inside Genres the semantics are
// OR: a series matches when it carries at least one requested genre.
type Filter struct {
	// Query is matched case-insensitively as a substring of title or author.
	Query string `json:"query"`

	// Genres is the requested genre set. Empty matches everything.
	Genres []string `json:"genres"`

	// Status restricts to one status. Empty or [StatusAll] matches everything.
	Status Status `json:"status"`

	// Featured and Trending restrict to flagged series when set.
	Featured bool `json:"featured,omitempty"`
	Trending bool `json:"trending,omitempty"`
}

// IsZero reports whether the filter matches every series.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" && len(f.Genres) == 0 &&
		(f.Status == "" || f.Status == StatusAll) && !f.Featured && !f.Trending
}

// Apply returns the series matching the filter, in input order.
// The result is never nil.
func Apply(all []*Series, f Filter) []*Series {
	matcher := newMatcher(f)
	matched := slice.Filter(all, matcher.matches)
	if matched == nil {
		return []*Series{}
	}
	return matched
}

// matcher holds the per-call folded query; a [cases.Caser] is stateful and
// must not be shared between goroutines.
type matcher struct {
	filter Filter
	caser  cases.Caser
	query  string
}

func newMatcher(f Filter) *matcher {
	caser := cases.Fold()
	return &matcher{
		filter: f,
		caser:  caser,
		query:  caser.String(strings.TrimSpace(f.Query)),
	}
}

func (m *matcher) matches(s *Series) bool {
	return m.matchesQuery(s) && m.matchesGenres(s) && m.matchesStatus(s) && m.matchesPlacement(s)
}

func (m *matcher) matchesQuery(s *Series) bool {
	if m.query == "" {
		return true
	}
	if strings.Contains(m.caser.String(s.Title), m.query) {
		return true
	}
	return s.Author != nil && strings.Contains(m.caser.String(*s.Author), m.query)
}

func (m *matcher) matchesGenres(s *Series) bool {
	if len(m.filter.Genres) == 0 {
		return true
	}
	for _, genre := range m.filter.Genres {
		if s.HasGenre(genre) {
			return true
		}
	}
	return false
}

func (m *matcher) matchesStatus(s *Series) bool {
	return m.filter.Status == "" || m.filter.Status == StatusAll || s.Status == m.filter.Status
}

func (m *matcher) matchesPlacement(s *Series) bool {
	return (!m.filter.Featured || s.IsFeatured) && (!m.filter.Trending || s.IsTrending)
}

// # Discovery

// Related returns up to limit series sharing at least one genre with target,
// excluding target itself, in catalog order.
func Related(all []*Series, target *Series, limit int) []*Series {
	related := make([]*Series, 0, limit)
	for _, candidate := range all {
		if len(related) == limit {
			break
		}
		if candidate.ID == target.ID {
			continue
		}
		for _, genre := range target.Genres {
			if candidate.HasGenre(genre) {
				related = append(related, candidate)
				break
			}
		}
	}
	return related
}

// Summarize counts the catalog for the dashboard.
func Summarize(all []*Series) Stats {
	return Stats{
		Total:    len(all),
		Featured: slice.Count(all, func(s *Series) bool { return s.IsFeatured }),
		Trending: slice.Count(all, func(s *Series) bool { return s.IsTrending }),
	}
}
