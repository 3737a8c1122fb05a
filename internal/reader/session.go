// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reader drives one reading session: the page-by-page, chapter-by-chapter
walk through a series.

# Architecture

  - Session: a synchronous state machine. It never performs I/O; operations
    that need data return the [Request] values the caller must fetch, and
    fetched data comes back through [Session.Resolve].
  - Controller: owns a Session on a single goroutine, runs the fetches
    concurrently, pushes derived outputs to a [Host] and debounces progress
    writes.

Absence is a state, not an error: an unknown series or chapter moves the
session to [StatusNotFound] and disables navigation.
*/
package reader

import (
	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

// # Session Constants

const (
	DefaultZoom = 100
	MinZoom     = 50
	MaxZoom     = 200
	ZoomStep    = 10
)

// Status is the coarse state of a session as shown to the reader.
type Status int

const (
	// StatusLoading waits for the current chapter's content.
	StatusLoading Status = iota
	// StatusReady has the chapter content and allows navigation.
	StatusReady
	// StatusNotFound means the series or the chapter does not exist.
	StatusNotFound
	// StatusFailed means the chapter fetch failed for a reason other than absence.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// # Fetch Protocol

// Kind identifies what a [Request] fetches.
type Kind int

const (
	FetchSeries Kind = iota
	FetchChapters
	FetchChapter
)

func (k Kind) String() string {
	switch k {
	case FetchSeries:
		return "series"
	case FetchChapters:
		return "chapters"
	case FetchChapter:
		return "chapter"
	default:
		return "unknown"
	}
}

// Request is a fetch the session needs. It carries the identifiers that were
// current when it was issued so a late result can be recognized as stale.
type Request struct {
	Kind      Kind
	SeriesID  string
	ChapterID string
}

// Result is the outcome of a [Request]. Exactly one payload field is set
// when Err is nil.
type Result struct {
	Request  Request
	Series   *series.Series
	Chapters []*chapter.Chapter
	Chapter  *chapter.Chapter
	Err      error
}

// # Session State

// Session is the transient view state of one reader activation.
//
// # Concurrency
//
// Session is not safe for concurrent use. [Controller] confines it to its
// event loop.
type Session struct {
	seriesID  string
	chapterID string

	series   *series.Series
	chapters []*chapter.Chapter
	current  *chapter.Chapter

	seriesMissing  bool
	chapterMissing bool
	failure        error

	page       int
	resumePage int

	zoom            int
	controlsVisible bool
	fullscreen      bool
}

// NewSession returns a session with default view settings. Call [Session.Open]
// before anything else.
func NewSession() *Session {
	return &Session{zoom: DefaultZoom, controlsVisible: true}
}

/*
Open starts reading chapterID of seriesID.

Description: resumePage is applied once, when the opening chapter's content
arrives, and is clamped to the chapter's pages. Pass 0 to start at the top.

Returns:
  - []Request: The series, chapter list and chapter fetches to run
*/
func (s *Session) Open(seriesID, chapterID string, resumePage int) []Request {
	s.seriesID = seriesID
	s.series = nil
	s.chapters = nil
	s.seriesMissing = false
	s.resumePage = max(resumePage, 0)

	return []Request{
		{Kind: FetchSeries, SeriesID: seriesID},
		{Kind: FetchChapters, SeriesID: seriesID},
		s.enterChapter(chapterID),
	}
}

// enterChapter switches the current chapter and resets the page index.
func (s *Session) enterChapter(chapterID string) Request {
	s.chapterID = chapterID
	s.current = nil
	s.chapterMissing = false
	s.failure = nil
	s.page = 0
	return Request{Kind: FetchChapter, SeriesID: s.seriesID, ChapterID: chapterID}
}

/*
Resolve applies a fetch result.

Description: a result whose identifiers no longer match the session is
discarded, so a slow fetch for a chapter the reader already left can never
overwrite the current one.

Returns:
  - bool: Whether the result changed the session
*/
func (s *Session) Resolve(result Result) bool {
	request := result.Request
	if request.SeriesID != s.seriesID {
		return false
	}
	if request.Kind == FetchChapter && request.ChapterID != s.chapterID {
		return false
	}

	if result.Err != nil {
		// Only the chapter fetch can fail the session. A missing list or
		// metadata leaves reading available with chapter navigation off.
		switch request.Kind {
		case FetchSeries:
			s.series = nil
			s.seriesMissing = apperr.IsNotFound(result.Err)
		case FetchChapters:
			s.chapters = nil
		case FetchChapter:
			if apperr.IsNotFound(result.Err) {
				s.chapterMissing = true
			} else {
				s.failure = result.Err
			}
		}
		return true
	}

	switch request.Kind {
	case FetchSeries:
		s.series = result.Series
	case FetchChapters:
		sorted := append([]*chapter.Chapter(nil), result.Chapters...)
		chapter.SortByNumber(sorted)
		s.chapters = sorted
	case FetchChapter:
		if result.Chapter == nil {
			s.chapterMissing = true
			return true
		}
		s.current = result.Chapter
		if s.resumePage > 0 {
			s.page = min(s.resumePage, max(result.Chapter.TotalPages()-1, 0))
			s.resumePage = 0
		}
	}
	return true
}

// # Navigation

// AdvancePage moves one page forward, crossing into the next chapter from
// the last page. On the last page of the last chapter it does nothing.
func (s *Session) AdvancePage() []Request {
	if s.Status() != StatusReady {
		return nil
	}
	if s.page < s.TotalPages()-1 {
		s.page++
		return nil
	}
	if next := s.neighbor(1); next != nil {
		return []Request{s.enterChapter(next.ID)}
	}
	return nil
}

// RetreatPage moves one page back. From the first page it crosses into the
// previous chapter and lands on that chapter's first page, not its last.
func (s *Session) RetreatPage() []Request {
	if s.Status() != StatusReady {
		return nil
	}
	if s.page > 0 {
		s.page--
		return nil
	}
	if prev := s.neighbor(-1); prev != nil {
		return []Request{s.enterChapter(prev.ID)}
	}
	return nil
}

// SelectChapter jumps to chapterID unconditionally.
func (s *Session) SelectChapter(chapterID string) []Request {
	if s.seriesID == "" || chapterID == "" {
		return nil
	}
	s.resumePage = 0
	return []Request{s.enterChapter(chapterID)}
}

// JumpChapter selects the chapter offset positions away in reading order.
// It is a no-op past either end.
func (s *Session) JumpChapter(offset int) []Request {
	target := s.neighbor(offset)
	if target == nil {
		return nil
	}
	return s.SelectChapter(target.ID)
}

// SetZoom adds delta to the zoom level, clamped to [MinZoom, MaxZoom].
func (s *Session) SetZoom(delta int) {
	s.zoom = min(max(s.zoom+delta, MinZoom), MaxZoom)
}

// ToggleControls flips the visibility of the reader chrome.
func (s *Session) ToggleControls() {
	s.controlsVisible = !s.controlsVisible
}

// ToggleFullscreen flips the fullscreen flag and returns the new value for
// the host to act on. The host's success is never reported back.
func (s *Session) ToggleFullscreen() bool {
	s.fullscreen = !s.fullscreen
	return s.fullscreen
}

// Apply performs the operation bound to action.
func (s *Session) Apply(action Action) []Request {
	switch action {
	case ActionAdvance:
		return s.AdvancePage()
	case ActionRetreat:
		return s.RetreatPage()
	case ActionToggleControls:
		s.ToggleControls()
	case ActionZoomIn:
		s.SetZoom(ZoomStep)
	case ActionZoomOut:
		s.SetZoom(-ZoomStep)
	case ActionToggleFullscreen:
		s.ToggleFullscreen()
	}
	return nil
}

// neighbor returns the chapter offset positions away in reading order, or nil.
func (s *Session) neighbor(offset int) *chapter.Chapter {
	index := s.ChapterIndex()
	if index < 0 {
		return nil
	}
	target := index + offset
	if target < 0 || target >= len(s.chapters) {
		return nil
	}
	return s.chapters[target]
}

// # Derived Outputs

// Status reports the session's coarse state.
func (s *Session) Status() Status {
	switch {
	case s.seriesMissing || s.chapterMissing:
		return StatusNotFound
	case s.failure != nil:
		return StatusFailed
	case s.current == nil:
		return StatusLoading
	default:
		return StatusReady
	}
}

// Err returns the fetch failure behind [StatusFailed].
func (s *Session) Err() error { return s.failure }

func (s *Session) SeriesID() string { return s.seriesID }
func (s *Session) ChapterID() string { return s.chapterID }

// Series returns the loaded series metadata, or nil.
func (s *Session) Series() *series.Series { return s.series }

// Chapter returns the loaded content of the current chapter, or nil.
func (s *Session) Chapter() *chapter.Chapter { return s.current }

// Chapters returns the series' chapters in reading order.
func (s *Session) Chapters() []*chapter.Chapter { return s.chapters }

// ChapterIndex is the position of the current chapter in [Session.Chapters],
// or -1 when the list is not loaded or does not contain it.
func (s *Session) ChapterIndex() int {
	for i, c := range s.chapters {
		if c.ID == s.chapterID {
			return i
		}
	}
	return -1
}

func (s *Session) Page() int { return s.page }
func (s *Session) Zoom() int { return s.zoom }
func (s *Session) ControlsVisible() bool { return s.controlsVisible }
func (s *Session) Fullscreen() bool { return s.fullscreen }
func (s *Session) HasPreviousChapter() bool { return s.neighbor(-1) != nil }
func (s *Session) HasNextChapter() bool { return s.neighbor(1) != nil }

// TotalPages is the page count of the loaded chapter, 0 while loading.
func (s *Session) TotalPages() int {
	if s.current == nil {
		return 0
	}
	return s.current.TotalPages()
}

// ProgressPercent is the share of the chapter read so far, including the
// current page. A chapter without pages reports 0.
func (s *Session) ProgressPercent() float64 {
	total := s.TotalPages()
	if total == 0 {
		return 0
	}
	return float64(s.page+1) / float64(total) * 100
}

func (s *Session) CanGoPrev() bool {
	return s.Status() == StatusReady && (s.page > 0 || s.HasPreviousChapter())
}

func (s *Session) CanGoNext() bool {
	return s.Status() == StatusReady && (s.page < s.TotalPages()-1 || s.HasNextChapter())
}

// PageURL returns the image of the current page, or "" when there is none.
func (s *Session) PageURL() string {
	if s.current == nil || s.page >= len(s.current.Pages) {
		return ""
	}
	return s.current.Pages[s.page]
}

// Position is the persisted reading position of a session.
type Position struct {
	SeriesID  string
	ChapterID string
	Page      int
}

// Position returns the current reading position. ok is false until the
// chapter content has loaded.
func (s *Session) Position() (position Position, ok bool) {
	if s.Status() != StatusReady {
		return Position{}, false
	}
	return Position{SeriesID: s.seriesID, ChapterID: s.chapterID, Page: s.page}, true
}

// # Snapshot

// View is a read-only snapshot of a session for rendering.
type View struct {
	Status Status

	SeriesID    string
	SeriesTitle string

	ChapterID     string
	ChapterNumber int
	ChapterTitle  string
	ChapterIndex  int
	ChapterCount  int

	PrevChapterID string
	NextChapterID string

	Page       int
	TotalPages int
	PageURL    string
	Progress   float64

	Zoom            int
	ControlsVisible bool
	Fullscreen      bool

	CanGoPrev bool
	CanGoNext bool
}

// View captures the current state.
func (s *Session) View() View {
	view := View{
		Status:          s.Status(),
		SeriesID:        s.seriesID,
		ChapterID:       s.chapterID,
		ChapterIndex:    s.ChapterIndex(),
		ChapterCount:    len(s.chapters),
		Page:            s.page,
		TotalPages:      s.TotalPages(),
		PageURL:         s.PageURL(),
		Progress:        s.ProgressPercent(),
		Zoom:            s.zoom,
		ControlsVisible: s.controlsVisible,
		Fullscreen:      s.fullscreen,
		CanGoPrev:       s.CanGoPrev(),
		CanGoNext:       s.CanGoNext(),
	}
	if s.series != nil {
		view.SeriesTitle = s.series.Title
	}
	if s.current != nil {
		view.ChapterNumber = s.current.ChapterNumber
		view.ChapterTitle = pointer.Val(s.current.Title)
	}
	if prev := s.neighbor(-1); prev != nil {
		view.PrevChapterID = prev.ID
	}
	if next := s.neighbor(1); next != nil {
		view.NextChapterID = next.ID
	}
	return view
}
