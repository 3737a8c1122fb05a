// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package reader_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/internal/reader"
)

const seriesID = "series-1"

func newChapter(id string, number, pages int) *chapter.Chapter {
	c := &chapter.Chapter{ID: id, SeriesID: seriesID, ChapterNumber: number, Pages: []string{}}
	for i := range pages {
		c.Pages = append(c.Pages, fmt.Sprintf("https://img.noctoon.app/%s/%d.jpg", id, i+1))
	}
	return c
}

// resultFor answers a request from an in-memory catalog.
func resultFor(request reader.Request, catalog []*chapter.Chapter) reader.Result {
	result := reader.Result{Request: request}
	switch request.Kind {
	case reader.FetchSeries:
		if request.SeriesID != seriesID {
			result.Err = apperr.NotFound("Series")
			return result
		}
		result.Series = &series.Series{ID: seriesID, Title: "Solo Leveling"}
	case reader.FetchChapters:
		result.Chapters = catalog
	case reader.FetchChapter:
		for _, c := range catalog {
			if c.ID == request.ChapterID {
				result.Chapter = c
				return result
			}
		}
		result.Err = apperr.NotFound("Chapter")
	}
	return result
}

func resolveAll(session *reader.Session, requests []reader.Request, catalog []*chapter.Chapter) {
	for _, request := range requests {
		session.Resolve(resultFor(request, catalog))
	}
}

func openSession(t *testing.T, catalog []*chapter.Chapter, chapterID string) *reader.Session {
	t.Helper()
	session := reader.NewSession()
	resolveAll(session, session.Open(seriesID, chapterID, 0), catalog)
	require.Equal(t, reader.StatusReady, session.Status())
	return session
}

func threeChapters() []*chapter.Chapter {
	return []*chapter.Chapter{
		newChapter("ch-3", 3, 2),
		newChapter("ch-1", 1, 2),
		newChapter("ch-2", 2, 3),
	}
}

func TestSession_SortsChaptersStably(t *testing.T) {
	catalog := []*chapter.Chapter{
		newChapter("a", 3, 1),
		newChapter("b", 1, 1),
		newChapter("c", 3, 1),
		newChapter("d", 2, 1),
		newChapter("e", 1, 1),
	}
	session := openSession(t, catalog, "a")

	var ids []string
	sorted := session.Chapters()
	for i, c := range sorted {
		ids = append(ids, c.ID)
		if i > 0 {
			assert.LessOrEqual(t, sorted[i-1].ChapterNumber, c.ChapterNumber)
		}
	}
	assert.Equal(t, []string{"b", "e", "d", "a", "c"}, ids)
	assert.Equal(t, 3, session.ChapterIndex())

	// The fetched slice keeps its order.
	assert.Equal(t, "a", catalog[0].ID)
}

func TestSession_DefaultsAfterOpen(t *testing.T) {
	session := openSession(t, threeChapters(), "ch-1")

	assert.Equal(t, 0, session.Page())
	assert.Equal(t, reader.DefaultZoom, session.Zoom())
	assert.True(t, session.ControlsVisible())
	assert.False(t, session.Fullscreen())
	assert.Equal(t, 2, session.TotalPages())
	assert.Equal(t, "https://img.noctoon.app/ch-1/1.jpg", session.PageURL())
	assert.Equal(t, "Solo Leveling", session.View().SeriesTitle)
}

func TestSession_AdvanceCrossesIntoNextChapter(t *testing.T) {
	catalog := threeChapters()
	session := openSession(t, catalog, "ch-1")

	assert.Nil(t, session.AdvancePage())
	assert.Equal(t, 1, session.Page())

	requests := session.AdvancePage()
	require.Len(t, requests, 1)
	assert.Equal(t, reader.Request{Kind: reader.FetchChapter, SeriesID: seriesID, ChapterID: "ch-2"}, requests[0])
	assert.Equal(t, "ch-2", session.ChapterID())
	assert.Equal(t, 0, session.Page())
	assert.Equal(t, reader.StatusLoading, session.Status())

	resolveAll(session, requests, catalog)
	assert.Equal(t, reader.StatusReady, session.Status())
	assert.Equal(t, 0, session.Page())
	assert.Equal(t, 3, session.TotalPages())
}

func TestSession_RetreatLandsOnFirstPageOfPreviousChapter(t *testing.T) {
	catalog := []*chapter.Chapter{newChapter("ch-1", 1, 3), newChapter("ch-2", 2, 2)}
	session := openSession(t, catalog, "ch-2")

	requests := session.RetreatPage()
	require.Len(t, requests, 1)
	resolveAll(session, requests, catalog)

	assert.Equal(t, "ch-1", session.ChapterID())
	assert.Equal(t, 0, session.Page())
	assert.Equal(t, 3, session.TotalPages())
}

func TestSession_BoundariesAreNoOps(t *testing.T) {
	catalog := threeChapters()

	t.Run("last page of last chapter", func(t *testing.T) {
		session := openSession(t, catalog, "ch-3")
		session.AdvancePage()
		before := session.View()
		require.False(t, before.CanGoNext)

		assert.Nil(t, session.AdvancePage())
		assert.Equal(t, before, session.View())
	})

	t.Run("first page of first chapter", func(t *testing.T) {
		session := openSession(t, catalog, "ch-1")
		before := session.View()
		require.False(t, before.CanGoPrev)

		assert.Nil(t, session.RetreatPage())
		assert.Equal(t, before, session.View())
	})
}

func TestSession_ProgressPercent(t *testing.T) {
	session := openSession(t, []*chapter.Chapter{newChapter("ch-1", 1, 4)}, "ch-1")
	session.AdvancePage()

	assert.Equal(t, 1, session.Page())
	assert.Equal(t, 50.0, session.ProgressPercent())
}

func TestSession_ZeroPageChapter(t *testing.T) {
	catalog := []*chapter.Chapter{
		newChapter("ch-1", 1, 1),
		newChapter("ch-2", 2, 0),
		newChapter("ch-3", 3, 1),
	}
	session := openSession(t, catalog, "ch-2")

	assert.Equal(t, 0, session.TotalPages())
	assert.Equal(t, 0.0, session.ProgressPercent())
	assert.Empty(t, session.PageURL())
	assert.True(t, session.CanGoPrev())
	assert.True(t, session.CanGoNext())

	resolveAll(session, session.AdvancePage(), catalog)
	assert.Equal(t, "ch-3", session.ChapterID())
}

func TestSession_ZoomIsClamped(t *testing.T) {
	session := reader.NewSession()
	for range 20 {
		session.SetZoom(reader.ZoomStep)
	}
	assert.Equal(t, reader.MaxZoom, session.Zoom())

	for range 20 {
		session.SetZoom(-reader.ZoomStep)
	}
	assert.Equal(t, reader.MinZoom, session.Zoom())

	session.SetZoom(1000)
	assert.Equal(t, reader.MaxZoom, session.Zoom())
}

func TestSession_Toggles(t *testing.T) {
	session := reader.NewSession()

	session.ToggleControls()
	assert.False(t, session.ControlsVisible())
	session.Apply(reader.ActionToggleControls)
	assert.True(t, session.ControlsVisible())

	assert.True(t, session.ToggleFullscreen())
	assert.False(t, session.ToggleFullscreen())

	session.Apply(reader.ActionZoomIn)
	assert.Equal(t, reader.DefaultZoom+reader.ZoomStep, session.Zoom())
	session.Apply(reader.ActionZoomOut)
	assert.Equal(t, reader.DefaultZoom, session.Zoom())
}

func TestSession_DiscardsStaleChapterResults(t *testing.T) {
	catalog := threeChapters()
	session := openSession(t, catalog, "ch-1")

	session.AdvancePage()
	slow := session.AdvancePage()
	require.Len(t, slow, 1)

	fast := session.SelectChapter("ch-3")
	require.Len(t, fast, 1)
	resolveAll(session, fast, catalog)
	require.Equal(t, "ch-3", session.Chapter().ID)

	assert.False(t, session.Resolve(resultFor(slow[0], catalog)))
	assert.Equal(t, "ch-3", session.ChapterID())
	assert.Equal(t, "ch-3", session.Chapter().ID)
}

func TestSession_DiscardsResultsForAnotherSeries(t *testing.T) {
	session := reader.NewSession()
	stale := session.Open("series-9", "ch-1", 0)
	resolveAll(session, session.Open(seriesID, "ch-1", 0), threeChapters())

	for _, request := range stale {
		assert.False(t, session.Resolve(reader.Result{Request: request, Err: apperr.NotFound("Series")}))
	}
	assert.Equal(t, reader.StatusReady, session.Status())
}

func TestSession_NotFound(t *testing.T) {
	catalog := threeChapters()

	t.Run("unknown chapter", func(t *testing.T) {
		session := reader.NewSession()
		resolveAll(session, session.Open(seriesID, "ch-404", 0), catalog)

		assert.Equal(t, reader.StatusNotFound, session.Status())
		assert.Nil(t, session.AdvancePage())
		assert.Nil(t, session.RetreatPage())
		assert.False(t, session.CanGoNext())
		assert.False(t, session.CanGoPrev())
		_, ok := session.Position()
		assert.False(t, ok)
	})

	t.Run("unknown series", func(t *testing.T) {
		session := reader.NewSession()
		requests := session.Open("series-404", "ch-1", 0)
		for _, request := range requests {
			result := resultFor(request, catalog)
			session.Resolve(result)
		}

		assert.Equal(t, reader.StatusNotFound, session.Status())
		assert.Nil(t, session.AdvancePage())
	})
}

func TestSession_ChapterOutsideSeries(t *testing.T) {
	catalog := threeChapters()
	stray := newChapter("other-1", 1, 2)

	session := reader.NewSession()
	for _, request := range session.Open(seriesID, stray.ID, 0) {
		result := resultFor(request, catalog)
		if request.Kind == reader.FetchChapter {
			result = reader.Result{Request: request, Chapter: stray}
		}
		session.Resolve(result)
	}

	require.Equal(t, reader.StatusReady, session.Status())
	assert.Equal(t, -1, session.ChapterIndex())

	session.AdvancePage()
	assert.Equal(t, 1, session.Page())
	assert.Nil(t, session.AdvancePage())
	assert.False(t, session.CanGoNext())

	session.RetreatPage()
	assert.Nil(t, session.RetreatPage())
	assert.Equal(t, stray.ID, session.ChapterID())
}

func TestSession_FetchFailure(t *testing.T) {
	session := reader.NewSession()
	boom := errors.New("connection refused")
	for _, request := range session.Open(seriesID, "ch-1", 0) {
		session.Resolve(reader.Result{Request: request, Err: boom})
	}

	assert.Equal(t, reader.StatusFailed, session.Status())
	assert.ErrorIs(t, session.Err(), boom)
	assert.Nil(t, session.AdvancePage())
}

func TestSession_RecoversAfterChapterFailure(t *testing.T) {
	catalog := threeChapters()
	boom := errors.New("connection reset")

	session := reader.NewSession()
	for _, request := range session.Open(seriesID, "ch-1", 0) {
		if request.Kind == reader.FetchChapter {
			session.Resolve(reader.Result{Request: request, Err: boom})
			continue
		}
		session.Resolve(resultFor(request, catalog))
	}
	require.Equal(t, reader.StatusFailed, session.Status())
	assert.False(t, session.CanGoNext())

	resolveAll(session, session.SelectChapter("ch-2"), catalog)

	assert.Equal(t, reader.StatusReady, session.Status())
	assert.NoError(t, session.Err())
	assert.Equal(t, 3, session.TotalPages())
	assert.True(t, session.CanGoNext())
	assert.True(t, session.CanGoPrev())

	session.AdvancePage()
	assert.Equal(t, 1, session.Page())
}

func TestSession_ListOrMetadataFailureKeepsReading(t *testing.T) {
	catalog := threeChapters()
	boom := errors.New("connection reset")

	for _, failing := range []reader.Kind{reader.FetchChapters, reader.FetchSeries} {
		t.Run(failing.String(), func(t *testing.T) {
			session := reader.NewSession()
			for _, request := range session.Open(seriesID, "ch-2", 0) {
				if request.Kind == failing {
					session.Resolve(reader.Result{Request: request, Err: boom})
					continue
				}
				session.Resolve(resultFor(request, catalog))
			}

			require.Equal(t, reader.StatusReady, session.Status())
			assert.NoError(t, session.Err())

			session.AdvancePage()
			assert.Equal(t, 1, session.Page())

			if failing == reader.FetchChapters {
				assert.Equal(t, -1, session.ChapterIndex())
				assert.Empty(t, session.View().PrevChapterID)
				assert.Nil(t, session.JumpChapter(1))
			} else {
				assert.Nil(t, session.Series())
				assert.Empty(t, session.View().SeriesTitle)
			}
		})
	}
}

func TestSession_ResumePage(t *testing.T) {
	catalog := threeChapters()

	session := reader.NewSession()
	resolveAll(session, session.Open(seriesID, "ch-2", 2), catalog)
	assert.Equal(t, 2, session.Page())

	position, ok := session.Position()
	require.True(t, ok)
	assert.Equal(t, reader.Position{SeriesID: seriesID, ChapterID: "ch-2", Page: 2}, position)

	clamped := reader.NewSession()
	resolveAll(clamped, clamped.Open(seriesID, "ch-1", 99), catalog)
	assert.Equal(t, 1, clamped.Page())

	// Resume applies to the opening chapter only.
	resolveAll(clamped, clamped.AdvancePage(), catalog)
	assert.Equal(t, 0, clamped.Page())
}

func TestSession_ViewNeighbors(t *testing.T) {
	session := openSession(t, threeChapters(), "ch-2")
	view := session.View()

	assert.Equal(t, "ch-1", view.PrevChapterID)
	assert.Equal(t, "ch-3", view.NextChapterID)
	assert.Equal(t, 1, view.ChapterIndex)
	assert.Equal(t, 3, view.ChapterCount)
	assert.Equal(t, 2, view.ChapterNumber)
}

func TestSession_JumpChapter(t *testing.T) {
	catalog := threeChapters()
	session := openSession(t, catalog, "ch-3")

	assert.Nil(t, session.JumpChapter(1))
	assert.Equal(t, "ch-3", session.ChapterID())

	requests := session.JumpChapter(-2)
	require.Len(t, requests, 1)
	assert.Equal(t, "ch-1", requests[0].ChapterID)
	resolveAll(session, requests, catalog)
	assert.Equal(t, reader.StatusReady, session.Status())
	assert.Equal(t, 0, session.Page())
	assert.Nil(t, session.JumpChapter(-1))
}
