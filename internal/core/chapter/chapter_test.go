// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter_test

import (
	"context"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/core/chapter"
	"github.com/taibuivan/noctoon/internal/platform/apperr"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

type knownSeries map[string]bool

func (known knownSeries) Exists(_ context.Context, id string) (bool, error) {
	return known[id], nil
}

func newService() *chapter.Service {
	return chapter.NewService(
		chapter.NewMemoryRepository(),
		knownSeries{"series-1": true, "series-2": true},
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
}

func TestSortByNumber_StableAndNonDecreasing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		chapters := make([]*chapter.Chapter, 20)
		for i := range chapters {
			chapters[i] = &chapter.Chapter{ID: string(rune('a' + i)), ChapterNumber: rng.Intn(5)}
		}
		insertion := make(map[string]int, len(chapters))
		for i, c := range chapters {
			insertion[c.ID] = i
		}

		chapter.SortByNumber(chapters)

		assert.True(t, sort.SliceIsSorted(chapters, func(i, j int) bool {
			return chapters[i].ChapterNumber < chapters[j].ChapterNumber
		}))
		for i := 1; i < len(chapters); i++ {
			if chapters[i-1].ChapterNumber == chapters[i].ChapterNumber {
				assert.Less(t, insertion[chapters[i-1].ID], insertion[chapters[i].ID])
			}
		}
	}
}

func TestService_ListChapters_Ordered(t *testing.T) {
	service := newService()
	ctx := context.Background()

	for _, number := range []int{3, 1, 2, 1} {
		_, err := service.CreateChapter(ctx, chapter.CreateInput{
			SeriesID:      "series-1",
			ChapterNumber: pointer.To(number),
			Title:         pointer.To("Chapter"),
		})
		require.NoError(t, err)
	}
	_, err := service.CreateChapter(ctx, chapter.CreateInput{SeriesID: "series-2", ChapterNumber: pointer.To(0)})
	require.NoError(t, err)

	chapters, err := service.ListChapters(ctx, "series-1")
	require.NoError(t, err)
	require.Len(t, chapters, 4)

	numbers := []int{chapters[0].ChapterNumber, chapters[1].ChapterNumber, chapters[2].ChapterNumber, chapters[3].ChapterNumber}
	assert.Equal(t, []int{1, 1, 2, 3}, numbers)

	empty, err := service.ListChapters(ctx, "unknown")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestService_CreateChapter_Validation(t *testing.T) {
	service := newService()
	ctx := context.Background()

	tests := []struct {
		name  string
		input chapter.CreateInput
	}{
		{"missing series", chapter.CreateInput{ChapterNumber: pointer.To(1)}},
		{"missing number", chapter.CreateInput{SeriesID: "series-1"}},
		{"unknown series", chapter.CreateInput{SeriesID: "series-9", ChapterNumber: pointer.To(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateChapter(ctx, tt.input)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
		})
	}
}

func TestService_UpdateAndDelete(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.CreateChapter(ctx, chapter.CreateInput{
		SeriesID:      "series-1",
		ChapterNumber: pointer.To(1),
		Pages:         []string{"p1.jpg", "p2.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, created.TotalPages())

	updated, err := service.UpdateChapter(ctx, created.ID, chapter.Patch{
		Pages: &[]string{"p1.jpg", "p2.jpg", "p3.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.TotalPages())
	assert.Equal(t, 1, updated.ChapterNumber)

	_, err = service.UpdateChapter(ctx, created.ID, chapter.Patch{SeriesID: pointer.To("series-9")})
	assert.Equal(t, apperr.CodeValidation, apperr.As(err).Code)

	moved, err := service.UpdateChapter(ctx, created.ID, chapter.Patch{SeriesID: pointer.To("series-2")})
	require.NoError(t, err)
	assert.Equal(t, "series-2", moved.SeriesID)

	require.NoError(t, service.DeleteChapter(ctx, created.ID))
	_, err = service.GetChapter(ctx, created.ID)
	assert.True(t, apperr.IsNotFound(err))
	assert.True(t, apperr.IsNotFound(service.DeleteChapter(ctx, created.ID)))
}
