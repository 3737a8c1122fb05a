// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/noctoon/internal/core/series"
	"github.com/taibuivan/noctoon/pkg/pointer"
)

func catalog() []*series.Series {
	return []*series.Series{
		{ID: "s1", Title: "Solo Leveling", Author: pointer.To("Chugong"), Genres: []string{"Action", "Fantasy", "Adventure"}, Status: series.StatusCompleted, IsFeatured: true, IsTrending: true},
		{ID: "s2", Title: "Tower of God", Author: pointer.To("SIU"), Genres: []string{"Action", "Fantasy", "Mystery"}, Status: series.StatusOngoing, IsFeatured: true},
		{ID: "s3", Title: "True Beauty", Author: pointer.To("Yaongyi"), Genres: []string{"Romance", "Comedy", "Drama"}, Status: series.StatusCompleted},
		{ID: "s4", Title: "Eleceed", Author: pointer.To("Son Jeho"), Genres: []string{"Action", "Comedy"}, Status: series.StatusHiatus, IsTrending: true},
		{ID: "s5", Title: "Untitled", Genres: []string{}, Status: series.StatusOngoing},
	}
}

func ids(all []*series.Series) []string {
	out := make([]string, 0, len(all))
	for _, s := range all {
		out = append(out, s.ID)
	}
	return out
}

/*
TestApply covers each criteria group and their combination.
*/
func TestApply(t *testing.T) {
	tests := []struct {
		name   string
		filter series.Filter
		want   []string
	}{
		{"zero filter keeps order", series.Filter{}, []string{"s1", "s2", "s3", "s4", "s5"}},
		{"query matches title case-insensitively", series.Filter{Query: "solo", Status: series.StatusAll}, []string{"s1"}},
		{"query matches mixed case", series.Filter{Query: "sOLO lEVELING"}, []string{"s1"}},
		{"query matches author", series.Filter{Query: "jeho"}, []string{"s4"}},
		{"query tolerates missing author", series.Filter{Query: "titled"}, []string{"s5"}},
		{"genre excludes non-matching set", series.Filter{Genres: []string{"Romance"}}, []string{"s3"}},
		{"genres use any-match", series.Filter{Genres: []string{"Mystery", "Drama"}}, []string{"s2", "s3"}},
		{"status narrows", series.Filter{Status: series.StatusCompleted}, []string{"s1", "s3"}},
		{"all groups combine with and", series.Filter{Query: "e", Genres: []string{"Comedy"}, Status: series.StatusCompleted}, []string{"s3"}},
		{"featured flag", series.Filter{Featured: true}, []string{"s1", "s2"}},
		{"trending flag", series.Filter{Trending: true}, []string{"s1", "s4"}},
		{"no match yields empty slice", series.Filter{Query: "berserk"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := series.Apply(catalog(), tt.filter)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_UnicodeFolding(t *testing.T) {
	all := []*series.Series{{ID: "x", Title: "STRASSE der Helden"}}
	assert.Len(t, series.Apply(all, series.Filter{Query: "straße"}), 1)
}

func TestRelated(t *testing.T) {
	all := catalog()

	related := series.Related(all, all[0], series.RelatedLimit)
	assert.Equal(t, []string{"s2", "s4"}, ids(related))

	assert.Len(t, series.Related(all, all[0], 1), 1)
	assert.Empty(t, series.Related(all, all[4], series.RelatedLimit))
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, series.Stats{Total: 5, Featured: 2, Trending: 2}, series.Summarize(catalog()))
}

func TestFilter_IsZero(t *testing.T) {
	assert.True(t, series.Filter{Status: series.StatusAll, Query: "  "}.IsZero())
	assert.False(t, series.Filter{Genres: []string{"Action"}}.IsZero())
}
