// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreChapterTable represents the 'core.chapter' table
type CoreChapterTable struct {
	Table         string
	Seq           string
	ID            string
	SeriesID      string
	ChapterNumber string
	Title         string
	Pages         string
	ReleaseDate   string
}

// CoreChapter is the schema definition for core.chapter
var CoreChapter = CoreChapterTable{
	Table:         "core.chapter",
	Seq:           "seq",
	ID:            "id",
	SeriesID:      "seriesid",
	ChapterNumber: "chapternumber",
	Title:         "title",
	Pages:         "pages",
	ReleaseDate:   "releasedate",
}

// Columns lists the selectable columns in scan order.
func (t CoreChapterTable) Columns() []string {
	return []string{t.ID, t.SeriesID, t.ChapterNumber, t.Title, t.Pages, t.ReleaseDate}
}
