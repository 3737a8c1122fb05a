// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LibraryReadingProgressTable represents the 'library.readingprogress' table
type LibraryReadingProgressTable struct {
	Table       string
	Seq         string
	ID          string
	UserID      string
	SeriesID    string
	ChapterID   string
	CurrentPage string
	LastRead    string
}

// LibraryReadingProgress is the schema definition for library.readingprogress
var LibraryReadingProgress = LibraryReadingProgressTable{
	Table:       "library.readingprogress",
	Seq:         "seq",
	ID:          "id",
	UserID:      "userid",
	SeriesID:    "seriesid",
	ChapterID:   "chapterid",
	CurrentPage: "currentpage",
	LastRead:    "lastread",
}
