// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// LibraryFavoriteTable represents the 'library.favorite' table
type LibraryFavoriteTable struct {
	Table    string
	Seq      string
	ID       string
	UserID   string
	SeriesID string
}

// LibraryFavorite is the schema definition for library.favorite
var LibraryFavorite = LibraryFavoriteTable{
	Table:    "library.favorite",
	Seq:      "seq",
	ID:       "id",
	UserID:   "userid",
	SeriesID: "seriesid",
}
