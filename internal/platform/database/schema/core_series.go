// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreSeriesTable represents the 'core.series' table
type CoreSeriesTable struct {
	Table       string
	Seq         string
	ID          string
	Title       string
	Description string
	CoverImage  string
	Author      string
	Artist      string
	Genres      string
	Status      string
	Rating      string
	Views       string
	IsFeatured  string
	IsTrending  string
}

// CoreSeries is the schema definition for core.series
var CoreSeries = CoreSeriesTable{
	Table:       "core.series",
	Seq:         "seq",
	ID:          "id",
	Title:       "title",
	Description: "description",
	CoverImage:  "coverimage",
	Author:      "author",
	Artist:      "artist",
	Genres:      "genres",
	Status:      "status",
	Rating:      "rating",
	Views:       "views",
	IsFeatured:  "isfeatured",
	IsTrending:  "istrending",
}

// Columns lists the selectable columns in scan order.
func (t CoreSeriesTable) Columns() []string {
	return []string{
		t.ID, t.Title, t.Description, t.CoverImage, t.Author, t.Artist,
		t.Genres, t.Status, t.Rating, t.Views, t.IsFeatured, t.IsTrending,
	}
}
