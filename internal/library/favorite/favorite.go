// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package favorite manages user-to-series bookmarks.
package favorite

// Favorite bookmarks a series for a user. At most one exists per
// (UserID, SeriesID) pair.
type Favorite struct {
	ID       string `json:"id"`
	UserID   string `json:"userId"`
	SeriesID string `json:"seriesId"`
}

// AddInput is the body accepted when adding a favorite.
type AddInput struct {
	UserID   string `json:"userId"`
	SeriesID string `json:"seriesId"`
}

const (
	FieldUserID   = "userId"
	FieldSeriesID = "seriesId"
)
