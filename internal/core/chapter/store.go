// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package chapter

import "context"

// # Chapter Data Access

// Repository defines the data access contract for chapters.
type Repository interface {

	/*
		ListBySeries returns the chapters of a series in insertion order.
		An unknown series yields an empty slice, not an error.
	*/
	ListBySeries(context context.Context, seriesID string) ([]*Chapter, error)

	/*
		FindByID returns the chapter with the given ID.

		Returns:
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*Chapter, error)

	// Create persists a new chapter. The ID must already be assigned.
	Create(context context.Context, chapter *Chapter) error

	// Update replaces the mutable fields. NOT_FOUND if the ID is unknown.
	Update(context context.Context, chapter *Chapter) error

	// Delete removes the chapter. NOT_FOUND if the ID is unknown.
	Delete(context context.Context, id string) error
}
