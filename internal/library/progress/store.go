// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package progress

import "context"

// Repository defines the data access contract for reading progress.
type Repository interface {

	// ListByUser returns the user's progress rows in insertion order (never nil).
	ListByUser(context context.Context, userID string) ([]*ReadingProgress, error)

	// Find returns the row for the pair, or NOT_FOUND.
	Find(context context.Context, userID, seriesID string) (*ReadingProgress, error)

	/*
		Upsert stores progress keyed on (UserID, SeriesID).

		Description: when a row for the pair exists, its ChapterID, CurrentPage
		and LastRead are replaced in place and its ID is kept; otherwise the
		given record (with its ID) is inserted.

		Returns:
		  - *ReadingProgress: The stored row after the write
	*/
	Upsert(context context.Context, progress *ReadingProgress) (*ReadingProgress, error)
}
