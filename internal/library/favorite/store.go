// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package favorite

import "context"

// Repository defines the data access contract for favorites.
type Repository interface {

	// ListByUser returns the user's favorites in insertion order (never nil).
	ListByUser(context context.Context, userID string) ([]*Favorite, error)

	// Find returns the favorite for the pair, or NOT_FOUND.
	Find(context context.Context, userID, seriesID string) (*Favorite, error)

	// Create stores a new favorite. CONFLICT if the pair already exists.
	Create(context context.Context, favorite *Favorite) error

	// Delete removes the favorite for the pair, or returns NOT_FOUND.
	Delete(context context.Context, userID, seriesID string) error
}
