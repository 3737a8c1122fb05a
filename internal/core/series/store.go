// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package series

import "context"

// # Series Data Access

// Repository defines the data access contract for the series catalog.
//
// Implementations return series in insertion order and hand out copies;
// absence is reported as an [apperr.AppError] with code NOT_FOUND.
type Repository interface {

	/*
		List returns every series in insertion order.

		Returns:
		  - []*Series: The full catalog (never nil)
		  - error: Storage failures
	*/
	List(context context.Context) ([]*Series, error)

	/*
		FindByID returns the series with the given ID.

		Returns:
		  - *Series: A copy of the stored entity
		  - error: NOT_FOUND if missing
	*/
	FindByID(context context.Context, id string) (*Series, error)

	/*
		Create persists a new series. The ID must already be assigned.
	*/
	Create(context context.Context, series *Series) error

	/*
		Update replaces every mutable field of an existing series.

		Returns:
		  - error: NOT_FOUND if the ID is unknown
	*/
	Update(context context.Context, series *Series) error

	/*
		Delete removes the series. Chapters, favorites and progress rows that
		reference it are left in place.

		Returns:
		  - error: NOT_FOUND if the ID is unknown
	*/
	Delete(context context.Context, id string) error
}
