// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import "context"

// Store defines the persistence operations for the movie catalogue.
//
// Lookups that match nothing return a NOT_FOUND [apperr.AppError]; store
// failures return INTERNAL_ERROR.
type Store interface {
	List(ctx context.Context) ([]*Movie, error)
	FindByTitle(ctx context.Context, title string) (*Movie, error)
	FindGenre(ctx context.Context, name string) (*Genre, error)
	FindDirector(ctx context.Context, name string) (*Director, error)

	// Exists reports whether a movie with the given ID is stored. A value
	// that is not a valid ID for the backend yields false.
	Exists(ctx context.Context, id string) (bool, error)
}
