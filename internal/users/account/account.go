// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package account handles registration, profile management and favorite movies.

# Architecture

  - Entities: [identity.Identity] (shared with the auth package).
  - Ownership: every mutating operation takes the resolved caller and rejects
    it with PERMISSION_DENIED unless it owns the target username. The check
    runs before any store access.
  - Storage: [Store] is implemented for MongoDB and PostgreSQL.
*/
package account

import (
	"context"
	"time"

	"github.com/taibuivan/artcine/internal/users/identity"
)

// # Validation Rules

const (
	UsernameMinLength = 5
	PasswordMinLength = 8
	PasswordMaxLength = 20

	// EmailMaxLength matches the width of the email column.
	EmailMaxLength = 320
)

// FieldMovieID is the route parameter naming a favorite movie.
const FieldMovieID = "movieID"

// # Store Contracts

// Changes is a partial update of an identity. Nil fields are left untouched.
type Changes struct {
	Username     *string
	PasswordHash *string
	Email        *string
	Birthday     *time.Time
}

// IsEmpty reports whether no field is set.
func (c Changes) IsEmpty() bool {
	return c.Username == nil && c.PasswordHash == nil && c.Email == nil && c.Birthday == nil
}

// Store defines the persistence contract for identities.
//
// Missing identities are reported as NOT_FOUND and a taken username as
// CONFLICT, both as [apperr.AppError].
type Store interface {
	List(ctx context.Context) ([]*identity.Identity, error)
	FindByUsername(ctx context.Context, username string) (*identity.Identity, error)

	// Create persists user and fills in its ID and timestamps.
	Create(ctx context.Context, user *identity.Identity) error

	// Update applies changes to the identity named username and returns the
	// stored result.
	Update(ctx context.Context, username string, changes Changes) (*identity.Identity, error)
	Delete(ctx context.Context, username string) error

	// AddFavorite and RemoveFavorite are single atomic updates with set
	// semantics: adding twice keeps one entry, removing an absent ID is a no-op.
	AddFavorite(ctx context.Context, username, movieID string) (*identity.Identity, error)
	RemoveFavorite(ctx context.Context, username, movieID string) (*identity.Identity, error)
}

// MovieLookup checks that a movie exists before it is favorited.
type MovieLookup interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// PasswordHasher produces the stored digest of a new password.
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
}
