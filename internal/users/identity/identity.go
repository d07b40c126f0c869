// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package identity defines the registered user entity shared by the account
and authentication domains.

# Architecture

The entity lives in its own leaf package so the request context, the
account service and the authentication guard can all refer to it without
importing each other.
*/
package identity

import (
	"slices"
	"time"
)

// Identity is a registered user record.
//
// # Rules
//   - Username is unique and case-sensitive.
//   - PasswordHash is a bcrypt digest and is never serialized.
//   - FavoriteMovies holds movie IDs with no duplicates.
type Identity struct {
	ID             string     `json:"id"`
	Username       string     `json:"username"`
	PasswordHash   string     `json:"-"`
	Email          string     `json:"email"`
	Birthday       *time.Time `json:"birthday,omitempty"`
	FavoriteMovies []string   `json:"favorite_movies"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// HasFavorite reports whether movieID is in the favorites set.
func (i *Identity) HasFavorite(movieID string) bool {
	return slices.Contains(i.FavoriteMovies, movieID)
}

// Owns reports whether the identity is the owner of the given username.
func (i *Identity) Owns(username string) bool {
	return i != nil && i.Username == username
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldEmail    = "email"
	FieldBirthday = "birthday"
)
