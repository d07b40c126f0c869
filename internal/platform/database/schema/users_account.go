// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// UserAccountTable represents the 'users' table
type UserAccountTable struct {
	Table          string
	ID             string
	Username       string
	Password       string
	Email          string
	Birthday       string
	FavoriteMovies string
	CreatedAt      string
	UpdatedAt      string
}

// UserAccount is the schema definition for users
var UserAccount = UserAccountTable{
	Table:          "users",
	ID:             "id",
	Username:       "username",
	Password:       "passwordhash",
	Email:          "email",
	Birthday:       "birthday",
	FavoriteMovies: "favoritemovies",
	CreatedAt:      "createdat",
	UpdatedAt:      "updatedat",
}

// Columns returns all standard column names
func (t UserAccountTable) Columns() []string {
	return []string{
		t.ID, t.Username, t.Password, t.Email, t.Birthday,
		t.FavoriteMovies, t.CreatedAt, t.UpdatedAt,
	}
}
