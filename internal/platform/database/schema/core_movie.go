// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreMovieTable represents the 'movies' table
//
// Genre and Director are JSONB documents so a movie row carries the same
// shape as its MongoDB counterpart.
type CoreMovieTable struct {
	Table       string
	ID          string
	Title       string
	Description string
	Genre       string
	Director    string
	ImagePath   string
	Featured    string
}

// CoreMovie is the schema definition for movies
var CoreMovie = CoreMovieTable{
	Table:       "movies",
	ID:          "id",
	Title:       "title",
	Description: "description",
	Genre:       "genre",
	Director:    "director",
	ImagePath:   "imagepath",
	Featured:    "featured",
}

func (t CoreMovieTable) Columns() []string {
	return []string{t.ID, t.Title, t.Description, t.Genre, t.Director, t.ImagePath, t.Featured}
}
