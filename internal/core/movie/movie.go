// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package movie serves the read-only film catalogue.

Movies are seeded out of band; the API only lists them and looks them up by
title, genre name or director name. Every route requires an authenticated
caller.
*/
package movie

// Movie is a catalogue entry with its embedded genre and director.
type Movie struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Genre       Genre    `json:"genre"`
	Director    Director `json:"director"`
	ImagePath   string   `json:"image_path"`
	Featured    bool     `json:"featured"`
}

// Genre describes a film genre. It is embedded in each movie rather than
// stored on its own.
type Genre struct {
	Name        string `json:"name"        bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Director describes a film director. DeathYear is nil for living directors.
type Director struct {
	Name      string `json:"name"                 bson:"name"`
	Bio       string `json:"bio"                  bson:"bio"`
	BirthYear *int   `json:"birth_year,omitempty" bson:"birth,omitempty"`
	DeathYear *int   `json:"death_year,omitempty" bson:"death,omitempty"`
}

// # Field Identifiers

const (
	FieldTitle = "title"
	FieldName  = "name"
)
