// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/artcine/internal/platform/database/schema"
	"github.com/taibuivan/artcine/internal/platform/dberr"
	"github.com/taibuivan/artcine/pkg/uuidv7"
)

// PostgresStore implements [Store] on the movies table.
type PostgresStore struct {
	db *pgxpool.Pool
}

// NewPostgresStore creates a movie store on pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: pool}
}

var movieColumns = strings.Join(schema.CoreMovie.Columns(), ", ")

func scanMovie(row pgx.Row) (*Movie, error) {
	var movie Movie
	err := row.Scan(&movie.ID, &movie.Title, &movie.Description, &movie.Genre, &movie.Director, &movie.ImagePath, &movie.Featured)
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

func (store *PostgresStore) List(ctx context.Context) ([]*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		movieColumns, schema.CoreMovie.Table, schema.CoreMovie.Title)

	rows, err := store.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "Movie")
	}
	defer rows.Close()

	movies := make([]*Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "Movie")
		}
		movies = append(movies, movie)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "Movie")
	}
	return movies, nil
}

func (store *PostgresStore) FindByTitle(ctx context.Context, title string) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 LIMIT 1`,
		movieColumns, schema.CoreMovie.Table, schema.CoreMovie.Title)

	movie, err := scanMovie(store.db.QueryRow(ctx, query, title))
	if err != nil {
		return nil, dberr.Wrap(err, "Movie")
	}
	return movie, nil
}

func (store *PostgresStore) FindGenre(ctx context.Context, name string) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ->> 'name' = $1 LIMIT 1`,
		schema.CoreMovie.Genre, schema.CoreMovie.Table, schema.CoreMovie.Genre)

	var genre Genre
	if err := store.db.QueryRow(ctx, query, name).Scan(&genre); err != nil {
		return nil, dberr.Wrap(err, "Genre")
	}
	return &genre, nil
}

func (store *PostgresStore) FindDirector(ctx context.Context, name string) (*Director, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s ->> 'name' = $1 LIMIT 1`,
		schema.CoreMovie.Director, schema.CoreMovie.Table, schema.CoreMovie.Director)

	var director Director
	if err := store.db.QueryRow(ctx, query, name).Scan(&director); err != nil {
		return nil, dberr.Wrap(err, "Director")
	}
	return &director, nil
}

func (store *PostgresStore) Exists(ctx context.Context, id string) (bool, error) {
	if !uuidv7.IsValid(id) {
		return false, nil
	}

	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.CoreMovie.Table, schema.CoreMovie.ID)

	var exists bool
	if err := store.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "Movie")
	}
	return exists, nil
}
