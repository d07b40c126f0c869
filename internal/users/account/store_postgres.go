// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/database/schema"
	"github.com/taibuivan/artcine/internal/platform/dberr"
	"github.com/taibuivan/artcine/internal/users/identity"
	"github.com/taibuivan/artcine/pkg/uuidv7"
)

// PostgresStore implements [Store] on the users table.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates an identity store on pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

var (
	userColumns   = strings.Join(schema.UserAccount.Columns(), ", ")
	userReturning = " RETURNING " + userColumns
)

func scanIdentity(row pgx.Row) (*identity.Identity, error) {
	var user identity.Identity
	err := row.Scan(
		&user.ID, &user.Username, &user.PasswordHash, &user.Email, &user.Birthday,
		&user.FavoriteMovies, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}
	return &user, nil
}

func (store *PostgresStore) List(ctx context.Context) ([]*identity.Identity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Username)

	rows, err := store.pool.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	defer rows.Close()

	users := make([]*identity.Identity, 0)
	for rows.Next() {
		user, err := scanIdentity(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "User")
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return users, nil
}

func (store *PostgresStore) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		userColumns, schema.UserAccount.Table, schema.UserAccount.Username)

	user, err := scanIdentity(store.pool.QueryRow(ctx, query, username))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

func (store *PostgresStore) Create(ctx context.Context, user *identity.Identity) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, '{}')
		RETURNING %s, %s`,
		schema.UserAccount.Table,
		schema.UserAccount.ID, schema.UserAccount.Username, schema.UserAccount.Password,
		schema.UserAccount.Email, schema.UserAccount.Birthday, schema.UserAccount.FavoriteMovies,
		schema.UserAccount.CreatedAt, schema.UserAccount.UpdatedAt,
	)

	id := uuidv7.New()
	err := store.pool.QueryRow(ctx, query, id, user.Username, user.PasswordHash, user.Email, user.Birthday).
		Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return dberr.Wrap(err, "User")
	}

	user.ID = id
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}
	return nil
}

func (store *PostgresStore) Update(ctx context.Context, username string, changes Changes) (*identity.Identity, error) {
	assignments := []string{schema.UserAccount.UpdatedAt + " = NOW()"}
	arguments := []any{username}

	assign := func(column string, value any) {
		arguments = append(arguments, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(arguments)))
	}

	if changes.Username != nil {
		assign(schema.UserAccount.Username, *changes.Username)
	}
	if changes.PasswordHash != nil {
		assign(schema.UserAccount.Password, *changes.PasswordHash)
	}
	if changes.Email != nil {
		assign(schema.UserAccount.Email, *changes.Email)
	}
	if changes.Birthday != nil {
		assign(schema.UserAccount.Birthday, *changes.Birthday)
	}

	query := fmt.Sprintf(`UPDATE %s SET %s WHERE %s = $1`,
		schema.UserAccount.Table, strings.Join(assignments, ", "), schema.UserAccount.Username) + userReturning

	user, err := scanIdentity(store.pool.QueryRow(ctx, query, arguments...))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

func (store *PostgresStore) Delete(ctx context.Context, username string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.UserAccount.Table, schema.UserAccount.Username)

	tag, err := store.pool.Exec(ctx, query, username)
	if err != nil {
		return dberr.Wrap(err, "User")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("User")
	}
	return nil
}

// AddFavorite appends movieID unless it is already present, in one statement.
func (store *PostgresStore) AddFavorite(ctx context.Context, username, movieID string) (*identity.Identity, error) {
	column := schema.UserAccount.FavoriteMovies
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = CASE WHEN $2::text = ANY(%s) THEN %s ELSE array_append(%s, $2::text) END,
		    %s = NOW()
		WHERE %s = $1`,
		schema.UserAccount.Table,
		column, column, column, column,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.Username,
	) + userReturning

	return store.updateFavorites(ctx, query, username, movieID)
}

// RemoveFavorite drops every occurrence of movieID, in one statement.
func (store *PostgresStore) RemoveFavorite(ctx context.Context, username, movieID string) (*identity.Identity, error) {
	column := schema.UserAccount.FavoriteMovies
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = array_remove(%s, $2::text),
		    %s = NOW()
		WHERE %s = $1`,
		schema.UserAccount.Table,
		column, column,
		schema.UserAccount.UpdatedAt,
		schema.UserAccount.Username,
	) + userReturning

	return store.updateFavorites(ctx, query, username, movieID)
}

func (store *PostgresStore) updateFavorites(ctx context.Context, query, username, movieID string) (*identity.Identity, error) {
	user, err := scanIdentity(store.pool.QueryRow(ctx, query, username, movieID))
	if err != nil {
		return nil, dberr.Wrap(err, "User")
	}
	return user, nil
}

