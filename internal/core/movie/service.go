// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"context"
	"log/slog"

	"github.com/taibuivan/artcine/internal/platform/validate"
)

// Service exposes the catalogue queries.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new movie [Service].
func NewService(store Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// List returns every movie in the catalogue.
func (service *Service) List(ctx context.Context) ([]*Movie, error) {
	return service.store.List(ctx)
}

// Get returns the movie with the exact title.
func (service *Service) Get(ctx context.Context, title string) (*Movie, error) {
	if err := new(validate.Validator).Required(FieldTitle, title).Err(); err != nil {
		return nil, err
	}
	return service.store.FindByTitle(ctx, title)
}

// Genre returns the genre with the exact name, taken from the first movie
// that carries it.
func (service *Service) Genre(ctx context.Context, name string) (*Genre, error) {
	if err := new(validate.Validator).Required(FieldName, name).Err(); err != nil {
		return nil, err
	}
	return service.store.FindGenre(ctx, name)
}

// Director returns the director with the exact name, taken from the first
// movie that carries it.
func (service *Service) Director(ctx context.Context, name string) (*Director, error) {
	if err := new(validate.Validator).Required(FieldName, name).Err(); err != nil {
		return nil, err
	}
	return service.store.FindDirector(ctx, name)
}

// Exists reports whether a movie with the given ID exists. It lets the
// account domain check favorites without depending on the store.
func (service *Service) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := service.store.Exists(ctx, id)
	if err != nil {
		service.logger.WarnContext(ctx, "movie_exists_check_failed", slog.String("movie_id", id), slog.Any("error", err))
		return false, err
	}
	return exists, nil
}
