// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package api_test

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/artcine/internal/core/movie"
	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/users/account"
	"github.com/taibuivan/artcine/internal/users/identity"
	"github.com/taibuivan/artcine/pkg/uuidv7"
)

// memoryUsers is an in-memory account.Store.
type memoryUsers struct {
	mu    sync.Mutex
	users map[string]*identity.Identity
}

func newMemoryUsers() *memoryUsers {
	return &memoryUsers{users: map[string]*identity.Identity{}}
}

func clone(user *identity.Identity) *identity.Identity {
	copied := *user
	copied.FavoriteMovies = slices.Clone(user.FavoriteMovies)
	return &copied
}

func (s *memoryUsers) List(context.Context) ([]*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]*identity.Identity, 0, len(s.users))
	for _, user := range s.users {
		result = append(result, clone(user))
	}
	return result, nil
}

func (s *memoryUsers) FindByUsername(_ context.Context, username string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return clone(user), nil
}

func (s *memoryUsers) Create(_ context.Context, user *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, taken := s.users[user.Username]; taken {
		return apperr.Conflict(user.Username + " already exists")
	}
	user.ID = uuidv7.New()
	user.CreatedAt = time.Now().UTC()
	user.UpdatedAt = user.CreatedAt
	if user.FavoriteMovies == nil {
		user.FavoriteMovies = []string{}
	}
	s.users[user.Username] = clone(user)
	return nil
}

func (s *memoryUsers) Update(_ context.Context, username string, changes account.Changes) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	if changes.Username != nil {
		delete(s.users, username)
		user.Username = *changes.Username
	}
	if changes.PasswordHash != nil {
		user.PasswordHash = *changes.PasswordHash
	}
	if changes.Email != nil {
		user.Email = *changes.Email
	}
	if changes.Birthday != nil {
		user.Birthday = changes.Birthday
	}
	user.UpdatedAt = time.Now().UTC()
	s.users[user.Username] = user
	return clone(user), nil
}

func (s *memoryUsers) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; !ok {
		return apperr.NotFound("User")
	}
	delete(s.users, username)
	return nil
}

func (s *memoryUsers) AddFavorite(_ context.Context, username, movieID string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	if !user.HasFavorite(movieID) {
		user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	}
	return clone(user), nil
}

func (s *memoryUsers) RemoveFavorite(_ context.Context, username, movieID string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.FavoriteMovies = slices.DeleteFunc(user.FavoriteMovies, func(id string) bool { return id == movieID })
	return clone(user), nil
}

// memoryMovies is a fixed, read-only movie.Store.
type memoryMovies []*movie.Movie

func (s memoryMovies) List(context.Context) ([]*movie.Movie, error) {
	return s, nil
}

func (s memoryMovies) FindByTitle(_ context.Context, title string) (*movie.Movie, error) {
	for _, m := range s {
		if m.Title == title {
			return m, nil
		}
	}
	return nil, apperr.NotFound("Movie")
}

func (s memoryMovies) FindGenre(_ context.Context, name string) (*movie.Genre, error) {
	for _, m := range s {
		if m.Genre.Name == name {
			return &m.Genre, nil
		}
	}
	return nil, apperr.NotFound("Genre")
}

func (s memoryMovies) FindDirector(_ context.Context, name string) (*movie.Director, error) {
	for _, m := range s {
		if m.Director.Name == name {
			return &m.Director, nil
		}
	}
	return nil, apperr.NotFound("Director")
}

func (s memoryMovies) Exists(_ context.Context, id string) (bool, error) {
	return slices.ContainsFunc(s, func(m *movie.Movie) bool { return m.ID == id }), nil
}
