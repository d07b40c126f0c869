// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/users/account"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// memoryStore is an in-memory [account.Store] with the same set semantics
// as the real backends.
type memoryStore struct {
	mu     sync.Mutex
	users  map[string]*identity.Identity
	nextID int
	failOn string
}

func newMemoryStore() *memoryStore {
	return &memoryStore{users: map[string]*identity.Identity{}}
}

func (s *memoryStore) fail(op string) error {
	if s.failOn == op || s.failOn == "*" {
		return apperr.Internal(fmt.Errorf("%s: connection refused", op))
	}
	return nil
}

func clone(user *identity.Identity) *identity.Identity {
	copied := *user
	copied.FavoriteMovies = slices.Clone(user.FavoriteMovies)
	return &copied
}

func (s *memoryStore) List(_ context.Context) ([]*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("List"); err != nil {
		return nil, err
	}

	users := make([]*identity.Identity, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, clone(user))
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *memoryStore) FindByUsername(_ context.Context, username string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("FindByUsername"); err != nil {
		return nil, err
	}

	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	return clone(user), nil
}

func (s *memoryStore) Create(_ context.Context, user *identity.Identity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Create"); err != nil {
		return err
	}

	if _, taken := s.users[user.Username]; taken {
		return apperr.Conflict("User already exists")
	}

	s.nextID++
	user.ID = fmt.Sprintf("user-%d", s.nextID)
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	s.users[user.Username] = clone(user)
	return nil
}

func (s *memoryStore) Update(_ context.Context, username string, changes account.Changes) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Update"); err != nil {
		return nil, err
	}

	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	if changes.Username != nil {
		if _, taken := s.users[*changes.Username]; taken {
			return nil, apperr.Conflict("User already exists")
		}
		delete(s.users, username)
		user.Username = *changes.Username
		s.users[user.Username] = user
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
	return clone(user), nil
}

func (s *memoryStore) Delete(_ context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("Delete"); err != nil {
		return err
	}

	if _, ok := s.users[username]; !ok {
		return apperr.NotFound("User")
	}
	delete(s.users, username)
	return nil
}

func (s *memoryStore) AddFavorite(_ context.Context, username, movieID string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("AddFavorite"); err != nil {
		return nil, err
	}

	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	if !user.HasFavorite(movieID) {
		user.FavoriteMovies = append(user.FavoriteMovies, movieID)
	}
	return clone(user), nil
}

func (s *memoryStore) RemoveFavorite(_ context.Context, username, movieID string) (*identity.Identity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("RemoveFavorite"); err != nil {
		return nil, err
	}

	user, ok := s.users[username]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	user.FavoriteMovies = slices.DeleteFunc(user.FavoriteMovies, func(id string) bool { return id == movieID })
	return clone(user), nil
}

// movieSet is an [account.MovieLookup] over a fixed set of IDs.
type movieSet map[string]bool

func (m movieSet) Exists(_ context.Context, id string) (bool, error) {
	return m[id], nil
}
