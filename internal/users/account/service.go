// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/sec"
	"github.com/taibuivan/artcine/internal/platform/validate"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// # Service Layer

// Service orchestrates the account use cases.
type Service struct {
	store  Store
	hasher PasswordHasher
	movies MovieLookup
	logger *slog.Logger
}

// NewService constructs a new [Service] with its dependencies.
func NewService(store Store, hasher PasswordHasher, movies MovieLookup, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		hasher: hasher,
		movies: movies,
		logger: logger,
	}
}

// ErrPermissionDenied is returned when the caller acts on another user's account.
var ErrPermissionDenied = apperr.PermissionDenied("Permission denied")

// # Queries

// List returns every registered identity.
func (service *Service) List(ctx context.Context) ([]*identity.Identity, error) {
	return service.store.List(ctx)
}

// Get returns the identity with the exact username.
func (service *Service) Get(ctx context.Context, username string) (*identity.Identity, error) {
	return service.store.FindByUsername(ctx, username)
}

// # Registration

// RegisterInput carries the fields of a new account. Birthday is optional.
type RegisterInput struct {
	Username string
	Password string
	Email    string
	Birthday string
}

/*
Register validates the input and creates a new identity.

Rules:
  - username: at least 5 characters, letters and digits only
  - password: 8 to 20 characters
  - email: a bare address
  - birthday: optional, YYYY-MM-DD

Returns:
  - *identity.Identity: The stored identity (the hash is never serialized)
  - error: VALIDATION_ERROR (422), CONFLICT (400) or a store failure
*/
func (service *Service) Register(ctx context.Context, input RegisterInput) (*identity.Identity, error) {
	validator := &validate.Validator{}
	validateUsername(validator, input.Username)
	validatePassword(validator, input.Password)
	validateEmail(validator, input.Email)
	if input.Birthday != "" {
		validator.Date(identity.FieldBirthday, input.Birthday)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.ensureUsernameFree(ctx, input.Username); err != nil {
		return nil, err
	}

	passwordHash, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &identity.Identity{
		Username:       input.Username,
		PasswordHash:   passwordHash,
		Email:          input.Email,
		Birthday:       parseBirthday(input.Birthday),
		FavoriteMovies: []string{},
	}

	// The unique index still catches a concurrent registration as CONFLICT.
	if err := service.store.Create(ctx, user); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "user_registered", slog.String("username", user.Username))
	return user, nil
}

// # Profile Management

// UpdateInput is a partial profile update. Nil fields are left untouched, and
// so is an empty Birthday, matching registration.
type UpdateInput struct {
	Username *string
	Password *string
	Email    *string
	Birthday *string
}

/*
Update applies a partial profile update to the caller's own account.

A new password is hashed before it is stored and every provided field is
checked with the registration rules.

Returns:
  - *identity.Identity: The updated identity
  - error: PERMISSION_DENIED, VALIDATION_ERROR, CONFLICT, NOT_FOUND or a store failure
*/
func (service *Service) Update(ctx context.Context, caller *identity.Identity, username string, input UpdateInput) (*identity.Identity, error) {
	if !caller.Owns(username) {
		return nil, ErrPermissionDenied
	}

	validator := &validate.Validator{}
	if input.Username != nil {
		validateUsername(validator, *input.Username)
	}
	if input.Password != nil {
		validatePassword(validator, *input.Password)
	}
	if input.Email != nil {
		validateEmail(validator, *input.Email)
	}
	if input.Birthday != nil && *input.Birthday == "" {
		input.Birthday = nil
	}
	if input.Birthday != nil {
		validator.Date(identity.FieldBirthday, *input.Birthday)
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	changes := Changes{Email: input.Email}

	if input.Username != nil && *input.Username != username {
		if err := service.ensureUsernameFree(ctx, *input.Username); err != nil {
			return nil, err
		}
		changes.Username = input.Username
	}

	if input.Password != nil {
		passwordHash, err := service.hasher.Hash(*input.Password)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		changes.PasswordHash = &passwordHash
	}

	if input.Birthday != nil {
		changes.Birthday = parseBirthday(*input.Birthday)
	}

	if changes.IsEmpty() {
		return service.store.FindByUsername(ctx, username)
	}

	updated, err := service.store.Update(ctx, username, changes)
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "user_profile_updated",
		slog.String("username", username),
		slog.String("new_username", updated.Username),
	)
	return updated, nil
}

// Delete removes the caller's own account.
func (service *Service) Delete(ctx context.Context, caller *identity.Identity, username string) error {
	if !caller.Owns(username) {
		return ErrPermissionDenied
	}

	if err := service.store.Delete(ctx, username); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "user_deleted", slog.String("username", username))
	return nil
}

// # Favorites

// AddFavorite adds movieID to the caller's favorites. The movie must exist.
func (service *Service) AddFavorite(ctx context.Context, caller *identity.Identity, username, movieID string) (*identity.Identity, error) {
	if !caller.Owns(username) {
		return nil, ErrPermissionDenied
	}

	exists, err := service.movies.Exists(ctx, movieID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperr.NotFound("Movie")
	}

	return service.store.AddFavorite(ctx, username, movieID)
}

// RemoveFavorite removes movieID from the caller's favorites. Removing an
// ID that is not present leaves the list unchanged.
func (service *Service) RemoveFavorite(ctx context.Context, caller *identity.Identity, username, movieID string) (*identity.Identity, error) {
	if !caller.Owns(username) {
		return nil, ErrPermissionDenied
	}

	return service.store.RemoveFavorite(ctx, username, movieID)
}

// # Helpers

func validateUsername(validator *validate.Validator, username string) {
	validator.
		MinLen(identity.FieldUsername, username, UsernameMinLength).
		Alphanumeric(identity.FieldUsername, username)
}

func validatePassword(validator *validate.Validator, password string) {
	validator.
		Required(identity.FieldPassword, password).
		LenBetween(identity.FieldPassword, password, PasswordMinLength, PasswordMaxLength).
		MaxBytes(identity.FieldPassword, password, sec.MaxPasswordBytes)
}

func validateEmail(validator *validate.Validator, email string) {
	validator.
		MaxLen(identity.FieldEmail, email, EmailMaxLength).
		Email(identity.FieldEmail, email)
}

// ensureUsernameFree returns CONFLICT when username is already registered.
func (service *Service) ensureUsernameFree(ctx context.Context, username string) error {
	_, err := service.store.FindByUsername(ctx, username)
	switch {
	case err == nil:
		return apperr.Conflict(fmt.Sprintf("%s already exists", username))
	case apperr.IsNotFound(err):
		return nil
	default:
		return err
	}
}

// parseBirthday converts an already validated date, or returns nil for "".
func parseBirthday(value string) *time.Time {
	if value == "" {
		return nil
	}
	parsed, err := validate.ParseDate(value)
	if err != nil {
		return nil
	}
	return &parsed
}
