// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/platform/sec"
	"github.com/taibuivan/artcine/internal/users/account"
	"github.com/taibuivan/artcine/internal/users/identity"
)

const matrixID = "65f0c0ffee0000000000abcd"

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newService(t *testing.T) (*account.Service, *memoryStore, *sec.PasswordHasher) {
	t.Helper()
	store := newMemoryStore()
	hasher := sec.NewPasswordHasher(bcrypt.MinCost)
	return account.NewService(store, hasher, movieSet{matrixID: true}, discard), store, hasher
}

func register(t *testing.T, service *account.Service, username string) *identity.Identity {
	t.Helper()
	user, err := service.Register(context.Background(), account.RegisterInput{
		Username: username,
		Password: "longpass1",
		Email:    username + "@example.com",
	})
	require.NoError(t, err)
	return user
}

func ptr[T any](v T) *T { return &v }

func TestService_Register(t *testing.T) {
	service, store, hasher := newService(t)

	user, err := service.Register(context.Background(), account.RegisterInput{
		Username: "alice01",
		Password: "longpass1",
		Email:    "a@example.com",
		Birthday: "1990-04-12",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, []string{}, user.FavoriteMovies)
	require.NotNil(t, user.Birthday)
	assert.Equal(t, time.Date(1990, time.April, 12, 0, 0, 0, 0, time.UTC), *user.Birthday)

	stored := store.users["alice01"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "longpass1", stored.PasswordHash)
	assert.True(t, hasher.Verify("longpass1", stored.PasswordHash))
}

func TestService_Register_Validation(t *testing.T) {
	valid := account.RegisterInput{Username: "alice01", Password: "longpass1", Email: "a@example.com"}

	tests := []struct {
		name   string
		mutate func(*account.RegisterInput)
		field  string
	}{
		{"short_username", func(in *account.RegisterInput) { in.Username = "al" }, identity.FieldUsername},
		{"non_alphanumeric_username", func(in *account.RegisterInput) { in.Username = "alice_01" }, identity.FieldUsername},
		{"empty_password", func(in *account.RegisterInput) { in.Password = "" }, identity.FieldPassword},
		{"short_password", func(in *account.RegisterInput) { in.Password = "short" }, identity.FieldPassword},
		{"long_password", func(in *account.RegisterInput) { in.Password = "abcdefghijklmnopqrstu" }, identity.FieldPassword},
		{"multibyte_password_over_72_bytes", func(in *account.RegisterInput) { in.Password = strings.Repeat("😀", 20) }, identity.FieldPassword},
		{"bad_email", func(in *account.RegisterInput) { in.Email = "not-an-email" }, identity.FieldEmail},
		{"dotless_email_domain", func(in *account.RegisterInput) { in.Email = "a@localhost" }, identity.FieldEmail},
		{"email_over_column_width", func(in *account.RegisterInput) { in.Email = strings.Repeat("a", 309) + "@example.com" }, identity.FieldEmail},
		{"bad_birthday", func(in *account.RegisterInput) { in.Birthday = "12/04/1990" }, identity.FieldBirthday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, store, _ := newService(t)
			input := valid
			tt.mutate(&input)

			_, err := service.Register(context.Background(), input)

			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
			require.NotEmpty(t, ae.Details)
			assert.Equal(t, tt.field, ae.Details[0].Field)
			assert.Empty(t, store.users)
		})
	}
}

func TestService_Register_MultibytePasswordWithinBytes(t *testing.T) {
	service, store, hasher := newService(t)
	password := strings.Repeat("😀", 18)

	_, err := service.Register(context.Background(), account.RegisterInput{
		Username: "alice01",
		Password: password,
		Email:    "a@example.com",
	})
	require.NoError(t, err)
	assert.True(t, hasher.Verify(password, store.users["alice01"].PasswordHash))
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	service, _, _ := newService(t)
	register(t, service, "alice01")

	_, err := service.Register(context.Background(), account.RegisterInput{
		Username: "alice01", Password: "otherpass1", Email: "b@example.com",
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
	assert.Equal(t, "alice01 already exists", ae.Message)
}

func TestService_Register_StoreFailure(t *testing.T) {
	service, store, _ := newService(t)
	store.failOn = "FindByUsername"

	_, err := service.Register(context.Background(), account.RegisterInput{
		Username: "alice01", Password: "longpass1", Email: "a@example.com",
	})

	assert.True(t, apperr.HasCode(err, "INTERNAL_ERROR"))
	assert.Empty(t, store.users)
}

func TestService_OwnershipChecks(t *testing.T) {
	service, store, _ := newService(t)
	alice := register(t, service, "alice01")
	register(t, service, "bobby01")
	store.failOn = "*"

	ctx := context.Background()

	_, err := service.Update(ctx, alice, "bobby01", account.UpdateInput{Email: ptr("x@example.com")})
	assert.ErrorIs(t, err, account.ErrPermissionDenied)

	err = service.Delete(ctx, alice, "bobby01")
	assert.ErrorIs(t, err, account.ErrPermissionDenied)

	_, err = service.AddFavorite(ctx, alice, "bobby01", matrixID)
	assert.ErrorIs(t, err, account.ErrPermissionDenied)

	_, err = service.RemoveFavorite(ctx, alice, "bobby01", matrixID)
	assert.ErrorIs(t, err, account.ErrPermissionDenied)

	_, err = service.Update(ctx, nil, "bobby01", account.UpdateInput{})
	assert.ErrorIs(t, err, account.ErrPermissionDenied)

	assert.Equal(t, http.StatusBadRequest, account.ErrPermissionDenied.HTTPStatus)
	assert.Equal(t, "bobby01@example.com", store.users["bobby01"].Email)
}

func TestService_Update(t *testing.T) {
	service, store, hasher := newService(t)
	alice := register(t, service, "alice01")
	oldHash := store.users["alice01"].PasswordHash

	updated, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{
		Password: ptr("newpass123"),
		Email:    ptr("new@example.com"),
		Birthday: ptr("1991/02/03"),
	})
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", updated.Email)
	require.NotNil(t, updated.Birthday)
	assert.Equal(t, time.Date(1991, time.February, 3, 0, 0, 0, 0, time.UTC), *updated.Birthday)

	stored := store.users["alice01"]
	assert.NotEqual(t, oldHash, stored.PasswordHash)
	assert.NotEqual(t, "newpass123", stored.PasswordHash)
	assert.True(t, hasher.Verify("newpass123", stored.PasswordHash))
}

func TestService_Update_Rename(t *testing.T) {
	service, store, _ := newService(t)
	alice := register(t, service, "alice01")
	register(t, service, "bobby01")

	_, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{Username: ptr("bobby01")})
	assert.True(t, apperr.HasCode(err, "CONFLICT"))

	_, err = service.Update(context.Background(), alice, "alice01", account.UpdateInput{Username: ptr("a!")})
	assert.True(t, apperr.HasCode(err, "VALIDATION_ERROR"))

	renamed, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{Username: ptr("alice02")})
	require.NoError(t, err)
	assert.Equal(t, "alice02", renamed.Username)
	assert.NotContains(t, store.users, "alice01")
}

func TestService_Update_PasswordOverBcryptLimit(t *testing.T) {
	service, store, _ := newService(t)
	alice := register(t, service, "alice01")
	oldHash := store.users["alice01"].PasswordHash

	_, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{
		Password: ptr(strings.Repeat("😀", 20)),
	})

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusUnprocessableEntity, ae.HTTPStatus)
	require.NotEmpty(t, ae.Details)
	assert.Equal(t, identity.FieldPassword, ae.Details[0].Field)
	assert.Equal(t, oldHash, store.users["alice01"].PasswordHash)
}

func TestService_Update_EmptyBirthdayIsIgnored(t *testing.T) {
	service, store, _ := newService(t)
	alice := register(t, service, "alice01")

	_, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{Birthday: ptr("1991-02-03")})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{
		Email:    ptr("new@example.com"),
		Birthday: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
	require.NotNil(t, store.users["alice01"].Birthday)
	assert.Equal(t, time.Date(1991, time.February, 3, 0, 0, 0, 0, time.UTC), *store.users["alice01"].Birthday)

	_, err = service.Update(context.Background(), alice, "alice01", account.UpdateInput{Birthday: ptr("")})
	require.NoError(t, err)
}

func TestService_Update_NoChanges(t *testing.T) {
	service, _, _ := newService(t)
	alice := register(t, service, "alice01")

	same, err := service.Update(context.Background(), alice, "alice01", account.UpdateInput{Username: ptr("alice01")})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, same.ID)
}

func TestService_Delete(t *testing.T) {
	service, store, _ := newService(t)
	alice := register(t, service, "alice01")

	require.NoError(t, service.Delete(context.Background(), alice, "alice01"))
	assert.Empty(t, store.users)

	err := service.Delete(context.Background(), alice, "alice01")
	assert.True(t, apperr.IsNotFound(err))
}

func TestService_Favorites(t *testing.T) {
	service, _, _ := newService(t)
	alice := register(t, service, "alice01")
	ctx := context.Background()

	user, err := service.AddFavorite(ctx, alice, "alice01", matrixID)
	require.NoError(t, err)
	assert.Equal(t, []string{matrixID}, user.FavoriteMovies)

	user, err = service.AddFavorite(ctx, alice, "alice01", matrixID)
	require.NoError(t, err)
	assert.Equal(t, []string{matrixID}, user.FavoriteMovies, "adding twice keeps one entry")

	_, err = service.AddFavorite(ctx, alice, "alice01", "65f0c0ffee0000000000ffff")
	assert.True(t, apperr.IsNotFound(err))

	user, err = service.RemoveFavorite(ctx, alice, "alice01", matrixID)
	require.NoError(t, err)
	assert.Empty(t, user.FavoriteMovies)

	user, err = service.RemoveFavorite(ctx, alice, "alice01", matrixID)
	require.NoError(t, err)
	assert.Empty(t, user.FavoriteMovies)
}
