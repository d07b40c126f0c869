// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"sync"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// Authenticator verifies a username and password against the identity store.
type Authenticator struct {
	users  IdentityFinder
	hasher PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthenticator creates a new [Authenticator].
func NewAuthenticator(users IdentityFinder, hasher PasswordHasher) *Authenticator {
	return &Authenticator{users: users, hasher: hasher}
}

/*
Authenticate returns the identity when the password matches.

An unknown username and a wrong password both yield [ErrInvalidCredentials].
A store failure is returned as is (INTERNAL_ERROR), never as a credential
failure.
*/
func (authenticator *Authenticator) Authenticate(ctx context.Context, username, password string) (*identity.Identity, error) {
	user, err := authenticator.users.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsNotFound(err) {
			authenticator.hasher.Verify(password, authenticator.dummy())
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !authenticator.hasher.Verify(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (authenticator *Authenticator) dummy() string {
	authenticator.dummyOnce.Do(func() {
		// On failure the comparison below fails fast; the login still fails.
		authenticator.dummyHash, _ = authenticator.hasher.Hash(dummyPassword)
	})
	return authenticator.dummyHash
}
