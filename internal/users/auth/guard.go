// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"strings"

	"github.com/taibuivan/artcine/internal/platform/apperr"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// Guard turns an Authorization header into the calling identity. It
// satisfies middleware.Authorizer.
type Guard struct {
	tokens TokenVerifier
	users  IdentityFinder
}

// NewGuard creates a new [Guard].
func NewGuard(tokens TokenVerifier, users IdentityFinder) *Guard {
	return &Guard{tokens: tokens, users: users}
}

/*
Authorize validates "Bearer <token>" and reloads the subject from the store.

The identity is read from the store on every request, so a deleted user's
token stops working at once.

Returns:
  - *identity.Identity: The caller
  - error: UNAUTHORIZED (401) for any header or token problem, or the store
    failure
*/
func (guard *Guard) Authorize(ctx context.Context, authorizationHeader string) (*identity.Identity, error) {
	scheme, token, found := strings.Cut(strings.TrimSpace(authorizationHeader), " ")
	token = strings.TrimSpace(token)
	if !found || !strings.EqualFold(scheme, bearerScheme) || token == "" {
		return nil, ErrInvalidAuthorization
	}

	claims, err := guard.tokens.Verify(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := guard.users.FindByUsername(ctx, claims.Subject)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	return user, nil
}
