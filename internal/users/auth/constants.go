// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"github.com/taibuivan/artcine/internal/platform/apperr"
)

// # Authentication Errors

var (
	// ErrInvalidCredentials is returned for an unknown username and for a
	// wrong password alike, so the response does not reveal which one failed.
	ErrInvalidCredentials = apperr.Unauthorized("Incorrect username or password")

	// ErrInvalidAuthorization is returned for a header that is not "Bearer <token>".
	ErrInvalidAuthorization = apperr.Unauthorized("Invalid authorization format")

	// ErrInvalidToken is returned for a bad signature, an expired token, or a
	// subject that no longer exists.
	ErrInvalidToken = apperr.Unauthorized("Invalid or expired token")
)

// dummyPassword is hashed once and compared against when the username is
// unknown, so both failure paths pay for one bcrypt comparison.
const dummyPassword = "artcine-timing-equalizer"

// bearerScheme is the only accepted Authorization scheme (case-insensitive).
const bearerScheme = "Bearer"
