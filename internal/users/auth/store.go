// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"time"

	"github.com/taibuivan/artcine/internal/platform/sec"
	"github.com/taibuivan/artcine/internal/users/identity"
)

// # Contracts

// IdentityFinder resolves a username to its stored identity. Implemented by
// the account stores.
type IdentityFinder interface {
	FindByUsername(ctx context.Context, username string) (*identity.Identity, error)
}

// PasswordHasher checks a password against a stored digest.
type PasswordHasher interface {
	Hash(plainTextPassword string) (string, error)
	Verify(plainTextPassword, existingHash string) bool
}

// TokenIssuer mints signed access tokens.
type TokenIssuer interface {
	Issue(subject string) (string, time.Time, error)
}

// TokenVerifier validates signed access tokens.
type TokenVerifier interface {
	Verify(token string) (*sec.AuthClaims, error)
}

// AttemptLimiter throttles repeated failed logins per username.
type AttemptLimiter interface {
	// Allow reports whether username may attempt a login now. When it may
	// not, retryAfter says how long until the window resets.
	Allow(ctx context.Context, username string) (allowed bool, retryAfter time.Duration, err error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}

// NoopAttemptLimiter never throttles. It is used when Redis is not configured.
type NoopAttemptLimiter struct{}

func (NoopAttemptLimiter) Allow(context.Context, string) (bool, time.Duration, error) {
	return true, 0, nil
}

func (NoopAttemptLimiter) RecordFailure(context.Context, string) error { return nil }

func (NoopAttemptLimiter) Reset(context.Context, string) error { return nil }
