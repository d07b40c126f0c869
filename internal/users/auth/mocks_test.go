// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/taibuivan/artcine/internal/users/identity"
)

// MockIdentityFinder is a mock implementation of auth.IdentityFinder.
type MockIdentityFinder struct {
	mock.Mock
}

func (m *MockIdentityFinder) FindByUsername(ctx context.Context, username string) (*identity.Identity, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*identity.Identity)
	return user, args.Error(1)
}

// MockAttemptLimiter is a mock implementation of auth.AttemptLimiter.
type MockAttemptLimiter struct {
	mock.Mock
}

func (m *MockAttemptLimiter) Allow(ctx context.Context, username string) (bool, time.Duration, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Get(1).(time.Duration), args.Error(2)
}

func (m *MockAttemptLimiter) RecordFailure(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

func (m *MockAttemptLimiter) Reset(ctx context.Context, username string) error {
	return m.Called(ctx, username).Error(0)
}

// countingHasher wraps a real hasher and counts Verify calls.
type countingHasher struct {
	inner interface {
		Hash(string) (string, error)
		Verify(string, string) bool
	}
	verifies int
}

func (h *countingHasher) Hash(password string) (string, error) { return h.inner.Hash(password) }

func (h *countingHasher) Verify(password, digest string) bool {
	h.verifies++
	return h.inner.Verify(password, digest)
}
