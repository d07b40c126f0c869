// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// MaxPasswordBytes is the longest password bcrypt accepts, in bytes. Longer
// input makes [PasswordHasher.Hash] fail with [bcrypt.ErrPasswordTooLong], so
// callers validate against it first.
const MaxPasswordBytes = 72

// PasswordHasher computes and checks bcrypt password digests.
//
// The digest is crypt-formatted ($2a$<cost>$<salt><hash>), so the salt and
// cost travel with it and need no separate storage.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher using cost, or [bcrypt.DefaultCost]
// when cost is outside the range bcrypt accepts.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

// Cost returns the bcrypt work factor used for new digests.
func (hasher *PasswordHasher) Cost() int {
	return hasher.cost
}

// Hash hashes a plain-text password using a fresh random salt.
func (hasher *PasswordHasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify compares a plain-text password with a stored digest in constant time.
// A malformed digest yields false.
func (hasher *PasswordHasher) Verify(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
