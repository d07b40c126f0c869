// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package uuidv7 wraps google/uuid to generate time-ordered UUIDv7 values.
//
// It is the primary key type of the PostgreSQL store driver. MongoDB
// documents keep their native ObjectIDs.
package uuidv7

import "github.com/google/uuid"

// New generates a new UUIDv7 string.
//
// It panics only if the OS random source is unavailable.
func New() string {
	id, err := uuid.NewV7()
	if err != nil {
		panic("uuidv7: failed to generate UUID: " + err.Error())
	}

	return id.String()
}

// IsValid reports whether value parses as a UUID of any version.
// Stores use it to treat malformed IDs as "not found" without a round trip.
func IsValid(value string) bool {
	_, err := uuid.Parse(value)
	return err == nil
}
