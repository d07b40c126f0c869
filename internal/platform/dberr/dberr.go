// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level store errors and
// higher-level application errors.
//
// Both store drivers report through the same mapping so the service layer
// never needs to know which backend is in use.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taibuivan/artcine/internal/platform/apperr"
)

// Wrap inspects a store error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
//   - no rows / no documents → NotFound(resource)
//   - unique violation / duplicate key → Conflict
//   - anything else → Internal, with the driver error kept as the cause
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// Already classified further down.
	if apperr.IsAppError(err) {
		return err
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, mongo.ErrNoDocuments) {
		return apperr.NotFound(resource)
	}

	if IsUniqueViolation(err) {
		return apperr.Conflict(resource + " already exists")
	}

	return apperr.Internal(fmt.Errorf("%s store: %w", resource, err))
}

// IsUniqueViolation reports whether err is a PostgreSQL unique violation
// (SQLSTATE 23505) or a MongoDB duplicate key error.
func IsUniqueViolation(err error) bool {
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) && pgError.Code == pgerrcode.UniqueViolation {
		return true
	}
	return mongo.IsDuplicateKeyError(err)
}
