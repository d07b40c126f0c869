// Copyright (c) 2026 ArtCine. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration applies the PostgreSQL schema with golang-migrate.
//
// It only runs for the postgres store driver. The MongoDB driver has no
// schema and creates its indexes at startup instead.
package migration

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// pgx5 driver registers "pgx5" scheme for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	// file source reads .sql files from disk.
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Result describes what a run did.
type Result struct {
	FromVersion uint
	ToVersion   uint
}

// Applied reports whether any migration ran.
func (r Result) Applied() bool {
	return r.FromVersion != r.ToVersion
}

/*
RunUp applies every pending up migration found under migrationsPath.

When ctx is cancelled the migration in progress is allowed to finish and no
further ones start.

Returns:
  - Result: schema version before and after the run
  - error: a dirty schema, an unreadable source or a failed statement
*/
func RunUp(ctx context.Context, dsn, migrationsPath string, logger *slog.Logger) (Result, error) {
	migrator, err := migrate.New("file://"+migrationsPath, toPgx5DSN(dsn))
	if err != nil {
		return Result{}, fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer func() {
		sourceErr, dbErr := migrator.Close()
		if err := errors.Join(sourceErr, dbErr); err != nil {
			logger.Error("migration_close_failed", slog.Any("error", err))
		}
	}()

	migrator.Log = &migrateLogger{logger: logger}

	from, dirty, err := migrator.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return Result{}, fmt.Errorf("migration: failed to read version: %w", err)
	}
	if dirty {
		return Result{FromVersion: from, ToVersion: from},
			fmt.Errorf("migration: schema is dirty at version %d; fix it by hand and force the version", from)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			migrator.GracefulStop <- true
		case <-done:
		}
	}()

	result := Result{FromVersion: from, ToVersion: from}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return result, fmt.Errorf("migration: up failed: %w", err)
	}

	if to, _, err := migrator.Version(); err == nil {
		result.ToVersion = to
	}

	logger.Info("schema_migrated",
		slog.Uint64("from_version", uint64(result.FromVersion)),
		slog.Uint64("to_version", uint64(result.ToVersion)),
		slog.Bool("applied", result.Applied()),
	)

	return result, nil
}

// toPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme
// registered by the golang-migrate pgx/v5 driver. Other strings pass through.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger routes golang-migrate's printf output to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug(strings.TrimSpace(fmt.Sprintf(format, args...)))
}

func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
