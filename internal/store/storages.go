// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/d-code000/YetAnotherNote/internal/config"
	"github.com/d-code000/YetAnotherNote/internal/logger"
)

// Storages bundles the database handle with every repository built on top of
// it, ready to be injected into the service layer.
type Storages struct {
	DB    *DB
	Notes NoteRepository
	Feed  *NotesFeed
}

// NewStorages opens the backend selected by the DSN scheme ("postgres://"
// picks PostgreSQL, anything else is treated as a SQLite file path), applies
// pending migrations and primes the notes feed with the current table
// contents.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, config.ClientDB{DSN: cfg.DB.DSN}, log)
	}
	if err != nil {
		return nil, err
	}

	return buildStorages(ctx, db, log)
}

// NewClientStorages opens the client's local SQLite database, applies pending
// migrations and primes the notes feed.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return buildStorages(ctx, db, log)
}

func buildStorages(ctx context.Context, db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "buildStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	feed := NewNotesFeed(log)
	notes := NewNoteRepository(db, feed, log)

	// prime the feed so the first subscription sees the stored notes
	initial, err := notes.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	feed.Publish(initial)

	return &Storages{
		DB:    db,
		Notes: notes,
		Feed:  feed,
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
