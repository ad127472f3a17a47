package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/migrations"
)

// DB wraps the shared *sql.DB handle together with everything the
// repositories need to speak the right SQL flavour: the goose dialect,
// a squirrel statement builder configured with the matching placeholder
// format, and an error classifier for the backend.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the handle's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// IsRetryable reports whether err represents a transient backend failure
// that may succeed when the operation is attempted again.
func (db *DB) IsRetryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}
