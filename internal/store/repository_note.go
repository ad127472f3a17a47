// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/models"
)

// noteRepository is the SQL implementation of [NoteRepository]. It works over
// the shared *DB handle and is dialect-agnostic: all flavour differences are
// captured in the handle's statement builder and error classifier.
type noteRepository struct {
	*DB
	feed   *NotesFeed
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] over db. Every successful
// mutation republishes the full note list through feed; feed may be nil for
// contexts that do not need change notifications (tests, one-shot tooling).
func NewNoteRepository(db *DB, feed *NotesFeed, log *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		feed:   feed,
		logger: log,
	}
}

func (r *noteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	query, args, err := r.selectAllQuery().ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "GetAll").Msg("error building sql query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "GetAll").Bool("retryable", r.IsRetryable(err)).Msg("error executing sql query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0)
	for rows.Next() {
		var note models.Note
		if err = scanNote(rows, &note); err != nil {
			r.logger.Err(err).Str("func", "GetAll").Msg("error scanning note rows")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		r.logger.Err(err).Str("func", "GetAll").Msg("error iterating note rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (r *noteRepository) GetByID(ctx context.Context, id int64) (models.Note, error) {
	query, args, err := r.selectByIDQuery(id).ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "GetByID").Msg("error building sql query")
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var note models.Note
	err = scanNote(r.QueryRowContext(ctx, query, args...), &note)
	if errors.Is(err, sql.ErrNoRows) {
		r.logger.Debug().Str("func", "GetByID").Int64("id", id).Msg("note was not found")
		return models.Note{}, ErrNoteNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "GetByID").Int64("id", id).Msg("error scanning note row")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (r *noteRepository) Insert(ctx context.Context, note models.Note) (int64, error) {
	query, args, err := r.insertQuery(note).ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "Insert").Msg("error building sql query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	err = r.QueryRowContext(ctx, query, args...).Scan(&id)
	if err != nil {
		r.logger.Err(err).Str("func", "Insert").Bool("retryable", r.IsRetryable(err)).Msg("error executing insert statement")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	r.logger.Debug().Str("func", "Insert").Int64("id", id).Msg("note saved")

	r.notifyFeed(ctx)
	return id, nil
}

func (r *noteRepository) Update(ctx context.Context, note models.Note) error {
	query, args, err := r.updateQuery(note).ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "Update").Msg("error building sql query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "Update").Bool("retryable", r.IsRetryable(err)).Msg("error executing update statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		r.logger.Err(err).Str("func", "Update").Msg("error reading affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		// updating a missing id is not an error, the row is simply gone
		r.logger.Warn().Str("func", "Update").Int64("id", note.ID).Msg("update matched no rows")
		return nil
	}

	r.notifyFeed(ctx)
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, note models.Note) error {
	return r.DeleteByIDs(ctx, []int64{note.ID})
}

func (r *noteRepository) DeleteByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := r.deleteByIDsQuery(ids).ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "DeleteByIDs").Msg("error building sql query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "DeleteByIDs").Bool("retryable", r.IsRetryable(err)).Msg("error executing delete statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, _ := result.RowsAffected()
	r.logger.Debug().Str("func", "DeleteByIDs").Ints64("ids", ids).Int64("deleted", affected).Msg("notes deleted")

	r.notifyFeed(ctx)
	return nil
}

func (r *noteRepository) Count(ctx context.Context) (int64, error) {
	query, args, err := r.countQuery().ToSql()
	if err != nil {
		r.logger.Err(err).Str("func", "Count").Msg("error building sql query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var count int64
	err = r.QueryRowContext(ctx, query, args...).Scan(&count)
	if err != nil {
		r.logger.Err(err).Str("func", "Count").Msg("error executing count query")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// notifyFeed reloads the note list and republishes it to feed subscribers.
// Called synchronously from mutations so that a subscription opened right
// after a mutation returns always reflects it. The reload and the publish go
// through [NotesFeed.Refresh] so overlapping mutations cannot publish their
// snapshots out of order.
func (r *noteRepository) notifyFeed(ctx context.Context) {
	if r.feed == nil {
		return
	}

	err := r.feed.Refresh(func() ([]models.Note, error) {
		return r.GetAll(ctx)
	})
	if err != nil {
		r.logger.Err(err).Str("func", "notifyFeed").Msg("error reloading notes for feed")
	}
}

// rowScanner abstracts *sql.Row and *sql.Rows for scanNote.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner, note *models.Note) error {
	return row.Scan(
		&note.ID,
		&note.Title,
		&note.Content,
		&note.CreatedAt,
		&note.UpdatedAt,
		&note.Latitude,
		&note.Longitude,
	)
}
