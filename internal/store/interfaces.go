package store

import (
	"context"

	"github.com/d-code000/YetAnotherNote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// NoteRepository is the low-level persistence layer for notes.
//
// All mutation methods notify the notes feed after the statement commits, so
// a subscription opened after a mutation returns always observes its effect.
type NoteRepository interface {
	// GetAll returns every note ordered by updated_at descending
	// (most recently touched first).
	GetAll(ctx context.Context) ([]models.Note, error)

	// GetByID returns the note with the given id, or [ErrNoteNotFound].
	GetByID(ctx context.Context, id int64) (models.Note, error)

	// Insert persists the note with upsert semantics keyed on id: a zero id
	// gets a freshly assigned one, an existing id fully replaces the stored
	// row. Returns the effective id.
	Insert(ctx context.Context, note models.Note) (int64, error)

	// Update replaces all mutable fields of the row matching note.ID.
	// Updating a missing id is a logged no-op.
	Update(ctx context.Context, note models.Note) error

	// Delete removes the row matching note.ID.
	Delete(ctx context.Context, note models.Note) error

	// DeleteByIDs removes all rows whose id is in ids in one statement;
	// absent ids are ignored. An empty set is a no-op.
	DeleteByIDs(ctx context.Context, ids []int64) error

	// Count returns the total number of stored notes.
	Count(ctx context.Context) (int64, error)
}
