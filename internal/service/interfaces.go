package service

import (
	"context"

	"github.com/d-code000/YetAnotherNote/internal/store"
	"github.com/d-code000/YetAnotherNote/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// NoteService is the business layer over the note store. It owns timestamp
// stamping and input validation; persistence details stay in the repository.
type NoteService interface {
	// ListNotes returns all notes, most recently updated first.
	ListNotes(ctx context.Context) ([]models.Note, error)

	// GetNote returns the note with the given id or [store.ErrNoteNotFound].
	GetNote(ctx context.Context, id int64) (models.Note, error)

	// CreateNote validates and persists a new note. Zero timestamps are
	// stamped with the current time; a zero id gets a store-assigned one.
	// Returns the persisted note.
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)

	// UpdateNote validates the note, stamps UpdatedAt with the current time
	// and persists all mutable fields. Returns the note as persisted.
	UpdateNote(ctx context.Context, note models.Note) (models.Note, error)

	// DeleteNote removes the note with the given id.
	DeleteNote(ctx context.Context, id int64) error

	// DeleteNotes removes all notes whose id is in ids. An empty set is
	// rejected with a validation error.
	DeleteNotes(ctx context.Context, ids []int64) error

	// CountNotes returns the number of stored notes.
	CountNotes(ctx context.Context) (int64, error)

	// Feed exposes the reactive note list for subscription.
	Feed() *store.NotesFeed
}
