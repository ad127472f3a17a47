// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"fmt"

	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/internal/store"
	"github.com/d-code000/YetAnotherNote/internal/validators"
	"github.com/d-code000/YetAnotherNote/models"
)

type noteService struct {
	noteRepository store.NoteRepository
	feed           *store.NotesFeed
	validator      validators.Validator

	logger *logger.Logger
}

// NewNoteService constructs the [NoteService] over the given repository and
// feed. feed may be nil when no consumer subscribes to changes.
func NewNoteService(noteRepository store.NoteRepository, feed *store.NotesFeed, log *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		feed:           feed,
		validator:      validators.NewNoteValidator(),
		logger:         log,
	}
}

func (s *noteService) ListNotes(ctx context.Context) ([]models.Note, error) {
	return s.noteRepository.GetAll(ctx)
}

func (s *noteService) GetNote(ctx context.Context, id int64) (models.Note, error) {
	return s.noteRepository.GetByID(ctx, id)
}

func (s *noteService) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validator.Validate(ctx, note); err != nil {
		s.logger.Debug().Err(err).Str("func", "CreateNote").Msg("note validation failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	now := models.Now()
	if note.CreatedAt == 0 {
		note.CreatedAt = now
	}
	if note.UpdatedAt == 0 {
		note.UpdatedAt = now
	}

	id, err := s.noteRepository.Insert(ctx, note)
	if err != nil {
		return models.Note{}, err
	}
	note.ID = id

	return note, nil
}

func (s *noteService) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	if err := s.validator.Validate(ctx, note); err != nil {
		s.logger.Debug().Err(err).Str("func", "UpdateNote").Msg("note validation failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	// every persisted edit moves the note to the top of the list
	note.UpdatedAt = models.Now()

	if err := s.noteRepository.Update(ctx, note); err != nil {
		return models.Note{}, err
	}

	return note, nil
}

func (s *noteService) DeleteNote(ctx context.Context, id int64) error {
	return s.noteRepository.Delete(ctx, models.Note{ID: id})
}

func (s *noteService) DeleteNotes(ctx context.Context, ids []int64) error {
	if err := s.validator.Validate(ctx, ids); err != nil {
		s.logger.Debug().Err(err).Str("func", "DeleteNotes").Msg("ids validation failed")
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return s.noteRepository.DeleteByIDs(ctx, ids)
}

func (s *noteService) CountNotes(ctx context.Context) (int64, error) {
	return s.noteRepository.Count(ctx)
}

func (s *noteService) Feed() *store.NotesFeed {
	return s.feed
}
