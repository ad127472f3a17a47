package validators

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/d-code000/YetAnotherNote/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldCoordinate targets the optional latitude/longitude pair.
	FieldCoordinate = "coordinate"
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case []int64:
		return v.validateIDs(ctx, value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldCoordinate}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			// whitespace-only titles count as blank
			if err := validation.Validate(strings.TrimSpace(note.Title), validation.Required); err != nil {
				return ErrEmptyTitle
			}

		case FieldCoordinate:
			if (note.Latitude == nil) != (note.Longitude == nil) {
				return ErrBrokenCoordinate
			}
			if note.Latitude == nil {
				continue
			}
			if err := validation.Validate(*note.Latitude, validation.Min(-90.0), validation.Max(90.0)); err != nil {
				return ErrLatitudeOutOfRange
			}
			if err := validation.Validate(*note.Longitude, validation.Min(-180.0), validation.Max(180.0)); err != nil {
				return ErrLongitudeOutOfRange
			}
		}
	}

	return nil
}

func (v *NoteValidator) validateIDs(_ context.Context, ids []int64) error {
	if len(ids) == 0 {
		return ErrEmptyIDs
	}
	return nil
}
