package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/d-code000/YetAnotherNote/models"
)

func ptr(v float64) *float64 { return &v }

func TestValidateNote(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	tests := []struct {
		name    string
		note    models.Note
		wantErr error
	}{
		{
			name: "valid note without coordinate",
			note: models.Note{Title: "список дел"},
		},
		{
			name: "valid note with coordinate",
			note: models.Note{Title: "кафе", Latitude: ptr(55.75), Longitude: ptr(37.61)},
		},
		{
			name:    "empty title",
			note:    models.Note{Title: ""},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "whitespace-only title",
			note:    models.Note{Title: "   \t"},
			wantErr: ErrEmptyTitle,
		},
		{
			name:    "latitude without longitude",
			note:    models.Note{Title: "x", Latitude: ptr(10)},
			wantErr: ErrBrokenCoordinate,
		},
		{
			name:    "longitude without latitude",
			note:    models.Note{Title: "x", Longitude: ptr(10)},
			wantErr: ErrBrokenCoordinate,
		},
		{
			name:    "latitude out of range",
			note:    models.Note{Title: "x", Latitude: ptr(91), Longitude: ptr(0)},
			wantErr: ErrLatitudeOutOfRange,
		},
		{
			name:    "longitude out of range",
			note:    models.Note{Title: "x", Latitude: ptr(0), Longitude: ptr(-181)},
			wantErr: ErrLongitudeOutOfRange,
		},
		{
			name: "boundary coordinate is valid",
			note: models.Note{Title: "x", Latitude: ptr(-90), Longitude: ptr(180)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(ctx, tt.note)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidateNote_FieldScoping(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	// broken coordinate but only the title is checked
	note := models.Note{Title: "x", Latitude: ptr(10)}
	if err := v.Validate(ctx, note, FieldTitle); err != nil {
		t.Fatalf("expected nil for title-only validation, got %v", err)
	}
}

func TestValidateIDs(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	if err := v.Validate(ctx, []int64{1, 2}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := v.Validate(ctx, []int64{}); !errors.Is(err, ErrEmptyIDs) {
		t.Fatalf("expected ErrEmptyIDs, got %v", err)
	}
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewNoteValidator()

	if err := v.Validate(context.Background(), 42); !errors.Is(err, ErrUnsupportedType) {
		t.Fatalf("expected ErrUnsupportedType, got %v", err)
	}
}
