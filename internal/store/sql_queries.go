// SPDX-License-Identifier: Apache-2.0

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/d-code000/YetAnotherNote/models"
)

const notesTable = "notes"

// noteColumns is the canonical column order used by every SELECT and by
// scanNote.
var noteColumns = []string{
	"id",
	"title",
	"content",
	"created_at",
	"updated_at",
	"latitude",
	"longitude",
}

// upsertSuffix implements REPLACE-by-id semantics. The `excluded` pseudo-table
// is understood by both SQLite and PostgreSQL.
const upsertSuffix = `ON CONFLICT (id) DO UPDATE SET
		title      = excluded.title,
		content    = excluded.content,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at,
		latitude   = excluded.latitude,
		longitude  = excluded.longitude`

func (r *noteRepository) selectAllQuery() sq.SelectBuilder {
	return r.builder.
		Select(noteColumns...).
		From(notesTable).
		OrderBy("updated_at DESC", "id DESC")
}

func (r *noteRepository) selectByIDQuery(id int64) sq.SelectBuilder {
	return r.builder.
		Select(noteColumns...).
		From(notesTable).
		Where(sq.Eq{"id": id})
}

// insertQuery builds the INSERT for a fresh note (id assigned by the store)
// or the upsert for a note carrying an explicit id.
func (r *noteRepository) insertQuery(note models.Note) sq.InsertBuilder {
	if note.ID == 0 {
		return r.builder.
			Insert(notesTable).
			Columns(noteColumns[1:]...).
			Values(note.Title, note.Content, note.CreatedAt, note.UpdatedAt, note.Latitude, note.Longitude).
			Suffix("RETURNING id")
	}

	return r.builder.
		Insert(notesTable).
		Columns(noteColumns...).
		Values(note.ID, note.Title, note.Content, note.CreatedAt, note.UpdatedAt, note.Latitude, note.Longitude).
		Suffix(upsertSuffix).
		Suffix("RETURNING id")
}

func (r *noteRepository) updateQuery(note models.Note) sq.UpdateBuilder {
	return r.builder.
		Update(notesTable).
		Set("title", note.Title).
		Set("content", note.Content).
		Set("created_at", note.CreatedAt).
		Set("updated_at", note.UpdatedAt).
		Set("latitude", note.Latitude).
		Set("longitude", note.Longitude).
		Where(sq.Eq{"id": note.ID})
}

func (r *noteRepository) deleteByIDsQuery(ids []int64) sq.DeleteBuilder {
	return r.builder.
		Delete(notesTable).
		Where(sq.Eq{"id": ids})
}

func (r *noteRepository) countQuery() sq.SelectBuilder {
	return r.builder.
		Select("COUNT(*)").
		From(notesTable)
}
