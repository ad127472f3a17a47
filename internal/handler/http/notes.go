package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/d-code000/YetAnotherNote/internal/app"
	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/models"
)

// deleteNotesRequest is the body of POST /api/notes/delete.
type deleteNotesRequest struct {
	IDs []int64 `json:"ids"`
}

// countNotesResponse is the body of GET /api/notes/count.
type countNotesResponse struct {
	Count int64 `json:"count"`
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	notes, err := h.services.NoteService.ListNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.listNotes").Msg("error listing notes")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, notes, log)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Msg("invalid note id")
		http.Error(w, app.MsgInvalidNoteID, http.StatusBadRequest)
		return
	}

	note, err := h.services.NoteService.GetNote(r.Context(), id)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getNote").Int64("id", id).Msg("error getting note")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, note, log)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	created, err := h.services.NoteService.CreateNote(r.Context(), note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createNote").Msg("error creating note")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created, log)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("invalid note id")
		http.Error(w, app.MsgInvalidNoteID, http.StatusBadRequest)
		return
	}

	var note models.Note
	if err = json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	// the URL owns the identity, the body carries the content
	note.ID = id

	updated, err := h.services.NoteService.UpdateNote(r.Context(), note)
	if err != nil {
		log.Err(err).Str("func", "*Handler.updateNote").Int64("id", id).Msg("error updating note")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated, log)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	id, err := noteIDFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Msg("invalid note id")
		http.Error(w, app.MsgInvalidNoteID, http.StatusBadRequest)
		return
	}

	if err = h.services.NoteService.DeleteNote(r.Context(), id); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNote").Int64("id", id).Msg("error deleting note")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body deleteNotesRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNotes").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSONProvided, http.StatusBadRequest)
		return
	}

	if err := h.services.NoteService.DeleteNotes(r.Context(), body.IDs); err != nil {
		log.Err(err).Str("func", "*Handler.deleteNotes").Msg("error deleting notes")
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) countNotes(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	count, err := h.services.NoteService.CountNotes(r.Context())
	if err != nil {
		log.Err(err).Str("func", "*Handler.countNotes").Msg("error counting notes")
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, countNotesResponse{Count: count}, log)
}

func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

func writeJSON(w http.ResponseWriter, status int, payload any, log *logger.Logger) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Err(err).Str("func", "writeJSON").Msg("error encoding response body")
	}
}
