package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/internal/mock"
	"github.com/d-code000/YetAnotherNote/internal/service"
	"github.com/d-code000/YetAnotherNote/internal/store"
	"github.com/d-code000/YetAnotherNote/models"
)

func newTestHandler(t *testing.T) (*Handler, *mock.MockNoteService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mock.NewMockNoteService(ctrl)
	h := NewHandler(&service.Services{NoteService: svc}, logger.Nop())
	return h, svc
}

func doRequest(h *Handler, method, target string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// GET /api/notes
// ─────────────────────────────────────────────

func TestListNotes_ReturnsNotes(t *testing.T) {
	h, svc := newTestHandler(t)

	notes := []models.Note{
		{ID: 2, Title: "вторая", UpdatedAt: 200},
		{ID: 1, Title: "первая", UpdatedAt: 100},
	}
	svc.EXPECT().ListNotes(gomock.Any()).Return(notes, nil)

	rec := doRequest(h, http.MethodGet, "/api/notes/", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var got []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, notes, got)
}

func TestListNotes_StorageErrorIs500(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().ListNotes(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rec := doRequest(h, http.MethodGet, "/api/notes/", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/notes/{id}
// ─────────────────────────────────────────────

func TestGetNote_Success(t *testing.T) {
	h, svc := newTestHandler(t)

	note := models.Note{ID: 5, Title: "пятая"}
	svc.EXPECT().GetNote(gomock.Any(), int64(5)).Return(note, nil)

	rec := doRequest(h, http.MethodGet, "/api/notes/5", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, note, got)
}

func TestGetNote_NotFoundIs404(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().GetNote(gomock.Any(), int64(404)).Return(models.Note{}, store.ErrNoteNotFound)

	rec := doRequest(h, http.MethodGet, "/api/notes/404", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNote_NonNumericIDIs400(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodGet, "/api/notes/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/notes
// ─────────────────────────────────────────────

func TestCreateNote_Returns201WithAssignedID(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, note models.Note) (models.Note, error) {
			note.ID = 9
			return note, nil
		})

	body, _ := json.Marshal(models.Note{Title: "новая", Content: "текст"})
	rec := doRequest(h, http.MethodPost, "/api/notes/", body)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(9), got.ID)
}

func TestCreateNote_InvalidJSONIs400(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := doRequest(h, http.MethodPost, "/api/notes/", []byte("{broken"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateNote_ValidationErrorIs400(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		CreateNote(gomock.Any(), gomock.Any()).
		Return(models.Note{}, service.ErrInvalidDataProvided)

	body, _ := json.Marshal(models.Note{Title: ""})
	rec := doRequest(h, http.MethodPost, "/api/notes/", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// PUT /api/notes/{id}
// ─────────────────────────────────────────────

func TestUpdateNote_URLOverridesBodyID(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().
		UpdateNote(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, note models.Note) (models.Note, error) {
			assert.Equal(t, int64(3), note.ID)
			return note, nil
		})

	body, _ := json.Marshal(models.Note{ID: 99, Title: "правка"})
	rec := doRequest(h, http.MethodPut, "/api/notes/3", body)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/notes/{id} and POST /api/notes/delete
// ─────────────────────────────────────────────

func TestDeleteNote_Returns204(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().DeleteNote(gomock.Any(), int64(4)).Return(nil)

	rec := doRequest(h, http.MethodDelete, "/api/notes/4", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteNotes_Returns204(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().DeleteNotes(gomock.Any(), []int64{1, 2, 3}).Return(nil)

	body, _ := json.Marshal(deleteNotesRequest{IDs: []int64{1, 2, 3}})
	rec := doRequest(h, http.MethodPost, "/api/notes/delete", body)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteNotes_EmptySetIs400(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().DeleteNotes(gomock.Any(), gomock.Any()).Return(service.ErrInvalidDataProvided)

	body, _ := json.Marshal(deleteNotesRequest{})
	rec := doRequest(h, http.MethodPost, "/api/notes/delete", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// GET /api/notes/count
// ─────────────────────────────────────────────

func TestCountNotes_ReturnsCount(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().CountNotes(gomock.Any()).Return(int64(17), nil)

	rec := doRequest(h, http.MethodGet, "/api/notes/count", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var got countNotesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(17), got.Count)
}

// ─────────────────────────────────────────────
// middleware
// ─────────────────────────────────────────────

func TestTraceID_EchoesIncomingHeader(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().CountNotes(gomock.Any()).Return(int64(0), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/notes/count", nil)
	req.Header.Set(traceIDHeader, "trace-123")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, "trace-123", rec.Header().Get(traceIDHeader))
}

func TestTraceID_GeneratedWhenAbsent(t *testing.T) {
	h, svc := newTestHandler(t)

	svc.EXPECT().CountNotes(gomock.Any()).Return(int64(0), nil)

	rec := doRequest(h, http.MethodGet, "/api/notes/count", nil)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}
