package http

import (
	"errors"
	"net/http"

	"github.com/d-code000/YetAnotherNote/internal/service"
	"github.com/d-code000/YetAnotherNote/internal/store"
	"github.com/d-code000/YetAnotherNote/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	validators.ErrEmptyTitle:          http.StatusBadRequest,
	validators.ErrBrokenCoordinate:    http.StatusBadRequest,
	validators.ErrLatitudeOutOfRange:  http.StatusBadRequest,
	validators.ErrLongitudeOutOfRange: http.StatusBadRequest,
	validators.ErrEmptyIDs:            http.StatusBadRequest,

	store.ErrNoteNotFound: http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFromError(err))
}
