package tui

import (
	"github.com/d-code000/YetAnotherNote/models"
)

// notesUpdatedMsg carries a fresh snapshot of the note list from the
// controller's feed subscription.
type notesUpdatedMsg struct {
	notes []models.Note
}

// asyncErrMsg carries a background mutation failure from the controller.
type asyncErrMsg struct {
	err error
}

// coordinateMsg is the result of a one-shot location fetch.
type coordinateMsg struct {
	coordinate models.Coordinate
	err        error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
