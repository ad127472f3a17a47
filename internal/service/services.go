package service

import (
	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/internal/store"
)

type Services struct {
	NoteService NoteService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		NoteService: NewNoteService(storages.Notes, storages.Feed, logger),
	}
}
