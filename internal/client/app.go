package client

import (
	"context"
	"fmt"

	"github.com/d-code000/YetAnotherNote/internal/config"
	"github.com/d-code000/YetAnotherNote/internal/controller"
	"github.com/d-code000/YetAnotherNote/internal/location"
	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/internal/service"
	"github.com/d-code000/YetAnotherNote/internal/store"
	"github.com/d-code000/YetAnotherNote/internal/tui"
)

type App struct {
	storages   *store.Storages
	controller *controller.Controller
	tui        *tui.TUI
	logger     *logger.Logger
}

// NewApp assembles the whole client from its configuration: local SQLite
// storage with migrations applied, the note service, the state controller,
// the location provider, and the terminal UI on top.
func NewApp(cfg *config.ClientConfig, log *logger.Logger) (*App, error) {
	ctx := context.Background()

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	noteService := service.NewNoteService(storages.Notes, storages.Feed, log)
	ctrl := controller.NewController(noteService, cfg.App, log)

	locationProvider, err := location.NewHTTPProvider(cfg.Location, log)
	if err != nil {
		return nil, fmt.Errorf("create location provider: %w", err)
	}

	ui, err := tui.New(ctrl, locationProvider, log)
	if err != nil {
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		storages:   storages,
		controller: ctrl,
		tui:        ui,
		logger:     log,
	}, nil
}

// Run drives the interactive session and releases resources on exit.
func (a *App) Run() error {
	ctx := context.Background()

	defer func() {
		a.controller.Close()
		if err := a.storages.DB.Close(); err != nil {
			a.logger.Err(err).Msg("error closing database")
		}
	}()

	return a.tui.Run(ctx)
}
