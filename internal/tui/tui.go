package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-code000/YetAnotherNote/internal/controller"
	"github.com/d-code000/YetAnotherNote/internal/location"
	"github.com/d-code000/YetAnotherNote/internal/logger"
)

var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	controller *controller.Controller
	location   location.Provider
	logger     *logger.Logger
}

func New(ctrl *controller.Controller, loc location.Provider, log *logger.Logger) (*TUI, error) {
	if ctrl == nil {
		return nil, errors.New("controller is required")
	}
	if loc == nil {
		return nil, errors.New("location provider is required")
	}
	return &TUI{controller: ctrl, location: loc, logger: log}, nil
}

// Run drives the interactive session until the user quits. The note list
// subscription lives as long as the program does.
func (t *TUI) Run(ctx context.Context) error {
	notesCh, cancel := t.controller.Subscribe()
	defer cancel()

	model := newAppModel(ctx, t.controller, t.location, notesCh)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(appModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.err != nil && !errors.Is(result.err, ErrUserQuit) {
		return result.err
	}
	return nil
}
