package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/d-code000/YetAnotherNote/internal/controller"
	"github.com/d-code000/YetAnotherNote/internal/location"
	"github.com/d-code000/YetAnotherNote/models"
)

type screen int

const (
	screenList screen = iota
	screenDetail
	screenEdit
)

type pendingDelete int

const (
	pendingNone pendingDelete = iota
	pendingOne
	pendingSelected
)

type appModel struct {
	ctx        context.Context
	controller *controller.Controller
	location   location.Provider

	notesCh <-chan []models.Note

	currentScreen screen
	list          listModel
	detail        detailModel
	form          formModel

	showError    bool
	errorOverlay errorOverlayModel

	showConfirm     bool
	confirm         confirmModel
	pendingDelete   pendingDelete
	pendingDeleteID int64

	err error
}

func newAppModel(ctx context.Context, ctrl *controller.Controller, loc location.Provider, notesCh <-chan []models.Note) appModel {
	return appModel{
		ctx:           ctx,
		controller:    ctrl,
		location:      loc,
		notesCh:       notesCh,
		currentScreen: screenList,
		list:          newListModel(),
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(cmdWaitNotes(m.notesCh), m.cmdWaitError())
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				return m.confirmDelete()
			}
			if key.Matches(msg, keys.no) || key.Matches(msg, keys.esc) {
				m.showConfirm = false
				m.pendingDelete = pendingNone
			}
			return m, nil
		}
	case notesUpdatedMsg:
		return m.applyNotes(msg.notes)
	case asyncErrMsg:
		m.form.submitting = false
		m.showErrorf(msg.err.Error())
		return m, m.cmdWaitError()
	case coordinateMsg:
		if m.currentScreen == screenEdit {
			if msg.err != nil {
				m.form.locStatus = locationErrorMessage(msg.err)
			} else {
				m.form.setCoordinate(msg.coordinate)
			}
		}
		return m, nil
	case copiedMsg:
		if m.currentScreen == screenDetail {
			m.detail.status = "Скопировано!"
		}
		m.list.status = "Скопировано!"
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.detail.status = ""
		m.list.status = ""
		return m, nil
	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenList:
		return m.updateList(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenEdit:
		return m.updateEdit(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	var body string
	switch m.currentScreen {
	case screenList:
		body = m.list.View()
	case screenDetail:
		body = m.detail.View()
	case screenEdit:
		body = m.form.View()
	}

	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

// applyNotes installs a fresh snapshot from the feed and keeps the open
// detail screen consistent with it. The selection mirror is refreshed too:
// a successful batch delete exits multi-select on the controller's
// goroutine, and the snapshot emission is the first moment the UI loop
// observes that.
func (m appModel) applyNotes(notes []models.Note) (tea.Model, tea.Cmd) {
	m.list.loading = false
	m.list.notes = notes
	m.list.clampIdx()
	m.syncSelection()

	if m.currentScreen == screenDetail {
		refreshed := false
		for _, note := range notes {
			if note.ID == m.detail.note.ID {
				m.detail.note = note
				refreshed = true
				break
			}
		}
		// the open note was deleted under us
		if !refreshed {
			m.currentScreen = screenList
		}
	}

	return m, cmdWaitNotes(m.notesCh)
}

func (m appModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.controller.InMultiSelect() {
		return m.updateListMultiSelect(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.detail = detailModel{note: note}
		m.currentScreen = screenDetail
	case key.Matches(keyMsg, keys.newNote):
		m.form = newFormModel(nil)
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.multiSelect):
		if len(m.list.notes) == 0 {
			return m, nil
		}
		m.controller.EnterMultiSelect()
		m.syncSelection()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateListMultiSelect(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.list.idx > 0 {
			m.list.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.list.idx < len(m.list.notes)-1 {
			m.list.idx++
		}
	case key.Matches(keyMsg, keys.toggle):
		note, ok := m.list.current()
		if !ok {
			return m, nil
		}
		m.controller.ToggleSelection(note.ID)
		m.syncSelection()
	case key.Matches(keyMsg, keys.delete):
		count := m.controller.SelectionCount()
		if count == 0 {
			return m, nil
		}
		m.showConfirm = true
		m.confirm.message = fmt.Sprintf("выбранные заметки (%d)", count)
		m.pendingDelete = pendingSelected
	case key.Matches(keyMsg, keys.esc):
		m.controller.ExitMultiSelect()
		m.syncSelection()
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.currentScreen = screenList
	case key.Matches(keyMsg, keys.edit):
		note := m.detail.note
		m.form = newFormModel(&note)
		m.currentScreen = screenEdit
	case key.Matches(keyMsg, keys.delete):
		m.showConfirm = true
		m.confirm.message = "\"" + m.detail.note.Title + "\""
		m.pendingDelete = pendingOne
		m.pendingDeleteID = m.detail.note.ID
	case key.Matches(keyMsg, keys.copy):
		if m.detail.note.Content == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.detail.note.Content)
	case key.Matches(keyMsg, keys.quit):
		m.err = ErrUserQuit
		return m, tea.Quit
	}

	return m, nil
}

func (m appModel) updateEdit(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.currentScreen = backFromForm(m.form.editing)
			return m, nil
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.backtab):
			m.form = switchFormFocus(m.form)
			return m, nil
		case key.Matches(keyMsg, keys.save):
			return m.saveForm()
		case key.Matches(keyMsg, keys.location):
			m.form.locStatus = "Определение местоположения..."
			return m, m.cmdFetchLocation()
		case key.Matches(keyMsg, keys.clearCoord):
			m.form.clearCoordinate()
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.form.focus == formFocusTitle {
		m.form.title, cmd = m.form.title.Update(msg)
	} else {
		m.form.content, cmd = m.form.content.Update(msg)
	}
	return m, cmd
}

// saveForm validates and dispatches the pending note. The mutation itself is
// asynchronous: the list refreshes through the feed once it lands, failures
// surface through the controller's error channel.
func (m appModel) saveForm() (tea.Model, tea.Cmd) {
	if m.form.submitting {
		return m, nil
	}
	if strings.TrimSpace(m.form.title.Value()) == "" {
		m.form.formErr = "Заголовок не может быть пустым"
		return m, nil
	}

	m.form.submitting = true
	note := m.form.toNote()
	if m.form.editing {
		m.controller.UpdateNote(m.ctx, note)
		m.currentScreen = screenDetail
		m.detail.note = note
	} else {
		m.controller.CreateNote(m.ctx, note)
		m.currentScreen = screenList
	}

	return m, nil
}

func (m appModel) confirmDelete() (tea.Model, tea.Cmd) {
	switch m.pendingDelete {
	case pendingOne:
		m.controller.DeleteNote(m.ctx, m.pendingDeleteID)
		m.currentScreen = screenList
	case pendingSelected:
		m.controller.DeleteSelected(m.ctx)
		m.syncSelection()
	}
	m.pendingDelete = pendingNone
	m.pendingDeleteID = 0
	return m, nil
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) syncSelection() {
	m.list.multiSelect = m.controller.InMultiSelect()
	selected := make(map[int64]struct{})
	for _, id := range m.controller.SelectedIDs() {
		selected[id] = struct{}{}
	}
	m.list.selected = selected
}

func (m appModel) cmdWaitError() tea.Cmd {
	errs := m.controller.Errors()
	return func() tea.Msg {
		err, ok := <-errs
		if !ok {
			return nil
		}
		return asyncErrMsg{err: err}
	}
}

func (m appModel) cmdFetchLocation() tea.Cmd {
	ctx := m.ctx
	provider := m.location
	return func() tea.Msg {
		coord, err := provider.CurrentCoordinate(ctx)
		return coordinateMsg{coordinate: coord, err: err}
	}
}

func cmdWaitNotes(ch <-chan []models.Note) tea.Cmd {
	return func() tea.Msg {
		notes, ok := <-ch
		if !ok {
			return nil
		}
		return notesUpdatedMsg{notes: notes}
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(text); err != nil {
			return asyncErrMsg{err: fmt.Errorf("копирование в буфер обмена: %w", err)}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func locationErrorMessage(err error) string {
	if errors.Is(err, location.ErrPermissionDenied) {
		return "Нет разрешения на доступ к местоположению"
	}
	return "Не удалось определить местоположение"
}

func switchFormFocus(m formModel) formModel {
	if m.focus == formFocusTitle {
		m.title.Blur()
		m.content.Focus()
		m.focus = formFocusContent
	} else {
		m.content.Blur()
		m.title.Focus()
		m.focus = formFocusTitle
	}
	return m
}

func backFromForm(editing bool) screen {
	if editing {
		return screenDetail
	}
	return screenList
}
