package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/d-code000/YetAnotherNote/models"
)

const (
	formFocusTitle = iota
	formFocusContent
)

type formModel struct {
	title   textinput.Model
	content textarea.Model
	focus   int

	editing   bool
	noteID    int64
	createdAt int64

	latitude  *float64
	longitude *float64

	locStatus  string
	formErr    string
	submitting bool
}

// newFormModel builds the edit form. A nil note means "create a new one".
func newFormModel(note *models.Note) formModel {
	title := textinput.New()
	title.Width = 50
	title.Focus()

	content := textarea.New()
	content.SetWidth(50)
	content.SetHeight(8)

	m := formModel{title: title, content: content}
	if note == nil {
		return m
	}

	m.editing = true
	m.noteID = note.ID
	m.createdAt = note.CreatedAt
	m.latitude = note.Latitude
	m.longitude = note.Longitude
	m.title.SetValue(note.Title)
	m.content.SetValue(note.Content)
	return m
}

func (m formModel) toNote() models.Note {
	return models.Note{
		ID:        m.noteID,
		Title:     strings.TrimSpace(m.title.Value()),
		Content:   m.content.Value(),
		CreatedAt: m.createdAt,
		Latitude:  m.latitude,
		Longitude: m.longitude,
	}
}

func (m *formModel) setCoordinate(coord models.Coordinate) {
	lat, lon := coord.Latitude, coord.Longitude
	m.latitude = &lat
	m.longitude = &lon
	m.locStatus = fmt.Sprintf("Место: %.5f, %.5f", lat, lon)
}

func (m *formModel) clearCoordinate() {
	m.latitude = nil
	m.longitude = nil
	m.locStatus = ""
}

func (m formModel) View() string {
	title := "Новая заметка"
	if m.editing {
		title = "Редактирование: " + m.title.Value()
	}

	out := titleStyle.Render(title) + "\n\n"
	out += "Заголовок: " + m.title.View() + "\n\n"
	out += "Текст:\n" + m.content.View() + "\n"

	if m.locStatus != "" {
		out += "\n" + m.locStatus + "\n"
	} else if m.latitude != nil && m.longitude != nil {
		out += fmt.Sprintf("\nМесто: %.5f, %.5f\n", *m.latitude, *m.longitude)
	}

	if m.formErr != "" {
		out += "\n" + m.formErr + "\n"
	}

	out += "\n" + helpStyle.Render("ctrl+s сохранить  ctrl+g место  ctrl+x убрать место  tab поле  esc отмена")
	return out
}
