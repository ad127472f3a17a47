package tui

import (
	"fmt"
	"time"

	"github.com/d-code000/YetAnotherNote/models"
)

type listModel struct {
	notes   []models.Note
	idx     int
	loading bool
	status  string

	// mirrors of the controller's selection state, refreshed by the app
	// model after every selection change
	multiSelect bool
	selected    map[int64]struct{}
}

func newListModel() listModel {
	return listModel{loading: true, selected: make(map[int64]struct{})}
}

func (m listModel) current() (models.Note, bool) {
	if len(m.notes) == 0 || m.idx < 0 || m.idx >= len(m.notes) {
		return models.Note{}, false
	}
	return m.notes[m.idx], true
}

func (m *listModel) clampIdx() {
	if m.idx >= len(m.notes) {
		m.idx = len(m.notes) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func formatTimestamp(ms int64) string {
	return time.UnixMilli(ms).Format("02.01.2006 15:04")
}

func (m listModel) View() string {
	header := titleStyle.Render("YetAnotherNote")
	if m.multiSelect {
		header += fmt.Sprintf("  выбрано: %d", len(m.selected))
	}
	out := header + "\n\n"

	switch {
	case m.loading:
		out += "Загрузка...\n"
	case len(m.notes) == 0:
		out += "Нет заметок\n"
	default:
		for i, note := range m.notes {
			cursor := "  "
			if i == m.idx {
				cursor = "> "
			}

			marker := ""
			if m.multiSelect {
				if _, ok := m.selected[note.ID]; ok {
					marker = "[x] "
				} else {
					marker = "[ ] "
				}
			}

			line := fmt.Sprintf("%s%s%s  %s", cursor, marker, note.Title, helpStyle.Render(formatTimestamp(note.UpdatedAt)))
			if i == m.idx {
				line = selectedStyle.Render(line)
			}
			out += line + "\n"
		}
	}

	if m.status != "" {
		out += "\n" + m.status + "\n"
	}

	help := "n новая  v выбор  enter открыть  q выход"
	if m.multiSelect {
		help = "space отметить  ctrl+d удалить выбранные  esc отмена"
	}
	out += "\n" + helpStyle.Render(help)
	return out
}
