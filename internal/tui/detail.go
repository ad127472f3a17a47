package tui

import (
	"fmt"

	"github.com/d-code000/YetAnotherNote/models"
)

type detailModel struct {
	note   models.Note
	status string
}

func coordinateLine(note models.Note) string {
	if coord, ok := note.Coordinate(); ok {
		return fmt.Sprintf("%.5f, %.5f", coord.Latitude, coord.Longitude)
	}
	return "—"
}

func (m detailModel) View() string {
	out := titleStyle.Render(m.note.Title) + "\n\n"
	out += m.note.Content + "\n\n"
	out += fmt.Sprintf("Создана:  %s\n", formatTimestamp(m.note.CreatedAt))
	out += fmt.Sprintf("Изменена: %s\n", formatTimestamp(m.note.UpdatedAt))
	out += fmt.Sprintf("Место:    %s\n", coordinateLine(m.note))

	out += "\n" + helpStyle.Render("e редакт.  ctrl+d удалить  c копир. текст  esc назад")

	if m.status != "" {
		out += "\n\n" + m.status
	}

	return out
}
