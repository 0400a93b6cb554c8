package markdown

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogersnm/taskcli/internal/model"
)

const NoTasks = "No tasks found."

var (
	headerRowStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	borderStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	cellStyle      = lipgloss.NewStyle()
)

func RenderTaskTable(tasks []model.Task) string {
	if len(tasks) == 0 {
		return NoTasks
	}
	rows := make([][]string, len(tasks))
	for i, t := range tasks {
		rows[i] = []string{
			strconv.Itoa(t.ID),
			t.Description,
			string(t.Status),
			t.CreatedAt.String(),
			t.UpdatedAt.String(),
		}
	}
	return renderTable([]string{"ID", "Description", "Status", "Created", "Updated"}, rows, 2)
}

// RenderTaskLines prints one line per task in the classic task-cli format.
func RenderTaskLines(tasks []model.Task) string {
	if len(tasks) == 0 {
		return NoTasks
	}
	lines := make([]string, len(tasks))
	for i, t := range tasks {
		lines[i] = fmt.Sprintf("ID: %d, Description: %s, Status: %s, CreatedAt: %s, UpdatedAt: %s",
			t.ID, t.Description, t.Status, t.CreatedAt, t.UpdatedAt)
	}
	return strings.Join(lines, "\n")
}

func renderTable(headers []string, rows [][]string, statusCol int) string {
	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderStyle(style(borderStyle)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return style(headerRowStyle)
			}
			if col == statusCol && row >= 0 && row < len(rows) {
				return StatusStyle(model.Status(rows[row][col]))
			}
			return cellStyle
		})
	return t.Render()
}
