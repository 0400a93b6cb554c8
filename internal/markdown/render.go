package markdown

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rogersnm/taskcli/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	todoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	inProgStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	plainStyle  = lipgloss.NewStyle()
)

var colorEnabled = true

// SetColor turns ANSI styling on or off for everything this package renders.
func SetColor(enabled bool) {
	colorEnabled = enabled
}

func style(s lipgloss.Style) lipgloss.Style {
	if !colorEnabled {
		return plainStyle
	}
	return s
}

func RenderMarkdown(content string) (string, error) {
	opt := glamour.WithAutoStyle()
	if !colorEnabled {
		opt = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(opt, glamour.WithWordWrap(80))
	if err != nil {
		return "", fmt.Errorf("creating renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}

func StatusStyle(status model.Status) lipgloss.Style {
	switch status {
	case model.StatusDone:
		return style(doneStyle)
	case model.StatusInProgress:
		return style(inProgStyle)
	default:
		return style(todoStyle)
	}
}

func RenderStatus(status model.Status) string {
	return StatusStyle(status).Render(string(status))
}

func RenderField(label, value string) string {
	return style(labelStyle).Render(label+":") + " " + value
}

func RenderEntityHeader(title string, fields []string) string {
	var sb strings.Builder
	sb.WriteString(style(headerStyle).Render(title))
	sb.WriteString("\n")
	for _, f := range fields {
		sb.WriteString("  " + f + "\n")
	}
	return sb.String()
}

// RenderTask is the `show` view of a single task.
func RenderTask(t *model.Task) string {
	return RenderEntityHeader(fmt.Sprintf("Task %d", t.ID), []string{
		RenderField("Status", RenderStatus(t.Status)),
		RenderField("Created", t.CreatedAt.String()),
		RenderField("Updated", t.UpdatedAt.String()),
	})
}
