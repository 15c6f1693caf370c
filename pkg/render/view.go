package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"todopane/pkg/config"
	"todopane/pkg/tasks"
)

const (
	dragHandle     = "≡"
	progressWidth  = 30
	placeholderBar = "┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈┈"
)

// Renderer draws frames with a color scheme
type Renderer struct {
	styles config.Styles
}

func NewRenderer(styles config.Styles) Renderer {
	return Renderer{styles: styles}
}

// ViewState carries the interaction state that affects drawing
type ViewState struct {
	CursorID   string
	DraggingID string
}

// Header renders the title, completion label and progress bar
func (r Renderer) Header(f Frame) string {
	var sb strings.Builder

	sb.WriteString(lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(r.styles.SelectedTextColor)).
		Background(lipgloss.Color(r.styles.AccentColor)).
		Padding(0, 1).
		Render(" To-Do List "))
	sb.WriteString("  ")
	sb.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(r.styles.NormalTextColor)).
		Render(f.Stats.Label() + " completed"))
	sb.WriteString("\n")
	sb.WriteString(r.progressBar(f.Stats.Percent))
	return sb.String()
}

func (r Renderer) progressBar(percent int) string {
	filled := progressWidth * percent / 100
	if filled > progressWidth {
		filled = progressWidth
	}
	bar := lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.AccentColor)).
		Render(strings.Repeat("█", filled))
	rest := lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.BorderColor)).
		Render(strings.Repeat("░", progressWidth-filled))
	return fmt.Sprintf("%s%s %3d%%", bar, rest, percent)
}

// Rows renders each row on its own line
func (r Renderer) Rows(f Frame, vs ViewState) string {
	if len(f.Rows) == 0 {
		msg := "No tasks yet. Press a to add one."
		if f.Filter != "" {
			msg = fmt.Sprintf("No tasks match %q.", f.Filter)
		}
		return lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.BorderColor)).Italic(true).Render(msg)
	}

	lines := make([]string, 0, len(f.Rows))
	for _, row := range f.Rows {
		lines = append(lines, r.Row(row, vs))
	}
	return strings.Join(lines, "\n")
}

// Row renders a single row: handle, checkbox, text and chips
func (r Renderer) Row(row Row, vs ViewState) string {
	if row.Placeholder {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.AccentColor)).Render("  " + placeholderBar)
	}

	handle := lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.BorderColor)).Render(dragHandle)
	if row.ID == vs.DraggingID {
		handle = lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.AccentColor)).Bold(true).Render(dragHandle)
	}

	checkbox := "[ ]"
	if row.Done {
		checkbox = "[x]"
	}

	textStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(r.styles.NormalTextColor))
	if row.Done {
		textStyle = textStyle.Foreground(lipgloss.Color(r.styles.DoneTextColor)).Strikethrough(true)
	}
	if row.Overdue {
		textStyle = textStyle.Foreground(lipgloss.Color(r.styles.OverdueColor))
	}

	parts := []string{handle, checkbox, textStyle.Render(row.Text)}
	for _, c := range row.Chips {
		parts = append(parts, r.chip(c))
	}
	line := strings.Join(parts, " ")

	switch {
	case row.ID == vs.DraggingID:
		line = lipgloss.NewStyle().Faint(true).Render(line)
	case row.ID == vs.CursorID:
		line = lipgloss.NewStyle().
			Background(lipgloss.Color(r.styles.SelectedBgColor)).
			Bold(true).
			Render(line)
	}
	return line
}

func (r Renderer) chip(c Chip) string {
	style := lipgloss.NewStyle().Padding(0, 1)
	switch c.Kind {
	case PriorityChip:
		style = style.Foreground(lipgloss.Color(r.priorityColor(tasks.Priority(c.Label))))
	case CategoryChip:
		style = style.Foreground(lipgloss.Color(r.styles.CategoryColor))
	case DueChip:
		style = style.Foreground(lipgloss.Color(r.styles.DueColor))
		if c.Overdue {
			style = style.Foreground(lipgloss.Color(r.styles.OverdueColor)).Bold(true)
		}
	}
	return style.Render("(" + c.Label + ")")
}

func (r Renderer) priorityColor(p tasks.Priority) string {
	switch p {
	case tasks.PriorityHigh:
		return r.styles.HighColor
	case tasks.PriorityMedium:
		return r.styles.MediumColor
	default:
		return r.styles.LowColor
	}
}
