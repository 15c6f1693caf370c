package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"todopane/pkg/render"
)

// View renders the UI based on the current mode
func (m Model) View() string {
	var sb strings.Builder

	if !m.loaded {
		return "Loading tasks...\n"
	}

	switch m.mode {
	case NormalMode, DragMode, SearchMode, EditMode:
		sb.WriteString(m.renderer.Header(m.frame))
		sb.WriteString("\n\n")

		if m.mode == SearchMode {
			sb.WriteString(m.searchInput.View())
			sb.WriteString("\n\n")
		}

		sb.WriteString(m.renderer.Rows(m.frame, render.ViewState{
			CursorID:   m.selectedID(),
			DraggingID: m.drag.DraggedID(),
		}))
		sb.WriteString("\n")

		if m.mode == EditMode {
			sb.WriteString("\nEdit text:\n")
			sb.WriteString(m.editInput.View())
			sb.WriteString("\n")
		}

		if m.filter != "" && m.mode != SearchMode {
			sb.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(m.styles.NormalTextColor)).
				Render(fmt.Sprintf("\nsearch filter: %s", m.filter)))
			sb.WriteString("\n")
		}

	case AddMode:
		sb.WriteString(m.titleBar(" Add New Task ", m.styles.AccentColor))
		sb.WriteString("\n\n")
		sb.WriteString(m.renderForm())

	case DeleteConfirmMode:
		sb.WriteString(m.titleBar(" Delete Task ", m.styles.ErrorColor))
		sb.WriteString("\n\n")

		if t, ok := m.list.Find(m.editingID); ok {
			sb.WriteString("Are you sure you want to delete this task?\n\n")
			sb.WriteString(fmt.Sprintf("Text: %s\n", t.Text))
			sb.WriteString(fmt.Sprintf("Priority: %s\n", t.Priority))
			sb.WriteString("\n")
			sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Press Y to confirm, N to cancel"))
		}

	case HelpViewMode:
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Available Commands"))
		sb.WriteString("\n\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.AccentColor)).
			Bold(true)
		descStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.NormalTextColor))

		addCommand := func(binding key.Binding) {
			sb.WriteString(fmt.Sprintf("%s: %s\n",
				descStyle.Render(binding.Help().Desc),
				keyStyle.Render(binding.Help().Key)))
		}

		addCommand(m.keyMap.QuitApp)
		addCommand(m.keyMap.ShowHelp)
		addCommand(m.keyMap.ToggleStatus)
		addCommand(m.keyMap.AddTask)
		addCommand(m.keyMap.EditTask)
		addCommand(m.keyMap.DeleteTask)
		addCommand(m.keyMap.SearchTasks)
		addCommand(m.keyMap.ClearSearch)

		sb.WriteString("\n")
		sb.WriteString(lipgloss.NewStyle().Bold(true).Render("Reordering"))
		sb.WriteString("\n\n")
		addCommand(m.keyMap.GrabTask)
		addCommand(m.keyMap.CursorUp)
		addCommand(m.keyMap.CursorDown)
		addCommand(m.keyMap.DropTask)
		addCommand(m.keyMap.CancelDrag)
	}

	// Error message if any
	if m.err != nil {
		sb.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.styles.ErrorColor)).
			Render(fmt.Sprintf("\nError: %v", m.err)))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.helpBar())

	return sb.String()
}

func (m Model) titleBar(title, bg string) string {
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.styles.SelectedTextColor)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render(title)
}

// helpBar renders a status bar with available actions
func (m Model) helpBar() string {
	var actions []string

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.AccentColor)).
		Bold(true)
	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.NormalTextColor))
	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.styles.BorderColor)).
		Render(" • ")

	addAction := func(k, desc string) {
		actions = append(actions, fmt.Sprintf("%s %s", keyStyle.Render(k), descStyle.Render(desc)))
	}
	addBinding := func(b key.Binding, desc string) {
		addAction(b.Help().Key, desc)
	}

	switch m.mode {
	case NormalMode:
		addBinding(m.keyMap.AddTask, "add")
		addBinding(m.keyMap.EditTask, "edit")
		addBinding(m.keyMap.DeleteTask, "del")
		addBinding(m.keyMap.ToggleStatus, "toggle")
		addBinding(m.keyMap.GrabTask, "move")
		addBinding(m.keyMap.SearchTasks, "search")
		addBinding(m.keyMap.ShowHelp, "help")
		addBinding(m.keyMap.QuitApp, "quit")

	case DragMode:
		addAction("↑↓", "choose position")
		addBinding(m.keyMap.DropTask, "drop")
		addBinding(m.keyMap.CancelDrag, "release")

	case AddMode:
		addAction("tab", "next field")
		addAction("enter", "save")
		addAction("esc", "cancel")

	case EditMode:
		addAction("enter", "save")
		addAction("esc", "discard")

	case DeleteConfirmMode:
		addAction("y", "confirm")
		addAction("n", "cancel")

	case SearchMode:
		addAction("enter", "keep filter")
		addAction("esc", "clear")

	case HelpViewMode:
		addAction("esc", "back")
		addBinding(m.keyMap.QuitApp, "quit")
	}

	return strings.Join(actions, separator)
}

// renderForm renders the input form for adding tasks
func (m Model) renderForm() string {
	var sb strings.Builder

	sb.WriteString("Task:\n")
	sb.WriteString(m.textInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Priority:\n")
	sb.WriteString(m.priorityInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Due Date (YYYY-MM-DD):\n")
	sb.WriteString(m.dueInput.View())
	sb.WriteString("\n\n")

	sb.WriteString("Category:\n")
	sb.WriteString(m.categoryInput.View())

	return sb.String()
}
