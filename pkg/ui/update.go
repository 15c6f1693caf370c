package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"todopane/pkg/utils"
)

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case loadedMsg:
		m.load(msg.items)
		return m, nil

	case bridgeErrMsg:
		utils.Log("Load failed: %v", msg.err)
		m.err = msg.err
		m.loaded = true
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.editInput.Width = msg.Width - 10
		return m, nil

	case tea.KeyMsg:
		if !m.loaded {
			if key.Matches(msg, m.keyMap.QuitApp) {
				return m, tea.Quit
			}
			return m, nil
		}

		switch m.mode {
		case NormalMode:
			return m.updateNormal(msg)

		case DragMode:
			return m.updateDrag(msg)

		case AddMode:
			switch msg.String() {
			case "esc":
				m.mode = NormalMode
				m.err = nil
				m.resetInputs()
				return m, nil

			case "tab":
				m.focusNextInput()
				return m, nil

			case "shift+tab":
				m.focusPreviousInput()
				return m, nil

			case "enter":
				m.submitForm()
				return m, nil
			}

			// Handle input updates
			switch m.activeInput {
			case fieldText:
				m.textInput, cmd = m.textInput.Update(msg)
			case fieldPriority:
				m.priorityInput, cmd = m.priorityInput.Update(msg)
			case fieldDue:
				m.dueInput, cmd = m.dueInput.Update(msg)
			case fieldCategory:
				m.categoryInput, cmd = m.categoryInput.Update(msg)
			}
			return m, cmd

		case EditMode:
			switch msg.String() {
			case "esc":
				m.finishEdit(false)
				return m, nil
			case "enter":
				m.finishEdit(true)
				return m, nil
			}
			m.editInput, cmd = m.editInput.Update(msg)
			m.applyEdit()
			return m, cmd

		case SearchMode:
			switch msg.String() {
			case "esc":
				// Leave search mode and drop the filter
				m.mode = NormalMode
				m.filter = ""
				m.searchInput.SetValue("")
				m.searchInput.Blur()
				m.rerender()
				return m, nil

			case "enter":
				utils.Log("Searching for: %s", m.filter)
				m.mode = NormalMode
				m.searchInput.Blur()
				return m, nil
			}

			// Filter live as the user types
			m.searchInput, cmd = m.searchInput.Update(msg)
			m.filter = m.searchInput.Value()
			m.cursor = 0
			m.rerender()
			return m, cmd

		case DeleteConfirmMode:
			switch msg.String() {
			case "y", "Y":
				if m.editingID != "" {
					m.deleteTask(m.editingID)
				}
				m.mode = NormalMode
				m.editingID = ""

			case "n", "N", "esc":
				m.mode = NormalMode
				m.editingID = ""
			}
			return m, nil

		case HelpViewMode:
			switch {
			case key.Matches(msg, m.keyMap.QuitApp):
				return m, tea.Quit
			case msg.String() == "esc", key.Matches(msg, m.keyMap.ShowHelp):
				m.mode = NormalMode
			}
			return m, nil
		}
	}

	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.QuitApp):
		return m, tea.Quit

	case key.Matches(msg, m.keyMap.ShowHelp):
		m.mode = HelpViewMode

	case key.Matches(msg, m.keyMap.CursorUp):
		m.moveCursor(-1)

	case key.Matches(msg, m.keyMap.CursorDown):
		m.moveCursor(1)

	case key.Matches(msg, m.keyMap.ToggleStatus):
		m.toggleSelected()

	case key.Matches(msg, m.keyMap.AddTask):
		m.mode = AddMode
		m.err = nil
		m.resetInputs()
		return m, nil

	case key.Matches(msg, m.keyMap.EditTask):
		m.startEdit()

	case key.Matches(msg, m.keyMap.DeleteTask):
		if id := m.selectedID(); id != "" {
			m.mode = DeleteConfirmMode
			m.editingID = id
		}

	case key.Matches(msg, m.keyMap.SearchTasks):
		m.mode = SearchMode
		m.searchInput.SetValue(m.filter)
		m.searchInput.CursorEnd()
		m.searchInput.Focus()

	case key.Matches(msg, m.keyMap.ClearSearch):
		m.filter = ""
		m.searchInput.SetValue("")
		m.rerender()

	case key.Matches(msg, m.keyMap.GrabTask):
		m.startDrag()
	}

	return m, nil
}

func (m Model) updateDrag(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keyMap.CursorUp):
		m.moveCursor(-1)
		m.hover()

	case key.Matches(msg, m.keyMap.CursorDown):
		m.moveCursor(1)
		m.hover()

	case key.Matches(msg, m.keyMap.DropTask):
		m.dropOn(m.selectedID())

	case key.Matches(msg, m.keyMap.CancelDrag):
		m.endDrag()

	case key.Matches(msg, m.keyMap.QuitApp):
		m.endDrag()
		return m, tea.Quit
	}

	return m, nil
}
