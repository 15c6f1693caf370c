package ui

import (
	"fmt"
	"strings"
	"time"

	"todopane/pkg/tasks"
	"todopane/pkg/utils"
)

// focusInput focuses the active form field and blurs the rest
func (m *Model) focusInput() {
	m.textInput.Blur()
	m.priorityInput.Blur()
	m.dueInput.Blur()
	m.categoryInput.Blur()

	switch m.activeInput {
	case fieldText:
		m.textInput.Focus()
	case fieldPriority:
		m.priorityInput.Focus()
	case fieldDue:
		m.dueInput.Focus()
	case fieldCategory:
		m.categoryInput.Focus()
	}
}

// focusNextInput cycles through the form inputs
func (m *Model) focusNextInput() {
	m.activeInput = (m.activeInput + 1) % fieldCount
	m.focusInput()
}

// focusPreviousInput cycles backwards through the form inputs
func (m *Model) focusPreviousInput() {
	m.activeInput = (m.activeInput + fieldCount - 1) % fieldCount
	m.focusInput()
}

// submitForm adds the task described by the form. Blank text is ignored.
func (m *Model) submitForm() {
	text := m.textInput.Value()
	due := strings.TrimSpace(m.dueInput.Value())
	category := m.categoryInput.Value()

	priority, ok := lookupPriority(m.priorityInput.Value())
	if !ok {
		m.err = fmt.Errorf("invalid priority: use %s", priorityChoices())
		return
	}
	if due != "" {
		if _, err := time.Parse(tasks.DateLayout, due); err != nil {
			m.err = fmt.Errorf("invalid date format: use YYYY-MM-DD")
			return
		}
	}

	if t, ok := m.list.Add(text, priority, due, category); ok {
		m.commit()
		m.selectID(t.ID)
	}

	m.err = nil
	m.mode = NormalMode
	m.resetInputs()
}

// lookupPriority matches s against the known priorities; blank means low
func lookupPriority(s string) (tasks.Priority, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return tasks.PriorityLow, true
	}
	for _, p := range tasks.Priorities {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

func priorityChoices() string {
	names := make([]string, len(tasks.Priorities))
	for i, p := range tasks.Priorities {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

// startEdit opens the selected task's text for editing
func (m *Model) startEdit() {
	id := m.selectedID()
	t, ok := m.list.Find(id)
	if !ok {
		return
	}
	m.mode = EditMode
	m.editingID = id
	m.originalText = t.Text
	m.editInput.SetValue(t.Text)
	m.editInput.CursorEnd()
	m.editInput.Focus()
}

// applyEdit mirrors the input into the task; keystrokes are not persisted
func (m *Model) applyEdit() {
	if m.list.EditText(m.editingID, m.editInput.Value()) {
		m.rerender()
	}
}

// finishEdit leaves edit mode. Committed edits are persisted once; cancelled
// or blank edits restore the original text.
func (m *Model) finishEdit(keep bool) {
	if keep && strings.TrimSpace(m.editInput.Value()) == "" {
		utils.Log("Discarding blank edit of task %s", m.editingID)
		keep = false
	}
	if keep {
		if _, ok := m.list.Find(m.editingID); ok {
			utils.Log("Committed edit of task %s", m.editingID)
			m.persist()
		}
	} else {
		m.list.EditText(m.editingID, m.originalText)
	}
	m.editInput.Blur()
	m.editingID = ""
	m.originalText = ""
	m.mode = NormalMode
	m.rerender()
}

// toggleSelected flips the selected task
func (m *Model) toggleSelected() {
	if m.list.Toggle(m.selectedID()) {
		m.commit()
	}
}

// deleteTask removes the task and keeps the cursor in range
func (m *Model) deleteTask(id string) {
	if m.list.Delete(id) {
		m.commit()
	}
}

// startDrag grabs the selected task
func (m *Model) startDrag() {
	id := m.selectedID()
	if id == "" || m.drag.State() == tasks.DragActive {
		return
	}
	m.drag.Start(id)
	m.mode = DragMode
	utils.Log("Drag started on %s", id)
	m.rerender()
}

// hover reports the row under the cursor to the drag gesture
func (m *Model) hover() {
	if m.drag.Over(m.list, m.selectedID()) {
		m.rerender()
	}
}

// dropOn reorders the dragged task onto the hovered row, then ends the gesture
func (m *Model) dropOn(id string) {
	m.drag.Drop(m.list, id)
	m.endDrag()
}

// endDrag always runs when a gesture finishes. It is the only place a
// reorder is persisted.
func (m *Model) endDrag() {
	dragged := m.drag.DraggedID()
	m.drag.End()
	m.mode = NormalMode
	m.commit()
	m.selectID(dragged)
	utils.Log("Drag ended on %s", dragged)
}

// moveCursor shifts the cursor by delta within the visible rows
func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}
