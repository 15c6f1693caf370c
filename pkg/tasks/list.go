package tasks

import (
	"strings"

	"todopane/pkg/utils"
)

// List is the ordered, in-memory working set of tasks.
// Operations on unknown ids are silent no-ops and report false.
type List struct {
	items []Task
}

// NewList creates a list holding a copy of items
func NewList(items []Task) *List {
	l := &List{}
	l.Replace(items)
	return l
}

// Replace swaps the whole list, dropping tasks whose id repeats an earlier one
func (l *List) Replace(items []Task) {
	seen := make(map[string]bool, len(items))
	l.items = make([]Task, 0, len(items))
	for _, t := range items {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		l.items = append(l.items, t)
	}
}

// Snapshot returns a copy of the current tasks in order
func (l *List) Snapshot() []Task {
	out := make([]Task, len(l.items))
	copy(out, l.items)
	return out
}

// Len returns the number of tasks
func (l *List) Len() int {
	return len(l.items)
}

// Index returns the position of the task with the given id, or -1
func (l *List) Index(id string) int {
	for i := range l.items {
		if l.items[i].ID == id {
			return i
		}
	}
	return -1
}

// Find returns the task with the given id
func (l *List) Find(id string) (Task, bool) {
	i := l.Index(id)
	if i < 0 {
		return Task{}, false
	}
	return l.items[i], true
}

// Add appends a new task. Text that is blank after trimming is ignored.
func (l *List) Add(text string, priority Priority, due, category string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	t := NewTask(text, priority, due, category)
	l.items = append(l.items, t)
	utils.Log("Added task %s (%s)", t.ID, t.Priority)
	return t, true
}

// Toggle flips the done flag
func (l *List) Toggle(id string) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	l.items[i].Done = !l.items[i].Done
	return true
}

// Delete removes the task
func (l *List) Delete(id string) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	l.items = append(l.items[:i], l.items[i+1:]...)
	utils.Log("Deleted task %s", id)
	return true
}

// EditText replaces the text of the task. The text is stored as given.
func (l *List) EditText(id, text string) bool {
	i := l.Index(id)
	if i < 0 {
		return false
	}
	l.items[i].Text = text
	return true
}

// Reorder moves fromID to the index currently held by toID. The task is
// removed first and then inserted at toID's original index.
func (l *List) Reorder(fromID, toID string) bool {
	if fromID == toID {
		return false
	}
	from, to := l.Index(fromID), l.Index(toID)
	if from < 0 || to < 0 {
		return false
	}

	moved := l.items[from]
	l.items = append(l.items[:from], l.items[from+1:]...)
	l.items = append(l.items[:to], append([]Task{moved}, l.items[to:]...)...)

	utils.Log("Moved task %s from %d to %d", fromID, from, to)
	return true
}
