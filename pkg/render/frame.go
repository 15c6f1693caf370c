// Package render turns a task list and a search filter into display rows.
// Building a frame is pure; styling happens in View.
package render

import (
	"strings"

	"todopane/pkg/tasks"
)

// ChipKind identifies the label attached to a row
type ChipKind int

const (
	PriorityChip ChipKind = iota
	CategoryChip
	DueChip
)

// Chip is a small labeled tag on a row
type Chip struct {
	Kind    ChipKind
	Label   string
	Overdue bool
}

// Row is the visual representation of one task, or of the drag placeholder
type Row struct {
	ID          string
	Text        string
	Priority    tasks.Priority
	Done        bool
	Overdue     bool
	Chips       []Chip
	Placeholder bool
}

// Classes returns the styling facets of the row in a fixed order
func (r Row) Classes() []string {
	if r.Placeholder {
		return []string{"drag-placeholder"}
	}
	classes := []string{"task", string(r.Priority)}
	if r.Done {
		classes = append(classes, "done")
	}
	if r.Overdue {
		classes = append(classes, "overdue")
	}
	return classes
}

// Frame is everything needed to draw the list once
type Frame struct {
	Rows   []Row
	Stats  tasks.Stats
	Filter string
}

// TaskRows returns the rows that stand for tasks, skipping the placeholder
func (f Frame) TaskRows() []Row {
	out := make([]Row, 0, len(f.Rows))
	for _, r := range f.Rows {
		if !r.Placeholder {
			out = append(out, r)
		}
	}
	return out
}

// Filter keeps tasks whose text contains filter, ignoring case. An empty
// filter keeps everything. Order is preserved.
func Filter(items []tasks.Task, filter string) []tasks.Task {
	needle := strings.ToLower(filter)
	out := make([]tasks.Task, 0, len(items))
	for _, t := range items {
		if strings.Contains(strings.ToLower(t.Text), needle) {
			out = append(out, t)
		}
	}
	return out
}

// Build computes the frame for items. Stats always cover the unfiltered list.
// When placeholderBefore names a visible row, a placeholder row is inserted
// ahead of it.
func Build(items []tasks.Task, filter, today, placeholderBefore string) Frame {
	visible := Filter(items, filter)
	f := Frame{
		Rows:   make([]Row, 0, len(visible)+1),
		Stats:  tasks.ComputeStats(items),
		Filter: filter,
	}

	for _, t := range visible {
		if placeholderBefore != "" && t.ID == placeholderBefore {
			f.Rows = append(f.Rows, Row{Placeholder: true})
		}
		f.Rows = append(f.Rows, buildRow(t, today))
	}
	return f
}

func buildRow(t tasks.Task, today string) Row {
	priority := tasks.ParsePriority(string(t.Priority))
	overdue := tasks.IsOverdue(t, today)

	r := Row{
		ID:       t.ID,
		Text:     t.Text,
		Priority: priority,
		Done:     t.Done,
		Overdue:  overdue,
	}

	r.Chips = append(r.Chips, Chip{Kind: PriorityChip, Label: string(priority)})
	if c := t.CategoryName(); c != "" {
		r.Chips = append(r.Chips, Chip{Kind: CategoryChip, Label: c})
	}
	if d := t.DueDate(); d != "" {
		r.Chips = append(r.Chips, Chip{Kind: DueChip, Label: d, Overdue: overdue})
	}
	return r
}
