package tasks

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the fixed-width ISO calendar date used for due dates
const DateLayout = "2006-01-02"

// Priority represents the importance of a task
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities lists the valid priorities in display order
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh}

// ParsePriority returns the priority named by s, falling back to low
func ParsePriority(s string) Priority {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityMedium:
		return PriorityMedium
	case PriorityHigh:
		return PriorityHigh
	default:
		return PriorityLow
	}
}

// Task represents a single todo item
type Task struct {
	ID        string   `json:"id" yaml:"id"`
	Text      string   `json:"text" yaml:"text"`
	Done      bool     `json:"done" yaml:"done"`
	Priority  Priority `json:"priority" yaml:"priority"`
	Due       *string  `json:"due" yaml:"due,omitempty"`
	Category  *string  `json:"category" yaml:"category,omitempty"`
	CreatedAt int64    `json:"createdAt" yaml:"createdAt"` // milliseconds since epoch
}

// NewTask builds a fresh, not-done task. Blank due and category are stored as absent.
func NewTask(text string, priority Priority, due, category string) Task {
	return Task{
		ID:        uuid.NewString(),
		Text:      text,
		Done:      false,
		Priority:  priority,
		Due:       optional(due),
		Category:  optional(category),
		CreatedAt: time.Now().UnixMilli(),
	}
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// DueDate returns the due date string, or "" when absent
func (t Task) DueDate() string {
	if t.Due == nil {
		return ""
	}
	return *t.Due
}

// CategoryName returns the category, or "" when absent
func (t Task) CategoryName() string {
	if t.Category == nil {
		return ""
	}
	return *t.Category
}

// IsOverdue reports whether the task has a due date strictly before today
// and is not done. today must be formatted with DateLayout.
func IsOverdue(t Task, today string) bool {
	if t.Due == nil || *t.Due == "" || t.Done {
		return false
	}
	return *t.Due < today
}

// Today returns the local calendar date in DateLayout
func Today(now time.Time) string {
	return now.Format(DateLayout)
}
