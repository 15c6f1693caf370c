package tasks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(l *List) []string {
	var out []string
	for _, t := range l.Snapshot() {
		out = append(out, t.ID)
	}
	return out
}

func listOf(names ...string) *List {
	items := make([]Task, 0, len(names))
	for _, n := range names {
		items = append(items, Task{ID: n, Text: n, Priority: PriorityLow})
	}
	return NewList(items)
}

func TestAdd_CreatesTask(t *testing.T) {
	l := NewList(nil)

	task, ok := l.Add("Buy milk", PriorityLow, "", "")
	require.True(t, ok)

	assert.Equal(t, 1, l.Len())
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, "Buy milk", task.Text)
	assert.False(t, task.Done)
	assert.Equal(t, PriorityLow, task.Priority)
	assert.Nil(t, task.Due)
	assert.Nil(t, task.Category)
	assert.NotZero(t, task.CreatedAt)
}

func TestAdd_TrimsAndIgnoresBlank(t *testing.T) {
	l := NewList(nil)

	_, ok := l.Add("   ", PriorityHigh, "2025-01-01", "work")
	assert.False(t, ok)
	assert.Equal(t, 0, l.Len())

	task, ok := l.Add("  write report ", PriorityHigh, "2025-01-01", " work ")
	require.True(t, ok)
	assert.Equal(t, "write report", task.Text)
	assert.Equal(t, "2025-01-01", task.DueDate())
	assert.Equal(t, "work", task.CategoryName())
}

func TestAdd_AppendsWithUniqueIDs(t *testing.T) {
	l := NewList(nil)
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		task, ok := l.Add("x", PriorityLow, "", "")
		require.True(t, ok)
		assert.False(t, seen[task.ID])
		seen[task.ID] = true
	}
	last, _ := l.Add("last", PriorityMedium, "", "")
	assert.Equal(t, last.ID, l.Snapshot()[l.Len()-1].ID)
}

func TestAddThenDelete_RestoresList(t *testing.T) {
	l := listOf("a", "b", "c")
	before := l.Snapshot()

	task, ok := l.Add("temp", PriorityLow, "", "")
	require.True(t, ok)
	require.True(t, l.Delete(task.ID))

	assert.Equal(t, before, l.Snapshot())
}

func TestToggle(t *testing.T) {
	l := NewList(nil)
	task, _ := l.Add("Buy milk", PriorityLow, "", "")

	assert.True(t, l.Toggle(task.ID))
	got, ok := l.Find(task.ID)
	require.True(t, ok)
	assert.True(t, got.Done)

	assert.True(t, l.Toggle(task.ID))
	got, _ = l.Find(task.ID)
	assert.False(t, got.Done)
}

func TestUnknownIDs_LeaveListUnchanged(t *testing.T) {
	l := listOf("a", "b", "c")
	l.Toggle("b")
	before := l.Snapshot()

	assert.False(t, l.Toggle("missing"))
	assert.False(t, l.Delete("missing"))
	assert.False(t, l.EditText("missing", "x"))
	assert.False(t, l.Reorder("missing", "a"))
	assert.False(t, l.Reorder("a", "missing"))

	assert.Equal(t, before, l.Snapshot())
}

func TestEditText(t *testing.T) {
	l := listOf("a")

	assert.True(t, l.EditText("a", ""))
	got, _ := l.Find("a")
	assert.Equal(t, "", got.Text)

	assert.True(t, l.EditText("a", "renamed"))
	got, _ = l.Find("a")
	assert.Equal(t, "renamed", got.Text)
}

func TestReorder_ArrayMove(t *testing.T) {
	tests := []struct {
		name     string
		from, to string
		want     []string
	}{
		{"forward", "a", "c", []string{"b", "c", "a", "d"}},
		{"backward", "d", "b", []string{"a", "d", "b", "c"}},
		{"to end", "a", "d", []string{"b", "c", "d", "a"}},
		{"to start", "c", "a", []string{"c", "a", "b", "d"}},
		{"adjacent", "b", "c", []string{"a", "c", "b", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := listOf("a", "b", "c", "d")
			assert.True(t, l.Reorder(tt.from, tt.to))
			assert.Equal(t, tt.want, ids(l))
		})
	}
}

func TestReorder_SameIDIsNoop(t *testing.T) {
	l := listOf("a", "b")
	assert.False(t, l.Reorder("a", "a"))
	assert.Equal(t, []string{"a", "b"}, ids(l))
}

func TestReorder_AdjacentSwapIsItsOwnInverse(t *testing.T) {
	l := listOf("a", "b", "c", "d")

	require.True(t, l.Reorder("b", "c"))
	require.True(t, l.Reorder("c", "b"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(l))

	require.True(t, l.Reorder("c", "b"))
	require.True(t, l.Reorder("b", "c"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ids(l))
}

func TestReorder_NonAdjacentIsNotItsOwnInverse(t *testing.T) {
	l := listOf("a", "b", "c")

	require.True(t, l.Reorder("a", "c"))
	assert.Equal(t, []string{"b", "c", "a"}, ids(l))

	require.True(t, l.Reorder("c", "a"))
	assert.Equal(t, []string{"b", "a", "c"}, ids(l))
}

func TestReplace_DropsDuplicateIDs(t *testing.T) {
	l := NewList([]Task{{ID: "a", Text: "first"}, {ID: "b"}, {ID: "a", Text: "second"}})

	assert.Equal(t, []string{"a", "b"}, ids(l))
	got, _ := l.Find("a")
	assert.Equal(t, "first", got.Text)
}

func TestSnapshot_IsACopy(t *testing.T) {
	l := listOf("a")
	snap := l.Snapshot()
	snap[0].Text = "changed"

	got, _ := l.Find("a")
	assert.Equal(t, "a", got.Text)
}
