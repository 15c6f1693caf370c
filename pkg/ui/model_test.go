package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todopane/pkg/config"
	"todopane/pkg/tasks"
)

type fakeBridge struct {
	items    []tasks.Task
	err      error
	requests int
	saves    [][]tasks.Task
}

func (f *fakeBridge) RequestLoad() { f.requests++ }

func (f *fakeBridge) Receive(context.Context) ([]tasks.Task, error) {
	return f.items, f.err
}

func (f *fakeBridge) Save(items []tasks.Task) {
	f.saves = append(f.saves, append([]tasks.Task(nil), items...))
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEscape}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	tab   = tea.KeyMsg{Type: tea.KeyTab}

	backspace = tea.KeyMsg{Type: tea.KeyBackspace}
)

func press(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		require.True(t, ok)
	}
	return m
}

func newLoaded(t *testing.T, names ...string) (Model, *fakeBridge) {
	t.Helper()
	fb := &fakeBridge{}
	m := NewModel(fb, fb, config.Config{Styles: config.DefaultStyles()})

	var items []tasks.Task
	for _, n := range names {
		items = append(items, tasks.Task{ID: n, Text: n, Priority: tasks.PriorityLow})
	}
	return press(t, m, loadedMsg{items: items}), fb
}

func ids(items []tasks.Task) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}

func frameIDs(m Model) []string {
	var out []string
	for _, r := range m.Frame().Rows {
		if r.Placeholder {
			out = append(out, "~")
			continue
		}
		out = append(out, r.ID)
	}
	return out
}

func TestInit_RequestsLoad(t *testing.T) {
	fb := &fakeBridge{items: []tasks.Task{{ID: "1", Text: "one", Priority: tasks.PriorityLow}}}
	m := NewModel(fb, fb, config.Config{Styles: config.DefaultStyles()})

	msg := m.Init()()
	assert.Equal(t, 1, fb.requests)
	require.IsType(t, loadedMsg{}, msg)

	m = press(t, m, msg)
	assert.Equal(t, []string{"1"}, ids(m.Tasks()))
	assert.Empty(t, fb.saves, "loading does not persist")
}

func TestInit_BridgeError(t *testing.T) {
	fb := &fakeBridge{err: errors.New("closed")}
	m := NewModel(fb, fb, config.Config{Styles: config.DefaultStyles()})

	m = press(t, m, m.Init()())
	assert.Error(t, m.err)
	assert.NotContains(t, m.View(), "Loading")
}

func TestUpdate_KeysIgnoredUntilLoaded(t *testing.T) {
	fb := &fakeBridge{}
	m := NewModel(fb, fb, config.Config{Styles: config.DefaultStyles()})

	m = press(t, m, runes("a"))
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, "Loading tasks...\n", m.View())
}

func TestUpdate_AddTask(t *testing.T) {
	m, fb := newLoaded(t)

	m = press(t, m, runes("a"), runes("Buy milk"), enter)

	require.Len(t, m.Tasks(), 1)
	got := m.Tasks()[0]
	assert.Equal(t, "Buy milk", got.Text)
	assert.Equal(t, tasks.PriorityLow, got.Priority)
	assert.False(t, got.Done)
	assert.Equal(t, NormalMode, m.Mode())
	require.Len(t, fb.saves, 1)
	assert.Equal(t, m.Tasks(), fb.saves[0])
	assert.Equal(t, "0 / 1", m.Frame().Stats.Label())
}

func TestUpdate_AddBlankIsIgnored(t *testing.T) {
	m, fb := newLoaded(t)

	m = press(t, m, runes("a"), runes("   "), enter)

	assert.Empty(t, m.Tasks())
	assert.Empty(t, fb.saves)
	assert.Equal(t, NormalMode, m.Mode())
}

func TestUpdate_AddRejectsBadDate(t *testing.T) {
	m, fb := newLoaded(t)

	m = press(t, m, runes("a"), runes("report"), tab, tab, runes("2025-13-45"), enter)

	assert.Error(t, m.err)
	assert.Equal(t, AddMode, m.Mode())
	assert.Empty(t, m.Tasks())
	assert.Empty(t, fb.saves)

	m = press(t, m, esc)
	assert.Equal(t, NormalMode, m.Mode())
	assert.NoError(t, m.err)
}

func TestUpdate_AddWithFacets(t *testing.T) {
	m, _ := newLoaded(t)

	m = press(t, m,
		runes("a"), runes("report"),
		tab, tea.KeyMsg{Type: tea.KeyEnd}, backspace, backspace, backspace, runes("high"),
		tab, runes("2025-05-01"),
		tab, runes("work"),
		enter,
	)

	require.Len(t, m.Tasks(), 1)
	got := m.Tasks()[0]
	assert.Equal(t, tasks.PriorityHigh, got.Priority)
	assert.Equal(t, "2025-05-01", got.DueDate())
	assert.Equal(t, "work", got.CategoryName())
}

func TestUpdate_ToggleSaves(t *testing.T) {
	m, fb := newLoaded(t, "a", "b")

	m = press(t, m, down, runes("x"))

	assert.False(t, m.Tasks()[0].Done)
	assert.True(t, m.Tasks()[1].Done)
	require.Len(t, fb.saves, 1)
	assert.Equal(t, "1 / 2", m.Frame().Stats.Label())
}

func TestUpdate_DeleteNeedsConfirmation(t *testing.T) {
	m, fb := newLoaded(t, "a", "b")

	m = press(t, m, runes("d"))
	assert.Equal(t, DeleteConfirmMode, m.Mode())
	m = press(t, m, runes("n"))
	assert.Equal(t, []string{"a", "b"}, ids(m.Tasks()))
	assert.Empty(t, fb.saves)

	m = press(t, m, runes("d"), runes("y"))
	assert.Equal(t, []string{"b"}, ids(m.Tasks()))
	require.Len(t, fb.saves, 1)
	assert.Equal(t, []string{"b"}, ids(fb.saves[0]))
}

func TestUpdate_EditPersistsOnlyOnCommit(t *testing.T) {
	m, fb := newLoaded(t, "a")

	m = press(t, m, runes("e"), runes("bc"))
	assert.Equal(t, EditMode, m.Mode())
	assert.Equal(t, "abc", m.Tasks()[0].Text, "edits apply live")
	assert.Empty(t, fb.saves)

	m = press(t, m, enter)
	assert.Equal(t, NormalMode, m.Mode())
	require.Len(t, fb.saves, 1)
	assert.Equal(t, "abc", fb.saves[0][0].Text)
}

func TestUpdate_BlankEditIsDiscarded(t *testing.T) {
	m, fb := newLoaded(t, "a")

	m = press(t, m, runes("e"), backspace)
	assert.Equal(t, "", m.Tasks()[0].Text, "blank text is allowed while editing")

	m = press(t, m, runes("  "), enter)
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, "a", m.Tasks()[0].Text)
	assert.Empty(t, fb.saves)
}

func TestUpdate_AddRejectsUnknownPriority(t *testing.T) {
	m, fb := newLoaded(t)

	m = press(t, m, runes("a"), runes("report"), tab, tea.KeyMsg{Type: tea.KeyEnd}, runes("est"), enter)

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "low, medium, high")
	assert.Equal(t, AddMode, m.Mode())
	assert.Empty(t, m.Tasks())
	assert.Empty(t, fb.saves)
}

func TestUpdate_GrabWhileDraggingKeepsSource(t *testing.T) {
	m, fb := newLoaded(t, "a", "b", "c")

	m = press(t, m, runes("m"))
	m.cursor = 1
	m.startDrag()
	assert.Equal(t, "a", m.drag.DraggedID())
	m.cursor = 0

	m = press(t, m, down, down, enter)
	assert.Equal(t, []string{"b", "c", "a"}, ids(m.Tasks()))
	assert.Len(t, fb.saves, 1)
}

func TestUpdate_EditCancelRestoresText(t *testing.T) {
	m, fb := newLoaded(t, "a")

	m = press(t, m, runes("e"), runes("zz"), esc)

	assert.Equal(t, "a", m.Tasks()[0].Text)
	assert.Empty(t, fb.saves)
}

func TestUpdate_DragReordersAndPersistsOnEnd(t *testing.T) {
	m, fb := newLoaded(t, "a", "b", "c")

	m = press(t, m, runes("m"))
	assert.Equal(t, DragMode, m.Mode())
	assert.Equal(t, []string{"a", "b", "c"}, frameIDs(m))

	m = press(t, m, down)
	assert.Equal(t, []string{"a", "~", "b", "c"}, frameIDs(m))

	m = press(t, m, down)
	assert.Equal(t, []string{"a", "b", "~", "c"}, frameIDs(m))
	assert.Equal(t, []string{"a", "b", "c"}, ids(m.Tasks()), "hovering never touches the list")
	assert.Empty(t, fb.saves)

	m = press(t, m, enter)
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, []string{"b", "c", "a"}, ids(m.Tasks()))
	assert.Equal(t, []string{"b", "c", "a"}, frameIDs(m))
	require.Len(t, fb.saves, 1)
	assert.Equal(t, []string{"b", "c", "a"}, ids(fb.saves[0]))
	assert.Equal(t, "a", m.selectedID())
}

func TestUpdate_DragCancelStillEnds(t *testing.T) {
	m, fb := newLoaded(t, "a", "b", "c")

	m = press(t, m, down, down, runes("m"), up, esc)

	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, []string{"a", "b", "c"}, ids(m.Tasks()))
	assert.Equal(t, []string{"a", "b", "c"}, frameIDs(m), "placeholder removed")
	assert.Len(t, fb.saves, 1)
	assert.Equal(t, "c", m.selectedID())
}

func TestUpdate_DropOnSelfIsNoop(t *testing.T) {
	m, fb := newLoaded(t, "a", "b")

	m = press(t, m, runes("m"), enter)

	assert.Equal(t, []string{"a", "b"}, ids(m.Tasks()))
	assert.Len(t, fb.saves, 1)
}

func TestUpdate_SearchFiltersLive(t *testing.T) {
	m, fb := newLoaded(t, "milk", "bread", "Milkshake")

	m = press(t, m, runes("/"), runes("MIL"))
	assert.Equal(t, SearchMode, m.Mode())
	assert.Equal(t, []string{"milk", "Milkshake"}, frameIDs(m))
	assert.Equal(t, "0 / 3", m.Frame().Stats.Label(), "stats ignore the filter")

	m = press(t, m, enter)
	assert.Equal(t, NormalMode, m.Mode())
	assert.Equal(t, []string{"milk", "Milkshake"}, frameIDs(m))

	m = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Equal(t, []string{"milk", "bread", "Milkshake"}, frameIDs(m))

	m = press(t, m, runes("/"), runes("zzz"), esc)
	assert.Equal(t, []string{"milk", "bread", "Milkshake"}, frameIDs(m))
	assert.Empty(t, fb.saves)
}

func TestUpdate_HelpView(t *testing.T) {
	m, _ := newLoaded(t)

	m = press(t, m, runes("?"))
	assert.Equal(t, HelpViewMode, m.Mode())
	assert.Contains(t, m.View(), "Available Commands")

	m = press(t, m, esc)
	assert.Equal(t, NormalMode, m.Mode())
}

func TestView_ShowsRows(t *testing.T) {
	m, _ := newLoaded(t, "first", "second")

	view := m.View()
	assert.Contains(t, view, "To-Do List")
	assert.Contains(t, view, "first")
	assert.Contains(t, view, "0 / 2 completed")
}
