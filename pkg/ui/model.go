package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"todopane/pkg/bridge"
	"todopane/pkg/config"
	"todopane/pkg/keymaps"
	"todopane/pkg/render"
	"todopane/pkg/tasks"
	"todopane/pkg/utils"
)

// InputMode represents the current input mode
type InputMode int

const (
	NormalMode InputMode = iota
	AddMode
	EditMode
	DeleteConfirmMode
	SearchMode   // Mode for filtering tasks
	DragMode     // A task is grabbed and follows the cursor
	HelpViewMode // Mode for displaying help
)

// Form field order in add mode
const (
	fieldText = iota
	fieldPriority
	fieldDue
	fieldCategory
	fieldCount
)

// loadedMsg carries the reply to the startup load request
type loadedMsg struct {
	items []tasks.Task
}

// bridgeErrMsg reports that the bridge stopped before a reply arrived
type bridgeErrMsg struct {
	err error
}

// Model owns the task list, the drag slot and the search filter. Every
// mutation goes through it so it can persist and re-render afterwards.
type Model struct {
	list   *tasks.List
	drag   tasks.Drag
	loader bridge.Loader
	saver  bridge.Saver

	renderer render.Renderer
	frame    render.Frame
	cursor   int
	filter   string
	loaded   bool
	now      func() time.Time

	// Configuration
	styles config.Styles
	keyMap keymaps.KeyMap

	width, height int
	err           error

	// Form state
	mode          InputMode
	textInput     textinput.Model
	priorityInput textinput.Model
	dueInput      textinput.Model
	categoryInput textinput.Model
	editInput     textinput.Model
	searchInput   textinput.Model
	activeInput   int

	// Edit/delete state
	editingID    string
	originalText string
}

// NewModel creates a new UI model talking to the store through loader and saver
func NewModel(loader bridge.Loader, saver bridge.Saver, cfg config.Config) Model {
	textInput := textinput.New()
	textInput.Placeholder = "Add a task..."
	textInput.Width = 40

	priorityInput := textinput.New()
	priorityInput.Placeholder = priorityChoices()
	priorityInput.Width = 40

	dueInput := textinput.New()
	dueInput.Placeholder = "Due date (YYYY-MM-DD, optional)"
	dueInput.Width = 40

	categoryInput := textinput.New()
	categoryInput.Placeholder = "Category (optional)"
	categoryInput.Width = 40

	editInput := textinput.New()
	editInput.Width = 60

	searchInput := textinput.New()
	searchInput.Placeholder = "Search..."
	searchInput.Width = 40

	m := Model{
		list:          tasks.NewList(nil),
		loader:        loader,
		saver:         saver,
		renderer:      render.NewRenderer(cfg.Styles),
		styles:        cfg.Styles,
		keyMap:        keymaps.BuildKeyMap(cfg.KeyMap),
		now:           time.Now,
		mode:          NormalMode,
		textInput:     textInput,
		priorityInput: priorityInput,
		dueInput:      dueInput,
		categoryInput: categoryInput,
		editInput:     editInput,
		searchInput:   searchInput,
	}
	m.rerender()
	return m
}

// Init sends the load request and waits for its reply
func (m Model) Init() tea.Cmd {
	loader := m.loader
	return func() tea.Msg {
		loader.RequestLoad()
		items, err := loader.Receive(context.Background())
		if err != nil {
			return bridgeErrMsg{err: err}
		}
		return loadedMsg{items: items}
	}
}

// Tasks returns a copy of the working list
func (m Model) Tasks() []tasks.Task {
	return m.list.Snapshot()
}

// Frame returns the most recently rendered frame
func (m Model) Frame() render.Frame {
	return m.frame
}

// Mode returns the current input mode
func (m Model) Mode() InputMode {
	return m.mode
}

// persist pushes the full list to the store
func (m *Model) persist() {
	m.saver.Save(m.list.Snapshot())
}

// rerender rebuilds the frame from the list, the filter and the drag placeholder
func (m *Model) rerender() {
	placeholder, _ := m.drag.Placeholder()
	m.frame = render.Build(m.list.Snapshot(), m.filter, tasks.Today(m.now()), placeholder)
	m.clampCursor()
}

// commit is run after every persisted mutation
func (m *Model) commit() {
	m.persist()
	m.rerender()
}

func (m *Model) clampCursor() {
	n := len(m.frame.TaskRows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// selectedID returns the id under the cursor, or "" when nothing is visible
func (m Model) selectedID() string {
	rows := m.frame.TaskRows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return ""
	}
	return rows[m.cursor].ID
}

// selectID moves the cursor onto the row with the given id if it is visible
func (m *Model) selectID(id string) {
	for i, r := range m.frame.TaskRows() {
		if r.ID == id {
			m.cursor = i
			return
		}
	}
}

// resetInputs clears all form inputs
func (m *Model) resetInputs() {
	m.textInput.Reset()
	m.priorityInput.SetValue(string(tasks.PriorityLow))
	m.dueInput.Reset()
	m.categoryInput.Reset()

	m.activeInput = fieldText
	m.focusInput()
}

func (m *Model) load(items []tasks.Task) {
	m.list.Replace(items)
	m.loaded = true
	utils.Log("Loaded %d tasks", m.list.Len())
	m.rerender()
}
