package tasks

// DragState is the state of a drag gesture
type DragState int

const (
	DragIdle DragState = iota
	DragActive
)

// Drag tracks a single drag gesture over a list. The placeholder it
// exposes is a visual marker only and never touches the list.
type Drag struct {
	draggedID string
	// placeholder is created on Start and attached once a row is hovered
	hasPlaceholder    bool
	placeholderBefore string
}

// State reports whether a drag is in progress
func (d *Drag) State() DragState {
	if d.draggedID == "" {
		return DragIdle
	}
	return DragActive
}

// DraggedID returns the id of the task being dragged, or ""
func (d *Drag) DraggedID() string {
	return d.draggedID
}

// Placeholder returns the id of the row the placeholder sits before
func (d *Drag) Placeholder() (string, bool) {
	if !d.hasPlaceholder || d.placeholderBefore == "" {
		return "", false
	}
	return d.placeholderBefore, true
}

// Start begins dragging id. A detached placeholder is created.
func (d *Drag) Start(id string) {
	if id == "" {
		return
	}
	d.draggedID = id
	d.hasPlaceholder = true
	d.placeholderBefore = ""
}

// Over moves the placeholder before the hovered row when it differs from
// the dragged task and both exist in l.
func (d *Drag) Over(l *List, overID string) bool {
	if d.draggedID == "" || d.draggedID == overID {
		return false
	}
	if l.Index(d.draggedID) < 0 || l.Index(overID) < 0 {
		return false
	}
	d.placeholderBefore = overID
	return true
}

// Drop reorders l so the dragged task takes dropID's position. It does not persist.
func (d *Drag) Drop(l *List, dropID string) bool {
	if d.draggedID == "" || d.draggedID == dropID {
		return false
	}
	return l.Reorder(d.draggedID, dropID)
}

// End always runs after a gesture, dropped or not. It clears the slot and
// detaches the placeholder; the caller persists and re-renders.
func (d *Drag) End() {
	d.draggedID = ""
	d.hasPlaceholder = false
	d.placeholderBefore = ""
}
