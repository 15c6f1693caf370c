package bridge

import (
	"bytes"
	"encoding/json"

	"todopane/pkg/tasks"
)

// Message types shared by both ends of the bridge
const (
	TypeLoad = "load"
	TypeSave = "save"
)

// Message is the JSON envelope exchanged over the bridge.
// Tasks is kept raw so each end decides how strictly to read it.
type Message struct {
	Type  string          `json:"type"`
	Tasks json.RawMessage `json:"tasks,omitempty"`
}

var emptyArray = json.RawMessage("[]")

// isArray reports whether raw is a well-formed JSON array
func isArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return false
	}
	return json.Valid(trimmed)
}

// DecodeTasks reads a task array. Anything that is not a well-formed
// array of tasks yields an empty list.
func DecodeTasks(raw json.RawMessage) []tasks.Task {
	if !isArray(raw) {
		return []tasks.Task{}
	}
	var items []tasks.Task
	if err := json.Unmarshal(raw, &items); err != nil {
		return []tasks.Task{}
	}
	if items == nil {
		items = []tasks.Task{}
	}
	return items
}

func encode(msgType string, items []tasks.Task) ([]byte, error) {
	m := Message{Type: msgType}
	if items != nil {
		raw, err := json.Marshal(items)
		if err != nil {
			return nil, err
		}
		m.Tasks = raw
	}
	return json.Marshal(m)
}
