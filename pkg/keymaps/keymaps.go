package keymaps

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type KeyDefinition struct {
	DefaultKey string
	Help       string
}

var KeyDefinitions = map[string]KeyDefinition{
	"ShowHelp":     {"ctrl+b,?", "show/hide commands"},
	"QuitApp":      {"q,ctrl+c", "quit"},
	"ToggleStatus": {" ,x", "toggle done"},
	"AddTask":      {"a", "add task"},
	"EditTask":     {"e", "edit task text"},
	"DeleteTask":   {"d", "delete task"},
	"SearchTasks":  {"/,ctrl+f", "search tasks"},
	"ClearSearch":  {"ctrl+l", "clear search"},
	"CursorUp":     {"up,k", "move up"},
	"CursorDown":   {"down,j", "move down"},
	"GrabTask":     {"m", "grab task to move it"},
	"DropTask":     {"enter", "drop grabbed task"},
	"CancelDrag":   {"esc", "release grabbed task"},
}

type KeyMap struct {
	ShowHelp     key.Binding
	QuitApp      key.Binding
	ToggleStatus key.Binding
	AddTask      key.Binding
	EditTask     key.Binding
	DeleteTask   key.Binding
	SearchTasks  key.Binding
	ClearSearch  key.Binding
	CursorUp     key.Binding
	CursorDown   key.Binding
	GrabTask     key.Binding
	DropTask     key.Binding
	CancelDrag   key.Binding
}

// BuildKeyMap applies overrides on top of the defaults. Override names are
// matched case-insensitively because config loaders lowercase map keys.
func BuildKeyMap(configOverrides map[string]string) KeyMap {
	overrides := make(map[string]string, len(configOverrides))
	for action, keys := range configOverrides {
		overrides[strings.ToLower(action)] = keys
	}

	km := KeyMap{}
	for action, def := range KeyDefinitions {
		keyStr := def.DefaultKey
		if override, exists := overrides[strings.ToLower(action)]; exists && override != "" {
			keyStr = override
		}
		binding := parseKeyBinding(keyStr, def.DefaultKey, def.Help)

		switch action {
		case "ShowHelp":
			km.ShowHelp = binding
		case "QuitApp":
			km.QuitApp = binding
		case "ToggleStatus":
			km.ToggleStatus = binding
		case "AddTask":
			km.AddTask = binding
		case "EditTask":
			km.EditTask = binding
		case "DeleteTask":
			km.DeleteTask = binding
		case "SearchTasks":
			km.SearchTasks = binding
		case "ClearSearch":
			km.ClearSearch = binding
		case "CursorUp":
			km.CursorUp = binding
		case "CursorDown":
			km.CursorDown = binding
		case "GrabTask":
			km.GrabTask = binding
		case "DropTask":
			km.DropTask = binding
		case "CancelDrag":
			km.CancelDrag = binding
		}
	}
	return km
}

func parseKeyBinding(keyStr, defaultKey, helpText string) key.Binding {
	if keyStr == "" {
		keyStr = defaultKey
	}

	// Handle multiple keys separated by commas. A lone space is the space bar.
	parts := strings.Split(keyStr, ",")
	keys := make([]string, 0, len(parts))
	for _, k := range parts {
		if k == " " {
			keys = append(keys, " ")
			continue
		}
		k = strings.TrimSpace(k)
		if k == "space" {
			k = " "
		}
		if k != "" {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return parseKeyBinding(defaultKey, defaultKey, helpText)
	}

	helpKey := keys[0]
	if helpKey == " " {
		helpKey = "space"
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKey, helpText),
	)
}

// GetDefaultKeyMappings returns the default key mappings for configuration
func GetDefaultKeyMappings() map[string]string {
	keyMappings := make(map[string]string)
	for action, def := range KeyDefinitions {
		keyMappings[action] = def.DefaultKey
	}
	return keyMappings
}
