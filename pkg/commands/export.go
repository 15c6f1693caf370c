package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"todopane/pkg/tasks"
)

// HandleExportCommand writes every task to filename in the given format
func HandleExportCommand(ctx context.Context, s Session, w io.Writer, filename, exportType string) error {
	items, err := s.Load(ctx)
	if err != nil {
		return err
	}

	content, err := Encode(items, exportType)
	if err != nil {
		return err
	}

	// Ensure directory exists
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}
	}

	if err := os.WriteFile(filename, content, 0644); err != nil {
		return fmt.Errorf("write file: %w", err)
	}

	fmt.Fprintf(w, "Successfully exported %d task(s) to %s\n", len(items), filename)
	return nil
}

// Encode renders items as json, yaml or txt
func Encode(items []tasks.Task, exportType string) ([]byte, error) {
	switch exportType {
	case "json":
		return json.MarshalIndent(items, "", "  ")
	case "yaml", "yml":
		return yaml.Marshal(items)
	case "txt":
		return []byte(encodeText(items)), nil
	default:
		return nil, fmt.Errorf("unknown export type: %s", exportType)
	}
}

// encodeText groups tasks under their due date, keeping list order inside a
// group. Tasks without a due date come last.
func encodeText(items []tasks.Task) string {
	var order []string
	groups := map[string][]tasks.Task{}
	for _, t := range items {
		key := t.DueDate()
		if _, seen := groups[key]; !seen {
			order = append(order, key)
		}
		groups[key] = append(groups[key], t)
	}

	var lines []string
	writeGroup := func(header string, group []tasks.Task) {
		lines = append(lines, "", header+":")
		for _, t := range group {
			lines = append(lines, textLine(t))
		}
	}
	for _, key := range order {
		if key != "" {
			writeGroup(key, groups[key])
		}
	}
	if group, ok := groups[""]; ok {
		writeGroup("No due date", group)
	}

	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}

// markerRegex finds words that start like a marker or an escape
var markerRegex = regexp.MustCompile(`(^|\s)([!@\\])`)

// escapeMarkers prefixes a backslash to words in the text that begin with
// '!', '@' or a backslash so they survive a txt round trip
func escapeMarkers(s string) string {
	return markerRegex.ReplaceAllString(s, "${1}\\${2}")
}

// escapeCategory writes spaces as "_" and underscores as `\_`
func escapeCategory(c string) string {
	c = strings.ReplaceAll(c, "_", `\_`)
	return strings.ReplaceAll(c, " ", "_")
}

func textLine(t tasks.Task) string {
	status := " "
	if t.Done {
		status = "x"
	}
	line := fmt.Sprintf("- [%s] %s", status, escapeMarkers(t.Text))
	if t.Priority != "" && t.Priority != tasks.PriorityLow {
		line += " !" + string(t.Priority)
	}
	if c := t.CategoryName(); c != "" {
		line += " @" + escapeCategory(c)
	}
	return line
}
