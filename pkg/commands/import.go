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
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"todopane/pkg/tasks"
)

var (
	dateRegex     = regexp.MustCompile(`^(?:(\d{2})\.(\d{2})\.(\d{4})|(\d{4})-(\d{2})-(\d{2})):?$`)
	priorityRegex = regexp.MustCompile(`(?:^|\s)!(low|medium|high)\b`)
	categoryRegex = regexp.MustCompile(`(?:^|\s)@(\S+)`)
	escapedRegex  = regexp.MustCompile(`(^|\s)\\([!@\\])`)
)

// HandleImportCommand appends the tasks found in filename to the stored list
func HandleImportCommand(ctx context.Context, s Session, w io.Writer, filename string) error {
	content, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read file: %w", err)
	}

	imported, err := Decode(content, filepath.Ext(filename))
	if err != nil {
		return err
	}

	list, err := loadList(ctx, s)
	if err != nil {
		return err
	}

	before := list.Len()
	merged := list.Snapshot()
	seen := make(map[string]bool, len(merged))
	for _, t := range merged {
		seen[t.ID] = true
	}
	for _, t := range imported {
		if strings.TrimSpace(t.Text) == "" {
			continue
		}
		if t.ID == "" || seen[t.ID] {
			t.ID = uuid.NewString()
		}
		seen[t.ID] = true
		if t.CreatedAt == 0 {
			t.CreatedAt = time.Now().UnixMilli()
		}
		t.Priority = tasks.ParsePriority(string(t.Priority))
		merged = append(merged, t)
	}
	list.Replace(merged)
	added := list.Len() - before

	s.Save(list.Snapshot())
	fmt.Fprintf(w, "Successfully imported %d task(s) from %s\n", added, filename)
	return nil
}

// Decode reads tasks from json, yaml or the plain text export format,
// chosen by file extension
func Decode(content []byte, ext string) ([]tasks.Task, error) {
	var items []tasks.Task
	switch strings.ToLower(ext) {
	case ".json":
		if err := json.Unmarshal(content, &items); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &items); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	default:
		items = decodeText(string(content))
	}
	return items, nil
}

// decodeText parses date headers followed by "- [x] text !priority @category" lines
func decodeText(content string) []tasks.Task {
	var items []tasks.Task
	currentDate := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.EqualFold(strings.TrimSuffix(line, ":"), "No due date") {
			currentDate = ""
			continue
		}

		if dateMatch := dateRegex.FindStringSubmatch(line); dateMatch != nil {
			// Impossible dates such as 31.02 leave the header ignored
			if date, err := parseHeaderDate(dateMatch); err == nil {
				currentDate = date
			}
			continue
		}

		if !strings.HasPrefix(line, "- ") {
			continue
		}
		taskText := strings.TrimSpace(strings.TrimPrefix(line, "- "))

		done := false
		if strings.HasPrefix(taskText, "[x]") {
			done = true
			taskText = strings.TrimSpace(strings.TrimPrefix(taskText, "[x]"))
		} else if strings.HasPrefix(taskText, "[ ]") {
			taskText = strings.TrimSpace(strings.TrimPrefix(taskText, "[ ]"))
		}

		priority := tasks.PriorityLow
		if m := priorityRegex.FindStringSubmatch(taskText); m != nil {
			priority = tasks.Priority(m[1])
			taskText = priorityRegex.ReplaceAllString(taskText, "")
		}
		category := ""
		if m := categoryRegex.FindStringSubmatch(taskText); m != nil {
			category = unescapeCategory(m[1])
			taskText = categoryRegex.ReplaceAllString(taskText, "")
		}

		taskText = strings.TrimSpace(unescapeMarkers(taskText))
		if taskText == "" {
			continue
		}

		t := tasks.NewTask(taskText, priority, currentDate, category)
		t.Done = done
		items = append(items, t)
	}

	return items
}

func parseHeaderDate(m []string) (string, error) {
	layout, value := tasks.DateLayout, m[4]+"-"+m[5]+"-"+m[6]
	if m[1] != "" {
		layout, value = "02.01.2006", m[1]+"."+m[2]+"."+m[3]
	}
	d, err := time.Parse(layout, value)
	if err != nil {
		return "", err
	}
	return d.Format(tasks.DateLayout), nil
}

// unescapeMarkers drops the backslash the exporter puts before words that
// would otherwise read as markers
func unescapeMarkers(s string) string {
	return escapedRegex.ReplaceAllString(s, "${1}${2}")
}

// unescapeCategory turns "_" back into spaces; `\_` is a literal underscore
func unescapeCategory(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == '_':
			sb.WriteByte('_')
			i++
		case s[i] == '_':
			sb.WriteByte(' ')
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
