package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"todopane/pkg/tasks"
)

// AddOptions holds the optional fields of a new task
type AddOptions struct {
	Priority string
	Due      string
	Category string
}

// HandleAddTask processes the add command
func HandleAddTask(ctx context.Context, s Session, w io.Writer, text string, opts AddOptions) error {
	due := strings.TrimSpace(opts.Due)
	if due != "" {
		if _, err := time.Parse(tasks.DateLayout, due); err != nil {
			return fmt.Errorf("parse date %q: %w", due, err)
		}
	}

	list, err := loadList(ctx, s)
	if err != nil {
		return err
	}

	t, ok := list.Add(text, tasks.ParsePriority(opts.Priority), due, opts.Category)
	if !ok {
		fmt.Fprintln(w, "Nothing to add: task text is blank")
		return nil
	}
	s.Save(list.Snapshot())

	fmt.Fprintf(w, "Added task %s: %s\n", t.ID, t.Text)
	return nil
}
