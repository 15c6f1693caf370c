package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"todopane/pkg/render"
	"todopane/pkg/tasks"
)

// HandleListCommand prints the tasks matching filter as plain text, followed by the stats
func HandleListCommand(ctx context.Context, s Session, w io.Writer, filter string) error {
	items, err := s.Load(ctx)
	if err != nil {
		return err
	}

	frame := render.Build(items, filter, tasks.Today(time.Now()), "")
	for _, row := range frame.TaskRows() {
		fmt.Fprintln(w, plainRow(row))
	}
	fmt.Fprintf(w, "%s completed (%d%%)\n", frame.Stats.Label(), frame.Stats.Percent)
	return nil
}

func plainRow(row render.Row) string {
	status := "[ ]"
	if row.Done {
		status = "[x]"
	}
	parts := []string{status, row.Text}
	for _, c := range row.Chips {
		label := c.Label
		if c.Overdue {
			label += " overdue"
		}
		parts = append(parts, "("+label+")")
	}
	return strings.Join(parts, " ")
}
