package commands

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"todopane/pkg/tasks"
)

// ClearOptions selects which tasks the clear command removes
type ClearOptions struct {
	DoneOnly    bool
	SkipConfirm bool
}

// HandleClearCommand removes all tasks, or only the done ones, after confirmation
func HandleClearCommand(ctx context.Context, s Session, in io.Reader, w io.Writer, opts ClearOptions) error {
	list, err := loadList(ctx, s)
	if err != nil {
		return err
	}

	var remove []tasks.Task
	for _, t := range list.Snapshot() {
		if !opts.DoneOnly || t.Done {
			remove = append(remove, t)
		}
	}
	if len(remove) == 0 {
		fmt.Fprintln(w, "Nothing to delete.")
		return nil
	}

	// Show confirmation unless --yes flag is used
	if !opts.SkipConfirm {
		fmt.Fprintf(w, "Are you sure you want to delete %d task(s)? (y/N): ", len(remove))
		response, _ := bufio.NewReader(in).ReadString('\n')
		response = strings.ToLower(strings.TrimSpace(response))
		if response != "y" && response != "yes" {
			fmt.Fprintln(w, "Operation cancelled.")
			return nil
		}
	}

	for _, t := range remove {
		list.Delete(t.ID)
	}
	s.Save(list.Snapshot())

	fmt.Fprintf(w, "Successfully deleted %d task(s)\n", len(remove))
	return nil
}
