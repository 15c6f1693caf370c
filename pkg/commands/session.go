package commands

import (
	"context"

	"todopane/pkg/tasks"
)

// Session is the slice of the bridge the commands need: one load, then saves
type Session interface {
	Load(ctx context.Context) ([]tasks.Task, error)
	Save(items []tasks.Task)
}

// loadList fetches the persisted tasks into a working list
func loadList(ctx context.Context, s Session) (*tasks.List, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return tasks.NewList(items), nil
}
