package bridge

import (
	"context"
	"encoding/json"

	"todopane/pkg/kvstore"
	"todopane/pkg/utils"
)

// Host is the store end of the bridge. It serves messages one at a time
// in the order they were sent.
type Host struct {
	store kvstore.Store
	key   string
	in    <-chan []byte
	out   chan<- []byte
}

// Key returns the namespaced key the host persists under
func (h *Host) Key() string {
	return h.key
}

// Run serves messages until the view closes the bridge or ctx is done.
// Queued messages are drained before returning.
func (h *Host) Run(ctx context.Context) error {
	defer close(h.out)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case raw, ok := <-h.in:
			if !ok {
				utils.Log("Bridge closed, host exiting")
				return nil
			}
			reply := h.Handle(ctx, raw)
			if reply == nil {
				continue
			}
			select {
			case h.out <- reply:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

// Handle processes a single raw message and returns the reply to send, if any.
// Malformed or unknown messages are ignored.
func (h *Host) Handle(ctx context.Context, raw []byte) []byte {
	var m Message
	if err := json.Unmarshal(raw, &m); err != nil {
		utils.Log("Ignoring malformed message: %v", err)
		return nil
	}

	switch m.Type {
	case TypeSave:
		if !isArray(m.Tasks) {
			utils.Log("Ignoring save with non-array payload")
			return nil
		}
		if err := h.store.Put(ctx, h.key, m.Tasks); err != nil {
			utils.Log("Error saving tasks: %v", err)
		}
		return nil

	case TypeLoad:
		saved := h.loadRaw(ctx)
		reply, err := json.Marshal(Message{Type: TypeLoad, Tasks: saved})
		if err != nil {
			utils.Log("Error encoding load reply: %v", err)
			return nil
		}
		return reply
	}

	utils.Log("Ignoring message of type %q", m.Type)
	return nil
}

// loadRaw returns the stored array, or an empty one when nothing usable is stored
func (h *Host) loadRaw(ctx context.Context) json.RawMessage {
	value, ok, err := h.store.Get(ctx, h.key)
	if err != nil {
		utils.Log("Error loading tasks: %v", err)
		return emptyArray
	}
	if !ok || !isArray(value) {
		return emptyArray
	}
	return json.RawMessage(value)
}
