package bridge

import (
	"context"
	"encoding/json"
	"errors"

	"todopane/pkg/kvstore"
	"todopane/pkg/tasks"
	"todopane/pkg/utils"
)

// DefaultKey is the namespaced key holding the task array
const DefaultKey = "todopane.tasks"

// ErrClosed is returned once the host side has shut down
var ErrClosed = errors.New("bridge: closed")

// Loader asks the store for the persisted list; the reply arrives via Receive
type Loader interface {
	RequestLoad()
	Receive(ctx context.Context) ([]tasks.Task, error)
}

// Saver pushes the full list to the store without waiting for an answer
type Saver interface {
	Save(items []tasks.Task)
}

// Bridge is the view end of the channel pair
type Bridge struct {
	toHost chan<- []byte
	toView <-chan []byte
}

// Connect builds both ends of a bridge backed by store. The host must be
// started with Run for requests to be served.
func Connect(store kvstore.Store, key string) (*Bridge, *Host) {
	if key == "" {
		key = DefaultKey
	}
	toHost := make(chan []byte, 64)
	toView := make(chan []byte, 8)

	b := &Bridge{toHost: toHost, toView: toView}
	h := &Host{store: store, key: key, in: toHost, out: toView}
	return b, h
}

func (b *Bridge) post(msgType string, items []tasks.Task) {
	raw, err := encode(msgType, items)
	if err != nil {
		utils.Log("Error encoding %s message: %v", msgType, err)
		return
	}
	b.toHost <- raw
}

// RequestLoad sends a load request with no payload
func (b *Bridge) RequestLoad() {
	b.post(TypeLoad, nil)
}

// Save sends the full list. The list is encoded before this call returns,
// so later mutations never leak into the message.
func (b *Bridge) Save(items []tasks.Task) {
	if items == nil {
		items = []tasks.Task{}
	}
	b.post(TypeSave, items)
}

// Receive blocks until the next load reply and returns its tasks.
// Replies of other types are skipped.
func (b *Bridge) Receive(ctx context.Context) ([]tasks.Task, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case raw, ok := <-b.toView:
			if !ok {
				return nil, ErrClosed
			}
			var m Message
			if err := json.Unmarshal(raw, &m); err != nil {
				utils.Log("Dropping malformed reply: %v", err)
				continue
			}
			if m.Type != TypeLoad {
				continue
			}
			items := DecodeTasks(m.Tasks)
			utils.Log("Received %d tasks", len(items))
			return items, nil
		}
	}
}

// Load requests the persisted list and waits for the reply
func (b *Bridge) Load(ctx context.Context) ([]tasks.Task, error) {
	b.RequestLoad()
	return b.Receive(ctx)
}

// Close stops sending; the host drains what is queued and then exits
func (b *Bridge) Close() {
	close(b.toHost)
}
