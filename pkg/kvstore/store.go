package kvstore

import (
	"context"
	"errors"
)

// ErrClosed is returned by stores used after Close
var ErrClosed = errors.New("kvstore: store is closed")

// Store is a last-write-wins key-value store. Values are opaque bytes.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
