package kv

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned when a key has never been written.
var ErrKeyNotFound = errors.New("key not found")

// Store is the persistent key-value medium holding the dashboard's state as
// JSON blobs. This abstraction allows swapping the implementation (SQLite in
// production, in-memory in tests) without changing callers.
//
//go:generate mockery --name Store --output mock_Store.go
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// SetIfAbsent writes the value only when the key does not exist yet and
	// reports whether a write happened. Existing data is never overwritten.
	SetIfAbsent(ctx context.Context, key string, value []byte) (bool, error)
}
