package service

import "context"

// KeyValueStore is a minimal persisted string store. The only consumer is the
// last-location memory, which keeps one JSON value under a single key; the
// port exists so tests can substitute it trivially.
type KeyValueStore interface {
	// Get returns the stored value, or ok=false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set unconditionally overwrites the value under key.
	Set(ctx context.Context, key, value string) error
}
