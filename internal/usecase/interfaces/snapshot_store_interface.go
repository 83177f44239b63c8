package interfaces

import "context"

// ISnapshotStore is the persistent key-value store behind the collections.
//
// Each key holds the JSON array of one collection. Load returns nil, nil when
// the key was never written. Save replaces the whole value.
type ISnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Close() error
}
