package repository

import "context"

// SnapshotRepository is the persistence port for whole-aggregate snapshots.
// Durability here is advisory, not transactional: implementations must never
// fail the caller. A backing store that is down degrades to no-ops on write
// and to the caller's default on read.
type SnapshotRepository interface {
	// Save serializes value and writes it under key. Best effort.
	Save(ctx context.Context, key string, value any)
	// Load reads and deserializes the value at key into dest. Returns false
	// when the key is absent, the store is unavailable, or decoding fails;
	// dest is left untouched in that case.
	Load(ctx context.Context, key string, dest any) bool
	// Remove deletes one key. Best effort.
	Remove(ctx context.Context, key string)
	// Clear deletes the repository's entire namespace. Best effort.
	Clear(ctx context.Context)
}
