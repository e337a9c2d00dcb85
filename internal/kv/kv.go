// Package kv defines the key-value store adapter the persistence layer is
// built on: string keys, string values, no structure. Structured data is
// JSON-encoded by the caller before Set and decoded after Get.
package kv

import "context"

// KV is a persistent string-keyed store. Implementations live under
// internal/kv/<driver>/ (memory, sqlite, postgres).
type KV interface {
	// Get returns the stored value and whether the key was present.
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores value under key, replacing any prior value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes key. Removing an absent key is not an error.
	Remove(ctx context.Context, key string) error
}

// HealthPinger is implemented by drivers that can verify connectivity.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}
