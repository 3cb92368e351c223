package adapter

import "context"

// KeyValueStore is the storage port behind the goal repository.
// Implementations hold opaque values under string keys.
type KeyValueStore interface {
	// Get returns the value stored under key. found is false when the key is absent.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// HealthCheck reports whether the backend is reachable.
	HealthCheck() bool
}
