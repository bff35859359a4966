package ports

import "context"

// SettingsRepository is the persistence contract for the key/value settings
// store. Values are arbitrary JSON; the repository owns their serialization.
type SettingsRepository interface {
	// Get returns the decoded value for key, or nil when the key has never
	// been written. A missing key is not an error.
	Get(ctx context.Context, key string) (any, error)

	// Set writes the value for key with last-write-wins upsert semantics and
	// returns the stored value. There is no delete: settings only ever get
	// created or overwritten.
	Set(ctx context.Context, key string, value any) (any, error)
}
