package output

import "context"

// PreferenceStore is a persistent key-value store outliving a single run.
type PreferenceStore interface {
	// Get returns the stored value and true, or "" and false when key is absent.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
