package ports

import "encoding/json"

// Well-known store keys.
const (
	KeyHistory    = "history"
	KeyLastBackup = "lastBackupTimestamp"
	KeyTheme      = "theme"
)

// Store is the persistence contract of the journal: a flat mapping from a
// string key to a JSON-encoded value. Writes replace the whole value for a
// key; the history collection is always written as one unit. Adapters exist
// for local disk, Postgres, and an in-memory fake for tests.
type Store interface {
	// Get returns the raw JSON value for key. The boolean reports presence;
	// an absent key is not an error.
	Get(key string) (json.RawMessage, bool, error)

	// Set stores the raw JSON value for key, replacing any previous value.
	Set(key string, value json.RawMessage) error

	// Delete removes a key. Deleting an absent key is a no-op.
	Delete(key string) error
}
