package core

import (
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// EntryID identifies a saved journal entry. It is the creation time in
// Unix milliseconds, which doubles as the chronological sort key. Within a
// single process a monotonic floor prevents same-millisecond collisions;
// across processes the timestamp remains an accepted best-effort key.
type EntryID int64

var (
	lastEntryID EntryID
	entryIDMu   sync.Mutex
)

// NewEntryID returns a fresh entry identifier. If the clock has not moved
// since the previous call, the id is bumped by one so ordering stays strict
// without changing the timestamp scale.
func NewEntryID() EntryID {
	entryIDMu.Lock()
	defer entryIDMu.Unlock()

	id := EntryID(time.Now().UnixMilli())
	if id <= lastEntryID {
		id = lastEntryID + 1
	}
	lastEntryID = id
	return id
}

// Time returns the creation time encoded in the id.
func (id EntryID) Time() time.Time {
	return time.UnixMilli(int64(id))
}

// IsZero checks if the id is unset.
func (id EntryID) IsZero() bool {
	return id == 0
}

// String returns the decimal representation.
func (id EntryID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// ParseEntryID parses a decimal entry id.
func ParseEntryID(s string) (EntryID, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, NewValidationError("id", "must be a decimal integer")
	}
	return EntryID(n), nil
}

// DraftID identifies an in-progress wizard session. Drafts are transient and
// never persisted, so a random identifier is enough.
type DraftID string

// NewDraftID creates a new unique draft identifier.
func NewDraftID() DraftID {
	return DraftID(uuid.NewString())
}

// String returns the string representation.
func (id DraftID) String() string {
	return string(id)
}

// IsEmpty checks if the draft id is empty.
func (id DraftID) IsEmpty() bool {
	return id == ""
}
