package eval

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// inFlightEntry is what the sweeper needs to fail a task: the record it
// belongs to and when the attempt started. Everything else lives in the
// store or the partial-results hash.
type inFlightEntry struct {
	RecordID  uuid.UUID
	BatchID   uuid.UUID
	StartedAt time.Time
}

// inFlightTable maps task-id to its entry. It is a deadline accelerator for
// the sweeper, not authoritative state: it can be rebuilt from the
// partial-results hash keys after a restart. The dispatch loop inserts, the
// collector removes on finalisation, the sweeper removes on timeout.
type inFlightTable struct {
	mu      sync.Mutex
	entries map[string]inFlightEntry
}

func newInFlightTable() *inFlightTable {
	return &inFlightTable{entries: make(map[string]inFlightEntry)}
}

func (t *inFlightTable) Add(taskID string, e inFlightEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[taskID] = e
}

func (t *inFlightTable) Get(taskID string) (inFlightEntry, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	e, ok := t.entries[taskID]
	return e, ok
}

func (t *inFlightTable) Remove(taskID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.entries, taskID)
}

func (t *inFlightTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.entries)
}

// Expired returns the task-ids whose age exceeds timeout, with their
// entries. The caller fails them outside the lock.
func (t *inFlightTable) Expired(now time.Time, timeout time.Duration) map[string]inFlightEntry {
	t.mu.Lock()
	defer t.mu.Unlock()
	expired := make(map[string]inFlightEntry)
	for id, e := range t.entries {
		if now.Sub(e.StartedAt) > timeout {
			expired[id] = e
		}
	}
	return expired
}
