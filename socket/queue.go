package socket

import (
	"sync"

	"pairwave_server/models"
)

// WaitingEntry is one user queued for anonymous pairing.
type WaitingEntry struct {
	ConnectionID     string
	UserID           string
	Gender           string
	GenderPreference string
}

// MatchQueue holds users awaiting an anonymous pairing, in arrival order.
type MatchQueue struct {
	mu      sync.Mutex
	entries []WaitingEntry
}

func NewMatchQueue() *MatchQueue {
	return &MatchQueue{}
}

// Enqueue appends entry unless the user is already waiting. Re-requesting a
// match while queued keeps the original position.
func (q *MatchQueue) Enqueue(entry WaitingEntry) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, e := range q.entries {
		if e.UserID == entry.UserID {
			return
		}
	}
	q.entries = append(q.entries, entry)
}

// FindReciprocalMatch scans head to tail for the oldest waiting entry whose
// preference admits candidate and vice versa. First fit only: a later entry
// is never preferred over an earlier compatible one. A user's own waiting
// entry is never a match; re-requesting while queued must stay a no-op.
func (q *MatchQueue) FindReciprocalMatch(candidate WaitingEntry) (WaitingEntry, int, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.entries {
		if e.UserID == candidate.UserID {
			continue
		}
		if accepts(candidate.GenderPreference, e.Gender) && accepts(e.GenderPreference, candidate.Gender) {
			return e, i, true
		}
	}
	return WaitingEntry{}, -1, false
}

// Remove drops the entry at index, preserving the order of the remainder.
func (q *MatchQueue) Remove(index int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if index < 0 || index >= len(q.entries) {
		return
	}
	q.entries = append(q.entries[:index], q.entries[index+1:]...)
}

// RemoveByConnectionID drops the entry owned by connID, if any. Used on
// cancel_search and on disconnect.
func (q *MatchQueue) RemoveByConnectionID(connID string) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i, e := range q.entries {
		if e.ConnectionID == connID {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			return
		}
	}
}

// Len reports how many users are currently waiting.
func (q *MatchQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.entries)
}

func accepts(preference, gender string) bool {
	return preference == models.PreferenceAnyone || preference == gender
}
