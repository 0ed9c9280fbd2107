package socket_test

import (
	"testing"

	"pairwave_server/socket"

	"github.com/stretchr/testify/assert"
)

func entry(connID, userID, gender, preference string) socket.WaitingEntry {
	return socket.WaitingEntry{
		ConnectionID:     connID,
		UserID:           userID,
		Gender:           gender,
		GenderPreference: preference,
	}
}

func TestMatchQueue_FindReciprocalMatch(t *testing.T) {
	tests := []struct {
		name      string
		waiting   socket.WaitingEntry
		candidate socket.WaitingEntry
		wantMatch bool
	}{
		{
			name:      "anyone matches anyone",
			waiting:   entry("c1", "a", "F", "Anyone"),
			candidate: entry("c2", "b", "M", "Anyone"),
			wantMatch: true,
		},
		{
			name:      "mutual specific preferences",
			waiting:   entry("c1", "a", "F", "M"),
			candidate: entry("c2", "b", "M", "F"),
			wantMatch: true,
		},
		{
			name:      "waiting preference rejects candidate",
			waiting:   entry("c1", "a", "F", "F"),
			candidate: entry("c2", "b", "M", "F"),
			wantMatch: false,
		},
		{
			name:      "candidate preference rejects waiting",
			waiting:   entry("c1", "a", "F", "Anyone"),
			candidate: entry("c2", "b", "M", "M"),
			wantMatch: false,
		},
		{
			name:      "one-sided wildcard still needs the other side",
			waiting:   entry("c1", "a", "M", "Anyone"),
			candidate: entry("c2", "b", "F", "F"),
			wantMatch: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := socket.NewMatchQueue()
			q.Enqueue(tt.waiting)

			matched, index, found := q.FindReciprocalMatch(tt.candidate)
			assert.Equal(t, tt.wantMatch, found)
			if tt.wantMatch {
				assert.Equal(t, tt.waiting.UserID, matched.UserID)
				assert.Equal(t, 0, index)
			}
		})
	}
}

func TestMatchQueue_FirstFitPrefersOldest(t *testing.T) {
	q := socket.NewMatchQueue()
	q.Enqueue(entry("c1", "older", "F", "Anyone"))
	q.Enqueue(entry("c2", "newer", "F", "Anyone"))

	matched, index, found := q.FindReciprocalMatch(entry("c3", "seeker", "M", "Anyone"))
	assert.True(t, found)
	assert.Equal(t, "older", matched.UserID)
	assert.Equal(t, 0, index)
}

func TestMatchQueue_CandidateNeverMatchesOwnEntry(t *testing.T) {
	q := socket.NewMatchQueue()
	q.Enqueue(entry("c1", "a", "F", "Anyone"))

	// a's wildcard entry admits a's own gender, but a user must never be
	// paired with themselves.
	_, _, found := q.FindReciprocalMatch(entry("c1", "a", "F", "Anyone"))
	assert.False(t, found)

	// Another user's compatible entry still matches past the self entry.
	q.Enqueue(entry("c2", "b", "M", "Anyone"))
	matched, index, found := q.FindReciprocalMatch(entry("c1", "a", "F", "Anyone"))
	assert.True(t, found)
	assert.Equal(t, "b", matched.UserID)
	assert.Equal(t, 1, index)
}

func TestMatchQueue_EnqueueIdempotentPerUser(t *testing.T) {
	q := socket.NewMatchQueue()
	q.Enqueue(entry("c1", "a", "F", "Anyone"))
	q.Enqueue(entry("c1", "a", "F", "Anyone"))
	assert.Equal(t, 1, q.Len())
}

func TestMatchQueue_RemovePreservesOrder(t *testing.T) {
	q := socket.NewMatchQueue()
	q.Enqueue(entry("c1", "a", "F", "M"))
	q.Enqueue(entry("c2", "b", "F", "Anyone"))
	q.Enqueue(entry("c3", "c", "F", "Anyone"))

	// a only wants M, so an F seeker matches b in the middle; removing b
	// must keep a ahead of c.
	_, index, found := q.FindReciprocalMatch(entry("c4", "seeker", "F", "Anyone"))
	assert.True(t, found)
	assert.Equal(t, 1, index)
	q.Remove(index)

	matched, index, found := q.FindReciprocalMatch(entry("c4", "seeker", "F", "Anyone"))
	assert.True(t, found)
	assert.Equal(t, "c", matched.UserID)
	assert.Equal(t, 1, index)
}

func TestMatchQueue_RemoveByConnectionID(t *testing.T) {
	q := socket.NewMatchQueue()
	q.Enqueue(entry("c1", "a", "F", "Anyone"))
	q.Enqueue(entry("c2", "b", "M", "Anyone"))

	q.RemoveByConnectionID("c1")
	assert.Equal(t, 1, q.Len())

	// Removing an unknown connection is a no-op.
	q.RemoveByConnectionID("c1")
	assert.Equal(t, 1, q.Len())
}
