package socket

import "sync"

// InviteTracker records in-flight direct call invitations, caller to target,
// so ringing can be torn down on decline, cancel, end, or disconnect. It
// only knows "ringing"; an accepted call just stops signaling until a
// terminal event clears the stale entry.
type InviteTracker struct {
	mu      sync.Mutex
	pending map[string]string // callerId -> targetUserId
}

func NewInviteTracker() *InviteTracker {
	return &InviteTracker{pending: make(map[string]string)}
}

// Record stores the invite for callerID, returning the target it displaced
// when the caller already had one pending.
func (t *InviteTracker) Record(callerID, targetUserID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	previous, had := t.pending[callerID]
	t.pending[callerID] = targetUserID
	return previous, had
}

// ResolveTarget returns whom callerID is currently ringing, if anyone.
func (t *InviteTracker) ResolveTarget(callerID string) (string, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	target, ok := t.pending[callerID]
	return target, ok
}

// Clear drops callerID's pending invite; clearing an absent invite is a
// no-op, never an error.
func (t *InviteTracker) Clear(callerID string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.pending, callerID)
}
