package socket_test

import (
	"testing"

	"pairwave_server/socket"

	"github.com/stretchr/testify/assert"
)

func TestInviteTracker_RecordAndResolve(t *testing.T) {
	tracker := socket.NewInviteTracker()

	_, ok := tracker.ResolveTarget("caller")
	assert.False(t, ok)

	previous, had := tracker.Record("caller", "target-1")
	assert.False(t, had)
	assert.Empty(t, previous)

	target, ok := tracker.ResolveTarget("caller")
	assert.True(t, ok)
	assert.Equal(t, "target-1", target)
}

func TestInviteTracker_RecordReturnsDisplacedTarget(t *testing.T) {
	tracker := socket.NewInviteTracker()
	tracker.Record("caller", "target-1")

	previous, had := tracker.Record("caller", "target-2")
	assert.True(t, had)
	assert.Equal(t, "target-1", previous)

	target, _ := tracker.ResolveTarget("caller")
	assert.Equal(t, "target-2", target)
}

func TestInviteTracker_ClearIsIdempotent(t *testing.T) {
	tracker := socket.NewInviteTracker()
	tracker.Record("caller", "target-1")

	tracker.Clear("caller")
	_, ok := tracker.ResolveTarget("caller")
	assert.False(t, ok)

	// Clearing an already-cleared invite stays a no-op.
	tracker.Clear("caller")
	tracker.Clear("nobody")
}
