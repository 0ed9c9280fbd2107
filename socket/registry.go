package socket

import "sync"

// ConnectionRegistry maps a durable user identity to its current live socket
// connection. A user has at most one binding; a reconnect overwrites, no
// history is kept.
type ConnectionRegistry struct {
	mu       sync.RWMutex
	bindings map[string]string // userId -> connectionId
}

func NewConnectionRegistry() *ConnectionRegistry {
	return &ConnectionRegistry{bindings: make(map[string]string)}
}

// Bind records userID as reachable on connID, replacing any prior binding.
func (r *ConnectionRegistry) Bind(userID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bindings[userID] = connID
}

// Resolve returns the live connection for userID, if any.
func (r *ConnectionRegistry) Resolve(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	connID, ok := r.bindings[userID]
	return connID, ok
}

// Unbind removes the binding only while it still points at connID. The
// disconnect of an old socket can arrive after the user already reconnected;
// it must not evict the newer binding.
func (r *ConnectionRegistry) Unbind(userID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.bindings[userID] == connID {
		delete(r.bindings, userID)
	}
}
