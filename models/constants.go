package models

// ✅ Gender preference wildcard accepted by find_match
const PreferenceAnyone = "Anyone"

// ✅ Events emitted to clients over the live channel
const (
	EventMatchFound   = "match_found"
	EventIncomingCall = "incoming_call"
	EventCallRejected = "call_rejected"
	EventCallEnded    = "call_ended"
)

// ✅ Push message type tags
const (
	PushTypeCall       = "call"
	PushTypeCancelCall = "cancel_call"
)
