package socket

import (
	"context"
	"log"
	"sync"

	"pairwave_server/models"

	"github.com/google/uuid"
)

// CallLedger is the persisted call-history collaborator.
type CallLedger interface {
	CreateCallRecord(ctx context.Context, userA, userB, channelName string) error
	FindOpenCallForParticipant(ctx context.Context, userID string) (*models.CallRecord, error)
	SetCallDuration(ctx context.Context, callID string, seconds int) error
}

// InvitePayload mirrors the send_call_invite signal. Token is the media
// session credential minted by the caller's client; it passes through
// opaquely.
type InvitePayload struct {
	TargetUserID string `json:"targetUserId"`
	ChannelName  string `json:"channelName"`
	Token        string `json:"token"`
	CallerID     string `json:"callerId"`
	CallerName   string `json:"callerName"`
	TargetUID    string `json:"targetUid"`
}

// Coordinator is the per-signal event surface. It holds no call state of its
// own; it orchestrates the queue, registry, tracker, and dispatcher so each
// inbound signal mutates them as one unit.
type Coordinator struct {
	Registry   *ConnectionRegistry
	Queue      *MatchQueue
	Invites    *InviteTracker
	Dispatcher *Dispatcher
	Transport  LiveTransport
	Profiles   ProfileStore
	Ledger     CallLedger

	// matchMu makes profile-fetch-through-queue-mutation one logical unit.
	// Two overlapping find_match handlers must not both scan the queue
	// against contents the other is about to change.
	matchMu sync.Mutex
}

// HandleConnect binds the user to the fresh socket, replacing any stale
// binding from a previous connection.
func (c *Coordinator) HandleConnect(connID, userID string) {
	if userID == "" {
		log.Printf("⚠️ Socket %s connected without a userId, skipping bind", connID)
		return
	}
	c.Registry.Bind(userID, connID)
}

// HandleFindMatch pairs the caller with the oldest mutually compatible
// waiting user, or queues the caller when none exists.
func (c *Coordinator) HandleFindMatch(ctx context.Context, connID, userID, genderPreference string) {
	c.matchMu.Lock()
	defer c.matchMu.Unlock()

	profile, err := c.Profiles.GetUserProfile(ctx, userID)
	if err != nil || profile == nil || profile.Gender == "" {
		// Fail closed: no resolvable profile, no queue entry, nothing
		// surfaced to the client.
		log.Printf("⚠️ find_match from %s dropped, profile not resolvable: %v", userID, err)
		return
	}
	if genderPreference == "" {
		genderPreference = models.PreferenceAnyone
	}

	candidate := WaitingEntry{
		ConnectionID:     connID,
		UserID:           userID,
		Gender:           profile.Gender,
		GenderPreference: genderPreference,
	}

	peer, index, found := c.Queue.FindReciprocalMatch(candidate)
	if !found {
		c.Queue.Enqueue(candidate)
		log.Printf("🕐 %s is waiting for a match", userID)
		return
	}
	c.Queue.Remove(index)

	channelName := uuid.NewString()
	if err := c.Ledger.CreateCallRecord(ctx, peer.UserID, userID, channelName); err != nil {
		// Bookkeeping failure must not block the match itself.
		log.Printf("⚠️ Call record for channel %s not persisted: %v", channelName, err)
	}

	// Both parties hold open sockets mid-search, so the live channel is
	// enough here; no push wake-up.
	c.Transport.Send(peer.ConnectionID, models.EventMatchFound, map[string]string{
		"channelName":  channelName,
		"remoteUserId": userID,
	})
	c.Transport.Send(connID, models.EventMatchFound, map[string]string{
		"channelName":  channelName,
		"remoteUserId": peer.UserID,
	})
	log.Printf("✅ Matched %s with %s on channel %s", peer.UserID, userID, channelName)
}

// HandleCancelSearch removes the issuing connection from the waiting queue.
func (c *Coordinator) HandleCancelSearch(connID string) {
	c.Queue.RemoveByConnectionID(connID)
}

// HandleSendCallInvite records the ring and notifies the target on both
// channels. A caller re-inviting while an earlier invite is still pending
// tears the earlier target down first instead of leaving it ringing.
func (c *Coordinator) HandleSendCallInvite(ctx context.Context, payload InvitePayload) {
	if previous, had := c.Invites.Record(payload.CallerID, payload.TargetUserID); had && previous != payload.TargetUserID {
		c.Dispatcher.Notify(ctx, previous, models.EventCallEnded, map[string]string{}, models.PushTypeCancelCall)
	}

	c.Dispatcher.Notify(ctx, payload.TargetUserID, models.EventIncomingCall, map[string]string{
		"channelName": payload.ChannelName,
		"token":       payload.Token,
		"callerId":    payload.CallerID,
		"callerName":  payload.CallerName,
		"targetUid":   payload.TargetUID,
	}, models.PushTypeCall)
	log.Printf("📞 %s is ringing %s on channel %s", payload.CallerID, payload.TargetUserID, payload.ChannelName)
}

// HandleDeclineCall clears the ring and tells the caller. Declining implies
// the caller's app is open, so the live channel is enough.
func (c *Coordinator) HandleDeclineCall(callerID string) {
	c.Invites.Clear(callerID)
	c.Dispatcher.NotifyLive(callerID, models.EventCallRejected, map[string]string{})
}

// HandleCancelCall is the caller taking the invite back before an answer.
func (c *Coordinator) HandleCancelCall(ctx context.Context, userID, targetUserID string) {
	c.Invites.Clear(userID)
	c.Dispatcher.Notify(ctx, targetUserID, models.EventCallEnded, map[string]string{}, models.PushTypeCancelCall)
}

// HandleEndCall closes out a call from the issuing user's side. An
// outstanding invite means the call never got past ringing, which makes this
// an implicit cancel toward the pending target. A supplied duration closes
// the newest open ledger record naming the user.
func (c *Coordinator) HandleEndCall(ctx context.Context, userID string, durationSeconds *int) {
	if target, ok := c.Invites.ResolveTarget(userID); ok {
		c.Dispatcher.Notify(ctx, target, models.EventCallEnded, map[string]string{}, models.PushTypeCancelCall)
		c.Invites.Clear(userID)
	}

	if durationSeconds == nil {
		return
	}
	record, err := c.Ledger.FindOpenCallForParticipant(ctx, userID)
	if err != nil {
		log.Printf("⚠️ Open call lookup for %s failed: %v", userID, err)
		return
	}
	if record == nil {
		return
	}
	if err := c.Ledger.SetCallDuration(ctx, record.CallID, *durationSeconds); err != nil {
		log.Printf("⚠️ Duration update for call %s failed: %v", record.CallID, err)
	}
}

// HandleDisconnect is the transport-level teardown: leave the queue, end any
// ring the user initiated, and release the binding unless a newer connection
// already took it over.
func (c *Coordinator) HandleDisconnect(ctx context.Context, connID, userID string) {
	c.Queue.RemoveByConnectionID(connID)
	if userID == "" {
		return
	}
	if target, ok := c.Invites.ResolveTarget(userID); ok {
		c.Dispatcher.Notify(ctx, target, models.EventCallEnded, map[string]string{}, models.PushTypeCancelCall)
		c.Invites.Clear(userID)
	}
	c.Registry.Unbind(userID, connID)
}
