package socket

import (
	"context"
	"log"

	"pairwave_server/models"
)

// ProfileStore is the slice of the user-profile collaborator the signaling
// core consumes: matching attributes and the push destination.
type ProfileStore interface {
	GetUserProfile(ctx context.Context, userID string) (*models.UserProfile, error)
}

// PushSender delivers best-effort out-of-band wake messages.
type PushSender interface {
	SendPush(ctx context.Context, token string, data map[string]string) error
}

// LiveTransport sends an event to a single live connection. Sends to a
// connection that no longer exists reach nobody.
type LiveTransport interface {
	Send(connID, event string, payload interface{})
}

// Dispatcher delivers an event to a user over the live channel when one is
// bound and, independently, over push when the profile carries a token.
// The two paths are not a primary/fallback pair; both are attempted even if
// the other fails.
type Dispatcher struct {
	Registry  *ConnectionRegistry
	Transport LiveTransport
	Profiles  ProfileStore
	Push      PushSender
}

// Notify sends event on both channels. pushType tags the push payload so the
// client can distinguish a ring from a teardown without parsing the event.
func (d *Dispatcher) Notify(ctx context.Context, targetUserID, event string, payload map[string]string, pushType string) {
	if connID, ok := d.Registry.Resolve(targetUserID); ok {
		d.Transport.Send(connID, event, payload)
	}

	profile, err := d.Profiles.GetUserProfile(ctx, targetUserID)
	if err != nil {
		log.Printf("⚠️ Push to %s skipped, profile lookup failed: %v", targetUserID, err)
		return
	}
	if profile == nil || profile.PushToken == "" {
		log.Printf("⚠️ No push token for %s, live channel only", targetUserID)
		return
	}

	data := map[string]string{"type": pushType}
	for k, v := range payload {
		data[k] = v
	}
	if err := d.Push.SendPush(ctx, profile.PushToken, data); err != nil {
		log.Printf("⚠️ Push dispatch to %s failed: %v", targetUserID, err)
	}
}

// NotifyLive sends on the live channel only. Used where the recipient is
// known to have the app open, so a push wake-up would be noise.
func (d *Dispatcher) NotifyLive(targetUserID, event string, payload map[string]string) {
	if connID, ok := d.Registry.Resolve(targetUserID); ok {
		d.Transport.Send(connID, event, payload)
	}
}
