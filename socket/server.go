package socket

import (
	"context"
	"log"

	socketio "github.com/googollee/go-socket.io"
)

type findMatchPayload struct {
	GenderPreference string `json:"genderPreference"`
}

type declineCallPayload struct {
	CallerID string `json:"callerId"`
}

type cancelCallPayload struct {
	TargetUserID string `json:"targetUserId"`
}

type endCallPayload struct {
	DurationInSeconds *int `json:"durationInSeconds"`
}

// SocketTransport adapts the socket.io server to LiveTransport. Every
// connection joins a room named by its own id, so a room broadcast reaches
// exactly that socket; broadcasting to a gone connection reaches nobody,
// which is the drop semantics stale notifications rely on.
type SocketTransport struct {
	Server *socketio.Server
}

func (t *SocketTransport) Send(connID, event string, payload interface{}) {
	t.Server.BroadcastToRoom("/", connID, event, payload)
}

// NewSocketServer initializes the Socket.IO server and wires its signals to
// the coordinator. The client identifies itself with the userId query
// parameter on the handshake.
func NewSocketServer(coordinator *Coordinator) *socketio.Server {
	server := socketio.NewServer(nil)

	connUser := func(s socketio.Conn) string {
		if id, ok := s.Context().(string); ok {
			return id
		}
		return ""
	}

	server.OnConnect("/", func(s socketio.Conn) error {
		u := s.URL()
		userID := u.Query().Get("userId")
		s.SetContext(userID)
		s.Join(s.ID())
		coordinator.HandleConnect(s.ID(), userID)
		log.Printf("✅ Socket connected: %s (user %s)", s.ID(), userID)
		return nil
	})

	server.OnEvent("/", "find_match", func(s socketio.Conn, p findMatchPayload) {
		coordinator.HandleFindMatch(context.Background(), s.ID(), connUser(s), p.GenderPreference)
	})

	server.OnEvent("/", "cancel_search", func(s socketio.Conn) {
		coordinator.HandleCancelSearch(s.ID())
	})

	server.OnEvent("/", "send_call_invite", func(s socketio.Conn, p InvitePayload) {
		coordinator.HandleSendCallInvite(context.Background(), p)
	})

	server.OnEvent("/", "decline_call", func(s socketio.Conn, p declineCallPayload) {
		coordinator.HandleDeclineCall(p.CallerID)
	})

	server.OnEvent("/", "cancel_call", func(s socketio.Conn, p cancelCallPayload) {
		coordinator.HandleCancelCall(context.Background(), connUser(s), p.TargetUserID)
	})

	server.OnEvent("/", "end_call", func(s socketio.Conn, p endCallPayload) {
		coordinator.HandleEndCall(context.Background(), connUser(s), p.DurationInSeconds)
	})

	server.OnError("/", func(s socketio.Conn, e error) {
		log.Printf("❌ Socket error: %v", e)
	})

	server.OnDisconnect("/", func(s socketio.Conn, reason string) {
		coordinator.HandleDisconnect(context.Background(), s.ID(), connUser(s))
		log.Printf("❌ Socket disconnected: %s (%s)", s.ID(), reason)
	})

	return server
}
