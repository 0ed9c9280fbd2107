package services

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-resty/resty/v2"
)

const expoPushEndpoint = "https://exp.host/--/api/v2/push/send"

// PushService delivers best-effort wake-up messages through the Expo push
// API. Messages are data-only: the client app renders the call UI from the
// payload fields, so no title or body is attached.
type PushService struct {
	client   *resty.Client
	endpoint string
}

// NewPushService creates the push client. EXPO_PUSH_URL overrides the
// endpoint, which the tests point at a local server.
func NewPushService() *PushService {
	endpoint := os.Getenv("EXPO_PUSH_URL")
	if endpoint == "" {
		endpoint = expoPushEndpoint
	}

	client := resty.New().
		SetTimeout(10 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &PushService{client: client, endpoint: endpoint}
}

type expoPushMessage struct {
	To       string            `json:"to"`
	Data     map[string]string `json:"data"`
	Priority string            `json:"priority"`
	TTL      int               `json:"ttl"`
}

// SendPush dispatches a high-priority, zero-retention message to token. TTL
// zero means Expo drops the message rather than queueing it for a device
// that is offline right now; a stale call invite is worse than none.
func (ps *PushService) SendPush(ctx context.Context, token string, data map[string]string) error {
	message := expoPushMessage{
		To:       token,
		Data:     data,
		Priority: "high",
		TTL:      0,
	}

	resp, err := ps.client.R().
		SetContext(ctx).
		SetBody(message).
		Post(ps.endpoint)
	if err != nil {
		return fmt.Errorf("push dispatch failed: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("push dispatch failed: status %d: %s", resp.StatusCode(), resp.String())
	}
	return nil
}
