package services_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pairwave_server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushService_SendPush(t *testing.T) {
	var received struct {
		To       string            `json:"to"`
		Data     map[string]string `json:"data"`
		Priority string            `json:"priority"`
		TTL      *int              `json:"ttl"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"data":[{"status":"ok"}]}`))
	}))
	defer server.Close()

	t.Setenv("EXPO_PUSH_URL", server.URL)
	ps := services.NewPushService()

	err := ps.SendPush(context.Background(), "ExponentPushToken[abc]", map[string]string{
		"type":        "call",
		"channelName": "channel-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "ExponentPushToken[abc]", received.To)
	assert.Equal(t, "high", received.Priority)
	require.NotNil(t, received.TTL, "ttl must be sent explicitly")
	assert.Equal(t, 0, *received.TTL)
	assert.Equal(t, "call", received.Data["type"])
	assert.Equal(t, "channel-1", received.Data["channelName"])
}

func TestPushService_SendPushErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusBadRequest)
	}))
	defer server.Close()

	t.Setenv("EXPO_PUSH_URL", server.URL)
	ps := services.NewPushService()

	err := ps.SendPush(context.Background(), "nope", map[string]string{"type": "call"})
	assert.Error(t, err)
}
