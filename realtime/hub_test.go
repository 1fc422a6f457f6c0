package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func receiveEvent(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case frame := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(frame, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHubBroadcastReachesAllClients(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	first := hub.Register()
	second := hub.Register()

	hub.Broadcast("news_updated", map[string]interface{}{"id": float64(7)})

	for _, client := range []*Client{first, second} {
		event := receiveEvent(t, client)
		assert.Equal(t, "news_updated", event.Type)
		assert.False(t, event.Timestamp.IsZero())

		data, ok := event.Data.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, float64(7), data["id"])
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := hub.Register()
	hub.Unregister(client)

	select {
	case _, open := <-client.Send:
		assert.False(t, open, "send channel should be closed after unregister")
	case <-time.After(time.Second):
		t.Fatal("send channel was not closed")
	}
}

func TestHubUnregisteredClientGetsNoEvents(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	stays := hub.Register()
	leaves := hub.Register()
	hub.Unregister(leaves)

	// Wait for the unregister to be processed before broadcasting.
	require.Eventually(t, func() bool {
		return hub.ClientCount() == 1
	}, time.Second, 10*time.Millisecond)

	hub.Broadcast("videos_updated", nil)

	event := receiveEvent(t, stays)
	assert.Equal(t, "videos_updated", event.Type)
}

func TestHubSlowClientDoesNotBlockOthers(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	slow := hub.Register()
	fast := hub.Register()

	// Fill the slow client's buffer so further frames get skipped for it.
	for i := 0; i < cap(slow.Send)+5; i++ {
		hub.Broadcast("attractions_updated", map[string]interface{}{"seq": i})
	}

	// The fast client drains as it goes and keeps receiving.
	event := receiveEvent(t, fast)
	assert.Equal(t, "attractions_updated", event.Type)
}
