package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-romeiro-server/config"
)

func TestChunkTokens(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e"}

	chunks := ChunkTokens(tokens, 2)
	require.Len(t, chunks, 3)
	assert.Equal(t, []string{"a", "b"}, chunks[0])
	assert.Equal(t, []string{"c", "d"}, chunks[1])
	assert.Equal(t, []string{"e"}, chunks[2])
}

func TestChunkTokensExactFit(t *testing.T) {
	chunks := ChunkTokens([]string{"a", "b", "c", "d"}, 2)
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[1], 2)
}

func TestChunkTokensEmpty(t *testing.T) {
	assert.Empty(t, ChunkTokens(nil, 100))
}

func TestChunkTokensBadSizeActsAsOne(t *testing.T) {
	chunks := ChunkTokens([]string{"a", "b"}, 0)
	require.Len(t, chunks, 2)
}

// pushGateway is a fake Expo endpoint that answers every message with the
// given per-ticket statuses, cycling when there are more messages than
// statuses.
func pushGateway(t *testing.T, requests *int, statuses ...string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*requests++

		var messages []map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&messages))

		tickets := make([]map[string]string, 0, len(messages))
		for i := range messages {
			status := statuses[i%len(statuses)]
			tickets = append(tickets, map[string]string{"status": status})
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{"data": tickets})
	}))
}

func TestSendExpoPushCountsTickets(t *testing.T) {
	config.Load()

	var requests int
	server := pushGateway(t, &requests, "ok", "ok", "error")
	defer server.Close()

	config.AppConfig.Push.GatewayURL = server.URL
	config.AppConfig.Push.ChunkSize = 100

	sent, failed := SendExpoPush(
		[]string{"ExponentPushToken[1]", "ExponentPushToken[2]", "ExponentPushToken[3]"},
		"Novidade", "Nova notícia publicada", nil)

	assert.Equal(t, 2, sent)
	assert.Equal(t, 1, failed)
	assert.Equal(t, 1, requests)
}

func TestSendExpoPushChunksRequests(t *testing.T) {
	config.Load()

	var requests int
	server := pushGateway(t, &requests, "ok")
	defer server.Close()

	config.AppConfig.Push.GatewayURL = server.URL
	config.AppConfig.Push.ChunkSize = 2

	tokens := []string{"t1", "t2", "t3", "t4", "t5"}
	sent, failed := SendExpoPush(tokens, "Aviso", "corpo", map[string]interface{}{"type": "general"})

	assert.Equal(t, 5, sent)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 3, requests, "5 tokens with chunk size 2 means 3 gateway calls")
}

func TestSendExpoPushGatewayErrorFailsChunk(t *testing.T) {
	config.Load()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream unavailable", http.StatusBadGateway)
	}))
	defer server.Close()

	config.AppConfig.Push.GatewayURL = server.URL
	config.AppConfig.Push.ChunkSize = 100

	sent, failed := SendExpoPush([]string{"t1", "t2"}, "Aviso", "corpo", nil)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 2, failed)
}

func TestSendExpoPushNoTokens(t *testing.T) {
	config.Load()

	sent, failed := SendExpoPush(nil, "Aviso", "corpo", nil)
	assert.Equal(t, 0, sent)
	assert.Equal(t, 0, failed)
}
