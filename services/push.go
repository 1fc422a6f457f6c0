package services

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"portal-romeiro-server/config"
)

// expoPushMessage is one message in an Expo push API request body.
type expoPushMessage struct {
	To       string                 `json:"to"`
	Title    string                 `json:"title"`
	Body     string                 `json:"body"`
	Data     map[string]interface{} `json:"data,omitempty"`
	Sound    string                 `json:"sound"`
	Priority string                 `json:"priority"`
}

// expoPushResponse is the per-ticket result list the gateway returns.
type expoPushResponse struct {
	Data []struct {
		Status  string `json:"status"` // "ok" or "error"
		Message string `json:"message"`
	} `json:"data"`
}

// ChunkTokens splits tokens into gateway-sized request chunks.
func ChunkTokens(tokens []string, size int) [][]string {
	if size < 1 {
		size = 1
	}
	var chunks [][]string
	for start := 0; start < len(tokens); start += size {
		end := start + size
		if end > len(tokens) {
			end = len(tokens)
		}
		chunks = append(chunks, tokens[start:end])
	}
	return chunks
}

// SendExpoPush dispatches a push notification to the given Expo tokens in
// chunks of at most the configured size per request. It returns per-ticket
// ok/error counts. Failures are counted, not retried, and are not correlated
// back to inbox rows.
func SendExpoPush(tokens []string, title, body string, data map[string]interface{}) (sent int, failed int) {
	if len(tokens) == 0 {
		return 0, 0
	}

	client := &http.Client{Timeout: 10 * time.Second}

	for _, chunk := range ChunkTokens(tokens, config.AppConfig.Push.ChunkSize) {
		messages := make([]expoPushMessage, 0, len(chunk))
		for _, token := range chunk {
			messages = append(messages, expoPushMessage{
				To:       token,
				Title:    title,
				Body:     body,
				Data:     data,
				Sound:    "default",
				Priority: "high",
			})
		}

		ok, errs := sendExpoChunk(client, messages)
		sent += ok
		failed += errs
	}

	log.Printf("📊 Expo push summary: %d sent, %d failed (%d tokens)", sent, failed, len(tokens))
	return sent, failed
}

// sendExpoChunk posts one chunk to the gateway. A transport or HTTP-level
// failure counts the whole chunk as failed.
func sendExpoChunk(client *http.Client, messages []expoPushMessage) (int, int) {
	bodyBytes, _ := json.Marshal(messages)

	req, err := http.NewRequest(http.MethodPost, config.AppConfig.Push.GatewayURL, bytes.NewReader(bodyBytes))
	if err != nil {
		log.Printf("❌ Failed to build Expo request: %v", err)
		return 0, len(messages)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		log.Printf("❌ Expo request failed: %v", err)
		return 0, len(messages)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("❌ Failed to read Expo response: %v", err)
		return 0, len(messages)
	}

	if resp.StatusCode >= 400 {
		log.Printf("❌ Expo push send failed: %s - %s", resp.Status, string(respBody))
		return 0, len(messages)
	}

	var parsed expoPushResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil || len(parsed.Data) == 0 {
		// Accepted but unparseable ticket list: assume the chunk went through.
		return len(messages), 0
	}

	ok, errs := 0, 0
	for _, ticket := range parsed.Data {
		if ticket.Status == "ok" {
			ok++
		} else {
			errs++
			log.Printf("⚠️ Expo ticket error: %s", ticket.Message)
		}
	}
	// Tickets the gateway did not answer for count as errors.
	if missing := len(messages) - len(parsed.Data); missing > 0 {
		errs += missing
	}
	return ok, errs
}
