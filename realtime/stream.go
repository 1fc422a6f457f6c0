package realtime

import (
	"io"

	"github.com/gin-gonic/gin"
)

// StreamHandler serves GET /api/updates/stream as a server-sent-events
// stream. The connection stays open until the client goes away; closure is
// detected through the request context and deregisters the client.
func StreamHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "text/event-stream")
		c.Writer.Header().Set("Cache-Control", "no-cache")
		c.Writer.Header().Set("Connection", "keep-alive")
		c.Writer.Header().Set("X-Accel-Buffering", "no")

		client := hub.Register()
		defer hub.Unregister(client)

		ctx := c.Request.Context()

		c.Stream(func(w io.Writer) bool {
			select {
			case frame, ok := <-client.Send:
				if !ok {
					return false
				}
				c.SSEvent("message", string(frame))
				return true
			case <-ctx.Done():
				return false
			}
		})
	}
}
