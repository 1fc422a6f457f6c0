package routes

import (
	"portal-romeiro-server/realtime"
)

// updatesHub receives a content-update event from any mutating handler and
// fans it out to the SSE subscribers.
var updatesHub *realtime.Hub

// SetUpdatesHub wires the shared updates hub into the route handlers.
func SetUpdatesHub(hub *realtime.Hub) {
	updatesHub = hub
}

// broadcastUpdate emits an updates-stream event if the hub is wired.
func broadcastUpdate(eventType string, data interface{}) {
	if updatesHub != nil {
		updatesHub.Broadcast(eventType, data)
	}
}
