package sse

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/game"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

var log = logrus.StandardLogger()

// AddClient adds a new SSE client to the session
func AddClient(sess *models.Session, client chan models.SSEMessage, deviceID string) {
	sess.Lock()
	defer sess.Unlock()

	// Warn if the same device has multiple SSE connections
	dup := 0
	for _, id := range sess.GetSSEClients() {
		if id == deviceID {
			dup++
		}
	}
	if dup > 0 {
		log.WithFields(logrus.Fields{"device": deviceID, "extra": dup}).
			Warn("device opened additional SSE connection(s)")
	}
	sess.AddSSEClient(client, deviceID)
}

// RemoveClient removes an SSE client from the session
func RemoveClient(sess *models.Session, client chan models.SSEMessage) {
	sess.Lock()
	defer sess.Unlock()
	sess.RemoveSSEClient(client)
	log.WithField("clients", sess.SSEClientCount()).Debug("SSE client removed")
}

// Broadcast sends a change notification to all connected SSE clients.
// Delivery is at-least-once at best; a client that cannot accept within
// the timeout is skipped and will catch up on its next re-read.
func Broadcast(sess *models.Session, event, data string) {
	sess.RLock()
	// Collect all client channels while holding the lock
	clients := sess.GetSSEClients()
	sess.RUnlock()

	log.WithFields(logrus.Fields{"event": event, "clients": len(clients)}).
		Debug("broadcasting SSE event")

	// Send messages WITHOUT holding the lock
	msg := models.SSEMessage{Event: event, Data: data}
	sent := 0
	for client := range clients {
		select {
		case client <- msg:
			sent++
		case <-time.After(game.SSETimeoutSeconds * time.Second):
			log.WithField("event", event).Debug("timeout sending to SSE client")
		}
	}
	if sent < len(clients) {
		log.WithFields(logrus.Fields{"event": event, "sent": sent, "clients": len(clients)}).
			Debug("some SSE clients missed the event")
	}
}
