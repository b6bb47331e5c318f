package handlers

import (
	"fmt"
	"net/http"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/game"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/sse"
)

// handleEvents streams change notifications for one session. Clients
// re-read the snapshot endpoint on every event rather than trusting any
// payload.
func (ctx *Context) handleEvents(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := make(chan models.SSEMessage, game.SSEBufferSize)
	sse.AddClient(sess, client, deviceID(w, r))
	defer sse.RemoveClient(sess, client)

	// Initial nudge so late subscribers re-read immediately
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", sse.EventSessionChanged, sess.RoomCode)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-client:
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", msg.Event, msg.Data)
			flusher.Flush()
		}
	}
}
