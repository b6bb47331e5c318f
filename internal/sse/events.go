package sse

// SSE event type constants. Payloads carry no diffs; clients re-read the
// session snapshot when one of these arrives.
const (
	EventSessionChanged = "session-changed"
	EventRosterChanged  = "roster-changed"
	EventGameEnded      = "game-ended"
	EventSessionClosed  = "session-closed"
)
