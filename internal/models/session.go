package models

import (
	"strings"
	"sync"
	"time"
)

// Stage represents where a session is in its lifecycle
type Stage string

const (
	StageSetup   Stage = "setup"
	StageWaiting Stage = "waiting"
	StagePlaying Stage = "playing"
	StageMeeting Stage = "meeting"
	StageEnded   Stage = "ended"
)

// Winner identifies the winning faction once a game has ended
type Winner string

const (
	WinnerNone      Winner = ""
	WinnerCrewmates Winner = "crewmates"
	WinnerImposters Winner = "imposters"
)

// MeetingType describes how an in-progress meeting was triggered
type MeetingType string

const (
	MeetingNone       MeetingType = ""
	MeetingEmergency  MeetingType = "emergency"
	MeetingBodyReport MeetingType = "body"
)

// Session is the root aggregate: one configured, joinable, playable game
type Session struct {
	Stage         Stage       `json:"stage"`
	RoomCode      string      `json:"roomCode,omitempty"`
	Settings      Settings    `json:"settings"`
	Players       []*Player   `json:"players"` // insertion order = join order
	HostName      string      `json:"hostName,omitempty"`
	MeetingsUsed  int         `json:"meetingsUsed"`
	MeetingType   MeetingType `json:"meetingType,omitempty"`
	MeetingCaller string      `json:"meetingCaller,omitempty"`
	GameEnded     bool        `json:"gameEnded"`
	Winner        Winner      `json:"winner,omitempty"`
	WinReason     string      `json:"winReason,omitempty"`
	StartedAt     time.Time   `json:"startedAt,omitempty"`

	mu         sync.RWMutex
	sseClients map[chan SSEMessage]string // channel -> device ID
}

// SSEMessage represents a change notification sent via Server-Sent Events
type SSEMessage struct {
	Event string // Event type (e.g., "session-changed", "roster-changed")
	Data  string // Room code; clients re-read the session rather than trusting diffs
}

// Lock acquires the session's write lock
func (s *Session) Lock() {
	s.mu.Lock()
}

// Unlock releases the session's write lock
func (s *Session) Unlock() {
	s.mu.Unlock()
}

// RLock acquires the session's read lock
func (s *Session) RLock() {
	s.mu.RLock()
}

// RUnlock releases the session's read lock
func (s *Session) RUnlock() {
	s.mu.RUnlock()
}

// FindPlayer returns the roster entry matching name case-insensitively,
// or nil. Name is the natural key used for reconnection.
func (s *Session) FindPlayer(name string) *Player {
	for _, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return p
		}
	}
	return nil
}

// IsHost reports whether name identifies the designated host
func (s *Session) IsHost(name string) bool {
	return s.HostName != "" && strings.EqualFold(s.HostName, name)
}

// GetSSEClients returns a copy of the SSE clients map (must be called with lock held)
func (s *Session) GetSSEClients() map[chan SSEMessage]string {
	clients := make(map[chan SSEMessage]string, len(s.sseClients))
	for k, v := range s.sseClients {
		clients[k] = v
	}
	return clients
}

// AddSSEClient adds a new SSE client to the session
func (s *Session) AddSSEClient(client chan SSEMessage, deviceID string) {
	if s.sseClients == nil {
		s.sseClients = make(map[chan SSEMessage]string)
	}
	s.sseClients[client] = deviceID
}

// RemoveSSEClient removes an SSE client from the session
func (s *Session) RemoveSSEClient(client chan SSEMessage) {
	delete(s.sseClients, client)
}

// SSEClientCount returns the number of connected SSE clients
func (s *Session) SSEClientCount() int {
	return len(s.sseClients)
}
