package game

const (
	// DefaultMinPlayers is the fallback minimum roster size to start a game
	DefaultMinPlayers = 4

	// DefaultMaxPlayers is the fallback roster capacity
	DefaultMaxPlayers = 10

	// DefaultTasksPerPlayer is the fallback per-crewmate task target
	DefaultTasksPerPlayer = 4

	// DefaultMeetingLimit is the fallback emergency meeting budget
	DefaultMeetingLimit = 3

	// SSEBufferSize is the buffer size for SSE message channels
	SSEBufferSize = 10

	// SSETimeoutSeconds is the timeout for sending messages to SSE clients
	SSETimeoutSeconds = 1

	// RoomCodeLength is the length of generated room codes
	RoomCodeLength = 4

	// RoomCodeChars are the characters used for generating room codes (excluding ambiguous chars)
	RoomCodeChars = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)
