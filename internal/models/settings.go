package models

// Task is one entry in a room's task list. Unique tasks may be assigned
// to at most one player session-wide.
type Task struct {
	Name    string `json:"name"`
	Enabled bool   `json:"enabled"`
	Unique  bool   `json:"unique"`
}

// Room groups tasks under a physical location
type Room struct {
	Enabled bool   `json:"enabled"`
	Tasks   []Task `json:"tasks"`
}

// Settings is the session configuration, immutable after the game starts.
// The room/task catalog is owned by the settings editor; the core only
// reads it.
type Settings struct {
	MinPlayers          int `json:"minPlayers"`
	MaxPlayers          int `json:"maxPlayers"`
	TasksPerPlayer      int `json:"tasksPerPlayer"`
	ImposterCount       int `json:"imposterCount"`
	EliminationCooldown int `json:"eliminationCooldown"` // seconds
	CooldownReduction   int `json:"cooldownReduction"`   // seconds per completed task
	MeetingLimit        int `json:"meetingLimit"`
	DiscussionTime      int `json:"discussionTime"` // seconds

	// MeetingRoom is the designated room for calling emergency meetings
	MeetingRoom string `json:"meetingRoom"`

	// BodyReportCostsMeeting makes body reports consume the emergency
	// meeting budget. Off by default: reports are unlimited.
	BodyReportCostsMeeting bool `json:"bodyReportCostsMeeting"`

	// EnforceCooldown rejects emergency calls while the caller's cooldown
	// is still running. Off by default: the cooldown is advisory UI state.
	EnforceCooldown bool `json:"enforceCooldown"`

	Rooms map[string]Room `json:"rooms"`
}
