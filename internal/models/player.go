package models

// Role represents a player's assigned allegiance
type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleCrewmate   Role = "crewmate"
	RoleImposter   Role = "imposter"
)

// VoteSkip is the explicit abstention target in a meeting vote
const VoteSkip = "skip"

// Player represents one device/participant in a session
type Player struct {
	Name           string   `json:"name"`
	Role           Role     `json:"role"`
	Tasks          []string `json:"tasks"`
	TasksCompleted int      `json:"tasksCompleted"`
	Alive          *bool    `json:"alive"` // unset means alive; normalized by the win check
	VotedFor       string   `json:"votedFor,omitempty"`
	Ready          bool     `json:"ready"`
}

// IsAlive reports whether the player counts as living. An unset flag
// (e.g. from an older persisted row) counts as alive.
func (p *Player) IsAlive() bool {
	return p.Alive == nil || *p.Alive
}

// SetAlive sets the alive flag explicitly
func (p *Player) SetAlive(alive bool) {
	p.Alive = &alive
}
