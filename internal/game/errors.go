package game

import "errors"

// Validation failures: no state mutation, the caller may retry.
var (
	ErrNameRequired     = errors.New("name is required")
	ErrSessionFull      = errors.New("session is full")
	ErrNotEnoughPlayers = errors.New("not enough players to start")
	ErrTooFewImposters  = errors.New("need at least 1 imposter")
	ErrTooManyImposters = errors.New("imposters must be fewer than players")
	ErrInvalidTask      = errors.New("invalid task index")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrMeetingLimit     = errors.New("no emergency meetings left")
	ErrCooldownActive   = errors.New("emergency meeting cooldown is still running")
	ErrCallerEliminated = errors.New("eliminated players cannot call meetings")
	ErrVoterEliminated  = errors.New("eliminated players cannot vote")
	ErrVoteTargetDead   = errors.New("cannot vote for an eliminated player")
	ErrJoinClosed       = errors.New("game already in progress")
)

// Authorization failures: no state mutation.
var ErrNotHost = errors.New("only the host can do that")

// Stage conflicts: the action is not legal in the session's current stage.
var (
	ErrWrongStage = errors.New("action not allowed in this stage")
	ErrGameEnded  = errors.New("game has already ended")
)

// ErrNoImpostersAssigned is the fatal internal-consistency signal: a win
// check ran against a roster where no player ever held the imposter role,
// meaning the playing stage was entered without role assignment. This is
// not a normal "no winner yet" result.
var ErrNoImpostersAssigned = errors.New("no imposters were ever assigned: playing stage entered without role assignment")
