package game

import (
	"math/rand"
	"time"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// NewSession creates a fresh session in the setup stage
func NewSession(settings models.Settings) *models.Session {
	return &models.Session{
		Stage:    models.StageSetup,
		Settings: settings,
		Players:  []*models.Player{},
	}
}

// Open transitions setup -> waiting: stamps the room code and an empty
// roster so players can join. Settings are validated by the settings
// editor before they get here.
func Open(s *models.Session, roomCode string) error {
	if s.Stage != models.StageSetup {
		return ErrWrongStage
	}
	s.RoomCode = roomCode
	s.Players = []*models.Player{}
	s.Stage = models.StageWaiting
	return nil
}

// StartGame transitions waiting -> playing. Host-only. Role assignment,
// task assignment and the roster reset commit together or not at all:
// every guard runs before the first mutation.
func StartGame(s *models.Session, actor string, rng *rand.Rand) error {
	if s.Stage != models.StageWaiting {
		return ErrWrongStage
	}
	if !s.IsHost(actor) {
		return ErrNotHost
	}
	k := s.Settings.ImposterCount
	if k < 1 {
		return ErrTooFewImposters
	}
	if k >= len(s.Players) {
		return ErrTooManyImposters
	}
	if min := s.Settings.MinPlayers; min > 0 && len(s.Players) < min {
		return ErrNotEnoughPlayers
	}

	for _, p := range s.Players {
		p.SetAlive(true)
		p.TasksCompleted = 0
		p.VotedFor = ""
	}
	if err := AssignRoles(s, rng); err != nil {
		// guards above make this unreachable; surface it rather than half-commit
		return err
	}
	AssignTasks(s, rng)

	s.MeetingsUsed = 0
	s.MeetingType = models.MeetingNone
	s.MeetingCaller = ""
	s.GameEnded = false
	s.Winner = models.WinnerNone
	s.WinReason = ""
	s.StartedAt = time.Now()
	s.Stage = models.StagePlaying
	return nil
}

// EndGame commits the terminal transition. Set exactly once per session;
// later calls are no-ops.
func EndGame(s *models.Session, winner models.Winner, reason string) {
	if s.GameEnded {
		return
	}
	s.GameEnded = true
	s.Winner = winner
	s.WinReason = reason
	s.MeetingType = models.MeetingNone
	s.MeetingCaller = ""
	s.Stage = models.StageEnded
}

// Abort lets the host end a running game without a winner
func Abort(s *models.Session, actor string) error {
	if !s.IsHost(actor) {
		return ErrNotHost
	}
	if s.Stage != models.StagePlaying && s.Stage != models.StageMeeting {
		return ErrWrongStage
	}
	EndGame(s, models.WinnerNone, ReasonHostAborted)
	return nil
}

// ReturnToMenu resets the session to a fresh setup from any stage.
// Always succeeds, no guards.
func ReturnToMenu(s *models.Session) {
	s.Stage = models.StageSetup
	s.RoomCode = ""
	s.HostName = ""
	s.Players = []*models.Player{}
	s.MeetingsUsed = 0
	s.MeetingType = models.MeetingNone
	s.MeetingCaller = ""
	s.GameEnded = false
	s.Winner = models.WinnerNone
	s.WinReason = ""
	s.StartedAt = time.Time{}
}
