package game

import (
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// Win reasons shown to players when a game ends
const (
	ReasonImpostersEliminated = "All imposters eliminated"
	ReasonImpostersOutnumber  = "Imposters equal or outnumber crewmates"
	ReasonTasksCompleted      = "All tasks completed"
	ReasonHostAborted         = "Game ended by host"
)

// Verdict is the outcome of a win-condition evaluation
type Verdict struct {
	GameOver bool
	Winner   models.Winner
	Reason   string
}

// CheckWinConditions evaluates the elimination balance of the roster.
// Players with an unset alive flag are normalized to alive. A roster in
// which no player ever held the imposter role is a fatal consistency
// failure, signaled distinctly from "no winner yet". On a winner the
// terminal transition commits exactly once; checks on an already-ended
// session are no-ops.
func CheckWinConditions(s *models.Session) (Verdict, error) {
	if s.GameEnded {
		return Verdict{GameOver: true, Winner: s.Winner, Reason: s.WinReason}, nil
	}

	imposters := 0
	aliveCrew, aliveImp := 0, 0
	for _, p := range s.Players {
		if p.Alive == nil {
			p.SetAlive(true)
		}
		switch p.Role {
		case models.RoleImposter:
			imposters++
			if p.IsAlive() {
				aliveImp++
			}
		case models.RoleCrewmate:
			if p.IsAlive() {
				aliveCrew++
			}
		}
	}

	if imposters == 0 {
		return Verdict{}, ErrNoImpostersAssigned
	}

	switch {
	case aliveImp == 0:
		v := Verdict{GameOver: true, Winner: models.WinnerCrewmates, Reason: ReasonImpostersEliminated}
		EndGame(s, v.Winner, v.Reason)
		return v, nil
	case aliveImp >= aliveCrew:
		v := Verdict{GameOver: true, Winner: models.WinnerImposters, Reason: ReasonImpostersOutnumber}
		EndGame(s, v.Winner, v.Reason)
		return v, nil
	}
	return Verdict{}, nil
}

// CheckCrewmateVictory sums task progress over all crewmates, eliminated
// included, and ends the game when every assigned task is done. A catalog
// that assigned zero tasks counts as complete. Needs no imposter-count
// precondition.
func CheckCrewmateVictory(s *models.Session) Verdict {
	if s.GameEnded {
		return Verdict{GameOver: true, Winner: s.Winner, Reason: s.WinReason}
	}
	if s.Stage != models.StagePlaying && s.Stage != models.StageMeeting {
		return Verdict{}
	}

	completed, total := CrewTaskTotals(s)
	if completed == total {
		v := Verdict{GameOver: true, Winner: models.WinnerCrewmates, Reason: ReasonTasksCompleted}
		EndGame(s, v.Winner, v.Reason)
		return v
	}
	return Verdict{}
}
