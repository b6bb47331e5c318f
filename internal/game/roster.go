package game

import (
	"strings"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// Join adds a player to the roster or returns the existing entry when the
// trimmed name matches one case-insensitively (reconnection). New joins
// are only accepted in the waiting stage; reconnections work in any
// stage. The first joiner from the session-creating device becomes host.
func Join(s *models.Session, name string, isCreator bool) (*models.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	if existing := s.FindPlayer(name); existing != nil {
		return existing, nil
	}

	if s.Stage != models.StageWaiting {
		return nil, ErrJoinClosed
	}
	if len(s.Players) >= s.Settings.MaxPlayers {
		return nil, ErrSessionFull
	}

	p := &models.Player{
		Name:  name,
		Role:  models.RoleUnassigned,
		Tasks: []string{},
		Ready: true,
	}
	p.SetAlive(true)
	s.Players = append(s.Players, p)

	if isCreator && s.HostName == "" {
		s.HostName = p.Name
	}
	return p, nil
}

// Kick removes the named player. Host-only. In the waiting stage the
// player is removed outright; once roles have been dealt (playing or
// meeting) they are eliminated instead, keeping the roster the win
// evaluation runs over intact.
func Kick(s *models.Session, target, actor string) (Verdict, error) {
	if !s.IsHost(actor) {
		return Verdict{}, ErrNotHost
	}
	idx := playerIndex(s, target)
	if idx < 0 {
		return Verdict{}, ErrPlayerNotFound
	}
	return removePlayer(s, idx)
}

// Leave removes the acting player from the roster regardless of host
// status. Mid-game leavers are eliminated rather than removed, like a
// kick. A device with no player identity yet, or a name no longer on
// the roster, is a no-op.
func Leave(s *models.Session, name string) (Verdict, error) {
	if strings.TrimSpace(name) == "" {
		return Verdict{}, nil
	}
	idx := playerIndex(s, name)
	if idx < 0 {
		return Verdict{}, nil
	}
	return removePlayer(s, idx)
}

// removePlayer applies the stage-appropriate removal. Hard removal only
// happens before roles exist; mid-game the player is marked eliminated
// and the elimination feeds the normal win evaluation, so losing the
// last imposter ends the game as a crew win instead of stranding the
// session.
func removePlayer(s *models.Session, idx int) (Verdict, error) {
	p := s.Players[idx]
	if s.Stage == models.StagePlaying || s.Stage == models.StageMeeting {
		p.SetAlive(false)
		p.VotedFor = ""
		if strings.EqualFold(p.Name, s.HostName) {
			promoteHost(s)
		}
		return CheckWinConditions(s)
	}
	s.Players = append(s.Players[:idx], s.Players[idx+1:]...)
	if strings.EqualFold(p.Name, s.HostName) {
		promoteHost(s)
	}
	return Verdict{}, nil
}

// promoteHost hands the host role to the earliest-joined living player,
// falling back to join order when nobody is left alive
func promoteHost(s *models.Session) {
	for _, p := range s.Players {
		if p.IsAlive() {
			s.HostName = p.Name
			return
		}
	}
	if len(s.Players) > 0 {
		s.HostName = s.Players[0].Name
		return
	}
	s.HostName = ""
}

func playerIndex(s *models.Session, name string) int {
	for i, p := range s.Players {
		if strings.EqualFold(p.Name, name) {
			return i
		}
	}
	return -1
}
