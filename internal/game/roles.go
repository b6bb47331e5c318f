package game

import (
	"math/rand"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// AssignRoles partitions the roster into imposters and crewmates: exactly
// ImposterCount distinct players chosen uniformly at random become
// imposters, everyone else a crewmate. Only legal at the start-game
// transition; the caller must not re-run this mid-game.
func AssignRoles(s *models.Session, rng *rand.Rand) error {
	k := s.Settings.ImposterCount
	n := len(s.Players)
	if k < 1 {
		return ErrTooFewImposters
	}
	if k >= n {
		return ErrTooManyImposters
	}

	imposter := make(map[int]bool, k)
	for _, i := range rng.Perm(n)[:k] {
		imposter[i] = true
	}
	for i, p := range s.Players {
		if imposter[i] {
			p.Role = models.RoleImposter
		} else {
			p.Role = models.RoleCrewmate
		}
	}
	return nil
}
