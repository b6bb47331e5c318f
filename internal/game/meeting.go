package game

import (
	"time"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

// VoteOutcome describes a resolved meeting
type VoteOutcome struct {
	Eliminated string         // name of the voted-out player, empty if nobody
	Tie        bool           // top vote count was shared
	Skipped    bool           // skip won outright or nobody voted
	Counts     map[string]int // votes by target, including "skip"
	Verdict    Verdict        // win evaluation after applying the elimination
}

// CallMeeting transitions playing -> meeting. Only a living player may
// call. Emergency calls consume the session's meeting budget; body
// reports are unlimited unless BodyReportCostsMeeting says otherwise.
// Every player's pending vote is reset on entry.
func CallMeeting(s *models.Session, caller string, mt models.MeetingType) error {
	if s.GameEnded {
		return ErrGameEnded
	}
	if s.Stage != models.StagePlaying {
		return ErrWrongStage
	}
	p := s.FindPlayer(caller)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.IsAlive() {
		return ErrCallerEliminated
	}

	costsBudget := mt == models.MeetingEmergency ||
		(mt == models.MeetingBodyReport && s.Settings.BodyReportCostsMeeting)
	if costsBudget && s.MeetingsUsed >= s.Settings.MeetingLimit {
		return ErrMeetingLimit
	}
	if mt == models.MeetingEmergency && s.Settings.EnforceCooldown {
		if EmergencyCooldown(s, p) > 0 {
			return ErrCooldownActive
		}
	}

	if costsBudget {
		s.MeetingsUsed++
	}
	s.MeetingType = mt
	s.MeetingCaller = p.Name
	for _, q := range s.Players {
		q.VotedFor = ""
	}
	s.Stage = models.StageMeeting
	return nil
}

// CastVote records one living player's vote for a living target or the
// explicit skip abstention. Re-voting overwrites the previous choice.
func CastVote(s *models.Session, voter, target string) error {
	if s.GameEnded {
		return ErrGameEnded
	}
	if s.Stage != models.StageMeeting {
		return ErrWrongStage
	}
	p := s.FindPlayer(voter)
	if p == nil {
		return ErrPlayerNotFound
	}
	if !p.IsAlive() {
		return ErrVoterEliminated
	}

	if target != models.VoteSkip {
		t := s.FindPlayer(target)
		if t == nil {
			return ErrPlayerNotFound
		}
		if !t.IsAlive() {
			return ErrVoteTargetDead
		}
		target = t.Name // canonical casing
	}
	p.VotedFor = target
	return nil
}

// AllVotesIn reports whether every living player has cast a vote
func AllVotesIn(s *models.Session) bool {
	for _, p := range s.Players {
		if p.IsAlive() && p.VotedFor == "" {
			return false
		}
	}
	return true
}

// ResolveMeeting tallies votes and transitions meeting -> playing, or to
// ended if the elimination (or accumulated task progress) decided the
// game. The player with strictly more votes than every other candidate is
// eliminated; a tie at the top, a skip plurality, or no votes at all
// eliminates nobody.
func ResolveMeeting(s *models.Session) (VoteOutcome, error) {
	if s.GameEnded {
		return VoteOutcome{}, ErrGameEnded
	}
	if s.Stage != models.StageMeeting {
		return VoteOutcome{}, ErrWrongStage
	}

	counts := make(map[string]int)
	for _, p := range s.Players {
		if p.IsAlive() && p.VotedFor != "" {
			counts[p.VotedFor]++
		}
	}

	top, topCount, tie := "", 0, false
	for target, c := range counts {
		switch {
		case c > topCount:
			top, topCount, tie = target, c, false
		case c == topCount:
			tie = true
		}
	}

	out := VoteOutcome{Counts: counts}
	switch {
	case topCount == 0 || top == models.VoteSkip:
		out.Skipped = true
	case tie:
		out.Tie = true
	default:
		if t := s.FindPlayer(top); t != nil {
			t.SetAlive(false)
			out.Eliminated = t.Name
		}
	}

	s.MeetingType = models.MeetingNone
	s.MeetingCaller = ""
	s.Stage = models.StagePlaying

	v, err := CheckWinConditions(s)
	if err != nil {
		return out, err
	}
	if !v.GameOver {
		v = CheckCrewmateVictory(s)
	}
	out.Verdict = v
	return out, nil
}

// EmergencyCooldown returns the caller's remaining advisory cooldown:
// the configured elimination cooldown from game start, shortened by the
// configured reduction per task the caller has completed. Clients poll
// this for display; it gates nothing unless EnforceCooldown is set.
func EmergencyCooldown(s *models.Session, p *models.Player) time.Duration {
	window := time.Duration(s.Settings.EliminationCooldown-s.Settings.CooldownReduction*p.TasksCompleted) * time.Second
	if window < 0 {
		window = 0
	}
	if s.StartedAt.IsZero() {
		return 0
	}
	remaining := window - time.Since(s.StartedAt)
	if remaining < 0 {
		return 0
	}
	return remaining
}
