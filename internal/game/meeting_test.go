package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

func meetingReadySession(players ...*models.Player) *models.Session {
	s := playingSession(players...)
	s.Settings.MeetingLimit = 2
	if len(players) > 0 {
		s.HostName = players[0].Name
	}
	return s
}

func TestCallMeetingEmergency(t *testing.T) {
	alice := crewmate("Alice", true)
	s := meetingReadySession(alice, crewmate("Bob", true), imposter("Eve", true))
	alice.VotedFor = "stale"

	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))
	assert.Equal(t, models.StageMeeting, s.Stage)
	assert.Equal(t, models.MeetingEmergency, s.MeetingType)
	assert.Equal(t, "Alice", s.MeetingCaller)
	assert.Equal(t, 1, s.MeetingsUsed)
	for _, p := range s.Players {
		assert.Empty(t, p.VotedFor, "votes reset on meeting entry")
	}
}

func TestCallMeetingBudget(t *testing.T) {
	s := meetingReadySession(crewmate("Alice", true), crewmate("Bob", true), imposter("Eve", true))
	s.MeetingsUsed = 2 // limit reached

	err := CallMeeting(s, "Alice", models.MeetingEmergency)
	assert.ErrorIs(t, err, ErrMeetingLimit)
	assert.Equal(t, models.StagePlaying, s.Stage)

	// body reports do not consume the emergency budget
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingBodyReport))
	assert.Equal(t, 2, s.MeetingsUsed)
	assert.Equal(t, models.MeetingBodyReport, s.MeetingType)
}

func TestCallMeetingBodyReportPolicy(t *testing.T) {
	s := meetingReadySession(crewmate("Alice", true), crewmate("Bob", true), imposter("Eve", true))
	s.Settings.BodyReportCostsMeeting = true
	s.MeetingsUsed = 2

	err := CallMeeting(s, "Alice", models.MeetingBodyReport)
	assert.ErrorIs(t, err, ErrMeetingLimit, "configured policy charges reports against the budget")
}

func TestCallMeetingRequiresLivingCaller(t *testing.T) {
	s := meetingReadySession(crewmate("Alice", false), crewmate("Bob", true), imposter("Eve", true))

	err := CallMeeting(s, "Alice", models.MeetingEmergency)
	assert.ErrorIs(t, err, ErrCallerEliminated)
	assert.Equal(t, models.StagePlaying, s.Stage)
}

func TestCallMeetingCooldownEnforcement(t *testing.T) {
	alice := crewmate("Alice", true)
	s := meetingReadySession(alice, crewmate("Bob", true), imposter("Eve", true))
	s.Settings.EliminationCooldown = 300
	s.Settings.CooldownReduction = 30
	s.Settings.EnforceCooldown = true
	s.StartedAt = time.Now()

	err := CallMeeting(s, "Alice", models.MeetingEmergency)
	assert.ErrorIs(t, err, ErrCooldownActive)

	// completed tasks shorten the window; an old start clears it entirely
	s.StartedAt = time.Now().Add(-10 * time.Minute)
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))
}

func TestEmergencyCooldownAdvisory(t *testing.T) {
	alice := crewmate("Alice", true)
	alice.TasksCompleted = 2
	s := meetingReadySession(alice, imposter("Eve", true))
	s.Settings.EliminationCooldown = 120
	s.Settings.CooldownReduction = 30
	s.StartedAt = time.Now()

	remaining := EmergencyCooldown(s, alice)
	assert.InDelta(t, 60, remaining.Seconds(), 1, "two tasks shave 60s off the 120s window")

	alice.TasksCompleted = 10
	assert.Zero(t, EmergencyCooldown(s, alice), "window never goes negative")

	// advisory by default: a running cooldown does not block the call
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))
}

func TestCastVote(t *testing.T) {
	alice := crewmate("Alice", true)
	bob := crewmate("Bob", true)
	dead := crewmate("Dave", false)
	eve := imposter("Eve", true)
	s := meetingReadySession(alice, bob, dead, eve)
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))

	require.NoError(t, CastVote(s, "alice", "eve")) // case-insensitive both ways
	assert.Equal(t, "Eve", alice.VotedFor, "vote stored under canonical casing")

	require.NoError(t, CastVote(s, "Bob", models.VoteSkip))
	assert.Equal(t, models.VoteSkip, bob.VotedFor)

	assert.ErrorIs(t, CastVote(s, "Dave", "Eve"), ErrVoterEliminated)
	assert.ErrorIs(t, CastVote(s, "Alice", "Dave"), ErrVoteTargetDead)
	assert.ErrorIs(t, CastVote(s, "Alice", "Nobody"), ErrPlayerNotFound)

	assert.False(t, AllVotesIn(s), "Eve has not voted")
	require.NoError(t, CastVote(s, "Eve", "Bob"))
	assert.True(t, AllVotesIn(s))
}

func TestResolveMeetingPluralityEliminates(t *testing.T) {
	alice := crewmate("Alice", true)
	bob := crewmate("Bob", true)
	carol := crewmate("Carol", true)
	dave := crewmate("Dave", true)
	eve := imposter("Eve", true)
	s := meetingReadySession(alice, bob, carol, dave, eve)
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))

	require.NoError(t, CastVote(s, "Alice", "Eve"))
	require.NoError(t, CastVote(s, "Bob", "Eve"))
	require.NoError(t, CastVote(s, "Carol", models.VoteSkip))
	require.NoError(t, CastVote(s, "Dave", "Alice"))
	require.NoError(t, CastVote(s, "Eve", "Alice"))

	out, err := ResolveMeeting(s)
	require.NoError(t, err)
	assert.Equal(t, "Eve", out.Eliminated)
	assert.False(t, eve.IsAlive())
	assert.Equal(t, models.MeetingNone, s.MeetingType)
	assert.Empty(t, s.MeetingCaller)

	// voting out the only imposter ends the game immediately
	assert.True(t, out.Verdict.GameOver)
	assert.Equal(t, models.WinnerCrewmates, out.Verdict.Winner)
	assert.Equal(t, ReasonImpostersEliminated, out.Verdict.Reason)
	assert.Equal(t, models.StageEnded, s.Stage)
}

func TestResolveMeetingTieEliminatesNobody(t *testing.T) {
	alice := crewmate("Alice", true)
	bob := crewmate("Bob", true)
	carol := crewmate("Carol", true)
	eve := imposter("Eve", true)
	s := meetingReadySession(alice, bob, carol, eve)
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))

	require.NoError(t, CastVote(s, "Alice", "Eve"))
	require.NoError(t, CastVote(s, "Bob", "Eve"))
	require.NoError(t, CastVote(s, "Carol", "Alice"))
	require.NoError(t, CastVote(s, "Eve", "Alice"))

	out, err := ResolveMeeting(s)
	require.NoError(t, err)
	assert.True(t, out.Tie)
	assert.Empty(t, out.Eliminated)
	for _, p := range s.Players {
		assert.True(t, p.IsAlive())
	}
	assert.Equal(t, models.StagePlaying, s.Stage, "game continues after a tied vote")
}

func TestResolveMeetingSkipPlurality(t *testing.T) {
	alice := crewmate("Alice", true)
	bob := crewmate("Bob", true)
	carol := crewmate("Carol", true)
	eve := imposter("Eve", true)
	s := meetingReadySession(alice, bob, carol, eve)
	require.NoError(t, CallMeeting(s, "Alice", models.MeetingEmergency))

	require.NoError(t, CastVote(s, "Alice", models.VoteSkip))
	require.NoError(t, CastVote(s, "Bob", models.VoteSkip))
	require.NoError(t, CastVote(s, "Carol", models.VoteSkip))
	require.NoError(t, CastVote(s, "Eve", "Alice"))

	out, err := ResolveMeeting(s)
	require.NoError(t, err)
	assert.True(t, out.Skipped)
	assert.Empty(t, out.Eliminated)
}

func TestResolveMeetingEliminationCanHandImpostersTheWin(t *testing.T) {
	alice := crewmate("Alice", true)
	bob := crewmate("Bob", true)
	eve := imposter("Eve", true)
	s := meetingReadySession(alice, bob, eve)
	require.NoError(t, CallMeeting(s, "Eve", models.MeetingBodyReport))

	require.NoError(t, CastVote(s, "Alice", "Bob"))
	require.NoError(t, CastVote(s, "Bob", models.VoteSkip))
	require.NoError(t, CastVote(s, "Eve", "Bob"))

	out, err := ResolveMeeting(s)
	require.NoError(t, err)
	assert.Equal(t, "Bob", out.Eliminated)
	assert.True(t, out.Verdict.GameOver)
	assert.Equal(t, models.WinnerImposters, out.Verdict.Winner)
	assert.Equal(t, ReasonImpostersOutnumber, out.Verdict.Reason)
}

func TestResolveMeetingWrongStage(t *testing.T) {
	s := meetingReadySession(crewmate("Alice", true), imposter("Eve", true))

	_, err := ResolveMeeting(s)
	assert.ErrorIs(t, err, ErrWrongStage)
}
