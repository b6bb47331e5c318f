package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

func crewmate(name string, alive bool) *models.Player {
	p := &models.Player{Name: name, Role: models.RoleCrewmate}
	p.SetAlive(alive)
	return p
}

func imposter(name string, alive bool) *models.Player {
	p := &models.Player{Name: name, Role: models.RoleImposter}
	p.SetAlive(alive)
	return p
}

func playingSession(players ...*models.Player) *models.Session {
	return &models.Session{
		Stage:    models.StagePlaying,
		RoomCode: "TEST",
		Players:  players,
	}
}

func TestCheckWinConditions(t *testing.T) {
	tests := []struct {
		name       string
		players    []*models.Player
		wantOver   bool
		wantWinner models.Winner
		wantReason string
	}{
		{
			name:       "all imposters eliminated",
			players:    []*models.Player{crewmate("Alice", true), crewmate("Bob", true), imposter("Eve", false)},
			wantOver:   true,
			wantWinner: models.WinnerCrewmates,
			wantReason: ReasonImpostersEliminated,
		},
		{
			name:       "imposters equal crew",
			players:    []*models.Player{crewmate("Alice", true), crewmate("Bob", false), imposter("Eve", true)},
			wantOver:   true,
			wantWinner: models.WinnerImposters,
			wantReason: ReasonImpostersOutnumber,
		},
		{
			name:       "imposters outnumber crew",
			players:    []*models.Player{crewmate("Alice", false), crewmate("Bob", false), imposter("Eve", true), imposter("Mallory", true)},
			wantOver:   true,
			wantWinner: models.WinnerImposters,
			wantReason: ReasonImpostersOutnumber,
		},
		{
			name:     "game continues while crew outnumber imposters",
			players:  []*models.Player{crewmate("Alice", true), crewmate("Bob", true), imposter("Eve", true)},
			wantOver: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playingSession(tt.players...)
			v, err := CheckWinConditions(s)
			require.NoError(t, err)
			assert.Equal(t, tt.wantOver, v.GameOver)
			assert.Equal(t, tt.wantWinner, v.Winner)
			assert.Equal(t, tt.wantReason, v.Reason)
			if tt.wantOver {
				assert.True(t, s.GameEnded)
				assert.Equal(t, models.StageEnded, s.Stage)
				assert.Equal(t, tt.wantWinner, s.Winner)
			} else {
				assert.False(t, s.GameEnded)
				assert.Equal(t, models.StagePlaying, s.Stage)
			}
		})
	}
}

func TestCheckWinConditionsNormalizesUnsetAlive(t *testing.T) {
	ghost := &models.Player{Name: "Alice", Role: models.RoleCrewmate} // Alive unset
	s := playingSession(ghost, crewmate("Bob", true), imposter("Eve", true))

	v, err := CheckWinConditions(s)
	require.NoError(t, err)
	assert.False(t, v.GameOver, "unset alive must count as living crew")
	require.NotNil(t, ghost.Alive, "check must normalize the unset flag")
	assert.True(t, *ghost.Alive)
}

func TestCheckWinConditionsWithoutImpostersIsFatal(t *testing.T) {
	s := playingSession(crewmate("Alice", true), crewmate("Bob", true))

	_, err := CheckWinConditions(s)
	require.ErrorIs(t, err, ErrNoImpostersAssigned)
	assert.False(t, s.GameEnded, "consistency failure must not end the game")
}

func TestCheckWinConditionsAfterGameEndedIsNoOp(t *testing.T) {
	s := playingSession(crewmate("Alice", true), imposter("Eve", true))
	EndGame(s, models.WinnerCrewmates, ReasonTasksCompleted)

	// Even a roster the imposters would win is ignored once ended
	s.Players[0].SetAlive(false)
	v, err := CheckWinConditions(s)
	require.NoError(t, err)
	assert.True(t, v.GameOver)
	assert.Equal(t, models.WinnerCrewmates, v.Winner)
	assert.Equal(t, ReasonTasksCompleted, v.Reason)
}

func TestCheckCrewmateVictoryCountsEliminatedCrew(t *testing.T) {
	alice := crewmate("Alice", true)
	alice.Tasks = []string{"a", "b"}
	alice.TasksCompleted = 2
	bob := crewmate("Bob", false) // eliminated, work still counts
	bob.Tasks = []string{"c", "d"}
	bob.TasksCompleted = 2
	eve := imposter("Eve", true)

	s := playingSession(alice, bob, eve)
	v := CheckCrewmateVictory(s)
	assert.True(t, v.GameOver)
	assert.Equal(t, models.WinnerCrewmates, v.Winner)
	assert.Equal(t, ReasonTasksCompleted, v.Reason)
	assert.True(t, s.GameEnded)
}

func TestCheckCrewmateVictoryBlockedByUnfinishedWork(t *testing.T) {
	alice := crewmate("Alice", true)
	alice.Tasks = []string{"a", "b"}
	alice.TasksCompleted = 1
	bob := crewmate("Bob", false)
	bob.Tasks = []string{"c", "d"}
	bob.TasksCompleted = 2
	eve := imposter("Eve", true)

	s := playingSession(alice, bob, eve)
	v := CheckCrewmateVictory(s)
	assert.False(t, v.GameOver, "a dead crewmate's unfinished tasks still block victory")
	assert.False(t, s.GameEnded)
}

func TestCheckCrewmateVictoryZeroTasksCountsAsComplete(t *testing.T) {
	s := playingSession(crewmate("Alice", true), imposter("Eve", true))

	v := CheckCrewmateVictory(s)
	assert.True(t, v.GameOver)
	assert.Equal(t, models.WinnerCrewmates, v.Winner)
}

func TestCheckCrewmateVictoryOutsidePlayIsNoOp(t *testing.T) {
	s := &models.Session{Stage: models.StageWaiting, Players: []*models.Player{crewmate("Alice", true)}}

	v := CheckCrewmateVictory(s)
	assert.False(t, v.GameOver)
	assert.False(t, s.GameEnded)
}
