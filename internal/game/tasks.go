package game

import (
	"math/rand"
	"sort"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
)

type catalogTask struct {
	id     string // "Room: Task"
	unique bool
}

// taskPool flattens the enabled room/task catalog into assignable
// identifiers, room names sorted for a stable draw order.
func taskPool(settings models.Settings) []catalogTask {
	roomNames := make([]string, 0, len(settings.Rooms))
	for name, room := range settings.Rooms {
		if room.Enabled {
			roomNames = append(roomNames, name)
		}
	}
	sort.Strings(roomNames)

	var pool []catalogTask
	for _, name := range roomNames {
		for _, t := range settings.Rooms[name].Tasks {
			if t.Enabled {
				pool = append(pool, catalogTask{id: name + ": " + t.Name, unique: t.Unique})
			}
		}
	}
	return pool
}

// AssignTasks hands every crewmate up to TasksPerPlayer distinct tasks
// from the enabled catalog. Tasks flagged unique go to at most one player
// session-wide. Imposters get an empty list; any fake-task behavior is a
// client concern.
func AssignTasks(s *models.Session, rng *rand.Rand) {
	pool := taskPool(s.Settings)
	usedUnique := make(map[string]bool)

	for _, p := range s.Players {
		p.TasksCompleted = 0
		if p.Role != models.RoleCrewmate {
			p.Tasks = []string{}
			continue
		}

		shuffled := make([]catalogTask, len(pool))
		copy(shuffled, pool)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})

		tasks := make([]string, 0, s.Settings.TasksPerPlayer)
		for _, t := range shuffled {
			if len(tasks) == s.Settings.TasksPerPlayer {
				break
			}
			if t.unique && usedUnique[t.id] {
				continue
			}
			tasks = append(tasks, t.id)
			if t.unique {
				usedUnique[t.id] = true
			}
		}
		p.Tasks = tasks
	}
}

// CompleteTask marks one more of a player's tasks done and runs the
// task-completion win check. Eliminated crewmates may still complete
// tasks: progress is cumulative team work, not per-player.
func CompleteTask(s *models.Session, name string, taskIndex int) (Verdict, error) {
	if s.GameEnded {
		return Verdict{GameOver: true, Winner: s.Winner, Reason: s.WinReason}, nil
	}
	if s.Stage != models.StagePlaying && s.Stage != models.StageMeeting {
		return Verdict{}, ErrWrongStage
	}
	p := s.FindPlayer(name)
	if p == nil {
		return Verdict{}, ErrPlayerNotFound
	}
	if taskIndex < 0 || taskIndex >= len(p.Tasks) {
		return Verdict{}, ErrInvalidTask
	}
	if p.TasksCompleted < len(p.Tasks) {
		p.TasksCompleted++
	}
	return CheckCrewmateVictory(s), nil
}

// CrewTaskTotals sums completed and assigned task counts over every
// crewmate regardless of alive status. An eliminated crewmate's finished
// work still counts and their unfinished work still blocks victory.
func CrewTaskTotals(s *models.Session) (completed, total int) {
	for _, p := range s.Players {
		if p.Role != models.RoleCrewmate {
			continue
		}
		completed += p.TasksCompleted
		total += len(p.Tasks)
	}
	return completed, total
}
