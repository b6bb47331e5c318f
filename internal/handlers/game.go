package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/game"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/sse"
)

func (ctx *Context) handleStart(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	sess.Lock()
	err := game.StartGame(sess, playerName(r), newRNG())
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	sse.Broadcast(sess, sse.EventSessionChanged, sess.RoomCode)
	ctx.Log.WithFields(map[string]any{
		"room":      sess.RoomCode,
		"players":   len(sess.Players),
		"imposters": sess.Settings.ImposterCount,
	}).Info("game started")
	w.WriteHeader(http.StatusNoContent)
}

type taskRequest struct {
	TaskIndex int `json:"taskIndex"`
}

func (ctx *Context) handleCompleteTask(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req taskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid task payload"})
		return
	}

	sess.Lock()
	verdict, err := game.CompleteTask(sess, playerName(r), req.TaskIndex)
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	if verdict.GameOver {
		sse.Broadcast(sess, sse.EventGameEnded, sess.RoomCode)
	} else {
		sse.Broadcast(sess, sse.EventSessionChanged, sess.RoomCode)
	}
	writeJSON(w, http.StatusOK, verdict)
}

type meetingRequest struct {
	Type models.MeetingType `json:"type"`
}

func (ctx *Context) handleCallMeeting(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req meetingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid meeting payload"})
		return
	}
	if req.Type != models.MeetingEmergency && req.Type != models.MeetingBodyReport {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "meeting type must be emergency or body"})
		return
	}

	sess.Lock()
	err := game.CallMeeting(sess, playerName(r), req.Type)
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	sse.Broadcast(sess, sse.EventSessionChanged, sess.RoomCode)
	ctx.Log.WithFields(map[string]any{
		"room":   sess.RoomCode,
		"type":   req.Type,
		"caller": sess.MeetingCaller,
	}).Info("meeting called")
	w.WriteHeader(http.StatusNoContent)
}

type voteRequest struct {
	Target string `json:"target"` // another living player's name, or "skip"
}

func (ctx *Context) handleVote(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid vote payload"})
		return
	}

	sess.Lock()
	err := game.CastVote(sess, playerName(r), req.Target)
	allIn := err == nil && game.AllVotesIn(sess)
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	sse.Broadcast(sess, sse.EventSessionChanged, sess.RoomCode)
	writeJSON(w, http.StatusOK, map[string]bool{"allVotesIn": allIn})
}

func (ctx *Context) handleResolve(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	sess.Lock()
	outcome, err := game.ResolveMeeting(sess)
	sess.Unlock()
	if err != nil {
		if err == game.ErrNoImpostersAssigned {
			ctx.Log.WithField("room", sess.RoomCode).
				Error("win check found a roster with no imposters ever assigned")
		}
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	if outcome.Verdict.GameOver {
		sse.Broadcast(sess, sse.EventGameEnded, sess.RoomCode)
	} else {
		sse.Broadcast(sess, sse.EventSessionChanged, sess.RoomCode)
	}
	ctx.Log.WithFields(map[string]any{
		"room":       sess.RoomCode,
		"eliminated": outcome.Eliminated,
		"tie":        outcome.Tie,
		"skipped":    outcome.Skipped,
	}).Info("meeting resolved")
	writeJSON(w, http.StatusOK, outcome)
}

func (ctx *Context) handleAbort(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	sess.Lock()
	err := game.Abort(sess, playerName(r))
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	sse.Broadcast(sess, sse.EventGameEnded, sess.RoomCode)
	ctx.Log.WithField("room", sess.RoomCode).Info("game aborted by host")
	w.WriteHeader(http.StatusNoContent)
}
