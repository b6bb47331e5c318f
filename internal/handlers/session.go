package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/game"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/sse"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/store"
)

// HandleCreateSession creates a session from posted settings and opens it
// for joining, returning the fresh room code.
func (ctx *Context) HandleCreateSession(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var settings models.Settings
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&settings); err != nil && !errors.Is(err, io.EOF) {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid settings payload"})
			return
		}
	}
	ctx.applyDefaults(&settings)

	code, err := game.UniqueRoomCode(r.Context(), ctx.Store)
	if err != nil {
		ctx.Log.WithError(err).Error("room code generation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not allocate room code"})
		return
	}

	sess := game.NewSession(settings)
	if err := game.Open(sess, code); err != nil {
		writeError(w, err)
		return
	}
	if err := ctx.Store.Save(r.Context(), sess); err != nil {
		ctx.Log.WithError(err).Error("session create failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "could not store session"})
		return
	}

	deviceID(w, r)
	ctx.Log.WithField("room", code).Info("session created")
	writeJSON(w, http.StatusCreated, map[string]string{"roomCode": code})
}

// HandleSessionMux routes /api/session/{code} and its action subpaths
func (ctx *Context) HandleSessionMux(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/session/")
	parts := strings.Split(strings.Trim(path, "/"), "/")
	if len(parts) == 0 || parts[0] == "" {
		http.Error(w, "Invalid URL", http.StatusBadRequest)
		return
	}
	code := strings.ToUpper(parts[0])
	action := ""
	if len(parts) > 1 {
		action = parts[1]
	}

	sess, err := ctx.getSession(r, code)
	if err != nil {
		writeError(w, store.ErrNotFound)
		return
	}

	if r.Method == http.MethodGet {
		switch action {
		case "":
			ctx.handleSnapshot(w, r, sess)
		case "events":
			ctx.handleEvents(w, r, sess)
		default:
			http.NotFound(w, r)
		}
		return
	}

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	switch action {
	case "join":
		ctx.handleJoin(w, r, sess)
	case "leave":
		ctx.handleLeave(w, r, sess)
	case "kick":
		ctx.handleKick(w, r, sess)
	case "start":
		ctx.handleStart(w, r, sess)
	case "task":
		ctx.handleCompleteTask(w, r, sess)
	case "meeting":
		ctx.handleCallMeeting(w, r, sess)
	case "vote":
		ctx.handleVote(w, r, sess)
	case "resolve":
		ctx.handleResolve(w, r, sess)
	case "abort":
		ctx.handleAbort(w, r, sess)
	case "reset":
		ctx.handleReset(w, r, sess)
	default:
		http.NotFound(w, r)
	}
}

// snapshotResponse pairs the session with the requester's advisory
// emergency-meeting cooldown
type snapshotResponse struct {
	Session           *models.Session `json:"session"`
	EmergencyCooldown float64         `json:"emergencyCooldown"` // seconds
}

func (ctx *Context) handleSnapshot(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	sess.RLock()
	defer sess.RUnlock()

	resp := snapshotResponse{Session: sess}
	if p := sess.FindPlayer(playerName(r)); p != nil {
		resp.EmergencyCooldown = game.EmergencyCooldown(sess, p).Seconds()
	}
	writeJSON(w, http.StatusOK, resp)
}

type joinRequest struct {
	Name      string `json:"name"`
	IsCreator bool   `json:"isCreator"`
}

func (ctx *Context) handleJoin(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req joinRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid join payload"})
		return
	}

	sess.Lock()
	player, err := game.Join(sess, req.Name, req.IsCreator)
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	sse.Broadcast(sess, sse.EventRosterChanged, sess.RoomCode)

	deviceID(w, r)
	setPlayerName(w, player.Name)
	ctx.Log.WithFields(map[string]any{"room": sess.RoomCode, "player": player.Name}).Info("player joined")
	writeJSON(w, http.StatusOK, player)
}

func (ctx *Context) handleLeave(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	name := playerName(r)

	sess.Lock()
	verdict, err := game.Leave(sess, name)
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	if verdict.GameOver {
		sse.Broadcast(sess, sse.EventGameEnded, sess.RoomCode)
	} else {
		sse.Broadcast(sess, sse.EventRosterChanged, sess.RoomCode)
	}
	setPlayerName(w, "")
	w.WriteHeader(http.StatusNoContent)
}

type kickRequest struct {
	Name string `json:"name"`
}

func (ctx *Context) handleKick(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	var req kickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid kick payload"})
		return
	}

	sess.Lock()
	verdict, err := game.Kick(sess, req.Name, playerName(r))
	sess.Unlock()
	if err != nil {
		writeError(w, err)
		return
	}

	ctx.commit(r.Context(), sess)
	if verdict.GameOver {
		sse.Broadcast(sess, sse.EventGameEnded, sess.RoomCode)
	} else {
		sse.Broadcast(sess, sse.EventRosterChanged, sess.RoomCode)
	}
	ctx.Log.WithFields(map[string]any{"room": sess.RoomCode, "player": req.Name}).Info("player kicked")
	w.WriteHeader(http.StatusNoContent)
}

func (ctx *Context) handleReset(w http.ResponseWriter, r *http.Request, sess *models.Session) {
	sess.Lock()
	oldCode := sess.RoomCode
	game.ReturnToMenu(sess)
	sess.Unlock()

	// The emptied session no longer owns its room code; dropping the row
	// is the store's concern, not the core's.
	if err := ctx.Store.Delete(r.Context(), oldCode); err != nil {
		ctx.Log.WithField("room", oldCode).WithError(err).Warn("session delete failed")
	}
	sse.Broadcast(sess, sse.EventSessionClosed, oldCode)
	ctx.Log.WithField("room", oldCode).Info("session reset to menu")
	w.WriteHeader(http.StatusNoContent)
}

// applyDefaults fills unset settings and falls back to the built-in
// room/task catalog when the editor supplied none
func (ctx *Context) applyDefaults(settings *models.Settings) {
	if settings.MinPlayers <= 0 {
		settings.MinPlayers = game.DefaultMinPlayers
	}
	if settings.MaxPlayers <= 0 {
		settings.MaxPlayers = game.DefaultMaxPlayers
	}
	if settings.TasksPerPlayer <= 0 {
		settings.TasksPerPlayer = game.DefaultTasksPerPlayer
	}
	if settings.ImposterCount <= 0 {
		settings.ImposterCount = 1
	}
	if settings.MeetingLimit <= 0 {
		settings.MeetingLimit = game.DefaultMeetingLimit
	}
	if len(settings.Rooms) == 0 {
		settings.Rooms = ctx.Catalog
	}
}
