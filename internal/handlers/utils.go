package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/aaron-ferguson/Among-Us-IRL/internal/game"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/models"
	"github.com/aaron-ferguson/Among-Us-IRL/internal/store"
)

const (
	deviceCookie = "device_id"
	nameCookie   = "player_name"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps core errors onto HTTP statuses per the failure taxonomy:
// validation 400, authorization 403, missing 404, stage conflicts 409,
// consistency failures 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	switch {
	case errors.Is(err, game.ErrNotHost):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrPlayerNotFound), errors.Is(err, store.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrWrongStage), errors.Is(err, game.ErrGameEnded),
		errors.Is(err, game.ErrJoinClosed):
		status = http.StatusConflict
	case errors.Is(err, game.ErrNoImpostersAssigned):
		status = http.StatusInternalServerError
	}
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// deviceID returns the device's stable identity, minting one if needed
func deviceID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(deviceCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.New().String()
	http.SetCookie(w, &http.Cookie{
		Name:     deviceCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		// Secure: true, // enable when serving over HTTPS
	})
	return id
}

// playerName returns the name this device joined under, or ""
func playerName(r *http.Request) string {
	cookie, err := r.Cookie(nameCookie)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func setPlayerName(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     nameCookie,
		Value:    name,
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

// getSession fetches the session for a room code
func (ctx *Context) getSession(r *http.Request, code string) (*models.Session, error) {
	return ctx.Store.Get(r.Context(), code)
}

// commit pushes the mutated session to the store. The local state is
// already authoritative; a failed push is logged, not surfaced.
func (ctx *Context) commit(c context.Context, sess *models.Session) {
	if err := ctx.Store.Save(c, sess); err != nil {
		ctx.Log.WithField("room", sess.RoomCode).WithError(err).Warn("session commit failed")
	}
}

// newRNG seeds a fresh source per call; game functions take the RNG
// explicitly so tests can pin one
func newRNG() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
