package main

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/zodiarena/go/internal/game"
	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/mcdev12/zodiarena/go/internal/zodiac"
)

// API exposes the quiz flow over REST. Every mutating route addresses a
// session by ID; state-changing calls return the refreshed snapshot so
// clients never have to derive state locally.
type API struct {
	services *Services
}

func NewAPI(services *Services) *API {
	return &API{services: services}
}

func (a *API) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/sessions", a.handleCreateSession)
	mux.HandleFunc("GET /api/sessions/{id}", a.handleSnapshot)
	mux.HandleFunc("DELETE /api/sessions/{id}", a.handleDeleteSession)
	mux.HandleFunc("POST /api/sessions/{id}/login", a.handleLogin)
	mux.HandleFunc("POST /api/sessions/{id}/signup", a.handleSignup)
	mux.HandleFunc("POST /api/sessions/{id}/category", a.handleSelectCategory)
	mux.HandleFunc("POST /api/sessions/{id}/answer", a.handleAnswer)
	mux.HandleFunc("POST /api/sessions/{id}/exit", a.handleExit)
	mux.HandleFunc("POST /api/sessions/{id}/play-again", a.handlePlayAgain)
	mux.HandleFunc("POST /api/sessions/{id}/leaderboard", a.handleShowLeaderboard)
	mux.HandleFunc("POST /api/sessions/{id}/back", a.handleBack)
	mux.HandleFunc("POST /api/sessions/{id}/logout", a.handleLogout)

	mux.HandleFunc("GET /api/leaderboard", a.handleLeaderboard)
	mux.HandleFunc("GET /api/categories", a.handleCategories)
	mux.HandleFunc("GET /api/signs", a.handleSigns)
	mux.HandleFunc("GET /api/images", a.handleImage)
}

func (a *API) session(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return nil, false
	}
	g, err := a.services.Sessions.Get(id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return nil, false
	}
	return g, true
}

func (a *API) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	g := a.services.Sessions.Create()
	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id": g.SessionID().String(),
		"snapshot":   g.Snapshot(),
	})
}

func (a *API) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	g, ok := a.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, g.Snapshot())
}

func (a *API) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid session id")
		return
	}
	if err := a.services.Sessions.Remove(id); err != nil {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *API) handleLogin(w http.ResponseWriter, r *http.Request) {
	g, ok := a.session(w, r)
	if !ok {
		return
	}
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result := g.Login(r.Context(), req.Username, req.Password)
	writeJSON(w, http.StatusOK, map[string]any{
		"result":   result,
		"snapshot": g.Snapshot(),
	})
}

func (a *API) handleSignup(w http.ResponseWriter, r *http.Request) {
	g, ok := a.session(w, r)
	if !ok {
		return
	}
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}
	result := g.Signup(r.Context(), req.Username, req.Password)
	writeJSON(w, http.StatusOK, map[string]any{
		"result":   result,
		"snapshot": g.Snapshot(),
	})
}

func (a *API) handleSelectCategory(w http.ResponseWriter, r *http.Request) {
	g, ok := a.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Category string `json:"category"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	category := models.Category(req.Category)
	if !category.Valid() {
		writeError(w, http.StatusBadRequest, "unknown category")
		return
	}
	if err := g.SelectCategory(category); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g.Snapshot())
}

func (a *API) handleAnswer(w http.ResponseWriter, r *http.Request) {
	g, ok := a.session(w, r)
	if !ok {
		return
	}
	var req struct {
		Sign string `json:"sign"`
	}
	if !decodeBody(w, r, &req) {
		return
	}
	outcome, err := g.Answer(req.Sign)
	if err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"outcome":  outcome,
		"snapshot": g.Snapshot(),
	})
}

func (a *API) handleExit(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, func(g *game.Game) error { return g.Exit() })
}

func (a *API) handlePlayAgain(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, func(g *game.Game) error { return g.PlayAgain() })
}

func (a *API) handleShowLeaderboard(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, func(g *game.Game) error { return g.ShowLeaderboard() })
}

func (a *API) handleBack(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, func(g *game.Game) error { return g.Back() })
}

func (a *API) handleLogout(w http.ResponseWriter, r *http.Request) {
	a.transition(w, r, func(g *game.Game) error { return g.Logout() })
}

// transition runs a navigation call and returns the refreshed snapshot.
func (a *API) transition(w http.ResponseWriter, r *http.Request, fn func(*game.Game) error) {
	g, ok := a.session(w, r)
	if !ok {
		return
	}
	if err := fn(g); err != nil {
		writeGameError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g.Snapshot())
}

func (a *API) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	entries, err := a.services.Leaderboard.Top(r.Context(), 0)
	if err != nil {
		log.Error().Err(err).Msg("failed to load leaderboard")
		writeError(w, http.StatusInternalServerError, "failed to load leaderboard")
		return
	}
	if entries == nil {
		entries = []models.LeaderboardEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (a *API) handleCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, a.services.Subjects.Categories())
}

func (a *API) handleSigns(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, zodiac.SignNames())
}

func (a *API) handleImage(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"url": a.services.Images.ImageURL(r.Context(), name),
	})
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeGameError maps state machine rejections to 409: the request was
// well-formed but not legal in the session's current phase.
func writeGameError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, game.ErrNotSelectingCategory),
		errors.Is(err, game.ErrNoActiveRound),
		errors.Is(err, game.ErrRoundAnswered),
		errors.Is(err, game.ErrInvalidTransition):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
