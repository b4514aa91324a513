package main

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/zodiarena/go/internal/events"
	"github.com/mcdev12/zodiarena/go/internal/game"
)

var errSessionNotFound = errors.New("session not found")

// SessionRegistry tracks the live game sessions served by this process.
// Each WebSocket/REST client owns exactly one session.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*game.Game

	cfg      game.Config
	auth     game.Authenticator
	subjects game.SubjectProvider
	scores   game.ScoreSubmitter
	sink     events.Sink
}

func NewSessionRegistry(
	cfg game.Config,
	auth game.Authenticator,
	subjects game.SubjectProvider,
	scores game.ScoreSubmitter,
	sink events.Sink,
) *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[uuid.UUID]*game.Game),
		cfg:      cfg,
		auth:     auth,
		subjects: subjects,
		scores:   scores,
		sink:     sink,
	}
}

// Create starts a fresh session and returns it.
func (r *SessionRegistry) Create() *game.Game {
	g := game.NewGame(r.cfg, r.auth, r.subjects, r.scores, game.WithSink(r.sink))

	r.mu.Lock()
	r.sessions[g.SessionID()] = g
	total := len(r.sessions)
	r.mu.Unlock()

	log.Info().
		Str("session_id", g.SessionID().String()).
		Int("active_sessions", total).
		Msg("session created")
	return g
}

// Get returns the session with the given ID.
func (r *SessionRegistry) Get(id uuid.UUID) (*game.Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.sessions[id]
	if !ok {
		return nil, errSessionNotFound
	}
	return g, nil
}

// Remove closes a session and drops it from the registry.
func (r *SessionRegistry) Remove(id uuid.UUID) error {
	r.mu.Lock()
	g, ok := r.sessions[id]
	if ok {
		delete(r.sessions, id)
	}
	r.mu.Unlock()

	if !ok {
		return errSessionNotFound
	}
	g.Close()
	log.Info().Str("session_id", id.String()).Msg("session removed")
	return nil
}

// CloseAll tears down every live session.
func (r *SessionRegistry) CloseAll() {
	r.mu.Lock()
	sessions := make([]*game.Game, 0, len(r.sessions))
	for _, g := range r.sessions {
		sessions = append(sessions, g)
	}
	r.sessions = make(map[uuid.UUID]*game.Game)
	r.mu.Unlock()

	for _, g := range sessions {
		g.Close()
	}
}
