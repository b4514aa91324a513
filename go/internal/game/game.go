package game

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/zodiarena/go/internal/events"
	"github.com/mcdev12/zodiarena/go/internal/grading"
	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/mcdev12/zodiarena/go/internal/sounds"
	"github.com/mcdev12/zodiarena/go/internal/zodiac"
	"github.com/rs/zerolog/log"
)

const submitTimeout = 10 * time.Second

// Game owns one player session and is its sole mutator. Every mutation
// happens under mu, so timer callbacks and caller intents are serialized
// into one logical event stream.
type Game struct {
	mu       sync.Mutex
	cfg      Config
	clock    clockwork.Clock
	auth     Authenticator
	subjects SubjectProvider
	scores   ScoreSubmitter
	sounds   sounds.Player
	sink     events.Sink

	sessionID uuid.UUID
	session   Session

	// generation is bumped on every phase transition and round change.
	// Timer goroutines capture it at arm time and re-check it on fire, so
	// a stale timer is always a no-op.
	generation uint64

	// submittedGame latches the one score submission a finished game may
	// attempt. Reset only by starting a new game (new GameID).
	submittedGame uuid.UUID

	eventsCh  chan events.Envelope
	done      chan struct{}
	closeOnce sync.Once
}

// Option configures a Game.
type Option func(*Game)

// WithClock substitutes the wall clock; tests pass a fake clock.
func WithClock(c clockwork.Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithSink routes session events to sink instead of discarding them.
func WithSink(s events.Sink) Option {
	return func(g *Game) { g.sink = s }
}

// WithSounds routes sound cues to p instead of discarding them.
func WithSounds(p sounds.Player) Option {
	return func(g *Game) { g.sounds = p }
}

// NewGame creates a session in the authenticating phase and starts its
// event pump.
func NewGame(cfg Config, auth Authenticator, subjects SubjectProvider, scores ScoreSubmitter, opts ...Option) *Game {
	g := &Game{
		cfg:       cfg,
		clock:     clockwork.NewRealClock(),
		auth:      auth,
		subjects:  subjects,
		scores:    scores,
		sounds:    sounds.NoopPlayer{},
		sink:      events.NoopSink{},
		sessionID: uuid.New(),
		session: Session{
			Phase:      models.PhaseAuthenticating,
			SaveStatus: models.SaveStatusNone,
		},
		eventsCh: make(chan events.Envelope, 256),
		done:     make(chan struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	go g.pumpEvents()

	log.Debug().Str("session_id", g.sessionID.String()).Msg("session created")
	return g
}

// SessionID identifies this session to the gateway.
func (g *Game) SessionID() uuid.UUID {
	return g.sessionID
}

// Close stops the event pump and invalidates all armed timers.
func (g *Game) Close() {
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.generation++
		g.mu.Unlock()
		close(g.done)
	})
}

// Login validates credentials against the credential store. On success the
// identity is bound and the session moves to category selection. Failures
// are returned as data and leave the phase untouched.
func (g *Game) Login(ctx context.Context, username, password string) AuthResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseAuthenticating {
		return AuthResult{Success: false, Reason: ErrNotAuthenticating.Error()}
	}

	if err := g.auth.Authenticate(ctx, username, password); err != nil {
		log.Debug().Str("username", username).Err(err).Msg("login rejected")
		return AuthResult{Success: false, Reason: err.Error()}
	}

	g.bindIdentity(username)
	return AuthResult{Success: true}
}

// Signup registers a new player. Duplicate usernames and policy
// violations come back as structured failures with no phase change.
func (g *Game) Signup(ctx context.Context, username, password string) AuthResult {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseAuthenticating {
		return AuthResult{Success: false, Reason: ErrNotAuthenticating.Error()}
	}

	if err := g.auth.Register(ctx, username, password); err != nil {
		log.Debug().Str("username", username).Err(err).Msg("signup rejected")
		return AuthResult{Success: false, Reason: err.Error()}
	}

	g.bindIdentity(username)
	return AuthResult{Success: true}
}

func (g *Game) bindIdentity(username string) {
	g.session.Username = username
	g.transition(models.PhaseSelectingCategory)
	g.sounds.Play(sounds.CueSelect)
	g.emit(events.TypeSessionStarted, events.GameStartedPayload{
		Username:  username,
		StartedAt: g.clock.Now(),
	})
	log.Info().Str("username", username).Msg("player authenticated")
}

// SelectCategory draws the round pool and starts round 1.
func (g *Game) SelectCategory(category models.Category) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseSelectingCategory {
		return ErrNotSelectingCategory
	}

	pool, err := g.subjects.Draw(category, g.cfg.Rounds)
	if err != nil {
		// Content failure never corrupts the phase; the caller may retry
		// with another category.
		return err
	}

	g.session.GameID = uuid.New()
	g.session.Category = category
	g.session.RoundPool = pool
	g.session.Score = 0
	g.session.SaveStatus = models.SaveStatusNone
	g.sounds.Play(sounds.CueSelect)
	g.emit(events.TypeGameStarted, events.GameStartedPayload{
		GameID:    g.session.GameID.String(),
		Username:  g.session.Username,
		Category:  category,
		Rounds:    g.cfg.Rounds,
		StartedAt: g.clock.Now(),
	})

	g.startRound(1)
	return nil
}

// startRound begins round n: fresh countdown, no outcome. Caller holds mu.
func (g *Game) startRound(n int) {
	g.session.RoundIndex = n
	g.session.TimeRemaining = int(g.cfg.RoundTime / time.Second)
	g.session.Answered = false
	g.session.LastOutcome = nil
	g.transition(models.PhaseQuizzing)

	subject := g.session.RoundPool[n-1]
	g.emit(events.TypeRoundStarted, events.RoundStartedPayload{
		GameID:        g.session.GameID.String(),
		Round:         n,
		SubjectName:   subject.Name,
		TimeBudgetSec: g.session.TimeRemaining,
		StartedAt:     g.clock.Now(),
	})

	g.armCountdown(g.generation)
}

// Answer records the player's guess for the live round. A second answer
// to the same round is rejected without effect.
func (g *Game) Answer(chosenSign string) (models.Outcome, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseQuizzing {
		return models.Outcome{}, ErrNoActiveRound
	}
	if g.session.Answered {
		return models.Outcome{}, ErrRoundAnswered
	}

	subject := g.session.RoundPool[g.session.RoundIndex-1]
	correctSign := zodiac.Classify(subject.Birthdate).Name
	outcome := models.Outcome{
		Correct:     chosenSign == correctSign,
		ChosenSign:  chosenSign,
		CorrectSign: correctSign,
	}

	if outcome.Correct {
		g.session.Score += g.cfg.PointsPerCorrect
		g.sounds.Play(sounds.CueCorrect)
	} else {
		g.sounds.Play(sounds.CueIncorrect)
	}

	g.recordOutcome(outcome)
	g.emit(events.TypeAnswerRecorded, events.AnswerRecordedPayload{
		GameID:      g.session.GameID.String(),
		Round:       g.session.RoundIndex,
		Correct:     outcome.Correct,
		ChosenSign:  outcome.ChosenSign,
		CorrectSign: outcome.CorrectSign,
		Score:       g.session.Score,
		AnsweredAt:  g.clock.Now(),
	})

	return outcome, nil
}

// recordOutcome freezes the round and opens the feedback window. Caller
// holds mu.
func (g *Game) recordOutcome(outcome models.Outcome) {
	g.session.Answered = true
	g.session.LastOutcome = &outcome
	g.transition(models.PhaseShowingFeedback)
	g.armFeedbackAdvance(g.generation)
}

// advance fires when the feedback window closes: next round, or finish
// the game after the last one. Stale timers (generation mismatch) are
// no-ops.
func (g *Game) advance(gen uint64) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.generation || g.session.Phase != models.PhaseShowingFeedback {
		return
	}

	if g.session.RoundIndex < g.cfg.Rounds {
		g.startRound(g.session.RoundIndex + 1)
		return
	}

	g.finishGame()
}

// finishGame enters the finished phase and triggers the game's single
// score submission. Caller holds mu.
func (g *Game) finishGame() {
	g.transition(models.PhaseFinished)
	g.sounds.Play(sounds.CueGameOver)

	percentage := grading.GamePercentage(g.session.Score, g.cfg.Rounds, g.cfg.PointsPerCorrect)
	g.emit(events.TypeGameCompleted, events.GameCompletedPayload{
		GameID:      g.session.GameID.String(),
		Username:    g.session.Username,
		Category:    g.session.Category,
		Score:       g.session.Score,
		Percentage:  percentage,
		Grade:       grading.ForPercentage(percentage),
		CompletedAt: g.clock.Now(),
	})

	g.submitOnce()
}

// submitOnce attempts the score submission exactly once per game, however
// many times the finished phase is re-observed. Caller holds mu.
func (g *Game) submitOnce() {
	if g.submittedGame == g.session.GameID {
		return
	}
	g.submittedGame = g.session.GameID
	g.session.SaveStatus = models.SaveStatusSubmitted

	gameID := g.session.GameID
	username := g.session.Username
	score := g.session.Score
	category := g.session.Category

	// The submission is async: phase transitions never block on the score
	// store, and a failure is terminal rather than retried.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), submitTimeout)
		defer cancel()

		err := g.scores.Submit(ctx, username, score, category)

		g.mu.Lock()
		defer g.mu.Unlock()
		if g.session.GameID != gameID {
			// A new game began while the submission was in flight; its
			// result no longer belongs to the session.
			return
		}
		if err != nil {
			g.session.SaveStatus = models.SaveStatusFailed
			log.Error().
				Err(err).
				Str("username", username).
				Int("score", score).
				Msg("score submission failed - score may not have been saved")
			g.emit(events.TypeScoreSaveError, events.ScoreSaveErrorPayload{
				GameID:   gameID.String(),
				Username: username,
				Score:    score,
				Reason:   err.Error(),
			})
			return
		}
		g.session.SaveStatus = models.SaveStatusSaved
		log.Info().
			Str("username", username).
			Int("score", score).
			Str("category", string(category)).
			Msg("score saved")
		g.emit(events.TypeScoreSaved, events.ScoreSavedPayload{
			GameID:   gameID.String(),
			Username: username,
			Score:    score,
		})
	}()
}

// Exit abandons a game mid-quiz: progress and score are discarded and no
// save happens.
func (g *Game) Exit() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseQuizzing && g.session.Phase != models.PhaseShowingFeedback {
		return ErrInvalidTransition
	}

	g.resetGameState()
	g.transition(models.PhaseSelectingCategory)
	g.sounds.Play(sounds.CueSelect)
	g.emit(events.TypeSessionReset, struct{}{})
	return nil
}

// PlayAgain resets a finished game back to category selection.
func (g *Game) PlayAgain() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseFinished {
		return ErrInvalidTransition
	}

	g.resetGameState()
	g.transition(models.PhaseSelectingCategory)
	g.sounds.Play(sounds.CueSelect)
	g.emit(events.TypeSessionReset, struct{}{})
	return nil
}

// ShowLeaderboard moves a finished game to the leaderboard view.
func (g *Game) ShowLeaderboard() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseFinished {
		return ErrInvalidTransition
	}
	g.transition(models.PhaseViewingLeaderboard)
	g.sounds.Play(sounds.CueSelect)
	return nil
}

// Back returns from the leaderboard to category selection.
func (g *Game) Back() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.session.Phase != models.PhaseViewingLeaderboard {
		return ErrInvalidTransition
	}
	g.transition(models.PhaseSelectingCategory)
	return nil
}

// Logout clears the identity and the whole session.
func (g *Game) Logout() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	switch g.session.Phase {
	case models.PhaseSelectingCategory, models.PhaseQuizzing, models.PhaseFinished:
	default:
		return ErrInvalidTransition
	}

	username := g.session.Username
	g.resetGameState()
	g.session.Username = ""
	g.transition(models.PhaseAuthenticating)
	g.sounds.Play(sounds.CueSelect)
	log.Info().Str("username", username).Msg("player logged out")
	return nil
}

// resetGameState clears everything a fresh game needs cleared. The
// submission latch is left alone: it is keyed by GameID and a new game
// mints a new one. Caller holds mu.
func (g *Game) resetGameState() {
	g.session.GameID = uuid.Nil
	g.session.Category = ""
	g.session.RoundPool = nil
	g.session.RoundIndex = 0
	g.session.Score = 0
	g.session.TimeRemaining = int(g.cfg.RoundTime / time.Second)
	g.session.Answered = false
	g.session.LastOutcome = nil
	g.session.SaveStatus = models.SaveStatusNone
}

// transition changes phase and invalidates every armed timer. Caller
// holds mu.
func (g *Game) transition(phase models.GamePhase) {
	g.session.Phase = phase
	g.generation++
}

// Snapshot returns a copy of the observable session state. For a finished
// game it includes the per-game percentage and grade.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()

	snap := Snapshot{
		Phase:         g.session.Phase,
		Username:      g.session.Username,
		Category:      g.session.Category,
		RoundIndex:    g.session.RoundIndex,
		TotalRounds:   g.cfg.Rounds,
		Score:         g.session.Score,
		TimeRemaining: g.session.TimeRemaining,
		Answered:      g.session.Answered,
		SaveStatus:    g.session.SaveStatus,
	}

	if g.session.LastOutcome != nil {
		outcome := *g.session.LastOutcome
		snap.LastOutcome = &outcome
	}

	switch g.session.Phase {
	case models.PhaseQuizzing, models.PhaseShowingFeedback:
		subject := g.session.RoundPool[g.session.RoundIndex-1]
		snap.CurrentSubject = &subject
	case models.PhaseFinished:
		snap.Percentage = grading.GamePercentage(g.session.Score, g.cfg.Rounds, g.cfg.PointsPerCorrect)
		snap.Grade = grading.ForPercentage(snap.Percentage)
	}

	return snap
}

// pumpEvents forwards emitted events to the sink off the session lock.
func (g *Game) pumpEvents() {
	for {
		select {
		case <-g.done:
			return
		case env := <-g.eventsCh:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := g.sink.Publish(ctx, env); err != nil {
				log.Error().Err(err).Str("event_type", env.EventType).Msg("failed to publish session event")
			}
			cancel()
		}
	}
}

// emit queues an event without ever blocking the state machine. Caller
// holds mu.
func (g *Game) emit(eventType string, payload any) {
	env, err := events.NewEnvelope(g.sessionID, eventType, payload)
	if err != nil {
		log.Error().Err(err).Str("event_type", eventType).Msg("failed to build event envelope")
		return
	}
	select {
	case g.eventsCh <- env:
	default:
		log.Warn().Str("event_type", eventType).Msg("event channel full - dropping event")
	}
}
