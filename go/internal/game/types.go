package game

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/zodiarena/go/internal/models"
)

// Defaults for one game. The grading table assumes a 100-point max, so
// Rounds x PointsPerCorrect should stay at 100.
const (
	DefaultRounds           = 5
	DefaultPointsPerCorrect = 20
	DefaultRoundTime        = 30 * time.Second
	DefaultFeedbackDelay    = 2 * time.Second
)

// TimedOutAnswer is the chosen-sign label recorded when a round's
// countdown expires with no answer.
const TimedOutAnswer = "(timed out)"

var (
	// ErrNotAuthenticating is returned for login/signup outside the
	// authenticating phase.
	ErrNotAuthenticating = errors.New("session is not authenticating")
	// ErrNotSelectingCategory is returned for a category pick outside the
	// selection phase.
	ErrNotSelectingCategory = errors.New("session is not selecting a category")
	// ErrNoActiveRound is returned for an answer outside a live round.
	ErrNoActiveRound = errors.New("no active round")
	// ErrRoundAnswered is returned for a second answer to an already
	// recorded round.
	ErrRoundAnswered = errors.New("round already answered")
	// ErrInvalidTransition is returned for any other event the current
	// phase does not accept.
	ErrInvalidTransition = errors.New("invalid phase transition")
)

// Config holds the per-game knobs.
type Config struct {
	Rounds           int
	PointsPerCorrect int
	RoundTime        time.Duration
	FeedbackDelay    time.Duration
}

// DefaultConfig returns the standard 5-round, 30-second game.
func DefaultConfig() Config {
	return Config{
		Rounds:           DefaultRounds,
		PointsPerCorrect: DefaultPointsPerCorrect,
		RoundTime:        DefaultRoundTime,
		FeedbackDelay:    DefaultFeedbackDelay,
	}
}

// Authenticator defines what the game needs from the credential store's
// application layer. Failures come back as errors whose messages are
// shown to the player; they never carry internals.
type Authenticator interface {
	Authenticate(ctx context.Context, username, password string) error
	Register(ctx context.Context, username, password string) error
}

// SubjectProvider defines what the game needs from the content provider.
type SubjectProvider interface {
	Draw(category models.Category, count int) ([]models.Subject, error)
}

// ScoreSubmitter defines what the game needs from the score store. Submit
// may be slow or fail; the game never blocks a phase transition on it and
// never retries a failure.
type ScoreSubmitter interface {
	Submit(ctx context.Context, username string, score int, category models.Category) error
}

// AuthResult is the structured outcome of a login or signup attempt.
// Failures are data, not errors: a failed attempt leaves the phase
// untouched.
type AuthResult struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// Session is the single mutable core entity. It is owned by Game and
// mutated only under its lock.
type Session struct {
	Phase         models.GamePhase
	Username      string
	GameID        uuid.UUID
	Category      models.Category
	RoundPool     []models.Subject
	RoundIndex    int
	Score         int
	TimeRemaining int
	Answered      bool
	LastOutcome   *models.Outcome
	SaveStatus    models.SaveStatus
}

// Snapshot is a copy of the observable session state handed to the
// presentation caller. Re-reading it has no side effects.
type Snapshot struct {
	Phase          models.GamePhase  `json:"phase"`
	Username       string            `json:"username,omitempty"`
	Category       models.Category   `json:"category,omitempty"`
	RoundIndex     int               `json:"round_index"`
	TotalRounds    int               `json:"total_rounds"`
	Score          int               `json:"score"`
	CurrentSubject *models.Subject   `json:"current_subject,omitempty"`
	TimeRemaining  int               `json:"time_remaining"`
	Answered       bool              `json:"answered"`
	LastOutcome    *models.Outcome   `json:"last_outcome,omitempty"`
	Percentage     int               `json:"percentage,omitempty"`
	Grade          string            `json:"grade,omitempty"`
	SaveStatus     models.SaveStatus `json:"save_status"`
}
