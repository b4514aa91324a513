package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/mcdev12/zodiarena/go/internal/models"
)

// Event type names carried on the wire between the game session and the
// gateway.
const (
	TypeSessionStarted = "SessionStarted"
	TypeGameStarted    = "GameStarted"
	TypeRoundStarted   = "RoundStarted"
	TypeCountdownTick  = "CountdownTick"
	TypeAnswerRecorded = "AnswerRecorded"
	TypeRoundTimedOut  = "RoundTimedOut"
	TypeGameCompleted  = "GameCompleted"
	TypeScoreSaved     = "ScoreSaved"
	TypeScoreSaveError = "ScoreSaveError"
	TypeSessionReset   = "SessionReset"
)

// Envelope wraps a typed payload with its session identity.
type Envelope struct {
	SessionID uuid.UUID       `json:"session_id"`
	EventType string          `json:"event_type"`
	Payload   json.RawMessage `json:"payload"`
	EmittedAt time.Time       `json:"emitted_at"`
}

// GameStartedPayload is emitted when a category is chosen and a round
// pool drawn.
type GameStartedPayload struct {
	GameID    string          `json:"game_id"`
	Username  string          `json:"username"`
	Category  models.Category `json:"category"`
	Rounds    int             `json:"rounds"`
	StartedAt time.Time       `json:"started_at"`
}

// RoundStartedPayload is emitted when a round's countdown begins.
type RoundStartedPayload struct {
	GameID        string    `json:"game_id"`
	Round         int       `json:"round"`
	SubjectName   string    `json:"subject_name"`
	TimeBudgetSec int       `json:"time_budget_sec"`
	StartedAt     time.Time `json:"started_at"`
}

// CountdownTickPayload is emitted once per second while a round is live.
type CountdownTickPayload struct {
	GameID       string `json:"game_id"`
	Round        int    `json:"round"`
	TimeRemaining int   `json:"time_remaining"`
}

// AnswerRecordedPayload is emitted when a player answers a round.
type AnswerRecordedPayload struct {
	GameID      string    `json:"game_id"`
	Round       int       `json:"round"`
	Correct     bool      `json:"correct"`
	ChosenSign  string    `json:"chosen_sign"`
	CorrectSign string    `json:"correct_sign"`
	Score       int       `json:"score"`
	AnsweredAt  time.Time `json:"answered_at"`
}

// RoundTimedOutPayload is emitted when a round's countdown expires with
// no answer.
type RoundTimedOutPayload struct {
	GameID      string    `json:"game_id"`
	Round       int       `json:"round"`
	CorrectSign string    `json:"correct_sign"`
	TimedOutAt  time.Time `json:"timed_out_at"`
}

// GameCompletedPayload is emitted once when the final round's feedback
// window closes.
type GameCompletedPayload struct {
	GameID      string          `json:"game_id"`
	Username    string          `json:"username"`
	Category    models.Category `json:"category"`
	Score       int             `json:"score"`
	Percentage  int             `json:"percentage"`
	Grade       string          `json:"grade"`
	CompletedAt time.Time       `json:"completed_at"`
}

// ScoreSavedPayload is emitted after the score store accepts the game's
// one submission.
type ScoreSavedPayload struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
}

// ScoreSaveErrorPayload is emitted when the one submission fails. The
// failure is terminal: the game never retries.
type ScoreSaveErrorPayload struct {
	GameID   string `json:"game_id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Reason   string `json:"reason"`
}
