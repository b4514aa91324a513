package models

// GamePhase defines the session's current top-level mode. Exactly one
// phase is active at any time.
type GamePhase string

const (
	PhaseAuthenticating     GamePhase = "AUTHENTICATING"
	PhaseSelectingCategory  GamePhase = "SELECTING_CATEGORY"
	PhaseQuizzing           GamePhase = "QUIZZING"
	PhaseShowingFeedback    GamePhase = "SHOWING_FEEDBACK"
	PhaseFinished           GamePhase = "FINISHED"
	PhaseViewingLeaderboard GamePhase = "VIEWING_LEADERBOARD"
)

// Outcome records the result of one round, present only once the round
// has a recorded outcome (explicit answer or timeout).
type Outcome struct {
	Correct     bool   `json:"correct"`
	ChosenSign  string `json:"chosen_sign"`
	CorrectSign string `json:"correct_sign"`
}

// SaveStatus tracks the one score submission a finished game attempts.
type SaveStatus string

const (
	SaveStatusNone      SaveStatus = "NONE"
	SaveStatusSubmitted SaveStatus = "SUBMITTED"
	SaveStatusSaved     SaveStatus = "SAVED"
	SaveStatusFailed    SaveStatus = "FAILED"
)
