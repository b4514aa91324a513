package models

import (
	"time"
)

// LeaderboardEntry is one row of the shared leaderboard: a player's
// running aggregate across every completed game.
type LeaderboardEntry struct {
	Username     string    `json:"username"`
	TotalScore   int       `json:"total_score"`
	GamesPlayed  int       `json:"games_played"`
	AverageScore float64   `json:"average_score"`
	Percentage   int       `json:"percentage"`
	Grade        string    `json:"grade"`
	LastPlayed   time.Time `json:"last_played"`
}

// GameRecord is one completed game as persisted to the score store.
type GameRecord struct {
	Username    string    `json:"username"`
	Score       int       `json:"score"`
	Category    Category  `json:"category"`
	CompletedAt time.Time `json:"completed_at"`
}
