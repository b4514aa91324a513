package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/mcdev12/zodiarena/go/internal/grading"
	"github.com/mcdev12/zodiarena/go/internal/models"
)

// DefaultLimit caps how many entries a leaderboard view returns.
const DefaultLimit = 50

// LeaderboardRepository defines the persistence operations the app layer needs.
type LeaderboardRepository interface {
	SubmitGame(ctx context.Context, record models.GameRecord, aggregate AggregateFn) error
	TopEntries(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// App handles leaderboard business logic: folding finished games into
// per-player aggregates and serving ranked views.
type App struct {
	repo LeaderboardRepository
	now  func() time.Time
}

func NewApp(repo LeaderboardRepository) *App {
	return &App{repo: repo, now: time.Now}
}

// Submit records one finished game under the player's name and updates
// their aggregate: total score accumulates, games played increments, and
// the average, percentage and grade are recomputed from the new totals.
func (a *App) Submit(ctx context.Context, username string, score int, category models.Category) error {
	record := models.GameRecord{
		Username:    username,
		Score:       score,
		Category:    category,
		CompletedAt: a.now(),
	}

	err := a.repo.SubmitGame(ctx, record, func(current *models.LeaderboardEntry) models.LeaderboardEntry {
		return fold(current, record)
	})
	if err != nil {
		return fmt.Errorf("failed to submit game for %s: %w", username, err)
	}

	log.Info().
		Str("username", username).
		Int("score", score).
		Str("category", string(category)).
		Msg("recorded finished game")
	return nil
}

// fold computes the player's next aggregate from their current entry and
// a newly finished game.
func fold(current *models.LeaderboardEntry, record models.GameRecord) models.LeaderboardEntry {
	next := models.LeaderboardEntry{
		Username:   record.Username,
		LastPlayed: record.CompletedAt,
	}
	if current != nil {
		next.TotalScore = current.TotalScore
		next.GamesPlayed = current.GamesPlayed
	}
	next.TotalScore += record.Score
	next.GamesPlayed++
	next.AverageScore = float64(next.TotalScore) / float64(next.GamesPlayed)
	next.Percentage = grading.AveragePercentage(next.AverageScore)
	next.Grade = grading.AverageGrade(next.AverageScore)
	return next
}

// Top returns the highest-ranked entries, most points first. A non-positive
// limit falls back to DefaultLimit.
func (a *App) Top(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	entries, err := a.repo.TopEntries(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return entries, nil
}
