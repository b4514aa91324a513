package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/mcdev12/zodiarena/go/internal/sqlutil"
)

// AggregateFn folds a completed game into a player's leaderboard entry.
// current is nil when the player has no entry yet.
type AggregateFn func(current *models.LeaderboardEntry) models.LeaderboardEntry

// Repository handles database operations for the score store: the
// per-game history table and the aggregated leaderboard table.
type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

const insertGameQuery = `
INSERT INTO game_sessions (id, username, score, category, completed_at)
VALUES ($1, $2, $3, $4, $5)`

const getEntryForUpdateQuery = `
SELECT username, total_score, games_played, average_score, percentage, grade, last_played
FROM leaderboard
WHERE username = $1
FOR UPDATE`

const upsertEntryQuery = `
INSERT INTO leaderboard (username, total_score, games_played, average_score, percentage, grade, last_played)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (username) DO UPDATE SET
	total_score   = EXCLUDED.total_score,
	games_played  = EXCLUDED.games_played,
	average_score = EXCLUDED.average_score,
	percentage    = EXCLUDED.percentage,
	grade         = EXCLUDED.grade,
	last_played   = EXCLUDED.last_played`

// SubmitGame records one completed game and updates the player's
// aggregate inside a single transaction. The entry row is locked for the
// duration so concurrent submissions for the same player serialize.
func (r *Repository) SubmitGame(ctx context.Context, record models.GameRecord, aggregate AggregateFn) error {
	return sqlutil.Run(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, insertGameQuery,
			uuid.New(), record.Username, record.Score, record.Category, record.CompletedAt,
		); err != nil {
			return fmt.Errorf("failed to insert game record: %w", err)
		}

		var current *models.LeaderboardEntry
		var entry models.LeaderboardEntry
		err := tx.QueryRow(ctx, getEntryForUpdateQuery, record.Username).Scan(
			&entry.Username, &entry.TotalScore, &entry.GamesPlayed,
			&entry.AverageScore, &entry.Percentage, &entry.Grade, &entry.LastPlayed,
		)
		switch {
		case err == nil:
			current = &entry
		case errors.Is(err, pgx.ErrNoRows):
			// first game for this player
		default:
			return fmt.Errorf("failed to lock leaderboard entry: %w", err)
		}

		next := aggregate(current)
		if _, err := tx.Exec(ctx, upsertEntryQuery,
			next.Username, next.TotalScore, next.GamesPlayed,
			next.AverageScore, next.Percentage, next.Grade, next.LastPlayed,
		); err != nil {
			return fmt.Errorf("failed to upsert leaderboard entry: %w", err)
		}
		return nil
	})
}

const topEntriesQuery = `
SELECT username, total_score, games_played, average_score, percentage, grade, last_played
FROM leaderboard
ORDER BY total_score DESC, username ASC
LIMIT $1`

// TopEntries returns the leaderboard ordered by total score descending.
func (r *Repository) TopEntries(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	rows, err := r.pool.Query(ctx, topEntriesQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []models.LeaderboardEntry
	for rows.Next() {
		var entry models.LeaderboardEntry
		if err := rows.Scan(
			&entry.Username, &entry.TotalScore, &entry.GamesPlayed,
			&entry.AverageScore, &entry.Percentage, &entry.Grade, &entry.LastPlayed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan leaderboard entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
