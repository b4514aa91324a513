package leaderboard

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mcdev12/zodiarena/go/internal/models"
)

type fakeRepo struct {
	entries map[string]models.LeaderboardEntry
	games   []models.GameRecord
	err     error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: make(map[string]models.LeaderboardEntry)}
}

func (f *fakeRepo) SubmitGame(_ context.Context, record models.GameRecord, aggregate AggregateFn) error {
	if f.err != nil {
		return f.err
	}
	f.games = append(f.games, record)
	var current *models.LeaderboardEntry
	if entry, ok := f.entries[record.Username]; ok {
		current = &entry
	}
	f.entries[record.Username] = aggregate(current)
	return nil
}

func (f *fakeRepo) TopEntries(_ context.Context, limit int) ([]models.LeaderboardEntry, error) {
	if f.err != nil {
		return nil, f.err
	}
	entries := make([]models.LeaderboardEntry, 0, len(f.entries))
	for _, entry := range f.entries {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].TotalScore != entries[j].TotalScore {
			return entries[i].TotalScore > entries[j].TotalScore
		}
		return entries[i].Username < entries[j].Username
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func newTestApp(repo *fakeRepo) *App {
	app := NewApp(repo)
	app.now = func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
	return app
}

func TestSubmitFirstGame(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)

	require.NoError(t, app.Submit(context.Background(), "nova", 80, models.CategoryActors))

	entry := repo.entries["nova"]
	require.Equal(t, 80, entry.TotalScore)
	require.Equal(t, 1, entry.GamesPlayed)
	require.InDelta(t, 80.0, entry.AverageScore, 1e-9)
	require.Equal(t, 80, entry.Percentage)
	require.Equal(t, "A", entry.Grade)
	require.Equal(t, app.now(), entry.LastPlayed)
}

func TestSubmitAccumulatesAcrossGames(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	require.NoError(t, app.Submit(ctx, "nova", 80, models.CategoryActors))
	require.NoError(t, app.Submit(ctx, "nova", 60, models.CategorySingers))
	require.NoError(t, app.Submit(ctx, "nova", 100, models.CategoryFootballers))

	entry := repo.entries["nova"]
	require.Equal(t, 240, entry.TotalScore)
	require.Equal(t, 3, entry.GamesPlayed)
	require.InDelta(t, 80.0, entry.AverageScore, 1e-9)
	require.Equal(t, 80, entry.Percentage)
	require.Equal(t, "A", entry.Grade)
	require.Len(t, repo.games, 3)
}

func TestSubmitRoundsAveragePercentage(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	// 100 + 80 + 100 over three games: average 93.33 rounds to 93.
	require.NoError(t, app.Submit(ctx, "nova", 100, models.CategoryActors))
	require.NoError(t, app.Submit(ctx, "nova", 80, models.CategoryActors))
	require.NoError(t, app.Submit(ctx, "nova", 100, models.CategoryActors))

	entry := repo.entries["nova"]
	require.Equal(t, 93, entry.Percentage)
	require.Equal(t, "A+", entry.Grade)
}

func TestSubmitZeroScoreStillCountsGame(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)

	require.NoError(t, app.Submit(context.Background(), "nova", 0, models.CategoryWWE))

	entry := repo.entries["nova"]
	require.Equal(t, 0, entry.TotalScore)
	require.Equal(t, 1, entry.GamesPlayed)
	require.Equal(t, "F", entry.Grade)
}

func TestSubmitRepositoryError(t *testing.T) {
	repo := newFakeRepo()
	repo.err = errors.New("connection refused")
	app := newTestApp(repo)

	err := app.Submit(context.Background(), "nova", 80, models.CategoryActors)
	require.Error(t, err)
}

func TestTopOrdersByTotalScore(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)
	ctx := context.Background()

	require.NoError(t, app.Submit(ctx, "low", 20, models.CategoryActors))
	require.NoError(t, app.Submit(ctx, "high", 100, models.CategoryActors))
	require.NoError(t, app.Submit(ctx, "mid", 60, models.CategoryActors))

	entries, err := app.Top(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, "high", entries[0].Username)
	require.Equal(t, "mid", entries[1].Username)
	require.Equal(t, "low", entries[2].Username)
}

func TestTopDefaultLimit(t *testing.T) {
	repo := newFakeRepo()
	app := newTestApp(repo)

	_, err := app.Top(context.Background(), 0)
	require.NoError(t, err)
}
