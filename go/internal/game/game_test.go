package game

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/zodiarena/go/internal/content"
	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/mcdev12/zodiarena/go/internal/zodiac"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventually = 2 * time.Second

type fakeAuth struct {
	users map[string]string
}

func (f *fakeAuth) Authenticate(_ context.Context, username, password string) error {
	if stored, ok := f.users[username]; ok && stored == password {
		return nil
	}
	return errors.New("invalid username or password")
}

func (f *fakeAuth) Register(_ context.Context, username, password string) error {
	if _, ok := f.users[username]; ok {
		return errors.New("username already taken")
	}
	f.users[username] = password
	return nil
}

type fakeSubmitter struct {
	mu    sync.Mutex
	calls []models.GameRecord
	err   error
}

func (f *fakeSubmitter) Submit(_ context.Context, username string, score int, category models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, models.GameRecord{Username: username, Score: score, Category: category})
	return f.err
}

func (f *fakeSubmitter) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newTestGame(t *testing.T) (*Game, *clockwork.FakeClock, *fakeSubmitter) {
	t.Helper()

	fc := clockwork.NewFakeClock()
	auth := &fakeAuth{users: map[string]string{"nova": "correct1!A"}}
	provider := content.NewProviderWithSeed(content.DefaultCatalog(), 42)
	submitter := &fakeSubmitter{}

	g := NewGame(DefaultConfig(), auth, provider, submitter, WithClock(fc))
	t.Cleanup(g.Close)
	return g, fc, submitter
}

// loginAndStart brings the game to round 1 of a fresh quiz.
func loginAndStart(t *testing.T, g *Game, category models.Category) {
	t.Helper()
	res := g.Login(context.Background(), "nova", "correct1!A")
	require.True(t, res.Success, "login failed: %s", res.Reason)
	require.NoError(t, g.SelectCategory(category))

	snap := g.Snapshot()
	require.Equal(t, models.PhaseQuizzing, snap.Phase)
	require.Equal(t, 1, snap.RoundIndex)
	require.Equal(t, 30, snap.TimeRemaining)
	require.NotNil(t, snap.CurrentSubject)
}

// answerCorrect answers the live round with the subject's true sign.
func answerCorrect(t *testing.T, g *Game) {
	t.Helper()
	snap := g.Snapshot()
	require.NotNil(t, snap.CurrentSubject)
	correct := zodiac.Classify(snap.CurrentSubject.Birthdate).Name
	outcome, err := g.Answer(correct)
	require.NoError(t, err)
	require.True(t, outcome.Correct)
}

// closeFeedbackWindow advances the fake clock past the feedback delay and
// waits for the session to leave the feedback phase.
func closeFeedbackWindow(t *testing.T, g *Game, fc *clockwork.FakeClock) {
	t.Helper()
	fc.BlockUntil(1)
	fc.Advance(DefaultFeedbackDelay)
	require.Eventually(t, func() bool {
		return g.Snapshot().Phase != models.PhaseShowingFeedback
	}, eventually, time.Millisecond, "feedback window never closed")
}

func TestLoginWrongPassword(t *testing.T) {
	g, _, _ := newTestGame(t)

	res := g.Login(context.Background(), "nova", "wrongpass")
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Reason)
	assert.Equal(t, models.PhaseAuthenticating, g.Snapshot().Phase)
}

func TestSignupDuplicateUsername(t *testing.T) {
	g, _, _ := newTestGame(t)

	res := g.Signup(context.Background(), "nova", "Another1!A")
	assert.False(t, res.Success)
	assert.Contains(t, res.Reason, "taken")
	assert.Equal(t, models.PhaseAuthenticating, g.Snapshot().Phase)
}

func TestSignupBindsIdentity(t *testing.T) {
	g, _, _ := newTestGame(t)

	res := g.Signup(context.Background(), "lyra", "Str0ng!pass")
	require.True(t, res.Success)
	snap := g.Snapshot()
	assert.Equal(t, models.PhaseSelectingCategory, snap.Phase)
	assert.Equal(t, "lyra", snap.Username)
}

func TestSelectCategoryRequiresSelectionPhase(t *testing.T) {
	g, _, _ := newTestGame(t)
	assert.ErrorIs(t, g.SelectCategory(models.CategoryActors), ErrNotSelectingCategory)
}

func TestPerfectGame(t *testing.T) {
	g, fc, submitter := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)

	for round := 1; round <= DefaultRounds; round++ {
		snap := g.Snapshot()
		require.Equal(t, round, snap.RoundIndex)
		require.Equal(t, models.CategoryActors, snap.CurrentSubject.Category)

		answerCorrect(t, g)
		require.Equal(t, models.PhaseShowingFeedback, g.Snapshot().Phase)
		closeFeedbackWindow(t, g, fc)
	}

	snap := g.Snapshot()
	assert.Equal(t, models.PhaseFinished, snap.Phase)
	assert.Equal(t, 100, snap.Score)
	assert.Equal(t, 100, snap.Percentage)
	assert.Equal(t, "A+", snap.Grade)

	require.Eventually(t, func() bool {
		return g.Snapshot().SaveStatus == models.SaveStatusSaved
	}, eventually, time.Millisecond)
	assert.Equal(t, 1, submitter.count())
	assert.Equal(t, 100, submitter.calls[0].Score)
	assert.Equal(t, "nova", submitter.calls[0].Username)
}

func TestCountdownDecrementsAndClamps(t *testing.T) {
	g, fc, _ := newTestGame(t)
	loginAndStart(t, g, models.CategorySingers)

	for i := 1; i <= 5; i++ {
		fc.BlockUntil(1)
		fc.Advance(time.Second)
		want := 30 - i
		require.Eventually(t, func() bool {
			return g.Snapshot().TimeRemaining == want
		}, eventually, time.Millisecond, "countdown never reached %d", want)

		snap := g.Snapshot()
		assert.False(t, snap.Answered)
		assert.GreaterOrEqual(t, snap.TimeRemaining, 0)
		assert.LessOrEqual(t, snap.TimeRemaining, 30)
	}
}

func TestRoundTimeout(t *testing.T) {
	g, fc, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryUFC)

	for i := 0; i < 30; i++ {
		fc.BlockUntil(1)
		fc.Advance(time.Second)
		want := 30 - i - 1
		require.Eventually(t, func() bool {
			snap := g.Snapshot()
			return snap.TimeRemaining == want || snap.Answered
		}, eventually, time.Millisecond)
	}

	// The instant the countdown reaches zero the timeout outcome exists.
	snap := g.Snapshot()
	require.True(t, snap.Answered)
	require.Equal(t, 0, snap.TimeRemaining)
	require.Equal(t, models.PhaseShowingFeedback, snap.Phase)
	require.NotNil(t, snap.LastOutcome)
	assert.False(t, snap.LastOutcome.Correct)
	assert.Equal(t, TimedOutAnswer, snap.LastOutcome.ChosenSign)
	assert.NotEmpty(t, snap.LastOutcome.CorrectSign)
	assert.Equal(t, 0, snap.Score)

	// The feedback window still advances to round 2.
	closeFeedbackWindow(t, g, fc)
	snap = g.Snapshot()
	assert.Equal(t, models.PhaseQuizzing, snap.Phase)
	assert.Equal(t, 2, snap.RoundIndex)
	assert.Equal(t, 30, snap.TimeRemaining)
	assert.Nil(t, snap.LastOutcome)
}

func TestAnswerFreezesCountdown(t *testing.T) {
	g, fc, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryBasketball)

	fc.BlockUntil(1)
	fc.Advance(time.Second)
	require.Eventually(t, func() bool {
		return g.Snapshot().TimeRemaining == 29
	}, eventually, time.Millisecond)

	answerCorrect(t, g)
	frozen := g.Snapshot().TimeRemaining

	// A tick landing after the answer is a no-op; advance less than the
	// feedback delay so only the countdown timer can fire.
	fc.Advance(time.Second)
	time.Sleep(50 * time.Millisecond)
	snap := g.Snapshot()
	assert.Equal(t, frozen, snap.TimeRemaining)
	assert.Equal(t, models.PhaseShowingFeedback, snap.Phase)
}

func TestSecondAnswerRejected(t *testing.T) {
	g, _, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryWWE)

	answerCorrect(t, g)
	_, err := g.Answer("Aries")
	assert.ErrorIs(t, err, ErrNoActiveRound)
}

func TestWrongAnswerScoresNothing(t *testing.T) {
	g, _, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryKDrama)

	snap := g.Snapshot()
	correct := zodiac.Classify(snap.CurrentSubject.Birthdate).Name
	wrong := "Aries"
	if correct == "Aries" {
		wrong = "Leo"
	}

	outcome, err := g.Answer(wrong)
	require.NoError(t, err)
	assert.False(t, outcome.Correct)
	assert.Equal(t, wrong, outcome.ChosenSign)
	assert.Equal(t, correct, outcome.CorrectSign)
	assert.Equal(t, 0, g.Snapshot().Score)
}

func TestScoreMonotonicWithinGame(t *testing.T) {
	g, fc, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryFootballers)

	last := 0
	for round := 1; round <= DefaultRounds; round++ {
		if round%2 == 0 {
			_, err := g.Answer("NotASign")
			require.NoError(t, err)
		} else {
			answerCorrect(t, g)
		}
		score := g.Snapshot().Score
		assert.GreaterOrEqual(t, score, last)
		last = score
		closeFeedbackWindow(t, g, fc)
	}
}

func TestExitMidQuizDiscardsProgress(t *testing.T) {
	g, fc, submitter := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)

	// Play to round 3.
	for round := 1; round <= 2; round++ {
		answerCorrect(t, g)
		closeFeedbackWindow(t, g, fc)
	}
	require.Equal(t, 3, g.Snapshot().RoundIndex)
	require.Equal(t, 40, g.Snapshot().Score)

	require.NoError(t, g.Exit())

	snap := g.Snapshot()
	assert.Equal(t, models.PhaseSelectingCategory, snap.Phase)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.RoundIndex)

	// No save happens for an abandoned game, even after time passes.
	fc.Advance(time.Minute)
	assert.Equal(t, 0, submitter.count())
}

func playFullGame(t *testing.T, g *Game, fc *clockwork.FakeClock) {
	t.Helper()
	for round := 1; round <= DefaultRounds; round++ {
		answerCorrect(t, g)
		closeFeedbackWindow(t, g, fc)
	}
	require.Equal(t, models.PhaseFinished, g.Snapshot().Phase)
}

func TestSubmissionIsExactlyOnce(t *testing.T) {
	g, fc, submitter := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)
	playFullGame(t, g, fc)

	require.Eventually(t, func() bool {
		return g.Snapshot().SaveStatus == models.SaveStatusSaved
	}, eventually, time.Millisecond)

	// Re-observing the finished phase must never resubmit.
	for i := 0; i < 10; i++ {
		_ = g.Snapshot()
	}
	// Nor does a stale feedback timer firing after the fact.
	g.advance(0)
	fc.Advance(time.Minute)

	assert.Equal(t, 1, submitter.count())
}

func TestFailedSubmissionIsTerminal(t *testing.T) {
	g, fc, submitter := newTestGame(t)
	submitter.err = errors.New("store unavailable")

	loginAndStart(t, g, models.CategoryActors)
	playFullGame(t, g, fc)

	require.Eventually(t, func() bool {
		return g.Snapshot().SaveStatus == models.SaveStatusFailed
	}, eventually, time.Millisecond)

	// Terminal: no automatic retry, and the game state stands.
	fc.Advance(time.Minute)
	assert.Equal(t, 1, submitter.count())
	assert.Equal(t, models.PhaseFinished, g.Snapshot().Phase)
	assert.Equal(t, 100, g.Snapshot().Score)
}

func TestPlayAgainResetsAndAllowsFreshSubmission(t *testing.T) {
	g, fc, submitter := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)
	playFullGame(t, g, fc)
	require.Eventually(t, func() bool {
		return submitter.count() == 1
	}, eventually, time.Millisecond)

	require.NoError(t, g.PlayAgain())
	snap := g.Snapshot()
	assert.Equal(t, models.PhaseSelectingCategory, snap.Phase)
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, models.SaveStatusNone, snap.SaveStatus)
	assert.Equal(t, "nova", snap.Username, "identity survives play-again")

	// A second full game is a new latch scope and saves again.
	require.NoError(t, g.SelectCategory(models.CategorySingers))
	for round := 1; round <= DefaultRounds; round++ {
		answerCorrect(t, g)
		closeFeedbackWindow(t, g, fc)
	}
	require.Eventually(t, func() bool {
		return submitter.count() == 2
	}, eventually, time.Millisecond)
}

func TestLeaderboardNavigation(t *testing.T) {
	g, fc, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)
	playFullGame(t, g, fc)

	require.NoError(t, g.ShowLeaderboard())
	assert.Equal(t, models.PhaseViewingLeaderboard, g.Snapshot().Phase)

	require.NoError(t, g.Back())
	assert.Equal(t, models.PhaseSelectingCategory, g.Snapshot().Phase)
}

func TestLogoutClearsSession(t *testing.T) {
	g, _, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)

	require.NoError(t, g.Logout())
	snap := g.Snapshot()
	assert.Equal(t, models.PhaseAuthenticating, snap.Phase)
	assert.Empty(t, snap.Username)
	assert.Equal(t, 0, snap.Score)
}

func TestStaleTickIsNoop(t *testing.T) {
	g, _, _ := newTestGame(t)
	loginAndStart(t, g, models.CategoryActors)

	g.mu.Lock()
	stale := g.generation - 1
	g.mu.Unlock()

	before := g.Snapshot().TimeRemaining
	assert.False(t, g.tick(stale))
	assert.Equal(t, before, g.Snapshot().TimeRemaining)
}

func TestRoundPoolIndexInvariant(t *testing.T) {
	g, fc, _ := newTestGame(t)
	loginAndStart(t, g, models.CategorySingers)

	g.mu.Lock()
	pool := make([]models.Subject, len(g.session.RoundPool))
	copy(pool, g.session.RoundPool)
	g.mu.Unlock()
	require.Len(t, pool, DefaultRounds)

	for round := 1; round <= DefaultRounds; round++ {
		snap := g.Snapshot()
		require.Equal(t, round, snap.RoundIndex)
		assert.Equal(t, pool[round-1].Name, snap.CurrentSubject.Name)
		answerCorrect(t, g)
		closeFeedbackWindow(t, g, fc)
	}
}
