package game

import (
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/mcdev12/zodiarena/go/internal/events"
	"github.com/mcdev12/zodiarena/go/internal/models"
	"github.com/mcdev12/zodiarena/go/internal/sounds"
	"github.com/mcdev12/zodiarena/go/internal/zodiac"
	"github.com/rs/zerolog/log"
)

// Two timers drive a round's lifecycle: a 1 Hz countdown while the round
// is live, and a one-shot feedback delay once an outcome is recorded.
// Both goroutines capture the session generation at arm time; any fire
// after the generation moved on is a no-op, so a phase change implicitly
// cancels every outstanding timer.

const (
	tickCueThreshold     = 10 // seconds remaining at which the tick cue starts
	criticalCueThreshold = 5  // seconds remaining at which the cue turns critical
)

// armCountdown starts the 1 Hz countdown for the current round. Caller
// holds mu.
func (g *Game) armCountdown(gen uint64) {
	timer := g.clock.NewTimer(time.Second)
	go func() {
		for {
			select {
			case <-timer.Chan():
				if !g.tick(gen) {
					return
				}
				timer.Reset(time.Second)
			case <-g.done:
				stopAndDrainTimer(timer)
				return
			}
		}
	}()
}

// tick applies one countdown second and reports whether the countdown
// should keep running. A tick against a stale generation, a phase other
// than quizzing, or an answered round is a no-op.
func (g *Game) tick(gen uint64) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if gen != g.generation || g.session.Phase != models.PhaseQuizzing || g.session.Answered {
		return false
	}
	if g.session.TimeRemaining <= 0 {
		return false
	}

	g.session.TimeRemaining--
	g.emit(events.TypeCountdownTick, events.CountdownTickPayload{
		GameID:        g.session.GameID.String(),
		Round:         g.session.RoundIndex,
		TimeRemaining: g.session.TimeRemaining,
	})

	if g.session.TimeRemaining <= 0 {
		// Budget exhausted: the timeout outcome is recorded in the same
		// logical step that the countdown reaches zero.
		g.timeoutRound()
		return false
	}

	if g.session.TimeRemaining <= criticalCueThreshold {
		g.sounds.Play(sounds.CueCritical)
	} else if g.session.TimeRemaining <= tickCueThreshold {
		g.sounds.Play(sounds.CueTick)
	}

	return true
}

// timeoutRound synthesizes the timeout outcome for the live round. Caller
// holds mu.
func (g *Game) timeoutRound() {
	subject := g.session.RoundPool[g.session.RoundIndex-1]
	correctSign := zodiac.Classify(subject.Birthdate).Name

	g.sounds.Play(sounds.CueIncorrect)
	g.recordOutcome(models.Outcome{
		Correct:     false,
		ChosenSign:  TimedOutAnswer,
		CorrectSign: correctSign,
	})
	g.emit(events.TypeRoundTimedOut, events.RoundTimedOutPayload{
		GameID:      g.session.GameID.String(),
		Round:       g.session.RoundIndex,
		CorrectSign: correctSign,
		TimedOutAt:  g.clock.Now(),
	})

	log.Debug().
		Int("round", g.session.RoundIndex).
		Str("subject", subject.Name).
		Msg("round timed out")
}

// armFeedbackAdvance starts the one-shot feedback delay. Caller holds mu.
func (g *Game) armFeedbackAdvance(gen uint64) {
	timer := g.clock.NewTimer(g.cfg.FeedbackDelay)
	go func() {
		select {
		case <-timer.Chan():
			g.advance(gen)
		case <-g.done:
			stopAndDrainTimer(timer)
		}
	}()
}

// stopAndDrainTimer safely stops a timer and drains its channel so the
// goroutine that owned it can exit without leaking a pending fire.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
