// Package sounds models the audio feedback cues the presentation layer
// plays. Cues are fire-and-forget: the session emits them and never waits
// on or inspects the result.
package sounds

// Cue names one audio feedback event.
type Cue string

const (
	CueTick      Cue = "tick"     // countdown at 10s or less
	CueCritical  Cue = "critical" // countdown at 5s or less
	CueCorrect   Cue = "correct"
	CueIncorrect Cue = "incorrect"
	CueSelect    Cue = "select"
	CueGameOver  Cue = "game_over"
)

// Player receives cues. Implementations must return immediately; any real
// playback happens on the implementation's own goroutine.
type Player interface {
	Play(cue Cue)
}

// NoopPlayer discards every cue.
type NoopPlayer struct{}

func (NoopPlayer) Play(Cue) {}
