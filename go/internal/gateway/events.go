package gateway

import (
	"encoding/json"
	"time"

	"github.com/mcdev12/zodiarena/go/internal/events"
)

// SessionEvent is the wire format pushed to WebSocket clients. It carries
// the session event envelope plus delivery metadata.
type SessionEvent struct {
	ID        string          `json:"id"`         // Event UUID
	SessionID string          `json:"session_id"` // Session UUID
	Type      string          `json:"type"`       // Event type
	Timestamp time.Time       `json:"timestamp"`  // Delivery time
	Data      json.RawMessage `json:"data"`       // Event-specific payload
}

// knownEventTypes lists the session event types the gateway forwards.
// Anything else coming off the stream is dropped with an error.
var knownEventTypes = map[string]bool{
	events.TypeSessionStarted: true,
	events.TypeGameStarted:    true,
	events.TypeRoundStarted:   true,
	events.TypeCountdownTick:  true,
	events.TypeAnswerRecorded: true,
	events.TypeRoundTimedOut:  true,
	events.TypeGameCompleted:  true,
	events.TypeScoreSaved:     true,
	events.TypeScoreSaveError: true,
	events.TypeSessionReset:   true,
}
