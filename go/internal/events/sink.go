package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Sink receives session events. Implementations must not block the
// caller for long: the game loop treats publishing as fire-and-forget.
type Sink interface {
	Publish(ctx context.Context, env Envelope) error
}

// NoopSink discards every event. It is the default sink so the core runs
// without a broker.
type NoopSink struct{}

func (NoopSink) Publish(ctx context.Context, env Envelope) error { return nil }

// NewEnvelope marshals payload and wraps it for publishing.
func NewEnvelope(sessionID uuid.UUID, eventType string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", eventType, err)
	}
	return Envelope{
		SessionID: sessionID,
		EventType: eventType,
		Payload:   raw,
		EmittedAt: time.Now(),
	}, nil
}
