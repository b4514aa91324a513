package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/rs/zerolog/log"
)

// JetStreamConfig holds connection and stream settings for the session
// event stream.
type JetStreamConfig struct {
	URL           string
	StreamName    string
	SubjectPrefix string
	MaxReconnects int
	ReconnectWait time.Duration
	MaxAge        time.Duration
	MaxMsgs       int64
	Replicas      int
}

// DefaultJetStreamConfig returns defaults suitable for a local NATS server.
func DefaultJetStreamConfig() JetStreamConfig {
	return JetStreamConfig{
		URL:           nats.DefaultURL,
		StreamName:    "SESSION_EVENTS",
		SubjectPrefix: "session.events",
		MaxReconnects: -1, // Infinite
		ReconnectWait: 2 * time.Second,
		MaxAge:        24 * time.Hour,
		MaxMsgs:       -1, // No limit
		Replicas:      1,
	}
}

// JetStreamPublisher publishes session events to a JetStream stream. It
// satisfies Sink.
type JetStreamPublisher struct {
	nc     *nats.Conn
	js     jetstream.JetStream
	config JetStreamConfig
}

// NewJetStreamPublisher connects to NATS and ensures the event stream
// exists.
func NewJetStreamPublisher(cfg JetStreamConfig) (*JetStreamPublisher, error) {
	opts := []nats.Option{
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			log.Error().Err(err).Msg("NATS disconnected")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			log.Info().Str("url", nc.ConnectedUrl()).Msg("NATS reconnected")
		}),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			log.Error().Err(err).Msg("NATS error")
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS: %w", err)
	}

	js, err := jetstream.New(nc)
	if err != nil {
		nc.Close()
		return nil, fmt.Errorf("create JetStream context: %w", err)
	}

	p := &JetStreamPublisher{nc: nc, js: js, config: cfg}

	if err := p.ensureStream(context.Background()); err != nil {
		nc.Close()
		return nil, fmt.Errorf("ensure stream: %w", err)
	}

	return p, nil
}

func (p *JetStreamPublisher) ensureStream(ctx context.Context) error {
	sc := jetstream.StreamConfig{
		Name:        p.config.StreamName,
		Description: "Game session event stream",
		Subjects:    []string{fmt.Sprintf("%s.>", p.config.SubjectPrefix)},
		Retention:   jetstream.LimitsPolicy,
		MaxAge:      p.config.MaxAge,
		MaxMsgs:     p.config.MaxMsgs,
		Storage:     jetstream.FileStorage,
		Replicas:    p.config.Replicas,
	}

	if _, err := p.js.Stream(ctx, p.config.StreamName); err != nil {
		if _, err = p.js.CreateStream(ctx, sc); err != nil {
			return fmt.Errorf("create stream: %w", err)
		}
		log.Info().Str("stream", p.config.StreamName).Msg("created JetStream stream")
	}
	return nil
}

// Publish sends one envelope to session.events.<session>.<type>.
func (p *JetStreamPublisher) Publish(ctx context.Context, env Envelope) error {
	subject := fmt.Sprintf("%s.%s.%s", p.config.SubjectPrefix, env.SessionID, env.EventType)

	data, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}

	if _, err := p.js.Publish(ctx, subject, data); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}

	log.Debug().
		Str("subject", subject).
		Str("event_type", env.EventType).
		Msg("published session event")
	return nil
}

// Close drains the NATS connection.
func (p *JetStreamPublisher) Close() {
	if p.nc != nil {
		p.nc.Close()
	}
}
