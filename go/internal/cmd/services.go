package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mcdev12/zodiarena/go/clients/wikimedia"
	"github.com/mcdev12/zodiarena/go/internal/content"
	"github.com/mcdev12/zodiarena/go/internal/events"
	"github.com/mcdev12/zodiarena/go/internal/gateway"
	"github.com/mcdev12/zodiarena/go/internal/leaderboard"
	"github.com/mcdev12/zodiarena/go/internal/users"
)

type Services struct {
	Users       *users.App
	Leaderboard *leaderboard.App
	Subjects    *content.Provider
	Images      *wikimedia.Client
	Sessions    *SessionRegistry
	ConnManager *gateway.ConnectionManager
	WSHandler   *gateway.WebSocketHandler
	Consumer    *gateway.EventConsumer

	publisher *events.JetStreamPublisher
}

func setupServices(pool *pgxpool.Pool, config *Config) (*Services, error) {
	// Wire up dependency injection chain
	// Database layer → Repository layer → App layer → Session registry

	userRepo := users.NewRepository(pool)
	userApp := users.NewApp(userRepo)

	leaderboardRepo := leaderboard.NewRepository(pool)
	leaderboardApp := leaderboard.NewApp(leaderboardRepo)

	provider := content.NewProvider(content.DefaultCatalog())
	images := wikimedia.NewClient()

	var sink events.Sink = events.NoopSink{}
	var publisher *events.JetStreamPublisher
	var consumer *gateway.EventConsumer

	connManager := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	wsHandler := gateway.NewWebSocketHandler(connManager)

	if config.NATS.Enabled {
		pubCfg := events.DefaultJetStreamConfig()
		if config.NATS.URL != "" {
			pubCfg.URL = config.NATS.URL
		}
		var err error
		publisher, err = events.NewJetStreamPublisher(pubCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create event publisher: %w", err)
		}
		sink = publisher

		consCfg := gateway.DefaultJetStreamConsumerConfig()
		if config.NATS.URL != "" {
			consCfg.URL = config.NATS.URL
		}
		consumer, err = gateway.NewEventConsumer(connManager, consCfg)
		if err != nil {
			publisher.Close()
			return nil, fmt.Errorf("failed to create event consumer: %w", err)
		}
	}

	registry := NewSessionRegistry(config.gameConfig(), userApp, provider, leaderboardApp, sink)

	return &Services{
		Users:       userApp,
		Leaderboard: leaderboardApp,
		Subjects:    provider,
		Images:      images,
		Sessions:    registry,
		ConnManager: connManager,
		WSHandler:   wsHandler,
		Consumer:    consumer,
		publisher:   publisher,
	}, nil
}

func (s *Services) Close() {
	s.Sessions.CloseAll()
	if s.Consumer != nil {
		s.Consumer.Stop()
	}
	if s.publisher != nil {
		s.publisher.Close()
	}
}
