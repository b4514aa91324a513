package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"

	"github.com/mcdev12/zodiarena/go/internal/dbconfig"
)

func setupDatabase(ctx context.Context) (*pgxpool.Pool, error) {
	dbConfig := dbconfig.NewConfigFromEnv()

	pool, err := pgxpool.New(ctx, dbConfig.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Info().
		Str("host", dbConfig.Host).
		Int("port", dbConfig.Port).
		Str("database", dbConfig.Database).
		Msg("connected to database")
	return pool, nil
}
