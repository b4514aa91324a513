package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mcdev12/zodiarena/go/internal/game"
)

type Config struct {
	Server struct {
		Port           string   `yaml:"port"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	NATS struct {
		Enabled bool   `yaml:"enabled"`
		URL     string `yaml:"url"`
	} `yaml:"nats"`
	Game struct {
		Rounds           int `yaml:"rounds"`
		PointsPerCorrect int `yaml:"points_per_correct"`
		RoundTimeSec     int `yaml:"round_time_sec"`
		FeedbackDelaySec int `yaml:"feedback_delay_sec"`
	} `yaml:"game"`
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// loadConfig reads the yaml config. A missing file is not an error: the
// defaults run a local single-node setup.
func loadConfig(path string) (*Config, error) {
	var config Config
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// fall through to defaults
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if config.Server.Port == "" {
		config.Server.Port = getEnv("PORT", "8080")
	}
	return &config, nil
}

// gameConfig maps the yaml game section onto the session config,
// falling back to the standard game per field.
func (c *Config) gameConfig() game.Config {
	cfg := game.DefaultConfig()
	if c.Game.Rounds > 0 {
		cfg.Rounds = c.Game.Rounds
	}
	if c.Game.PointsPerCorrect > 0 {
		cfg.PointsPerCorrect = c.Game.PointsPerCorrect
	}
	if c.Game.RoundTimeSec > 0 {
		cfg.RoundTime = time.Duration(c.Game.RoundTimeSec) * time.Second
	}
	if c.Game.FeedbackDelaySec > 0 {
		cfg.FeedbackDelay = time.Duration(c.Game.FeedbackDelaySec) * time.Second
	}
	return cfg
}
