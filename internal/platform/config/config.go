// Package config loads service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	VocabPath         string `env:"VOCAB_PATH"`
	MaxSequenceLength int    `env:"MAX_SEQUENCE_LENGTH" default:"128"`

	// InferenceURL is optional: without it the model branch uses a neutral
	// static backend and scoring effectively runs on the rule tagger.
	InferenceURL string `env:"INFERENCE_URL"`
	ModelLang    string `env:"MODEL_LANG" default:"ru"`

	DebounceInterval time.Duration `env:"DEBOUNCE_INTERVAL" default:"300ms"`

	HapticAutoPlay     bool     `env:"HAPTIC_AUTO_PLAY" default:"true"`
	HapticHeartbeat    bool     `env:"HAPTIC_HEARTBEAT" default:"true"`
	HapticIntensity    float64  `env:"HAPTIC_INTENSITY" default:"1.0"`
	HapticDelaySeconds float64  `env:"HAPTIC_DELAY_SECONDS" default:"0"`
	IntenseKeywords    []string `env:"INTENSE_KEYWORDS"`
	MysteriousKeywords []string `env:"MYSTERIOUS_KEYWORDS"`

	MaxWebSocketConnections int `env:"MAX_WEBSOCKET_CONNECTIONS" default:"1000"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.VocabPath == "" {
		return fmt.Errorf("VOCAB_PATH is required")
	}
	if cfg.MaxSequenceLength < 2 {
		return fmt.Errorf("MAX_SEQUENCE_LENGTH must be at least 2, got %d", cfg.MaxSequenceLength)
	}
	if cfg.HapticIntensity < 0 || cfg.HapticIntensity > 1 {
		return fmt.Errorf("HAPTIC_INTENSITY must be in [0, 1], got %g", cfg.HapticIntensity)
	}
	if cfg.HapticDelaySeconds < 0 {
		return fmt.Errorf("HAPTIC_DELAY_SECONDS must be >= 0, got %g", cfg.HapticDelaySeconds)
	}
	if cfg.DebounceInterval <= 0 {
		return fmt.Errorf("DEBOUNCE_INTERVAL must be positive, got %s", cfg.DebounceInterval)
	}
	return nil
}
