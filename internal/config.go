package internal

import (
	"fmt"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
)

type Config struct {
	BreakoutRoomsEnabled bool          `env:"BREAKOUT_ROOMS_ENABLED,default=true"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Locale               string        `env:"LOCALE,default=en"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=32000"`
	HistoryLimit         *int          `env:"HISTORY_LIMIT"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
}

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	if config.MaxContentLength <= 0 {
		return Config{}, fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", config.MaxContentLength)
	}
	return config, nil
}

// IsBreakoutRoomsEnabled exposes the feature switch to the breakout service.
func (c Config) IsBreakoutRoomsEnabled() bool {
	return c.BreakoutRoomsEnabled
}
