package app

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port            string        `envconfig:"GOPORT" default:"8000"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat       string        `envconfig:"LOG_FORMAT" default:"text"`
	RateLimit       float64       `envconfig:"RATE_LIMIT" default:"5"`
	RateBurst       int           `envconfig:"RATE_BURST" default:"10"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// LoadConfig reads the environment, after applying any .env files found.
// Variables already set in the environment win over .env entries.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var config Config
	err := envconfig.Process("", &config)

	if err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	if config.RateLimit <= 0 || config.RateBurst <= 0 {
		return Config{}, errors.New("RATE_LIMIT and RATE_BURST must be positive")
	}

	return config, nil
}

func NewLogger(config Config, w io.Writer) *slog.Logger {
	var level slog.Level
	err := level.UnmarshalText([]byte(config.LogLevel))

	if err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(config.LogFormat, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
