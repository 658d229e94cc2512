package config

import (
	"errors"
	"fmt"
	"lrc/meta"
	"lrc/utils"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

var ErrInvalidConfig = errors.New("invalid configuration")

const (
	FormatText = "text"
	FormatCSV  = "csv"
)

var reportFormats = []string{FormatText, FormatCSV}

// Config holds the simulation settings. Unset environment variables keep the defaults.
type Config struct {
	NumGames       int     `env:"LRC_NUM_GAMES"`
	MaxPlayers     int     `env:"LRC_MAX_PLAYERS"` // Exclusive
	RoundingDigits int     `env:"LRC_ROUNDING_DIGITS"`
	RandomSeed     *uint64 `env:"LRC_RANDOM_SEED"`
	ReportFormat   string  `env:"LRC_REPORT_FORMAT"`
	LogLevel       string  `env:"LRC_LOG_LEVEL"`
	Metrics        bool    `env:"LRC_METRICS"`
}

func Default() Config {
	return Config{
		NumGames:       meta.NUM_GAMES,
		MaxPlayers:     meta.MAX_PLAYERS,
		RoundingDigits: meta.ROUNDING_DIGITS,
		ReportFormat:   FormatText,
		LogLevel:       zerolog.InfoLevel.String(),
	}
}

// Load returns the defaults overridden by the environment, validated.
func Load() (Config, error) {
	cfg := Default()
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.NumGames < 1 {
		return fmt.Errorf("%w: number of games must be at least 1, got %d", ErrInvalidConfig, c.NumGames)
	}
	if c.MaxPlayers <= meta.MIN_PLAYERS {
		return fmt.Errorf("%w: max players must exceed %d, got %d", ErrInvalidConfig, meta.MIN_PLAYERS, c.MaxPlayers)
	}
	if c.RoundingDigits < 0 || c.RoundingDigits > 15 {
		return fmt.Errorf("%w: rounding digits must be within [0, 15], got %d", ErrInvalidConfig, c.RoundingDigits)
	}
	if utils.FindIndex(reportFormats, c.ReportFormat) < 0 {
		return fmt.Errorf("%w: unknown report format %q", ErrInvalidConfig, c.ReportFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses the configured log level.
func (c Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if level == zerolog.NoLevel {
		return zerolog.NoLevel, fmt.Errorf("%w: empty log level", ErrInvalidConfig)
	}
	return level, nil
}
