package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// PlatformConfig holds settings read from the environment.
// CLI flags override these when set.
type PlatformConfig struct {
	OperatorAddress string `env:"MELODLE_OPERATOR_ADDRESS"`
	Wallet          string `env:"MELODLE_WALLET"`
	DBPath          string `env:"MELODLE_DB" envDefault:"~/.melodle/melodle.db"`
	WordsFile       string `env:"MELODLE_WORDS_FILE"`
	LogPath         string `env:"MELODLE_LOG" envDefault:"~/.melodle/melodle.log"`
	Difficulty      string `env:"MELODLE_DIFFICULTY" envDefault:"normal"`

	// LedgerTimeout bounds each mirrored ledger call.
	LedgerTimeout time.Duration `env:"MELODLE_LEDGER_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadPlatform reads PlatformConfig from the environment.
func LoadPlatform() (PlatformConfig, error) {
	var cfg PlatformConfig
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
