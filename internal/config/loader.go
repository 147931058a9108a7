package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadWordle loads word game configuration.
// Search order: customPath -> ~/.melodle/configs/wordle.yaml -> ./configs/wordle.yaml -> embedded default
func LoadWordle(customPath string) (WordleConfig, error) {
	return load(customPath, "wordle.yaml", defaultWordleYAML, DefaultWordleConfig)
}

// LoadMelody loads melody game configuration.
// Search order: customPath -> ~/.melodle/configs/melody.yaml -> ./configs/melody.yaml -> embedded default
func LoadMelody(customPath string) (MelodyConfig, error) {
	cfg, err := load(customPath, "melody.yaml", defaultMelodyYAML, DefaultMelodyConfig)
	if err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// load unmarshals the first readable config over the hardcoded defaults,
// so a file only needs the keys it changes.
func load[T any](customPath, filename string, embedded []byte, defaults func() T) (T, error) {
	cfg := defaults()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if parsed, ok := parse(data, defaults); ok {
				return parsed, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if parsed, ok := parse(data, defaults); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if parsed, ok := parse(embedded, defaults); ok {
		return parsed, nil
	}
	return cfg, nil // Fallback to hardcoded if embed fails
}

func parse[T any](data []byte, defaults func() T) (T, bool) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".melodle", "configs", filename)
}

// Validate checks that the economy can actually be played.
func (c MelodyConfig) Validate() error {
	e := c.Economy
	switch {
	case e.MaxAttempts <= 0:
		return fmt.Errorf("config: max_attempts must be positive, got %d", e.MaxAttempts)
	case e.AttemptCost < 0:
		return fmt.Errorf("config: attempt_cost must not be negative, got %d", e.AttemptCost)
	case e.RewardPercent < 0 || e.RewardPercent > 100:
		return fmt.Errorf("config: reward_percent must be within 0..100, got %d", e.RewardPercent)
	case e.InitialTokens < 0 || e.InitialPot < 0:
		return fmt.Errorf("config: initial balances must not be negative")
	}
	if m := c.Melody.Mode; m != "daily" && m != "random" {
		return fmt.Errorf("config: unknown melody mode %q", m)
	}
	return nil
}

// ApplyWordlePreset modifies the config based on a difficulty preset.
// Hard mode only accepts dictionary words; other presets keep the file's setting.
func ApplyWordlePreset(cfg *WordleConfig, preset DifficultyPreset) {
	if preset == DifficultyHard {
		cfg.Rules.StrictDictionary = true
	}
}

// ApplyMelodyPreset modifies the economy based on a difficulty preset.
func ApplyMelodyPreset(cfg *MelodyConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Economy.MaxAttempts = 8
		cfg.Economy.AttemptCost = 25
		cfg.Economy.RewardPercent = 15
	case DifficultyHard:
		cfg.Economy.MaxAttempts = 4
		cfg.Economy.AttemptCost = 100
		cfg.Economy.RewardPercent = 5
	}
}
