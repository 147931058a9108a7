// Package config provides YAML-based game configuration loading,
// difficulty presets and environment-driven platform settings.
package config

// WordleConfig contains all configuration for the word game.
type WordleConfig struct {
	Rules    WordleRules    `yaml:"rules"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

// WordleRules defines how guesses are accepted.
type WordleRules struct {
	// StrictDictionary refuses guesses that are not in the word list.
	StrictDictionary bool   `yaml:"strict_dictionary"`
	WordsFile        string `yaml:"words_file"` // Optional word list, one word per line
}

// MelodyConfig contains all configuration for the melody game.
type MelodyConfig struct {
	Economy  MelodyEconomy  `yaml:"economy"`
	Melody   MelodyRound    `yaml:"melody"`
	Playback MelodyPlayback `yaml:"playback"`
	Feedback FeedbackConfig `yaml:"feedback"`
}

// MelodyEconomy defines the token economy.
type MelodyEconomy struct {
	InitialTokens int `yaml:"initial_tokens"`
	InitialPot    int `yaml:"initial_pot"`
	MaxAttempts   int `yaml:"max_attempts"`
	AttemptCost   int `yaml:"attempt_cost"`
	RewardPercent int `yaml:"reward_percent"` // Share of the pot paid on a win
	MaxPotFill    int `yaml:"max_pot_fill"`   // Pot value drawn as a full gauge
}

// MelodyRound defines how the target melody is chosen.
type MelodyRound struct {
	Mode      string `yaml:"mode"`       // "daily" or "random"
	DailySalt string `yaml:"daily_salt"` // Keys the daily melody choice
}

// MelodyPlayback defines preview timing.
type MelodyPlayback struct {
	NoteSeconds float64 `yaml:"note_seconds"`
	Bell        bool    `yaml:"bell"` // Ring the terminal bell per note
}

// FeedbackConfig controls transient status messages.
type FeedbackConfig struct {
	Seconds float64 `yaml:"seconds"` // Time before a message auto-dismisses
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a name to a preset, defaulting to normal.
func ParsePreset(name string) DifficultyPreset {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyHard:
		return DifficultyPreset(name)
	default:
		return DifficultyNormal
	}
}
