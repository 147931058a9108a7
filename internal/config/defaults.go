package config

import (
	_ "embed"
)

//go:embed defaults/wordle.yaml
var defaultWordleYAML []byte

//go:embed defaults/melody.yaml
var defaultMelodyYAML []byte

// DefaultWordleConfig returns the default word game configuration.
func DefaultWordleConfig() WordleConfig {
	return WordleConfig{
		Rules: WordleRules{
			StrictDictionary: false,
		},
		Feedback: FeedbackConfig{
			Seconds: 2.0,
		},
	}
}

// DefaultMelodyConfig returns the default melody game configuration.
func DefaultMelodyConfig() MelodyConfig {
	return MelodyConfig{
		Economy: MelodyEconomy{
			InitialTokens: 1000,
			InitialPot:    5000,
			MaxAttempts:   6,
			AttemptCost:   50,
			RewardPercent: 10,
			MaxPotFill:    10000,
		},
		Melody: MelodyRound{
			Mode:      "daily",
			DailySalt: "melodle",
		},
		Playback: MelodyPlayback{
			NoteSeconds: 0.6,
			Bell:        true,
		},
		Feedback: FeedbackConfig{
			Seconds: 3.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "wordle":
		return defaultWordleYAML
	case "melody":
		return defaultMelodyYAML
	default:
		return nil
	}
}
