package main

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/melodle/internal/config"
	"github.com/vovakirdan/melodle/internal/core"
	"github.com/vovakirdan/melodle/internal/games/melody"
	"github.com/vovakirdan/melodle/internal/games/wordle"
	"github.com/vovakirdan/melodle/internal/ledger"
	"github.com/vovakirdan/melodle/internal/platform/tui"
	"github.com/vovakirdan/melodle/internal/storage"
	"github.com/vovakirdan/melodle/internal/wallet"
)

// ledgerTimeout bounds mirrored ledger calls; set from MELODLE_LEDGER_TIMEOUT.
var ledgerTimeout time.Duration

// resolvePlatform fills unset global flags from MELODLE_* variables.
func resolvePlatform(_ *cobra.Command, _ []string) error {
	env, err := config.LoadPlatform()
	if err != nil {
		return err
	}

	fill := func(flag *string, value string) {
		if *flag == "" {
			*flag = value
		}
	}
	fill(&flagDBPath, env.DBPath)
	fill(&flagWallet, env.Wallet)
	fill(&flagOperator, env.OperatorAddress)
	fill(&flagLogPath, env.LogPath)
	fill(&flagWordsFile, env.WordsFile)
	fill(&flagDifficulty, env.Difficulty)
	ledgerTimeout = env.LedgerTimeout
	return nil
}

// newLogger opens the log file, using fallback when it cannot be written.
// The terminal UI owns the screen, so interactive commands pass io.Discard.
// The returned func closes the log file and must be deferred by the caller.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func()) {
	var out io.Writer = fallback
	closeLog := func() {}
	if path := expandHome(flagLogPath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err == nil {
			if f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600); err == nil {
				out = f
				closeLog = func() {
					f.Close() //nolint:errcheck
				}
			}
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeLog
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// runtimeConfig builds the per-game runtime settings for a terminal of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	account, _ := wallet.Static(flagWallet).ConnectedAccount()
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Account:  account,
		Operator: strings.TrimSpace(flagOperator),
	}
}

// configureGame passes CLI settings to a game package before it is created.
// A custom config file only applies to the game it was given for.
func configureGame(gameID, configPath string) {
	switch gameID {
	case wordle.GameID:
		wordle.SetConfigPath(configPath)
		wordle.SetDifficultyPreset(flagDifficulty)
		wordle.SetWordsFile(flagWordsFile)
	case melody.GameID:
		melody.SetConfigPath(configPath)
		melody.SetDifficultyPreset(flagDifficulty)
	}
}

// melodyConfig loads the melody config the way the game will see it.
func melodyConfig(configPath string) config.MelodyConfig {
	cfg, err := config.LoadMelody(configPath)
	if err != nil {
		cfg = config.DefaultMelodyConfig()
	}
	if flagDifficulty != "" {
		config.ApplyMelodyPreset(&cfg, config.ParsePreset(flagDifficulty))
	}
	return cfg
}

// openStore opens the database and prepares the local ledger: the melody
// pot is seeded once and payouts follow the configured reward share.
// It returns nil when the database is unavailable; games run without it.
func openStore(logger *log.Logger, melodyCfg config.MelodyConfig) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open database", "path", flagDBPath, "error", err)
		return nil
	}

	store.SetPayoutPercent(melodyCfg.Economy.RewardPercent)
	if err := store.SeedPot(context.Background(), melody.GameID, int64(melodyCfg.Economy.InitialPot)); err != nil {
		logger.Warn("could not seed pot", "error", err)
	}
	return store
}

// gameDeps wires the store, mirror and synth for a local session.
func gameDeps(store *storage.Store, logger *log.Logger, account string, bell bool) tui.Deps {
	deps := tui.Deps{
		Logger: logger,
		Synth:  tui.Silent{},
	}
	if store != nil {
		deps.Store = store
		deps.Mirror = ledger.NewMirror(store, account, logger).WithTimeout(ledgerTimeout)
	}
	if bell {
		deps.Synth = tui.NewBell(os.Stdout, logger)
	}
	return deps
}
