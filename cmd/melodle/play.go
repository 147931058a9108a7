package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/melodle/internal/games/melody"
	"github.com/vovakirdan/melodle/internal/platform/tui"
	"github.com/vovakirdan/melodle/internal/registry"
)

var (
	flagConfig string
	flagMode   string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Word game controls:
  A-Z        - Type a letter
  Enter      - Submit guess
  Backspace  - Erase a letter
  Ctrl+R     - New word (after the round)

Melody game controls:
  1-0, -, =  - Play a note (C, C#, D ... B)
  Enter      - Check the melody
  Space      - Play your melody
  Tab        - Listen to the answer
  Backspace  - Clear your melody
  Ctrl+R     - New round (after the round)

Operator controls (when --wallet matches --operator):
  Ctrl+N     - Set the typed word or melody as the new target
  Ctrl+X     - Release the operator target

Esc or Ctrl+C quits. Ctrl+S saves a screenshot to ~/.melodle/screenshots.

Difficulty options:
  easy   - More attempts, cheaper checks, bigger rewards (melody)
  normal - Config as loaded
  hard   - Fewer attempts, dear checks (melody); dictionary words only (word)

Examples:
  melodle play wordle
  melodle play melody --mode random
  melodle play melody --difficulty hard
  melodle play wordle --config ./my-wordle.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Melody mode: daily or random (asks when empty)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'melodle list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	cfg := runtimeConfig(width, height)

	configureGame(gameID, flagConfig)

	if gameID == melody.GameID {
		switch melody.Mode(flagMode) {
		case melody.ModeDaily, melody.ModeRandom:
			melody.SetMode(melody.Mode(flagMode))
		case "":
			mode, updatedCfg, selErr := tui.RunMelodyModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if mode == nil {
				return
			}
			melody.SetMode(*mode)
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q (use daily or random)\n", flagMode)
			os.Exit(1)
		}
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog := newLogger("melodle", io.Discard)
	defer closeLog()
	melodyCfg := melodyConfig(melodyConfigPath(gameID, flagConfig))
	store := openStore(logger, melodyCfg)

	bell := gameID == melody.GameID && melodyCfg.Playback.Bell
	runErr := tui.Run(game, cfg, gameDeps(store, logger, cfg.Account, bell))

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// melodyConfigPath returns configPath when it was given for the melody game.
func melodyConfigPath(gameID, configPath string) string {
	if gameID == melody.GameID {
		return configPath
	}
	return ""
}
