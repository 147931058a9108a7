// melodle is a word and melody guessing arcade for the terminal.
//
// Usage:
//
//	melodle list              - List available games
//	melodle play <game>       - Play a game
//	melodle menu              - Start menu to pick games interactively
//	melodle serve             - Start SSH server for remote play
//	melodle scores <game>     - Show high scores for a game
//	melodle ledger            - Show pot balances and recent submissions
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible target selection
//	--db <path>           - Set database path (default: ~/.melodle/melodle.db)
//	--wallet <address>    - Connected wallet address
//	--operator <address>  - Operator address allowed to set targets
//	--log <path>          - Log file (default: ~/.melodle/melodle.log)
//
// Every path and address can also come from MELODLE_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/melodle/internal/games/melody"
	_ "github.com/vovakirdan/melodle/internal/games/wordle"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagWallet     string
	flagOperator   string
	flagLogPath    string
	flagWordsFile  string
	flagDifficulty string
	flagVerbose    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "melodle",
	Short: "Melodle - guess words and melodies in your terminal",
	Long: `Melodle is a terminal arcade with two guessing games: a five-letter
word game and a ten-note melody game with a token pot. Guesses and targets
are mirrored, as hashes, onto a local ledger.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  ledger   - View pot balances and recent submissions

Examples:
  melodle list
  melodle play wordle
  melodle play melody --difficulty easy
  melodle menu --wallet 0x52908400098527886E0F7030069857D2E4169EE7
  melodle serve --ssh :2222
  melodle scores melody`,
	SilenceUsage:      true,
	PersistentPreRunE: resolvePlatform,
}

func init() {
	// Global persistent flags; empty values fall back to the environment
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (env MELODLE_DB)")
	rootCmd.PersistentFlags().StringVar(&flagWallet, "wallet", "", "Connected wallet address (env MELODLE_WALLET)")
	rootCmd.PersistentFlags().StringVar(&flagOperator, "operator", "", "Operator address (env MELODLE_OPERATOR_ADDRESS)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Log file (env MELODLE_LOG)")
	rootCmd.PersistentFlags().StringVar(&flagWordsFile, "words", "", "Word list, one word per line (env MELODLE_WORDS_FILE)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard (env MELODLE_DIFFICULTY)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(ledgerCmd)
}
