package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/melodle/internal/registry"
	"github.com/vovakirdan/melodle/internal/storage"
)

var flagLedgerLimit int

var ledgerCmd = &cobra.Command{
	Use:   "ledger [game]",
	Short: "Show pot balances and recent submissions",
	Long: `Display the local ledger: the pot of every game and the latest
mirrored submissions. Only hashes are recorded, never the guesses themselves.

Examples:
  melodle ledger
  melodle ledger melody --limit 50`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLedger,
}

func init() {
	ledgerCmd.Flags().IntVar(&flagLedgerLimit, "limit", 20, "Number of submissions to show")
}

func runLedger(_ *cobra.Command, args []string) {
	gameID := ""
	if len(args) == 1 {
		gameID = args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	fmt.Println("Pots")
	fmt.Println()
	for _, g := range registry.List() {
		if gameID != "" && g.ID != gameID {
			continue
		}
		pot, err := store.ReadPotBalance(ctx, g.ID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading pot for %s: %v\n", g.ID, err)
			continue
		}
		fmt.Printf("  %-8s  %d\n", g.ID, pot)
	}
	fmt.Println()

	subs, err := store.RecentSubmissions(ctx, gameID, flagLedgerLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading submissions: %v\n", err)
		return
	}

	fmt.Println("Recent submissions")
	fmt.Println()
	if len(subs) == 0 {
		fmt.Println("  None yet.")
		return
	}

	fmt.Printf("  %-16s  %-8s  %-14s  %-6s  %-7s  %s\n", "When", "Game", "Hash", "Stake", "Match", "Tx")
	for _, s := range subs {
		match := "-"
		if s.Matched {
			match = fmt.Sprintf("+%d", s.Payout)
		}
		fmt.Printf("  %-16s  %-8s  %-14s  %-6d  %-7s  %s\n",
			s.CreatedAt.Format("2006-01-02 15:04"), s.GameID, abbreviate(s.Hash, 14), s.Stake, match, s.TransactionID)
	}
}

func abbreviate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-2] + ".."
}
