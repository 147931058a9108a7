package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second, drives cosmetic timers only
	Seed     int64 // RNG seed for target selection

	// Account is the connected wallet address, empty when no wallet is connected.
	Account string
	// Operator is the trusted address allowed to use operator controls.
	Operator string
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Ticks converts a duration in seconds to platform ticks (at least one).
func (c RuntimeConfig) Ticks(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 30
	}
	n := int(seconds * float64(rate))
	if n < 1 {
		n = 1
	}
	return n
}

// GameState is the coarse status a game reports to the platform.
type GameState struct {
	Score    int  // Score to record once the round is over
	GameOver bool // Whether the round has ended
	Won      bool // Whether the round ended in a win
}

// LedgerOpKind identifies the ledger call a game wants mirrored.
type LedgerOpKind string

const (
	LedgerSubmitGuess  LedgerOpKind = "submit"
	LedgerCreateTarget LedgerOpKind = "create"
	LedgerReadPot      LedgerOpKind = "pot"
)

// LedgerOp is a request to mirror a local action onto the external ledger.
// The platform executes it best-effort; the game never waits for it.
type LedgerOp struct {
	Kind  LedgerOpKind
	Game  string // Game ID the op belongs to
	Hash  string // Content hash of the guess or target
	Stake int64  // Tokens contributed with a submission
	Label string // Short human-readable description for logs
}

// StepResult is returned by Game.Step after input has been applied.
type StepResult struct {
	State  GameState
	Ops    []LedgerOp
	Sounds []string // Pitches to sound this tick, in order
}
