package wordle

// Snapshot captures the observable game state for tests.
type Snapshot struct {
	Tick         uint64
	Target       string
	CurrentGuess string
	CurrentRow   int
	Status       GameStatus
	Pinned       string
	Feedback     string
	Notice       string
	Pot          int64
	HasPot       bool
	Score        int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:         g.tick,
		Target:       g.state.TargetWord,
		CurrentGuess: g.state.CurrentGuess,
		CurrentRow:   g.state.CurrentRow,
		Status:       g.state.GameStatus,
		Pinned:       g.pinned,
		Feedback:     g.feedback.text,
		Notice:       g.notice.text,
		Pot:          g.pot,
		HasPot:       g.hasPot,
		Score:        g.score(),
	}
}
