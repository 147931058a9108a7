package melody

// Snapshot captures the observable game state for tests.
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	MelodyIndex int
	Target      []string
	Entered     []string
	Attempts    int
	Tokens      int
	Pot         int
	GameOver    bool
	Won         bool
	Pinned      bool
	Playing     bool
	PlayIndex   int
	Feedback    string
	Notice      string
	LedgerPot   int64
	HasPot      bool
	Score       int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		MelodyIndex: g.melodyIndex,
		Target:      Pitches(g.state.CurrentMelody),
		Entered:     Pitches(g.state.UserMelody),
		Attempts:    g.state.Attempts,
		Tokens:      g.state.Tokens,
		Pot:         g.state.PotTokens,
		GameOver:    g.state.IsGameOver,
		Won:         g.state.IsWon,
		Pinned:      g.pinned != nil,
		Playing:     g.play.notes != nil,
		PlayIndex:   g.play.index,
		Feedback:    g.feedback.text,
		Notice:      g.notice.text,
		LedgerPot:   g.ledgerPot,
		HasPot:      g.hasPot,
		Score:       g.State().Score,
	}
}
