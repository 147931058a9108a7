package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/melodle/internal/core"
	"github.com/vovakirdan/melodle/internal/ledger"
	"github.com/vovakirdan/melodle/internal/storage"
)

// stubGame replays a fixed StepResult and records what the model feeds it.
type stubGame struct {
	next    core.StepResult
	frames  [][]core.Event
	results []ledger.Result
	resets  int
	size    [2]int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "stub") }
func (g *stubGame) State() core.GameState { return g.next.State }
func (g *stubGame) LedgerResult(r ledger.Result) { g.results = append(g.results, r) }
func (g *stubGame) Resize(w, h int) { g.size = [2]int{w, h} }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, append([]core.Event(nil), in.Events()...))
	return g.next
}

type recordingSynth struct {
	played []string
}

func (s *recordingSynth) Play(p string) { s.played = append(s.played, p) }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model) Model {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(Model)
}

func TestModelForwardsInputInOrder(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, core.DefaultConfig(), Deps{})

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}})
	next, _ = next.(Model).Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(t, next.(Model))

	if len(game.frames) != 1 {
		t.Fatalf("expected one step, got %d", len(game.frames))
	}
	got := game.frames[0]
	if len(got) != 2 || got[0].Rune != 'a' || got[1].Action != core.ActionSubmit {
		t.Errorf("unexpected events %+v", got)
	}

	m = tick(t, m)
	if len(game.frames[1]) != 0 {
		t.Errorf("input should be cleared after a tick, got %+v", game.frames[1])
	}
}

func TestModelPlaysSounds(t *testing.T) {
	synth := &recordingSynth{}
	game := &stubGame{next: core.StepResult{Sounds: []string{"C", "E"}}}
	m := NewModel(game, core.DefaultConfig(), Deps{Synth: synth})

	tick(t, m)
	if len(synth.played) != 2 || synth.played[0] != "C" || synth.played[1] != "E" {
		t.Errorf("played = %v, expected C E", synth.played)
	}
}

func TestModelSavesFinishedRoundOnce(t *testing.T) {
	store := openStore(t)
	cfg := core.DefaultConfig()
	cfg.Account = "0xabc"
	game := &stubGame{next: core.StepResult{State: core.GameState{Score: 300, GameOver: true, Won: true}}}
	m := NewModel(game, cfg, Deps{Store: store})

	m = tick(t, m)
	m = tick(t, m)

	scores, err := store.TopScores("stub", 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected one saved round, got %d", len(scores))
	}
	if scores[0].Score != 300 || !scores[0].Won || scores[0].Account != "0xabc" {
		t.Errorf("unexpected entry %+v", scores[0])
	}

	// A new round that ends again is recorded again.
	game.next.State = core.GameState{}
	m = tick(t, m)
	game.next.State = core.GameState{GameOver: true}
	tick(t, m)

	scores, _ = store.TopScores("stub", 10)
	if len(scores) != 2 {
		t.Errorf("expected two saved rounds, got %d", len(scores))
	}
}

func TestModelRoutesLedgerResults(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, core.DefaultConfig(), Deps{})

	res := ledger.Result{Op: core.LedgerOp{Kind: core.LedgerReadPot, Game: "stub"}, Pot: 7, HasPot: true}
	m.Update(LedgerMsg{Result: res})

	if len(game.results) != 1 || game.results[0].Pot != 7 {
		t.Errorf("ledger result not delivered: %+v", game.results)
	}
}

func TestMirrorCmdRunsOp(t *testing.T) {
	store := openStore(t)
	mirror := ledger.NewMirror(store, "0xabc", nil)

	msg := mirrorCmd(mirror, core.LedgerOp{Kind: core.LedgerSubmitGuess, Game: "stub", Hash: "0x01", Stake: 10})()
	lm, ok := msg.(LedgerMsg)
	if !ok {
		t.Fatalf("expected LedgerMsg, got %T", msg)
	}
	if !lm.Result.OK() || lm.Result.Receipt.TransactionID == "" {
		t.Errorf("unexpected result %+v", lm.Result)
	}
	if !lm.Result.HasPot || lm.Result.Pot != 10 {
		t.Errorf("pot = %d (has %v), expected 10", lm.Result.Pot, lm.Result.HasPot)
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	game := &stubGame{}
	m := NewModel(game, core.DefaultConfig(), Deps{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	if game.size != [2]int{100, 40} {
		t.Errorf("size = %v, expected 100x40", game.size)
	}
	if game.resets != 0 {
		t.Error("a resizable game should not be reset")
	}
}

func TestModelEscape(t *testing.T) {
	m := NewModel(&stubGame{}, core.DefaultConfig(), Deps{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("Esc should quit a standalone game")
	}

	m = NewModel(&stubGame{}, core.DefaultConfig(), Deps{})
	m.embedded = true
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || next.(Model).IsQuitting() {
		t.Error("Esc should return to the menu inside a session")
	}
}
