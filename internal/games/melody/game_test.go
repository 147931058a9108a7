package melody

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/melodle/internal/core"
	"github.com/vovakirdan/melodle/internal/digest"
	"github.com/vovakirdan/melodle/internal/ledger"
)

const testOperator = "0xA2e4fb945b572bdf4f8cb11b5cb2d5d9765d91fb"

var testDay = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestGame(t *testing.T, account string) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	g := New()
	g.now = func() time.Time { return testDay }
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 10,
		Seed:     1,
		Account:  account,
		Operator: testOperator,
	})
	return g
}

// keys returns the shortcut keys that enter pitches.
func keys(pitches []string) string {
	var b strings.Builder
	for _, p := range pitches {
		for _, k := range Keyboard {
			if k.Pitch == p {
				b.WriteRune(k.Shortcut)
			}
		}
	}
	return b.String()
}

func typed(w string, actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, r := range w {
		in.Type(r)
	}
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func opsOfKind(ops []core.LedgerOp, kind core.LedgerOpKind) []core.LedgerOp {
	var out []core.LedgerOp
	for _, op := range ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// wrongMelody returns a catalogue melody other than target.
func wrongMelody(target []string) []string {
	for _, m := range SampleMelodies {
		if !reflect.DeepEqual(m, target) {
			return m
		}
	}
	return nil
}

func TestGameDailyMelody(t *testing.T) {
	g := newTestGame(t, "")
	snap := g.Snapshot()

	want := DailyIndex(testDay, "melodle", len(SampleMelodies))
	if snap.MelodyIndex != want {
		t.Errorf("melody index = %d, want %d", snap.MelodyIndex, want)
	}
	if !reflect.DeepEqual(snap.Target, SampleMelodies[want]) {
		t.Errorf("target = %v", snap.Target)
	}
	if snap.Tokens != 1000 || snap.Pot != 5000 {
		t.Errorf("balances = %d/%d, want 1000/5000", snap.Tokens, snap.Pot)
	}
}

func TestGameFirstStepReadsPot(t *testing.T) {
	g := newTestGame(t, "")

	res := g.Step(core.NewInputFrame())
	if len(opsOfKind(res.Ops, core.LedgerReadPot)) != 1 {
		t.Errorf("expected a pot read on the first step, got %+v", res.Ops)
	}
	res = g.Step(core.NewInputFrame())
	if len(res.Ops) != 0 {
		t.Errorf("expected no ops afterwards, got %+v", res.Ops)
	}
}

func TestGameKeysEnterNotesAndSound(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())

	res := g.Step(typed("135q"))
	if got := g.Snapshot().Entered; !reflect.DeepEqual(got, []string{"C", "D", "E"}) {
		t.Errorf("entered = %v, want C D E", got)
	}
	if !reflect.DeepEqual(res.Sounds, []string{"C", "D", "E"}) {
		t.Errorf("sounds = %v, want C D E", res.Sounds)
	}

	g.Step(typed("", core.ActionErase))
	if got := g.Snapshot().Entered; len(got) != 0 {
		t.Errorf("erase left %v", got)
	}
}

func TestGameWin(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())
	target := g.Snapshot().Target

	res := g.Step(typed(keys(target), core.ActionSubmit))

	subs := opsOfKind(res.Ops, core.LedgerSubmitGuess)
	if len(subs) != 1 {
		t.Fatalf("expected one submission, got %+v", res.Ops)
	}
	if subs[0].Hash != digest.MelodyHash(target) || subs[0].Stake != 50 || subs[0].Game != GameID {
		t.Errorf("unexpected submission %+v", subs[0])
	}

	if !res.State.GameOver || !res.State.Won || res.State.Score != 505 {
		t.Errorf("state = %+v, want a win scoring 505", res.State)
	}
	snap := g.Snapshot()
	if snap.Tokens != 1455 || snap.Pot != 4545 {
		t.Errorf("balances = %d/%d, want 1455/4545", snap.Tokens, snap.Pot)
	}
	if !strings.Contains(snap.Feedback, "+505") {
		t.Errorf("feedback = %q", snap.Feedback)
	}
}

func TestGameIncompleteIsRefused(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())

	res := g.Step(typed("135", core.ActionSubmit))
	if len(opsOfKind(res.Ops, core.LedgerSubmitGuess)) != 0 {
		t.Error("an incomplete melody must not be submitted")
	}
	snap := g.Snapshot()
	if snap.Attempts != 0 || snap.Tokens != 1000 {
		t.Errorf("guard failure changed state: %+v", snap)
	}
	if !strings.Contains(snap.Feedback, "Complete") {
		t.Errorf("feedback = %q", snap.Feedback)
	}
}

func TestGameLoseAndRestart(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())
	target := g.Snapshot().Target
	wrong := keys(wrongMelody(target))

	for i := 0; i < 6; i++ {
		g.Step(typed(wrong, core.ActionSubmit))
	}
	snap := g.Snapshot()
	if !snap.GameOver || snap.Won || snap.Attempts != 6 {
		t.Fatalf("expected a lost round, got %+v", snap)
	}
	if snap.Tokens != 700 || snap.Pot != 5300 {
		t.Errorf("balances = %d/%d, want 700/5300", snap.Tokens, snap.Pot)
	}

	g.Step(typed("", core.ActionRestart))
	snap = g.Snapshot()
	if snap.GameOver || snap.Attempts != 0 {
		t.Errorf("restart should begin a new round, got %+v", snap)
	}
	if snap.Tokens != 700 || snap.Pot != 5300 {
		t.Error("restart should keep balances")
	}
	if !reflect.DeepEqual(snap.Target, target) {
		t.Error("daily mode should replay today's melody")
	}
}

func TestGameRestartMidRoundIgnored(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())
	g.Step(typed(keys(wrongMelody(g.Snapshot().Target)), core.ActionSubmit))

	g.Step(typed("", core.ActionRestart))
	if g.Snapshot().Attempts != 1 {
		t.Error("restart should wait until the round is over")
	}
}

func TestGameRandomMode(t *testing.T) {
	SetMode(ModeRandom)
	t.Cleanup(func() { SetMode("") })

	g := newTestGame(t, "")
	if g.Snapshot().Mode != ModeRandom {
		t.Fatalf("mode = %q", g.Snapshot().Mode)
	}
	idx := g.Snapshot().MelodyIndex
	if idx < 0 || idx >= len(SampleMelodies) {
		t.Errorf("melody index %d out of range", idx)
	}
}

func TestGamePlaybackAdvancesByTicks(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())
	g.Step(typed("13"))

	res := g.Step(typed("", core.ActionPlay))
	if !reflect.DeepEqual(res.Sounds, []string{"C"}) {
		t.Fatalf("first playback sound = %v, want C", res.Sounds)
	}

	// 0.6s per note at 10 ticks per second
	var sounds []string
	for i := 0; i < 6; i++ {
		sounds = append(sounds, g.Step(core.NewInputFrame()).Sounds...)
	}
	if !reflect.DeepEqual(sounds, []string{"D"}) {
		t.Errorf("sounds after one note length = %v, want D", sounds)
	}

	for i := 0; i < 6; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.Snapshot().Playing {
		t.Error("playback should stop after the last note")
	}
}

func TestGamePlayWithoutNotes(t *testing.T) {
	g := newTestGame(t, "")
	res := g.Step(typed("", core.ActionPlay))
	if len(res.Sounds) != 0 || g.Snapshot().Playing {
		t.Error("nothing to play without notes")
	}
}

func TestGameHintPlaysAnswer(t *testing.T) {
	g := newTestGame(t, "")
	target := g.Snapshot().Target

	res := g.Step(typed("", core.ActionHint))
	if !reflect.DeepEqual(res.Sounds, target[:1]) {
		t.Errorf("hint sound = %v, want %v", res.Sounds, target[:1])
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Listening") {
		t.Error("hint playback should show the listening row")
	}
}

func TestGameHintUncoversOneNotePerAttempt(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(core.NewInputFrame())
	target := g.Snapshot().Target

	// Walk the whole answer without a checked attempt: nothing is drawn.
	g.Step(typed("", core.ActionHint))
	for i := 0; g.Snapshot().Playing; i++ {
		screen := core.NewScreen(80, 24)
		g.Render(screen)
		answerRow := strings.Split(screen.String(), "\n")[8]
		if strings.Contains(answerRow, "["+target[g.Snapshot().PlayIndex]) {
			t.Fatalf("note %d drawn before any attempt: %q", g.Snapshot().PlayIndex, answerRow)
		}
		if !strings.Contains(answerRow, "[??]") {
			t.Fatalf("sounding note should be masked: %q", answerRow)
		}
		if i > 1000 {
			t.Fatal("playback never finished")
		}
		g.Step(core.NewInputFrame())
	}

	g.Step(typed(keys(wrongMelody(target)), core.ActionSubmit))
	if g.Snapshot().Attempts != 1 {
		t.Fatalf("Attempts = %d, expected 1", g.Snapshot().Attempts)
	}
	g.Step(typed("", core.ActionHint))
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	answerRow := strings.Split(screen.String(), "\n")[8]
	if !strings.Contains(answerRow, fmt.Sprintf("[%-2s]", target[0])) {
		t.Errorf("first note should be uncovered after one attempt: %q", answerRow)
	}
}

func TestGameOperatorCreatesMelody(t *testing.T) {
	g := newTestGame(t, testOperator)
	g.Step(core.NewInputFrame())

	custom := []string{"B", "A", "G", "F", "E", "D", "C", "B", "A", "G"}
	res := g.Step(typed(keys(custom), core.ActionOperatorNew))

	creates := opsOfKind(res.Ops, core.LedgerCreateTarget)
	if len(creates) != 1 || creates[0].Hash != digest.MelodyHash(custom) {
		t.Fatalf("unexpected ops %+v", res.Ops)
	}
	snap := g.Snapshot()
	if !snap.Pinned || !reflect.DeepEqual(snap.Target, custom) {
		t.Errorf("operator melody not pinned: %+v", snap)
	}

	g.Step(typed(keys(custom), core.ActionSubmit))
	if !g.Snapshot().Won {
		t.Error("guessing the operator melody should win")
	}
	g.Step(typed("", core.ActionRestart))
	if !reflect.DeepEqual(g.Snapshot().Target, custom) {
		t.Error("pinned melody should survive restart")
	}

	g.Step(typed("", core.ActionOperatorExit))
	snap = g.Snapshot()
	if snap.Pinned || reflect.DeepEqual(snap.Target, custom) {
		t.Errorf("release should return to the catalogue, got %+v", snap)
	}
}

func TestGameOperatorNeedsFullMelody(t *testing.T) {
	g := newTestGame(t, testOperator)
	res := g.Step(typed("135", core.ActionOperatorNew))
	if len(opsOfKind(res.Ops, core.LedgerCreateTarget)) != 0 || g.Snapshot().Pinned {
		t.Error("a partial melody must not become the target")
	}
}

func TestGameNonOperatorCannotCreate(t *testing.T) {
	g := newTestGame(t, "0x0000000000000000000000000000000000000001")
	res := g.Step(typed(keys(SampleMelodies[5]), core.ActionOperatorNew))
	if len(opsOfKind(res.Ops, core.LedgerCreateTarget)) != 0 || g.Snapshot().Pinned {
		t.Error("only the operator may create melodies")
	}
}

func TestGameLedgerResult(t *testing.T) {
	g := newTestGame(t, "")

	g.LedgerResult(ledger.Result{Op: core.LedgerOp{Kind: core.LedgerReadPot, Game: GameID}, Pot: 4200, HasPot: true})
	if snap := g.Snapshot(); !snap.HasPot || snap.LedgerPot != 4200 {
		t.Errorf("ledger pot not recorded: %+v", snap)
	}

	g.LedgerResult(ledger.Result{Op: core.LedgerOp{Kind: core.LedgerSubmitGuess, Game: GameID}, Err: errors.New("offline")})
	if !strings.Contains(g.Snapshot().Notice, "offline") {
		t.Errorf("notice = %q", g.Snapshot().Notice)
	}
	if g.Snapshot().LedgerPot != 4200 {
		t.Error("a failed op must not change the ledger pot")
	}

	g.LedgerResult(ledger.Result{Op: core.LedgerOp{Kind: core.LedgerReadPot, Game: "wordle"}, Pot: 1, HasPot: true})
	if g.Snapshot().LedgerPot != 4200 {
		t.Error("results for other games should be ignored")
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, "")
	g.Step(typed("135"))

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"M E L O D L E", "Tokens: 1000", "Pot: 5000", "[C ] [D ] [E ]", "C# "} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestGameRenderTooSmall(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 30, ScreenH: 10, TickRate: 30})

	screen := core.NewScreen(30, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("expected the too-small notice")
	}
}

func TestPotGauge(t *testing.T) {
	g := newTestGame(t, "")
	if got := g.potGauge(); strings.Count(got, "#") != gaugeSize/2 {
		t.Errorf("half-full pot gauge = %s", got)
	}
	g.state.PotTokens = 50000
	if got := g.potGauge(); strings.Count(got, "#") != gaugeSize {
		t.Errorf("overfull pot gauge = %s", got)
	}
}
