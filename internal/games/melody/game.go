// Package melody implements the melody matching game: reproduce a hidden
// ten-note melody on a one-octave keyboard, paying tokens into a shared
// pot for every checked attempt.
package melody

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/melodle/internal/config"
	"github.com/vovakirdan/melodle/internal/core"
	"github.com/vovakirdan/melodle/internal/digest"
	"github.com/vovakirdan/melodle/internal/ledger"
	"github.com/vovakirdan/melodle/internal/registry"
	"github.com/vovakirdan/melodle/internal/wallet"
)

// GameID is the registry and ledger identifier of the melody game.
const GameID = "melody"

// Mode selects how target melodies are chosen.
type Mode string

const (
	ModeDaily  Mode = "daily"
	ModeRandom Mode = "random"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// selectedMode overrides the configured mode for the next Reset.
var selectedMode Mode

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. An empty name keeps the config as loaded.
func SetDifficultyPreset(preset string) {
	if preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = config.ParsePreset(preset)
}

// SetMode sets the melody selection mode used by the next Reset.
func SetMode(m Mode) {
	selectedMode = m
}

// GetMode returns the currently selected mode, empty when the config decides.
func GetMode() Mode {
	return selectedMode
}

type message struct {
	text  string
	color core.Color
	ticks int
}

func (m *message) tick() {
	if m.ticks > 0 {
		m.ticks--
		if m.ticks == 0 {
			m.text = ""
		}
	}
}

// playback walks a melody one note at a time for the preview.
type playback struct {
	notes     []Note
	answer    bool
	index     int
	ticksLeft int
}

func (p playback) active() bool {
	return p.index < len(p.notes)
}

// Game adapts the melody engine to the platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.MelodyConfig
	econ    Economy
	rng     *rand.Rand
	now     func() time.Time
	tick    uint64

	state       State
	mode        Mode
	melodyIndex int
	pinned      []Note // operator melody, kept across restarts

	play       playback
	lastReward int

	feedback message
	notice   message

	ledgerPot int64
	hasPot    bool
	needPot   bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a melody game.
func New() *Game {
	return &Game{now: time.Now}
}

var (
	_ registry.LedgerAware = (*Game)(nil)
	_ registry.Resizer     = (*Game)(nil)
)

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Melodle"
}

// Reset loads configuration, picks a melody and restores the starting balances.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadMelody(configPath)
	if err != nil {
		cfg = config.DefaultMelodyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyMelodyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.econ = Economy{
		AttemptCost:   cfg.Economy.AttemptCost,
		RewardPercent: cfg.Economy.RewardPercent,
	}

	g.mode = Mode(cfg.Melody.Mode)
	if selectedMode != "" {
		g.mode = selectedMode
	}
	if g.now == nil {
		g.now = time.Now
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.pinned = nil
	g.play = playback{}
	g.lastReward = 0
	g.feedback = message{}
	g.notice = message{}
	g.needPot = true

	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.state = NewState(g.pickMelody(), cfg.Economy.InitialTokens, cfg.Economy.InitialPot, cfg.Economy.MaxAttempts)
}

// pickMelody chooses the next target from the catalogue.
func (g *Game) pickMelody() []Note {
	switch g.mode {
	case ModeRandom:
		g.melodyIndex = g.rng.Intn(len(SampleMelodies))
	default:
		g.melodyIndex = DailyIndex(g.now(), g.cfg.Melody.DailySalt, len(SampleMelodies))
	}
	return Notes(SampleMelodies[g.melodyIndex])
}

// restart begins a new round. Daily mode replays today's melody, random
// mode draws another, and an operator melody always wins.
func (g *Game) restart() {
	switch {
	case g.pinned != nil:
		g.state = g.state.WithMelody(g.pinned)
	case g.mode == ModeRandom:
		g.state = g.state.WithMelody(g.pickMelody())
	default:
		g.state = g.state.Reset()
	}
	g.lastReward = 0
	g.play = playback{}
	g.feedback = message{}
}

// Step applies one tick of input in arrival order and advances playback.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var res core.StepResult
	if g.needPot {
		g.needPot = false
		res.Ops = append(res.Ops, core.LedgerOp{Kind: core.LedgerReadPot, Game: GameID, Label: "pot"})
	}

	for _, ev := range in.Events() {
		if ev.Action == core.ActionNone {
			pitch, ok := PitchForKey(ev.Rune)
			if !ok {
				continue
			}
			next, added := g.state.SelectNote(pitch)
			if added {
				g.state = next
				res.Sounds = append(res.Sounds, pitch)
			}
			continue
		}

		switch ev.Action {
		case core.ActionErase:
			g.state = g.state.RemoveAll()
		case core.ActionSubmit:
			if op, ok := g.check(); ok {
				res.Ops = append(res.Ops, op)
			}
		case core.ActionPlay:
			if len(g.state.UserMelody) == 0 {
				g.say("Enter some notes first", core.ColorGray)
				continue
			}
			g.startPlayback(g.state.UserMelody, false)
		case core.ActionHint:
			g.startPlayback(g.state.CurrentMelody, true)
		case core.ActionRestart:
			if !g.state.IsGameOver {
				g.say("Finish this round first", core.ColorGray)
				continue
			}
			g.restart()
		case core.ActionOperatorNew:
			if op, ok := g.operatorCreate(); ok {
				res.Ops = append(res.Ops, op)
			}
		case core.ActionOperatorExit:
			g.operatorExit()
		}
	}

	if pitch, ok := g.advancePlayback(); ok {
		res.Sounds = append(res.Sounds, pitch)
	}

	g.feedback.tick()
	g.notice.tick()

	res.State = g.State()
	return res
}

func (g *Game) check() (core.LedgerOp, bool) {
	next, out, err := g.state.CheckAnswer(g.econ)
	if err != nil {
		switch {
		case errors.Is(err, ErrRoundOver):
			g.say("Round over, Ctrl+R for a new one", core.ColorGray)
		case errors.Is(err, ErrIncompleteMelody):
			g.say("Complete the melody first", core.ColorOrange)
		case errors.Is(err, ErrInsufficientTokens):
			g.say(fmt.Sprintf("Not enough tokens (%d needed)", g.econ.AttemptCost), core.ColorRed)
		}
		return core.LedgerOp{}, false
	}
	g.state = next

	switch {
	case out.Won:
		g.lastReward = out.Reward
		g.sayFor(fmt.Sprintf("Correct! +%d tokens", out.Reward), core.ColorBrightGreen, 0)
	case next.IsGameOver:
		g.sayFor("Out of attempts", core.ColorRed, 0)
	default:
		left := next.AttemptsLeft()
		g.say(fmt.Sprintf("Not quite. %d attempt%s left", left, plural(left)), core.ColorOrange)
	}

	return core.LedgerOp{
		Kind:  core.LedgerSubmitGuess,
		Game:  GameID,
		Hash:  digest.MelodyHash(Pitches(out.Guess)),
		Stake: int64(out.Stake),
		Label: fmt.Sprintf("attempt %d", next.Attempts),
	}, true
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func (g *Game) startPlayback(notes []Note, answer bool) {
	if len(notes) == 0 {
		return
	}
	g.play = playback{notes: notes, answer: answer, index: -1}
}

// advancePlayback moves to the next note when the current one has run out.
// It returns the pitch that just started.
func (g *Game) advancePlayback() (string, bool) {
	if g.play.notes == nil {
		return "", false
	}
	if g.play.ticksLeft > 0 {
		g.play.ticksLeft--
		if g.play.ticksLeft > 0 {
			return "", false
		}
	}
	g.play.index++
	if !g.play.active() {
		g.play = playback{}
		return "", false
	}
	g.play.ticksLeft = g.runtime.Ticks(g.cfg.Playback.NoteSeconds)
	return g.play.notes[g.play.index].Pitch, true
}

func (g *Game) isOperator() bool {
	return wallet.IsOperator(g.runtime.Account, g.runtime.Operator)
}

// operatorCreate publishes the entered melody as the new target.
func (g *Game) operatorCreate() (core.LedgerOp, bool) {
	if !g.isOperator() {
		return core.LedgerOp{}, false
	}
	if len(g.state.UserMelody) != MelodyLength {
		g.say(fmt.Sprintf("Enter %d notes to create a melody", MelodyLength), core.ColorOrange)
		return core.LedgerOp{}, false
	}

	melody := g.state.UserMelody
	g.pinned = melody
	g.state = g.state.WithMelody(melody)
	g.lastReward = 0
	g.say("Melody created", core.ColorBrightCyan)

	return core.LedgerOp{
		Kind:  core.LedgerCreateTarget,
		Game:  GameID,
		Hash:  digest.MelodyHash(Pitches(melody)),
		Label: "operator melody",
	}, true
}

func (g *Game) operatorExit() {
	if !g.isOperator() || g.pinned == nil {
		return
	}
	g.pinned = nil
	g.state = g.state.WithMelody(g.pickMelody())
	g.lastReward = 0
	g.say("Operator mode off", core.ColorBrightCyan)
}

// Resize adapts the layout to a new screen size. The round is kept.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenW = width
	g.screenH = height
	g.tooSmall = width < minScreenW || height < minScreenH
}

// LedgerResult receives the outcome of a mirrored op.
func (g *Game) LedgerResult(res ledger.Result) {
	if res.Op.Game != GameID {
		return
	}
	if res.Err != nil {
		g.notice = message{text: "Ledger: " + shortErr(res.Err), color: core.ColorOrange, ticks: g.runtime.Ticks(g.cfg.Feedback.Seconds * 2)}
		return
	}
	if res.HasPot {
		g.ledgerPot = res.Pot
		g.hasPot = true
	}
	switch {
	case res.Receipt.Matched:
		g.notice = message{text: fmt.Sprintf("Ledger confirmed the match (+%d)", res.Receipt.Payout), color: core.ColorBrightGreen, ticks: g.runtime.Ticks(g.cfg.Feedback.Seconds)}
	case res.Op.Kind == core.LedgerCreateTarget:
		g.notice = message{text: "Recorded " + shortTx(res.Receipt.TransactionID), color: core.ColorGray, ticks: g.runtime.Ticks(g.cfg.Feedback.Seconds)}
	}
}

func (g *Game) say(text string, c core.Color) {
	g.sayFor(text, c, g.runtime.Ticks(g.cfg.Feedback.Seconds))
}

// sayFor shows text for ticks; zero keeps it until replaced.
func (g *Game) sayFor(text string, c core.Color, ticks int) {
	g.feedback = message{text: text, color: c, ticks: ticks}
}

// State returns the coarse game state. A won round scores its reward.
func (g *Game) State() core.GameState {
	score := 0
	if g.state.IsWon {
		score = g.lastReward
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state.IsGameOver,
		Won:      g.state.IsWon,
	}
}

func shortErr(err error) string {
	s := err.Error()
	if len(s) > 40 {
		s = s[:37] + "..."
	}
	return s
}

func shortTx(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
