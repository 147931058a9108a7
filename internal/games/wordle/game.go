// Package wordle implements the five-letter word guessing game.
//
// The engine (State and Evaluate) is a set of pure reducers. Game adapts it
// to the platform: it maps input to reducer calls, keeps transient feedback,
// handles operator-pinned words and emits ledger ops for accepted guesses.
package wordle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/melodle/internal/config"
	"github.com/vovakirdan/melodle/internal/core"
	"github.com/vovakirdan/melodle/internal/digest"
	"github.com/vovakirdan/melodle/internal/ledger"
	"github.com/vovakirdan/melodle/internal/registry"
	"github.com/vovakirdan/melodle/internal/wallet"
	"github.com/vovakirdan/melodle/internal/words"
)

// GameID is the registry and ledger identifier of the word game.
const GameID = "wordle"

// ErrNotInWordList is reported when strict dictionary mode refuses a guess.
var ErrNotInWordList = errors.New("wordle: not in word list")

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// wordsFile overrides the configured word list
var wordsFile string

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

// SetWordsFile sets the word list used for targets and strict checks.
func SetWordsFile(path string) {
	wordsFile = path
}

// message is a transient line that disappears after ticks reach zero.
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

// Game adapts the word engine to the platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.WordleConfig
	source  words.Source
	rng     *rand.Rand
	tick    uint64

	state State

	// pinned is the operator's word; it survives restarts until cleared.
	pinned string

	feedback message
	notice   message // ledger warnings and receipts

	pot     int64
	hasPot  bool
	needPot bool

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates a word game that loads its dictionary on Reset.
func New() *Game {
	return &Game{}
}

// NewWithSource creates a word game over a fixed word source.
func NewWithSource(src words.Source) *Game {
	return &Game{source: src}
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
	return "Wordle"
}

// Reset loads configuration and starts a fresh round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadWordle(configPath)
	if err != nil {
		cfg = config.DefaultWordleConfig()
	}
	if difficultyPreset != "" {
		config.ApplyWordlePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	if g.source == nil {
		path := wordsFile
		if path == "" {
			path = cfg.Rules.WordsFile
		}
		dict, err := words.Open(path)
		if err != nil {
			dict = words.Default()
		}
		g.source = dict
	}

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.pinned = ""
	g.feedback = message{}
	g.notice = message{}
	g.needPot = true

	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.state = NewState(g.source.PickRandom(g.rng))
}

// restart begins a new round, keeping an operator-pinned word.
func (g *Game) restart() {
	target := g.pinned
	if target == "" {
		target = g.source.PickRandom(g.rng)
	}
	g.state = NewState(target)
	g.feedback = message{}
}

// Step applies one tick of input in arrival order.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	var ops []core.LedgerOp
	if g.needPot {
		g.needPot = false
		ops = append(ops, core.LedgerOp{Kind: core.LedgerReadPot, Game: GameID, Label: "pot"})
	}

	for _, ev := range in.Events() {
		if ev.Action == core.ActionNone {
			g.state = g.state.AddLetter(ev.Rune)
			continue
		}

		switch ev.Action {
		case core.ActionErase:
			g.state = g.state.RemoveLetter()
		case core.ActionSubmit:
			if op, ok := g.submit(); ok {
				ops = append(ops, op)
			}
		case core.ActionRestart:
			if g.state.Playing() {
				g.say("Finish this round first", core.ColorGray)
				continue
			}
			g.restart()
		case core.ActionOperatorNew:
			if op, ok := g.operatorNew(); ok {
				ops = append(ops, op)
			}
		case core.ActionOperatorExit:
			g.operatorExit()
		}
	}

	g.feedback.tick()
	g.notice.tick()

	return core.StepResult{State: g.State(), Ops: ops}
}

// checkGuess applies the optional dictionary rule. The engine itself
// never consults the dictionary.
func (g *Game) checkGuess(word string) error {
	if g.cfg.Rules.StrictDictionary && !g.source.IsValid(word) {
		return ErrNotInWordList
	}
	return nil
}

func (g *Game) submit() (core.LedgerOp, bool) {
	if !g.state.Playing() {
		return core.LedgerOp{}, false
	}
	guess := g.state.CurrentGuess
	if len(guess) != WordLength {
		g.say("Not enough letters", core.ColorOrange)
		return core.LedgerOp{}, false
	}
	if err := g.checkGuess(guess); err != nil {
		if errors.Is(err, ErrNotInWordList) {
			g.say("Not in word list", core.ColorOrange)
		}
		return core.LedgerOp{}, false
	}

	next, ok := g.state.SubmitGuess()
	if !ok {
		return core.LedgerOp{}, false
	}
	g.state = next

	switch next.GameStatus {
	case GameWon:
		g.sayFor(winMessage(next.CurrentRow), core.ColorBrightGreen, 0)
	case GameLost:
		g.sayFor("The word was "+next.TargetWord, core.ColorRed, 0)
	}

	return core.LedgerOp{
		Kind:  core.LedgerSubmitGuess,
		Game:  GameID,
		Hash:  digest.WordHash(guess),
		Label: fmt.Sprintf("guess %d", next.CurrentRow),
	}, true
}

func winMessage(rows int) string {
	switch rows {
	case 1:
		return "Genius!"
	case 2:
		return "Magnificent!"
	case 3:
		return "Impressive!"
	case 4:
		return "Splendid!"
	case 5:
		return "Great!"
	default:
		return "Phew!"
	}
}

// isOperator reports whether the connected account may set words.
func (g *Game) isOperator() bool {
	return wallet.IsOperator(g.runtime.Account, g.runtime.Operator)
}

// operatorNew pins a new target: the typed word when complete, else a random one.
func (g *Game) operatorNew() (core.LedgerOp, bool) {
	if !g.isOperator() {
		return core.LedgerOp{}, false
	}

	word := g.state.CurrentGuess
	if len(word) != WordLength {
		word = g.source.PickRandom(g.rng)
	} else if err := g.checkGuess(word); err != nil {
		g.say("Not in word list", core.ColorOrange)
		return core.LedgerOp{}, false
	}

	g.pinned = word
	g.state = NewState(word)
	g.say("New word set", core.ColorBrightCyan)

	return core.LedgerOp{
		Kind:  core.LedgerCreateTarget,
		Game:  GameID,
		Hash:  digest.WordHash(word),
		Label: "operator word",
	}, true
}

// operatorExit releases the pinned word and starts a random round.
func (g *Game) operatorExit() {
	if !g.isOperator() || g.pinned == "" {
		return
	}
	g.pinned = ""
	g.restart()
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
		g.pot = res.Pot
		g.hasPot = true
	}
	if res.Op.Kind == core.LedgerCreateTarget {
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

// State returns the coarse game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score(),
		GameOver: !g.state.Playing(),
		Won:      g.state.GameStatus == GameWon,
	}
}

// score rewards fewer rows: 600 for the first row down to 100 for the last.
func (g *Game) score() int {
	if g.state.GameStatus != GameWon {
		return 0
	}
	return (MaxRows + 1 - g.state.CurrentRow) * 100
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
