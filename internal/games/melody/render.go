package melody

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/melodle/internal/core"
)

const (
	minScreenW = 52
	minScreenH = 18

	slotWidth = 5 // "[C#]" plus a gap
	keyWidth  = 4
	gaugeSize = 30
)

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
		return
	}

	g.renderHUD(dst)

	dst.DrawTextCenteredColored(4, "Your melody", core.ColorGray)
	g.renderSlots(dst, 5, g.userSlots(), g.play.notes != nil && !g.play.answer)

	if g.play.answer || g.state.IsGameOver {
		label := "Listening"
		if g.state.IsGameOver && !g.play.answer {
			label = "Answer"
		}
		dst.DrawTextCenteredColored(7, label, core.ColorGray)
		g.renderSlots(dst, 8, g.answerSlots(), g.play.answer)
	}

	g.renderPiano(dst, 10)

	msgY := 13
	if g.feedback.text != "" {
		dst.DrawTextCenteredColored(msgY, g.feedback.text, g.feedback.color)
	}
	if g.state.IsGameOver {
		dst.DrawTextCenteredColored(msgY+1, "Ctrl+R for a new round", core.ColorGray)
	}
	if g.notice.text != "" {
		dst.DrawTextCenteredColored(msgY+2, g.notice.text, g.notice.color)
	}

	help := "Enter check  Space play  Tab listen  Bksp clear  Esc menu"
	if g.isOperator() {
		help = "Ctrl+N set  Ctrl+X release  Enter check  Tab listen  Esc menu"
	}
	dst.DrawTextCenteredColored(g.screenH-1, help, core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCenteredColored(0, "M E L O D L E", core.ColorBrightCyan)

	dst.DrawText(1, 1, fmt.Sprintf("Tokens: %d", g.state.Tokens))
	dst.DrawTextCentered(1, fmt.Sprintf("Attempts %d/%d", g.state.Attempts, g.state.MaxAttempts))

	pot := fmt.Sprintf("Pot: %d", g.state.PotTokens)
	dst.DrawText(g.screenW-len(pot)-1, 1, pot)

	dst.DrawTextCenteredColored(2, g.potGauge(), core.ColorYellow)

	switch {
	case g.pinned != nil:
		dst.DrawTextColored(1, 2, "operator melody", core.ColorMagenta)
	case g.hasPot:
		dst.DrawTextColored(1, 2, fmt.Sprintf("ledger %d", g.ledgerPot), core.ColorGray)
	}
}

// potGauge fills toward MaxPotFill; a larger pot shows as full.
func (g *Game) potGauge() string {
	limit := g.cfg.Economy.MaxPotFill
	filled := 0
	if limit > 0 {
		filled = core.Clamp(g.state.PotTokens*gaugeSize/limit, 0, gaugeSize)
	}
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", gaugeSize-filled) + "]"
}

type slot struct {
	label string
	color core.Color
}

func (g *Game) userSlots() []slot {
	slots := make([]slot, len(g.state.CurrentMelody))
	for i := range slots {
		if i < len(g.state.UserMelody) {
			slots[i] = slot{g.state.UserMelody[i].Pitch, core.ColorWhite}
		} else {
			slots[i] = slot{"··", core.ColorDarkGray}
		}
	}
	return slots
}

// shown reports whether answer note i may be drawn. Mid-round, each checked
// attempt uncovers one more note of the answer.
func (g *Game) shown(i int) bool {
	return g.state.IsGameOver || i < g.state.Attempts
}

// answerSlots shows the uncovered note being played, or the full answer
// once the round is over.
func (g *Game) answerSlots() []slot {
	slots := make([]slot, len(g.state.CurrentMelody))
	for i, n := range g.state.CurrentMelody {
		switch {
		case g.play.answer && i == g.play.index && g.shown(i):
			slots[i] = slot{n.Pitch, core.ColorBrightYellow}
		case g.play.answer && i == g.play.index:
			slots[i] = slot{"??", core.ColorBrightYellow}
		case g.state.IsGameOver:
			c := core.ColorRed
			if g.state.IsWon {
				c = core.ColorGreen
			}
			slots[i] = slot{n.Pitch, c}
		default:
			slots[i] = slot{"··", core.ColorDarkGray}
		}
	}
	return slots
}

func (g *Game) renderSlots(dst *core.Screen, y int, slots []slot, highlight bool) {
	left := (g.screenW - len(slots)*slotWidth) / 2
	for i, s := range slots {
		c := s.color
		if highlight && i == g.play.index {
			c = core.ColorBrightYellow
		}
		dst.DrawTextColored(left+i*slotWidth, y, fmt.Sprintf("[%-2s]", s.label), c)
	}
}

func (g *Game) renderPiano(dst *core.Screen, y int) {
	sounding := ""
	if g.play.active() && g.play.index >= 0 && (!g.play.answer || g.shown(g.play.index)) {
		sounding = g.play.notes[g.play.index].Pitch
	}

	width := len(Keyboard) * keyWidth
	left := (g.screenW - width) / 2
	dst.DrawBox(core.NewRect(left-2, y-1, width+3, 4), core.ColorDarkGray)

	for i, k := range Keyboard {
		c := core.ColorWhite
		if k.Black {
			c = core.ColorGray
		}
		if k.Pitch == sounding {
			c = core.ColorBrightYellow
		}
		x := left + i*keyWidth
		dst.DrawTextColored(x, y, fmt.Sprintf("%-2s", k.Pitch), c)
		dst.DrawTextColored(x, y+1, string(k.Shortcut), core.ColorDarkGray)
	}
}
